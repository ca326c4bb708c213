package utils

import (
	"fmt"
	"time"
)

const localDateTimeLayout = "2006-01-02 15:04"

// Timezone is the single local-wall-clock ⇄ UTC-instant conversion primitive
// shared by the slot finder and the booking submitter.
type Timezone struct {
	loc *time.Location
}

// LoadTimezone resolves an IANA zone name (e.g. "Asia/Jerusalem").
func LoadTimezone(name string) (*Timezone, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return &Timezone{loc: loc}, nil
}

// Name returns the zone identifier.
func (z *Timezone) Name() string {
	return z.loc.String()
}

// LocalToUTC parses a "YYYY-MM-DD" date and "HH:MM" clock as naive local wall
// time in the zone and returns the corresponding UTC instant.
func (z *Timezone) LocalToUTC(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(localDateTimeLayout, date+" "+clock, z.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid local date/time %q %q: %w", date, clock, err)
	}
	return t.UTC(), nil
}

// ToLocal converts an absolute instant to the zone's wall clock.
func (z *Timezone) ToLocal(t time.Time) time.Time {
	return t.In(z.loc)
}

// FormatClock renders an instant as local "HH:MM" (24-hour, minute precision).
func (z *Timezone) FormatClock(t time.Time) string {
	return t.In(z.loc).Format("15:04")
}
