// File: services/scheduling/finder.go
package scheduling

import (
	"context"
	"sort"
	"strconv"
	"time"

	"bookline/models"
	"bookline/utils"

	"go.uber.org/zap"
)

const (
	// The provider limits availability queries to 7-day ranges.
	windowDays = 7
	// Small safety offset so the first window never starts in the past.
	startOffset = 30 * time.Second

	dateLayout = "2006-01-02"
)

// WeekdayFormatter renders a localized weekday label for a date.
type WeekdayFormatter func(t time.Time, locale string) string

// Finder paginates the provider's time-chunked availability query into flat,
// deduplicated date and time menus.
type Finder struct {
	Client        Client
	Zone          *utils.Timezone
	Clock         utils.Clock
	Locale        string
	FormatWeekday WeekdayFormatter
	Logger        *zap.Logger
}

// FindAvailableDates collects up to limit distinct available dates within
// horizonDays of now, querying the provider one 7-day window at a time.
// Windows advance strictly; an upstream failure stops the search and returns
// whatever was collected.
func (f *Finder) FindAvailableDates(ctx context.Context, limit, horizonDays int) []models.DateOption {
	now := f.Clock.Now().UTC()
	start := now.Add(startOffset)
	horizon := time.Duration(horizonDays) * 24 * time.Hour

	collected := make(map[string]struct{})
	for len(collected) < limit && start.Sub(now) < horizon {
		end := start.AddDate(0, 0, windowDays)
		slots, err := f.Client.AvailableTimes(ctx, start, end)
		if err != nil {
			f.Logger.Warn("availability window query failed",
				zap.Time("windowStart", start), zap.Error(err))
			break
		}
		for _, slot := range slots {
			collected[slot.StartTime.UTC().Format(dateLayout)] = struct{}{}
			if len(collected) >= limit {
				break
			}
		}
		start = end
	}

	dates := make([]string, 0, len(collected))
	for d := range collected {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if len(dates) > limit {
		dates = dates[:limit]
	}

	options := make([]models.DateOption, 0, len(dates))
	for i, d := range dates {
		label := ""
		if day, err := time.Parse(dateLayout, d); err == nil {
			label = f.FormatWeekday(day, f.Locale)
		}
		options = append(options, models.DateOption{
			ID:          strconv.Itoa(i + 1),
			Title:       d,
			Description: label,
		})
	}
	return options
}

// CountAvailableDates returns how many distinct dates are bookable within the
// horizon.
func (f *Finder) CountAvailableDates(ctx context.Context, limit, horizonDays int) int {
	return len(f.FindAvailableDates(ctx, limit, horizonDays))
}

// FindAvailableTimes lists the bookable local wall-clock times on one date,
// sorted ascending as "HH:MM". Upstream failure yields an empty list, never a
// partial entry.
func (f *Finder) FindAvailableTimes(ctx context.Context, date string) []models.TimeOption {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		f.Logger.Warn("invalid date for time lookup", zap.String("date", date), zap.Error(err))
		return []models.TimeOption{}
	}

	start := day // 00:00:00Z
	end := day.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	slots, err := f.Client.AvailableTimes(ctx, start, end)
	if err != nil {
		f.Logger.Warn("time availability query failed", zap.String("date", date), zap.Error(err))
		return []models.TimeOption{}
	}

	times := make([]string, 0, len(slots))
	for _, slot := range slots {
		times = append(times, f.Zone.FormatClock(slot.StartTime))
	}
	sort.Strings(times)

	options := make([]models.TimeOption, 0, len(times))
	for i, t := range times {
		options = append(options, models.TimeOption{
			ID:          strconv.Itoa(i + 1),
			Title:       t,
			Description: t,
		})
	}
	return options
}
