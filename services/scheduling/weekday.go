package scheduling

import "time"

var arabicWeekdays = [7]string{
	time.Sunday:    "الأحد",
	time.Monday:    "الاثنين",
	time.Tuesday:   "الثلاثاء",
	time.Wednesday: "الأربعاء",
	time.Thursday:  "الخميس",
	time.Friday:    "الجمعة",
	time.Saturday:  "السبت",
}

// LocalizedWeekday is the default WeekdayFormatter. English weekday names for
// any locale other than "ar".
func LocalizedWeekday(t time.Time, locale string) string {
	if locale == "ar" {
		return arabicWeekdays[t.Weekday()]
	}
	return t.Weekday().String()
}
