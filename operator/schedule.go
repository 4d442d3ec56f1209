package operator

import "time"

// DailySchedule is a fixed hour:minute in UTC.
type DailySchedule struct {
	Hour   int
	Minute int
}

// Next returns the first hour:minute:00 UTC strictly after now.
func (s DailySchedule) Next(now time.Time) time.Time {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), s.Hour, s.Minute, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
