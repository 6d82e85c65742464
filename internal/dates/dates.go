// Package dates holds the calendar classification helpers used by ticket
// filtering and the dashboard. Both classifiers take the reference time as an
// argument so callers control the clock.
package dates

import "time"

// WeekBounds returns the closed interval covering the calendar week of now:
// Sunday 00:00:00 through the last nanosecond of Saturday, in now's location.
func WeekBounds(now time.Time) (start, end time.Time) {
	start = startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
	end = start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// DueThisWeek reports whether due falls inside the calendar week of now.
// Boundary instants are included. A nil due date is never due this week.
func DueThisWeek(due *time.Time, now time.Time) bool {
	if due == nil {
		return false
	}
	start, end := WeekBounds(now)
	d := due.In(now.Location())
	return !d.Before(start) && !d.After(end)
}

// Overdue reports whether the calendar date of due is strictly before the
// calendar date of now; time of day is ignored. A ticket due today is not
// overdue. A nil due date is never overdue.
func Overdue(due *time.Time, now time.Time) bool {
	if due == nil {
		return false
	}
	return startOfDay(due.In(now.Location())).Before(startOfDay(now))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
