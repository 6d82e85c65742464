package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Wednesday, January 17 2024. The surrounding week runs Sunday January 14
// through Saturday January 20.
var wednesday = time.Date(2024, time.January, 17, 12, 30, 0, 0, time.UTC)

func tp(t time.Time) *time.Time {
	return &t
}

func TestWeekBounds(t *testing.T) {
	start, end := WeekBounds(wednesday)

	assert.Equal(t, time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.January, 20, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), end)
}

func TestWeekBoundsOnSunday(t *testing.T) {
	sunday := time.Date(2024, time.January, 14, 8, 0, 0, 0, time.UTC)
	start, _ := WeekBounds(sunday)

	assert.Equal(t, time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC), start)
}

func TestDueThisWeek(t *testing.T) {
	cases := []struct {
		name string
		due  *time.Time
		want bool
	}{
		{"nil due date", nil, false},
		{"midweek", tp(time.Date(2024, time.January, 18, 9, 0, 0, 0, time.UTC)), true},
		{"today", tp(wednesday), true},
		{"sunday midnight boundary", tp(time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC)), true},
		{"saturday last second", tp(time.Date(2024, time.January, 20, 23, 59, 59, 0, time.UTC)), true},
		{"saturday before midnight", tp(time.Date(2024, time.January, 20, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)), true},
		{"previous saturday", tp(time.Date(2024, time.January, 13, 23, 59, 59, 0, time.UTC)), false},
		{"next sunday", tp(time.Date(2024, time.January, 21, 0, 0, 0, 0, time.UTC)), false},
		{"earlier in week but past", tp(time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DueThisWeek(tc.due, wednesday))
		})
	}
}

func TestOverdue(t *testing.T) {
	cases := []struct {
		name string
		due  *time.Time
		want bool
	}{
		{"nil due date", nil, false},
		{"yesterday", tp(time.Date(2024, time.January, 16, 23, 0, 0, 0, time.UTC)), true},
		{"today earlier hour", tp(time.Date(2024, time.January, 17, 1, 0, 0, 0, time.UTC)), false},
		{"today later hour", tp(time.Date(2024, time.January, 17, 23, 0, 0, 0, time.UTC)), false},
		{"tomorrow", tp(time.Date(2024, time.January, 18, 0, 0, 0, 0, time.UTC)), false},
		{"last month", tp(time.Date(2023, time.December, 31, 12, 0, 0, 0, time.UTC)), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overdue(tc.due, wednesday))
		})
	}
}

func TestDueTodayIsThisWeekNotOverdue(t *testing.T) {
	today := tp(time.Date(2024, time.January, 17, 18, 0, 0, 0, time.UTC))

	assert.True(t, DueThisWeek(today, wednesday))
	assert.False(t, Overdue(today, wednesday))
}
