package ranking

import (
	"strings"
	"time"
)

// Period selects the aggregation window for a leaderboard.
//
// Window policy: both windows are inclusive at each end and run through
// "now". Weeks are anchored on Monday 00:00:00 in the server's local
// zone; months start on the first day of the current month at 00:00:00.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ParsePeriod accepts "weekly" and "monthly"; the empty value defaults to
// weekly. Anything else is a validation failure, never a silent default.
func ParsePeriod(value string) (Period, error) {
	switch strings.TrimSpace(value) {
	case "", string(PeriodWeekly):
		return PeriodWeekly, nil
	case string(PeriodMonthly):
		return PeriodMonthly, nil
	default:
		return "", ErrInvalidPeriod
	}
}

// Range returns the inclusive [start, now] window for the period.
func (p Period) Range(now time.Time) (time.Time, time.Time) {
	switch p {
	case PeriodMonthly:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, now
	default:
		// Monday is day zero of the week.
		daysFromMonday := (int(now.Weekday()) + 6) % 7
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return day.AddDate(0, 0, -daysFromMonday), now
	}
}
