package trholiday

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a year/month/day triple or a date string
// does not name a real Gregorian calendar date.
var ErrInvalidDate = errors.New("trholiday: invalid date")

// dateLayout is the ISO 8601 calendar date layout accepted by [ParseDate].
const dateLayout = "2006-01-02"

// date is an internal comparable key for calendar lookups.
// Users work with time.Time; this type is not exported.
type date struct {
	year  int
	month time.Month
	day   int
}

// dateFromTime extracts the calendar date of t in t's own location.
// Time of day is discarded.
func dateFromTime(t time.Time) date {
	y, m, d := t.Date()
	return date{year: y, month: m, day: d}
}

func (d date) toTime() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// addDays returns the date n days after d (n may be negative).
// time.Date normalizes out-of-range days across months and years.
func (d date) addDays(n int) date {
	return dateFromTime(time.Date(d.year, d.month, d.day+n, 0, 0, 0, 0, time.UTC))
}

func (d date) weekday() time.Weekday {
	return d.toTime().Weekday()
}

// isoWeekday numbers the days Monday=1 through Sunday=7.
func (d date) isoWeekday() int {
	wd := int(d.weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// sameMonthDay reports whether d and other fall on the same (month, day),
// ignoring the year.
func (d date) sameMonthDay(other date) bool {
	return d.month == other.month && d.day == other.day
}

func (d date) before(other date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

func (d date) after(other date) bool {
	return other.before(d)
}

func (d date) inRange(from, to date) bool {
	return !d.before(from) && !to.before(d)
}

func (d date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// NewDate returns midnight UTC on the given calendar date. Unlike
// time.Date it does not normalize: February 30 or month 13 are rejected
// with an error wrapping [ErrInvalidDate].
func NewDate(year int, month time.Month, day int) (time.Time, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if got := dateFromTime(t); got != (date{year: year, month: month, day: day}) {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return t, nil
}

// ParseDate parses a "2006-01-02" formatted date into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
	}
	return t, nil
}
