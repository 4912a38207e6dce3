package trholiday

import "time"

// searchWindow bounds the day-by-day scans below.
const searchWindow = 366

// IsBusinessDay reports whether the given date is a business day: not a
// weekend day under the calendar's weekend rule and not a holiday.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	return !c.IsHoliday(t)
}

// NextHoliday returns the first named holiday strictly after the given
// date, searching one year ahead. Plain weekend days are skipped.
func (c *Calendar) NextHoliday(t time.Time) (Holiday, bool) {
	d := dateFromTime(t)
	for range searchWindow {
		d = d.addDays(1)
		if h, ok := c.lookup(d); ok && h.Kind != KindWeekend {
			return h, true
		}
	}
	return Holiday{}, false
}

// PreviousHoliday returns the most recent named holiday strictly before
// the given date, searching one year back.
func (c *Calendar) PreviousHoliday(t time.Time) (Holiday, bool) {
	d := dateFromTime(t)
	for range searchWindow {
		d = d.addDays(-1)
		if h, ok := c.lookup(d); ok && h.Kind != KindWeekend {
			return h, true
		}
	}
	return Holiday{}, false
}

// NextBusinessDay returns the next business day on or after the given date.
// If t itself is a business day, it returns t (normalized to midnight UTC).
// Returns the zero time if no business day is found within 366 days.
func (c *Calendar) NextBusinessDay(t time.Time) time.Time {
	return c.scanBusinessDay(dateFromTime(t), 1)
}

// PreviousBusinessDay returns the most recent business day on or before the given date.
// If t itself is a business day, it returns t (normalized to midnight UTC).
// Returns the zero time if no business day is found within 366 days.
func (c *Calendar) PreviousBusinessDay(t time.Time) time.Time {
	return c.scanBusinessDay(dateFromTime(t), -1)
}

func (c *Calendar) scanBusinessDay(d date, step int) time.Time {
	for range searchWindow {
		if _, ok := c.lookup(d); !ok {
			return d.toTime()
		}
		d = d.addDays(step)
	}
	return time.Time{}
}

// BusinessDaysBetween returns the count of business days in the range [from, to] inclusive.
// If from is after to, returns 0.
func (c *Calendar) BusinessDaysBetween(from, to time.Time) int {
	fromD := dateFromTime(from)
	toD := dateFromTime(to)
	if toD.before(fromD) {
		return 0
	}

	count := 0
	for d := fromD; !toD.before(d); d = d.addDays(1) {
		if _, ok := c.lookup(d); !ok {
			count++
		}
	}
	return count
}

// --- Package-level convenience functions ---

// IsBusinessDay reports whether the given date is a business day on the default calendar.
func IsBusinessDay(t time.Time) bool { return defaultCal.IsBusinessDay(t) }

// NextHoliday returns the next named holiday strictly after the given date.
func NextHoliday(t time.Time) (Holiday, bool) { return defaultCal.NextHoliday(t) }

// PreviousHoliday returns the most recent named holiday strictly before the given date.
func PreviousHoliday(t time.Time) (Holiday, bool) { return defaultCal.PreviousHoliday(t) }

// NextBusinessDay returns the next business day on or after the given date.
func NextBusinessDay(t time.Time) time.Time { return defaultCal.NextBusinessDay(t) }

// PreviousBusinessDay returns the most recent business day on or before the given date.
func PreviousBusinessDay(t time.Time) time.Time { return defaultCal.PreviousBusinessDay(t) }

// BusinessDaysBetween returns the count of business days in the range [from, to].
func BusinessDaysBetween(from, to time.Time) int { return defaultCal.BusinessDaysBetween(from, to) }
