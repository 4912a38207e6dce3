// Package trholiday decides whether a calendar date is a public holiday in
// Turkey or in the Turkish Republic of Northern Cyprus (TRNC).
//
// A date is a holiday when any of these rules holds:
//
//   - it is a Sunday, or a Saturday when the calendar counts Saturdays as weekend;
//   - its month and day match a fixed national holiday (e.g. 23 April);
//   - it falls inside a lunar holiday (Ramazan and Kurban Bayramı) projected
//     from a 2024 anchor with a fixed-length lunar year;
//   - it matches a custom holiday registered on the calendar.
//
// Lunar holidays are an approximation: the 2024 occurrence is shifted by
// round((year-2024) * 354.36667) days. Expect a day or so of drift away
// from 2024.
//
// All holiday tables are compiled into the package. Inputs are time.Time
// values; only their calendar date in their own location is used.
//
// Basic usage:
//
//	cal := trholiday.New(false)
//	cal.IsHoliday(time.Date(2024, 4, 23, 0, 0, 0, 0, time.UTC)) // true
//
// The TRNC calendar extends the Turkish one:
//
//	kktc := trholiday.NewTRNC(false)
//	kktc.IsHoliday(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)) // true
package trholiday

import (
	"sort"
	"sync"
	"time"
)

// Kind classifies which rule made a date a holiday.
type Kind int

const (
	KindFixed Kind = iota + 1
	KindLunar
	KindCustom
	KindWeekend
)

func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindLunar:
		return "lunar"
	case KindCustom:
		return "custom"
	case KindWeekend:
		return "weekend"
	}
	return "unknown"
}

const (
	customHolidayName = "Özel Tatil"
	weekendName       = "Hafta Sonu"
)

// Holiday represents a single holiday entry.
type Holiday struct {
	Date time.Time // The date of the holiday (midnight UTC).
	Name string    // The Turkish name of the holiday (e.g., "Zafer Bayramı").
	Kind Kind
}

// CustomHoliday is a caller-registered holiday.
type CustomHoliday struct {
	Date time.Time
	// Recurring holidays match the same month and day in every year.
	Recurring bool
	// LunarLinked makes the calendar also test Date itself against the
	// lunar holiday projection. Date is not re-projected into other years,
	// so once Date lands on a projected lunar holiday every query matches.
	LunarLinked bool
}

type customEntry struct {
	day         date
	recurring   bool
	lunarLinked bool
}

func (e customEntry) export() CustomHoliday {
	return CustomHoliday{Date: e.day.toTime(), Recurring: e.recurring, LunarLinked: e.lunarLinked}
}

// Calendar is the holiday rule engine for one region.
// Create one with [New]. All methods are safe for concurrent use.
type Calendar struct {
	includeSaturday bool
	rules           *ruleSet

	mu     sync.RWMutex
	custom []customEntry
}

// New creates a Turkish holiday calendar. When includeSaturday is true,
// Saturdays count as weekend days alongside Sundays.
func New(includeSaturday bool) *Calendar {
	return newCalendar(turkeyRules, includeSaturday)
}

func newCalendar(rules *ruleSet, includeSaturday bool) *Calendar {
	return &Calendar{includeSaturday: includeSaturday, rules: rules}
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = New(false)

// Region returns the jurisdiction whose tables the calendar consults.
func (c *Calendar) Region() Region { return c.rules.region }

// IncludesSaturday reports whether Saturdays count as weekend days.
func (c *Calendar) IncludesSaturday() bool { return c.includeSaturday }

// IsHoliday reports whether the given date is a weekend day, a fixed or
// lunar holiday, or a custom holiday. Time of day is ignored.
func (c *Calendar) IsHoliday(t time.Time) bool {
	d := dateFromTime(t)
	return c.isWeekend(d) || c.isFixedHoliday(d) || c.isLunarHoliday(d) || c.isCustomHoliday(d)
}

// Lookup returns the holiday covering the given date. Named holidays take
// precedence over weekends: fixed, then lunar, then custom, then weekend.
func (c *Calendar) Lookup(t time.Time) (Holiday, bool) {
	return c.lookup(dateFromTime(t))
}

// HolidayName returns the holiday name for the given date, or an empty
// string if it is not a holiday. Weekend days are named "Hafta Sonu".
func (c *Calendar) HolidayName(t time.Time) string {
	h, _ := c.Lookup(t)
	return h.Name
}

// AddCustomHoliday registers a custom holiday. Entries are never
// deduplicated or removed; registering the same date twice is harmless.
func (c *Calendar) AddCustomHoliday(t time.Time, recurring, lunarLinked bool) {
	e := customEntry{day: dateFromTime(t), recurring: recurring, lunarLinked: lunarLinked}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom = append(c.custom, e)
}

// CustomHolidays returns the registered custom holidays in insertion order.
func (c *Calendar) CustomHolidays() []CustomHoliday {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]CustomHoliday, len(c.custom))
	for i, e := range c.custom {
		out[i] = e.export()
	}
	return out
}

// LunarOccurrences returns every day of every projected lunar holiday
// for year, sorted by date. Spans that start in late December run into
// the next year and are still listed here.
func (c *Calendar) LunarOccurrences(year int) []Holiday {
	var result []Holiday
	for _, a := range c.rules.lunar {
		for _, d := range a.occurrence(year) {
			result = append(result, Holiday{Date: d.toTime(), Name: a.Name, Kind: KindLunar})
		}
	}
	sortHolidays(result)
	return result
}

// HolidaysInYear returns the named holidays (fixed, lunar and custom) of
// the given year, sorted by date. Plain weekend days are not listed.
func (c *Calendar) HolidaysInYear(year int) []Holiday {
	from := date{year: year, month: time.January, day: 1}
	to := date{year: year, month: time.December, day: 31}
	return c.holidaysInRange(from, to)
}

// HolidaysInMonth returns the named holidays of the given month, sorted by date.
func (c *Calendar) HolidaysInMonth(year int, month time.Month) []Holiday {
	from := date{year: year, month: month, day: 1}
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	to := date{year: year, month: month, day: lastDay}
	return c.holidaysInRange(from, to)
}

// HolidaysBetween returns the named holidays in the range [from, to]
// inclusive, sorted by date. If from is after to, returns nil.
func (c *Calendar) HolidaysBetween(from, to time.Time) []Holiday {
	fromD := dateFromTime(from)
	toD := dateFromTime(to)
	if toD.before(fromD) {
		return nil
	}
	return c.holidaysInRange(fromD, toD)
}

func (c *Calendar) holidaysInRange(from, to date) []Holiday {
	var result []Holiday
	for d := from; !to.before(d); d = d.addDays(1) {
		if h, ok := c.lookup(d); ok && h.Kind != KindWeekend {
			result = append(result, h)
		}
	}
	return result
}

func (c *Calendar) lookup(d date) (Holiday, bool) {
	if f, ok := c.rules.fixedHoliday(d); ok {
		return Holiday{Date: d.toTime(), Name: f.Name, Kind: KindFixed}, true
	}
	if a, ok := c.rules.lunarHoliday(d); ok {
		return Holiday{Date: d.toTime(), Name: a.Name, Kind: KindLunar}, true
	}
	if c.isCustomHoliday(d) {
		return Holiday{Date: d.toTime(), Name: customHolidayName, Kind: KindCustom}, true
	}
	if c.isWeekend(d) {
		return Holiday{Date: d.toTime(), Name: weekendName, Kind: KindWeekend}, true
	}
	return Holiday{}, false
}

func (c *Calendar) isWeekend(d date) bool {
	wd := d.isoWeekday()
	return wd == 7 || (c.includeSaturday && wd == 6)
}

func (c *Calendar) isFixedHoliday(d date) bool {
	_, ok := c.rules.fixedHoliday(d)
	return ok
}

func (c *Calendar) isLunarHoliday(d date) bool {
	_, ok := c.rules.lunarHoliday(d)
	return ok
}

func (c *Calendar) isCustomHoliday(d date) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.custom {
		if e.recurring {
			if d.sameMonthDay(e.day) {
				return true
			}
		} else if d == e.day {
			return true
		}
		// The stored date is checked as-is, independent of d.
		if e.lunarLinked && c.isLunarHoliday(e.day) {
			return true
		}
	}
	return false
}

func sortHolidays(hs []Holiday) {
	sort.SliceStable(hs, func(i, j int) bool {
		return hs[i].Date.Before(hs[j].Date)
	})
}

// --- Package-level convenience functions ---

// IsHoliday reports whether the given date is a holiday on the default
// Turkish calendar (Sunday-only weekend, no custom holidays).
func IsHoliday(t time.Time) bool { return defaultCal.IsHoliday(t) }

// HolidayName returns the holiday name for the given date, or "".
func HolidayName(t time.Time) string { return defaultCal.HolidayName(t) }

// HolidaysInYear returns the named holidays of the year, sorted by date.
func HolidaysInYear(year int) []Holiday { return defaultCal.HolidaysInYear(year) }
