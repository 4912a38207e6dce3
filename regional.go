package trholiday

import "time"

// Regional is a holiday calendar for a jurisdiction that extends the
// Turkish rules. It owns one engine built on the combined base and
// regional tables; weekend and custom holiday handling is the engine's.
type Regional struct {
	engine *Calendar
}

// NewTRNC creates a TRNC holiday calendar: the Turkish rules plus
// TMT Günü (1 August), the proclamation of the TRNC (15 November) and
// Mevlid Kandili.
func NewTRNC(includeSaturday bool) *Regional {
	return &Regional{engine: newCalendar(trncRules, includeSaturday)}
}

// NewRegional creates a calendar for any known region. RegionTurkey
// yields a wrapper over the plain Turkish rules.
func NewRegional(region Region, includeSaturday bool) (*Regional, error) {
	rules, err := rulesFor(region)
	if err != nil {
		return nil, err
	}
	return &Regional{engine: newCalendar(rules, includeSaturday)}, nil
}

// Calendar returns the underlying engine.
func (r *Regional) Calendar() *Calendar { return r.engine }

// Region returns the jurisdiction of the calendar.
func (r *Regional) Region() Region { return r.engine.Region() }

// IsHoliday reports whether t is a holiday under the base or regional rules.
func (r *Regional) IsHoliday(t time.Time) bool { return r.engine.IsHoliday(t) }

// Lookup returns the holiday covering t, see [Calendar.Lookup].
func (r *Regional) Lookup(t time.Time) (Holiday, bool) { return r.engine.Lookup(t) }

// HolidayName returns the holiday name for t, or "".
func (r *Regional) HolidayName(t time.Time) string { return r.engine.HolidayName(t) }

// AddCustomHoliday registers a custom holiday on the underlying engine.
func (r *Regional) AddCustomHoliday(t time.Time, recurring, lunarLinked bool) {
	r.engine.AddCustomHoliday(t, recurring, lunarLinked)
}

// CustomHolidays returns the registered custom holidays.
func (r *Regional) CustomHolidays() []CustomHoliday { return r.engine.CustomHolidays() }

// LunarOccurrences returns the projected base and regional lunar holidays for year.
func (r *Regional) LunarOccurrences(year int) []Holiday { return r.engine.LunarOccurrences(year) }

// HolidaysInYear returns the named holidays of the year, sorted by date.
func (r *Regional) HolidaysInYear(year int) []Holiday { return r.engine.HolidaysInYear(year) }

// HolidaysInMonth returns the named holidays of the month, sorted by date.
func (r *Regional) HolidaysInMonth(year int, month time.Month) []Holiday {
	return r.engine.HolidaysInMonth(year, month)
}

// HolidaysBetween returns the named holidays in [from, to], sorted by date.
func (r *Regional) HolidaysBetween(from, to time.Time) []Holiday {
	return r.engine.HolidaysBetween(from, to)
}

// IsBusinessDay reports whether t is neither a weekend day nor a holiday.
func (r *Regional) IsBusinessDay(t time.Time) bool { return r.engine.IsBusinessDay(t) }

// NextBusinessDay returns the next business day on or after t.
func (r *Regional) NextBusinessDay(t time.Time) time.Time { return r.engine.NextBusinessDay(t) }

// PreviousBusinessDay returns the most recent business day on or before t.
func (r *Regional) PreviousBusinessDay(t time.Time) time.Time {
	return r.engine.PreviousBusinessDay(t)
}

// BusinessDaysBetween counts the business days in [from, to].
func (r *Regional) BusinessDaysBetween(from, to time.Time) int {
	return r.engine.BusinessDaysBetween(from, to)
}
