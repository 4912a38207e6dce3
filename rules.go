package trholiday

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrUnknownRegion is returned by [ParseRegion] and [NewRegional] for a
// region tag outside the known set.
var ErrUnknownRegion = errors.New("trholiday: unknown region")

// Region identifies a jurisdiction whose holiday rules a calendar applies.
type Region int

const (
	// RegionTurkey is the base rule set.
	RegionTurkey Region = iota
	// RegionTRNC is the Turkish Republic of Northern Cyprus. It extends
	// RegionTurkey with its own fixed holidays and lunar anchors.
	RegionTRNC
)

func (r Region) String() string {
	switch r {
	case RegionTurkey:
		return "turkey"
	case RegionTRNC:
		return "trnc"
	}
	return fmt.Sprintf("Region(%d)", int(r))
}

// ParseRegion maps "turkey"/"tr" and "trnc"/"kktc" (case-insensitive) to a Region.
func ParseRegion(s string) (Region, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "turkey", "tr":
		return RegionTurkey, nil
	case "trnc", "kktc":
		return RegionTRNC, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, s)
}

// FixedHoliday recurs every year on the same month and day, whatever the weekday.
type FixedHoliday struct {
	Month time.Month
	Day   int
	Name  string
}

func (f FixedHoliday) matches(d date) bool {
	return d.month == f.Month && d.day == f.Day
}

// LunarAnchor is one observed occurrence of a lunar-calendar holiday in
// [LunarBaseYear], lasting Days consecutive days starting at Date.
type LunarAnchor struct {
	Name string
	Date time.Time
	Days int
}

const (
	// LunarBaseYear is the year every anchor's Date was observed in.
	LunarBaseYear = 2024

	// LunarYearDays is the mean length of a Hijri year in solar days.
	// Projection is linear in this constant; the drift it accumulates
	// over decades is accepted behavior.
	LunarYearDays = 354.36667
)

// projectedStart returns the first day of the anchor's occurrence in year.
// Each year is projected on its own: a span starting in late December
// is not carried over into the following year's lookup.
func (a LunarAnchor) projectedStart(year int) date {
	offset := int(math.Round(float64(year-LunarBaseYear) * LunarYearDays))
	return dateFromTime(a.Date).addDays(offset)
}

// occurrence returns the anchor's Days consecutive dates projected into year.
func (a LunarAnchor) occurrence(year int) []date {
	start := a.projectedStart(year)
	days := make([]date, a.Days)
	for i := range a.Days {
		days[i] = start.addDays(i)
	}
	return days
}

// covers reports whether d falls within the anchor's projection for d's own year.
func (a LunarAnchor) covers(d date) bool {
	start := a.projectedStart(d.year)
	end := start.addDays(a.Days - 1)
	return d.inRange(start, end)
}

// ruleSet is the compiled-in table a calendar consults. Instances are
// built once at package init and shared read-only by every calendar.
type ruleSet struct {
	region Region
	fixed  []FixedHoliday
	lunar  []LunarAnchor
}

// extend returns a new rule set holding rs's rules followed by the extras.
// rs itself is left untouched.
func (rs *ruleSet) extend(region Region, fixed []FixedHoliday, lunar []LunarAnchor) *ruleSet {
	out := &ruleSet{
		region: region,
		fixed:  make([]FixedHoliday, 0, len(rs.fixed)+len(fixed)),
		lunar:  make([]LunarAnchor, 0, len(rs.lunar)+len(lunar)),
	}
	out.fixed = append(append(out.fixed, rs.fixed...), fixed...)
	out.lunar = append(append(out.lunar, rs.lunar...), lunar...)
	return out
}

func (rs *ruleSet) fixedHoliday(d date) (FixedHoliday, bool) {
	for _, f := range rs.fixed {
		if f.matches(d) {
			return f, true
		}
	}
	return FixedHoliday{}, false
}

func (rs *ruleSet) lunarHoliday(d date) (LunarAnchor, bool) {
	for _, a := range rs.lunar {
		if a.covers(d) {
			return a, true
		}
	}
	return LunarAnchor{}, false
}

func anchor(name string, year int, month time.Month, day, days int) LunarAnchor {
	return LunarAnchor{Name: name, Date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Days: days}
}

var (
	turkeyFixed = []FixedHoliday{
		{time.January, 1, "Yılbaşı"},
		{time.April, 23, "Ulusal Egemenlik ve Çocuk Bayramı"},
		{time.May, 1, "Emek ve Dayanışma Günü"},
		{time.May, 19, "Atatürk'ü Anma, Gençlik ve Spor Bayramı"},
		{time.July, 20, "Barış ve Özgürlük Bayramı"},
		{time.August, 30, "Zafer Bayramı"},
		{time.October, 29, "Cumhuriyet Bayramı"},
	}

	turkeyLunar = []LunarAnchor{
		anchor("Ramazan Bayramı", 2024, time.April, 10, 3),
		anchor("Kurban Bayramı", 2024, time.June, 28, 4),
	}

	trncFixed = []FixedHoliday{
		{time.August, 1, "TMT Günü"},
		{time.November, 15, "KKTC'nin İlanı"},
	}

	trncLunar = []LunarAnchor{
		anchor("Mevlid Kandili", 2024, time.September, 15, 1),
	}
)

var (
	turkeyRules = &ruleSet{region: RegionTurkey, fixed: turkeyFixed, lunar: turkeyLunar}
	trncRules   = turkeyRules.extend(RegionTRNC, trncFixed, trncLunar)
)

// rulesFor returns the shared rule set of a region.
func rulesFor(r Region) (*ruleSet, error) {
	switch r {
	case RegionTurkey:
		return turkeyRules, nil
	case RegionTRNC:
		return trncRules, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownRegion, r)
}

// FixedHolidays returns a copy of the region's fixed holiday table,
// base rules first.
func FixedHolidays(r Region) []FixedHoliday {
	rs, err := rulesFor(r)
	if err != nil {
		return nil
	}
	return append([]FixedHoliday(nil), rs.fixed...)
}

// LunarAnchors returns a copy of the region's lunar anchor table,
// base anchors first.
func LunarAnchors(r Region) []LunarAnchor {
	rs, err := rulesFor(r)
	if err != nil {
		return nil
	}
	return append([]LunarAnchor(nil), rs.lunar...)
}
