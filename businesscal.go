package trholiday

import (
	"time"

	cal "github.com/rickar/cal/v2"
)

// BusinessCalendar exports the calendar's rules as a rickar/cal business
// calendar, for callers whose scheduling code is already built on it.
//
// Fixed and lunar holidays become public observances, one per lunar day.
// Custom holidays become "other" observances; non-recurring ones are
// limited to their own year. The lunar-linked check on custom holidays
// has no rickar/cal equivalent and is not exported. Saturdays are
// workdays unless the calendar counts them as weekend.
//
// The returned calendar is a snapshot: custom holidays registered later
// are not reflected.
func (c *Calendar) BusinessCalendar() *cal.BusinessCalendar {
	bc := cal.NewBusinessCalendar()
	bc.SetWorkday(time.Saturday, !c.includeSaturday)
	bc.SetWorkday(time.Sunday, false)
	bc.AddHoliday(c.calHolidays()...)
	return bc
}

func (c *Calendar) calHolidays() []*cal.Holiday {
	var hs []*cal.Holiday
	for _, f := range c.rules.fixed {
		hs = append(hs, &cal.Holiday{
			Name:  f.Name,
			Type:  cal.ObservancePublic,
			Month: f.Month,
			Day:   f.Day,
			Func:  cal.CalcDayOfMonth,
		})
	}
	for _, a := range c.rules.lunar {
		for i := range a.Days {
			hs = append(hs, &cal.Holiday{
				Name: a.Name,
				Type: cal.ObservancePublic,
				Func: lunarDayFunc(a, i),
			})
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.custom {
		h := &cal.Holiday{
			Name:  customHolidayName,
			Type:  cal.ObservanceOther,
			Month: e.day.month,
			Day:   e.day.day,
			Func:  cal.CalcDayOfMonth,
		}
		if !e.recurring {
			h.StartYear = e.day.year
			h.EndYear = e.day.year
		}
		hs = append(hs, h)
	}
	return hs
}

// lunarDayFunc computes day i (zero-based) of the anchor's projected span.
func lunarDayFunc(a LunarAnchor, i int) cal.HolidayFn {
	return func(_ *cal.Holiday, year int) time.Time {
		return a.projectedStart(year).addDays(i).toTime()
	}
}
