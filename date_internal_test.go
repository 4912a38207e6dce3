package trholiday

import (
	"errors"
	"testing"
	"time"
)

func TestDateBefore_EqualDates(t *testing.T) {
	t.Parallel()

	d1 := date{year: 2024, month: time.April, day: 23}
	if d1.before(d1) {
		t.Error("equal dates: d.before(d) should be false")
	}
	if d1.after(d1) {
		t.Error("equal dates: d.after(d) should be false")
	}
}

func TestDateBefore_DifferentYear(t *testing.T) {
	t.Parallel()

	d1 := date{year: 2023, month: time.December, day: 31}
	d2 := date{year: 2024, month: time.January, day: 1}
	if !d1.before(d2) {
		t.Error("2023-12-31 should be before 2024-01-01")
	}
	if d2.before(d1) {
		t.Error("2024-01-01 should not be before 2023-12-31")
	}
}

func TestDateInRange_Boundaries(t *testing.T) {
	t.Parallel()

	from := date{year: 2024, month: time.April, day: 10}
	to := date{year: 2024, month: time.April, day: 12}

	if !from.inRange(from, to) {
		t.Error("from date should be in range (inclusive)")
	}
	if !to.inRange(from, to) {
		t.Error("to date should be in range (inclusive)")
	}
	if (date{year: 2024, month: time.April, day: 9}).inRange(from, to) {
		t.Error("day before from should not be in range")
	}
	if (date{year: 2024, month: time.April, day: 13}).inRange(from, to) {
		t.Error("day after to should not be in range")
	}
}

func TestDateAddDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from date
		n    int
		want date
	}{
		{date{2024, time.April, 10}, 0, date{2024, time.April, 10}},
		{date{2024, time.April, 10}, 2, date{2024, time.April, 12}},
		{date{2024, time.February, 28}, 1, date{2024, time.February, 29}},
		{date{2023, time.February, 28}, 1, date{2023, time.March, 1}},
		{date{2007, time.December, 31}, 3, date{2008, time.January, 3}},
		{date{2024, time.April, 10}, 354, date{2025, time.March, 30}},
		{date{2024, time.April, 10}, -354, date{2023, time.April, 22}},
	}
	for _, tt := range tests {
		if got := tt.from.addDays(tt.n); got != tt.want {
			t.Errorf("%v.addDays(%d) = %v, want %v", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestDateISOWeekday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    date
		want int
	}{
		{date{2024, time.April, 8}, 1},  // Monday
		{date{2024, time.April, 13}, 6}, // Saturday
		{date{2024, time.April, 14}, 7}, // Sunday
	}
	for _, tt := range tests {
		if got := tt.d.isoWeekday(); got != tt.want {
			t.Errorf("%v.isoWeekday() = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestDateFromTime_UsesOwnLocation(t *testing.T) {
	t.Parallel()

	istanbul := time.FixedZone("TRT", 3*60*60)
	late := time.Date(2024, time.April, 22, 23, 30, 0, 0, istanbul)
	if got, want := dateFromTime(late), (date{2024, time.April, 22}); got != want {
		t.Errorf("dateFromTime(%v) = %v, want %v", late, got, want)
	}
}

func TestNewDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		wantErr bool
	}{
		{"regular", 2024, time.April, 23, false},
		{"leap day", 2024, time.February, 29, false},
		{"leap day in common year", 2023, time.February, 29, true},
		{"month 13", 2024, 13, 1, true},
		{"month 0", 2024, 0, 1, true},
		{"day 0", 2024, time.May, 0, true},
		{"April 31", 2024, time.April, 31, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDate(tt.year, tt.month, tt.day)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("NewDate(%d, %d, %d) error = %v, want ErrInvalidDate", tt.year, tt.month, tt.day, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDate(%d, %d, %d) unexpected error: %v", tt.year, tt.month, tt.day, err)
			}
			if y, m, d := got.Date(); y != tt.year || m != tt.month || d != tt.day {
				t.Errorf("NewDate = %v", got)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := ParseDate("2024-04-23")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !got.Equal(time.Date(2024, time.April, 23, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDate = %v", got)
	}

	for _, s := range []string{"2024-13-01", "2023-02-29", "23/04/2024", ""} {
		if _, err := ParseDate(s); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", s, err)
		}
	}
}
