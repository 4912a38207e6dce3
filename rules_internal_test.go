package trholiday

import (
	"errors"
	"testing"
	"time"
)

func TestLunarAnchor_ProjectedStart(t *testing.T) {
	t.Parallel()

	ramazan := turkeyLunar[0]
	kurban := turkeyLunar[1]

	tests := []struct {
		name   string
		anchor LunarAnchor
		year   int
		want   date
	}{
		{"Ramazan anchor year", ramazan, 2024, date{2024, time.April, 10}},
		{"Ramazan one year on", ramazan, 2025, date{2025, time.March, 30}},
		{"Ramazan two years on", ramazan, 2026, date{2026, time.March, 20}},
		{"Ramazan one year back", ramazan, 2023, date{2023, time.April, 22}},
		{"Kurban anchor year", kurban, 2024, date{2024, time.June, 28}},
		{"Kurban one year on", kurban, 2025, date{2025, time.June, 17}},
		{"Kurban reaches late December", kurban, 2007, date{2007, time.December, 31}},
		{"Kurban 2008", kurban, 2008, date{2008, time.December, 19}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.anchor.projectedStart(tt.year); got != tt.want {
				t.Errorf("projectedStart(%d) = %v, want %v", tt.year, got, tt.want)
			}
		})
	}
}

func TestLunarAnchor_Occurrence(t *testing.T) {
	t.Parallel()

	got := turkeyLunar[1].occurrence(2007)
	want := []date{
		{2007, time.December, 31},
		{2008, time.January, 1},
		{2008, time.January, 2},
		{2008, time.January, 3},
	}
	if len(got) != len(want) {
		t.Fatalf("occurrence(2007) has %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("occurrence(2007)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLunarAnchor_CoversOnlyOwnYear(t *testing.T) {
	t.Parallel()

	kurban := turkeyLunar[1]
	if !kurban.covers(date{2007, time.December, 31}) {
		t.Error("2007-12-31 should be covered by the 2007 projection")
	}
	// 2008-01-02 is inside the 2007 span but is projected with 2008.
	if kurban.covers(date{2008, time.January, 2}) {
		t.Error("2008-01-02 should not be covered; spans are not carried across years")
	}
}

func TestRuleSet_RegionalLunarOnlyInTRNC(t *testing.T) {
	t.Parallel()

	mevlid := date{2024, time.September, 15}
	if _, ok := turkeyRules.lunarHoliday(mevlid); ok {
		t.Error("Mevlid Kandili should not be a Turkish lunar holiday")
	}
	a, ok := trncRules.lunarHoliday(mevlid)
	if !ok || a.Name != "Mevlid Kandili" {
		t.Errorf("trncRules.lunarHoliday(2024-09-15) = %v, %v", a, ok)
	}
}

func TestRuleSet_ExtendLeavesBaseUntouched(t *testing.T) {
	t.Parallel()

	if len(turkeyRules.fixed) != 7 || len(turkeyRules.lunar) != 2 {
		t.Errorf("turkeyRules = %d fixed, %d lunar; want 7, 2", len(turkeyRules.fixed), len(turkeyRules.lunar))
	}
	if len(trncRules.fixed) != 9 || len(trncRules.lunar) != 3 {
		t.Errorf("trncRules = %d fixed, %d lunar; want 9, 3", len(trncRules.fixed), len(trncRules.lunar))
	}
	if _, ok := turkeyRules.fixedHoliday(date{2024, time.August, 1}); ok {
		t.Error("1 August should only be a TRNC holiday")
	}
}

func TestParseRegion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Region
	}{
		{"turkey", RegionTurkey},
		{"TR", RegionTurkey},
		{"trnc", RegionTRNC},
		{" KKTC ", RegionTRNC},
	}
	for _, tt := range tests {
		got, err := ParseRegion(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseRegion(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseRegion("cyprus"); !errors.Is(err, ErrUnknownRegion) {
		t.Errorf("ParseRegion(cyprus) error = %v, want ErrUnknownRegion", err)
	}
}

func TestTablesAreCopies(t *testing.T) {
	t.Parallel()

	fixed := FixedHolidays(RegionTurkey)
	fixed[0].Name = "changed"
	if turkeyFixed[0].Name == "changed" {
		t.Error("FixedHolidays should return a copy")
	}
	if got := LunarAnchors(RegionTRNC); len(got) != 3 {
		t.Errorf("LunarAnchors(TRNC) has %d anchors, want 3", len(got))
	}
	if got := FixedHolidays(Region(42)); got != nil {
		t.Errorf("FixedHolidays(unknown) = %v, want nil", got)
	}
}
