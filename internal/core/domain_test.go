package core

import (
	"math"
	"testing"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"Gadgets", CategoryGadgets, true},
		{"Others", CategoryOthers, true},
		{"gadgets", "", false}, // case sensitive
		{"Bogus", "", false},
		{"", "", false},
	}
	for i, tc := range cases {
		got, ok := ParseCategory(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("case %d: got (%q,%v), want (%q,%v)", i, got, ok, tc.want, tc.ok)
		}
	}
}

func TestEnumDefaults(t *testing.T) {
	if got := CategoryOrDefault("Bogus"); got != CategoryOthers {
		t.Fatalf("category default: got %q", got)
	}
	if got := PriorityOrDefault("Urgent"); got != PriorityMedium {
		t.Fatalf("priority default: got %q", got)
	}
	if got := StatusOrDefault(""); got != StatusPlanned {
		t.Fatalf("status default: got %q", got)
	}
	if got := CategoryOrDefault("Travel"); got != CategoryTravel {
		t.Fatalf("valid category coerced: got %q", got)
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() != 3 || PriorityMedium.Rank() != 2 || PriorityLow.Rank() != 1 {
		t.Fatalf("unexpected ranks: %d %d %d", PriorityHigh.Rank(), PriorityMedium.Rank(), PriorityLow.Rank())
	}
	if Priority("Bogus").Rank() != 0 {
		t.Fatalf("unknown priority should rank 0")
	}
}

func TestClampPrice(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{100, 100},
		{-5, 0},
		{PriceMax + 1, PriceMax},
		{math.NaN(), 0},
		{0, 0},
	}
	for i, tc := range cases {
		if got := ClampPrice(tc.in); got != tc.want {
			t.Fatalf("case %d: got %v, want %v", i, got, tc.want)
		}
	}
}

func TestItemValidate(t *testing.T) {
	good := Item{
		ID:        "x",
		Name:      "Headphones",
		Category:  CategoryGadgets,
		Price:     199,
		Priority:  PriorityHigh,
		Status:    StatusPlanned,
		CreatedAt: 1000,
		UpdatedAt: 1000,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Item{
		func() Item { it := good; it.Name = "  "; return it }(),
		func() Item { it := good; it.Category = "Misc"; return it }(),
		func() Item { it := good; it.Priority = "Urgent"; return it }(),
		func() Item { it := good; it.Status = "Wished"; return it }(),
		func() Item { it := good; it.Price = -1; return it }(),
		func() Item { it := good; it.UpdatedAt = 999; return it }(),
	}
	for i, it := range bads {
		if err := it.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
