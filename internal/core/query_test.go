package core

import "testing"

func testItems() []Item {
	return []Item{
		{ID: "1", Name: "Laptop", Category: CategoryGadgets, Price: 10, Priority: PriorityLow, Status: StatusPlanned, CreatedAt: 300, UpdatedAt: 300},
		{ID: "2", Name: "Sofa", Category: CategoryHome, Price: 5, Priority: PriorityHigh, Status: StatusBought, CreatedAt: 200, UpdatedAt: 200},
		{ID: "3", Name: "Flight tickets", Category: CategoryTravel, Price: 20, Priority: PriorityMedium, Status: StatusPlanned, CreatedAt: 100, UpdatedAt: 100},
	}
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestDeriveViewNoFilters(t *testing.T) {
	got, stats := DeriveView(testItems(), "", Filters{Category: FilterAll, Priority: FilterAll, Status: FilterAll}, SortByCreatedAt)
	if len(got) != 3 {
		t.Fatalf("expected full collection, got %d items", len(got))
	}
	// newest first
	want := []string{"1", "2", "3"}
	for i, id := range ids(got) {
		if id != want[i] {
			t.Fatalf("order: got %v, want %v", ids(got), want)
		}
	}
	if stats.Count != 3 || stats.Total != 35 {
		t.Fatalf("stats: got %+v", stats)
	}
}

func TestDeriveViewSearch(t *testing.T) {
	got, _ := DeriveView(testItems(), "  FLIGHT ", Filters{}, SortByCreatedAt)
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("search: got %v", ids(got))
	}
	got, _ = DeriveView(testItems(), "nothing", Filters{}, SortByCreatedAt)
	if len(got) != 0 {
		t.Fatalf("search miss: got %v", ids(got))
	}
}

func TestDeriveViewCategoryFilter(t *testing.T) {
	got, stats := DeriveView(testItems(), "", Filters{Category: "Home"}, SortByCreatedAt)
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	for _, it := range got {
		if it.Category != CategoryHome {
			t.Fatalf("filtered item has category %q", it.Category)
		}
	}
	if stats.Total != 5 {
		t.Fatalf("stats total: got %v", stats.Total)
	}
}

func TestDeriveViewSortPrice(t *testing.T) {
	got, _ := DeriveView(testItems(), "", Filters{}, SortByPrice)
	want := []string{"3", "1", "2"} // 20, 10, 5
	for i, id := range ids(got) {
		if id != want[i] {
			t.Fatalf("price sort: got %v, want %v", ids(got), want)
		}
	}
}

func TestDeriveViewSortPriority(t *testing.T) {
	got, _ := DeriveView(testItems(), "", Filters{}, SortByPriority)
	want := []string{"2", "3", "1"} // High, Medium, Low
	for i, id := range ids(got) {
		if id != want[i] {
			t.Fatalf("priority sort: got %v, want %v", ids(got), want)
		}
	}
}

func TestDeriveViewCombined(t *testing.T) {
	got, stats := DeriveView(testItems(), "", Filters{Status: "Planned"}, SortByPrice)
	want := []string{"3", "1"}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	for i, id := range ids(got) {
		if id != want[i] {
			t.Fatalf("combined: got %v, want %v", ids(got), want)
		}
	}
	if stats.Count != 2 || stats.Total != 30 {
		t.Fatalf("stats: got %+v", stats)
	}
}

func TestDeriveViewDoesNotMutateInput(t *testing.T) {
	in := testItems()
	DeriveView(in, "", Filters{}, SortByPrice)
	if in[0].ID != "1" || in[1].ID != "2" || in[2].ID != "3" {
		t.Fatalf("input slice reordered: %v", ids(in))
	}
}
