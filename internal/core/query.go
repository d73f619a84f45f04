package core

import (
	"sort"
	"strings"
)

type SortField string

const (
	SortByPrice     SortField = "price"
	SortByPriority  SortField = "priority"
	SortByCreatedAt SortField = "createdAt"
)

// FilterAll is the wildcard value matching every category, priority
// or status.
const FilterAll = "All"

// Filters narrows the collection by exact enum match. Empty or
// FilterAll fields match everything.
type Filters struct {
	Category string
	Priority string
	Status   string
}

// ViewStats summarizes the derived view for display.
type ViewStats struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// DeriveView filters, sorts and aggregates the collection for
// display. Search is a case-insensitive substring match on the item
// name; empty search matches everything. Sorting is stable so
// equal-key items keep their stored relative order. The input slice
// is never modified.
func DeriveView(items []Item, search string, f Filters, sortBy SortField) ([]Item, ViewStats) {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if needle != "" && !strings.Contains(strings.ToLower(it.Name), needle) {
			continue
		}
		if !matchFilter(f.Category, string(it.Category)) {
			continue
		}
		if !matchFilter(f.Priority, string(it.Priority)) {
			continue
		}
		if !matchFilter(f.Status, string(it.Status)) {
			continue
		}
		out = append(out, it)
	}

	switch sortBy {
	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortByPriority:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Priority.Rank() > out[j].Priority.Rank() })
	default: // newest first
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	}

	stats := ViewStats{Count: len(out)}
	for _, it := range out {
		stats.Total += it.Price
	}
	return out, stats
}

func matchFilter(want, have string) bool {
	return want == "" || want == FilterAll || want == have
}
