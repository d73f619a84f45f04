package core

// Summary is the analytics breakdown derived from the full,
// unfiltered collection.
type Summary struct {
	// SpendByCategory sums price per category. Categories without
	// items are absent, not zero-valued.
	SpendByCategory map[Category]float64 `json:"spendByCategory"`

	// CountByStatus always carries all three statuses, zero when
	// no item has that status.
	CountByStatus map[Status]int `json:"countByStatus"`

	TotalPlanned float64 `json:"totalPlanned"`
	TotalBought  float64 `json:"totalBought"`

	// StatusPercent is the rounded share of the item count per
	// status, for the status donut.
	StatusPercent map[Status]int `json:"statusPercent"`

	// CategoryShare scales each category's spend against the largest
	// one (0-100), for bar widths.
	CategoryShare map[Category]float64 `json:"categoryShare"`
}

// Aggregate derives category-spend and status breakdowns from items.
// Display ratios guard division by zero by flooring the denominator
// at 1, matching an empty dashboard rendering as all-zero.
func Aggregate(items []Item) Summary {
	s := Summary{
		SpendByCategory: make(map[Category]float64),
		CountByStatus: map[Status]int{
			StatusPlanned: 0,
			StatusBought:  0,
			StatusDropped: 0,
		},
		StatusPercent: make(map[Status]int),
		CategoryShare: make(map[Category]float64),
	}

	for _, it := range items {
		s.SpendByCategory[it.Category] += it.Price
		s.CountByStatus[it.Status]++
		switch it.Status {
		case StatusPlanned:
			s.TotalPlanned += it.Price
		case StatusBought:
			s.TotalBought += it.Price
		}
	}

	maxSpend := 1.0
	for _, v := range s.SpendByCategory {
		if v > maxSpend {
			maxSpend = v
		}
	}
	for c, v := range s.SpendByCategory {
		s.CategoryShare[c] = v / maxSpend * 100
	}

	total := len(items)
	if total == 0 {
		total = 1
	}
	for st, n := range s.CountByStatus {
		s.StatusPercent[st] = int(float64(n)/float64(total)*100 + 0.5)
	}

	return s
}
