package core

import (
	"errors"
	"strings"
)

// Field limits applied when drafts or imported rows enter the store.
const (
	NameMax     = 100
	NotesMax    = 500
	PlatformMax = 50
	URLMax      = 2048

	PriceMin float64 = 0
	PriceMax float64 = 10_000_000
)

type (
	Category string
	Priority string
	Status   string
	Platform string
)

const (
	CategoryGadgets  Category = "Gadgets"
	CategoryHome     Category = "Home"
	CategoryTravel   Category = "Travel"
	CategoryCourses  Category = "Courses"
	CategoryPersonal Category = "Personal"
	CategoryOthers   Category = "Others"

	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"

	StatusPlanned Status = "Planned"
	StatusBought  Status = "Bought"
	StatusDropped Status = "Dropped"

	PlatformAmazon   Platform = "Amazon"
	PlatformFlipkart Platform = "Flipkart"
	PlatformMyntra   Platform = "Myntra"
	PlatformAjio     Platform = "Ajio"
	PlatformOther    Platform = "Other"
)

var ErrEmptyName = errors.New("empty item name")

// Item is a single wishlist entry. Timestamps are epoch milliseconds.
type Item struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Price     float64  `json:"price"`
	Priority  Priority `json:"priority"`
	Status    Status   `json:"status"`
	Platform  string   `json:"platform,omitempty"`
	Notes     string   `json:"notes,omitempty"`
	Link      string   `json:"link,omitempty"`
	ImageURL  string   `json:"imageUrl,omitempty"`
	CreatedAt int64    `json:"createdAt"`
	UpdatedAt int64    `json:"updatedAt"`
}

// Draft is the create/update payload before sanitization and
// defaulting is applied. Enum fields are raw strings so unknown
// values can be coerced instead of rejected.
type Draft struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Priority string  `json:"priority"`
	Status   string  `json:"status"`
	Platform string  `json:"platform"`
	Notes    string  `json:"notes"`
	Link     string  `json:"link"`
	ImageURL string  `json:"imageUrl"`
}

// ParseCategory reports whether s names a defined category.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryGadgets, CategoryHome, CategoryTravel, CategoryCourses, CategoryPersonal, CategoryOthers:
		return Category(s), true
	}
	return "", false
}

// ParsePriority reports whether s names a defined priority.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s), true
	}
	return "", false
}

// ParseStatus reports whether s names a defined status.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPlanned, StatusBought, StatusDropped:
		return Status(s), true
	}
	return "", false
}

// CategoryOrDefault coerces unknown category names to Others.
func CategoryOrDefault(s string) Category {
	if c, ok := ParseCategory(s); ok {
		return c
	}
	return CategoryOthers
}

// PriorityOrDefault coerces unknown priority names to Medium.
func PriorityOrDefault(s string) Priority {
	if p, ok := ParsePriority(s); ok {
		return p
	}
	return PriorityMedium
}

// StatusOrDefault coerces unknown status names to Planned.
func StatusOrDefault(s string) Status {
	if st, ok := ParseStatus(s); ok {
		return st
	}
	return StatusPlanned
}

// Rank orders priorities by severity for sorting: High=3, Medium=2, Low=1.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// ClampPrice forces a price into [PriceMin, PriceMax]. NaN becomes 0.
func ClampPrice(p float64) float64 {
	if p != p { // NaN
		return 0
	}
	if p < PriceMin {
		return PriceMin
	}
	if p > PriceMax {
		return PriceMax
	}
	return p
}

// Validate checks the invariants every stored item must satisfy.
func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}
	if len([]rune(i.Name)) > NameMax {
		return errors.New("name too long")
	}
	if _, ok := ParseCategory(string(i.Category)); !ok {
		return errors.New("unknown category")
	}
	if _, ok := ParsePriority(string(i.Priority)); !ok {
		return errors.New("unknown priority")
	}
	if _, ok := ParseStatus(string(i.Status)); !ok {
		return errors.New("unknown status")
	}
	if i.Price != ClampPrice(i.Price) {
		return errors.New("price out of range")
	}
	if i.CreatedAt > i.UpdatedAt {
		return errors.New("createdAt after updatedAt")
	}
	return nil
}
