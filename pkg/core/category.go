package core

import (
	"fmt"
	"strings"
)

// Category is the closed set of labels a note may carry.
// The zero value is CategoryMisc, the catch-all.
type Category int

const (
	CategoryMisc Category = iota
	CategoryWork
	CategoryHome
	CategoryHealth
	CategoryPeople
	CategoryDocuments
	CategoryFinance

	categoryCount
)

// categoryInfo maps each variant to its serialized label and its ASCII key.
// Labels are written to the store byte-for-byte and must never change.
var categoryInfo = [categoryCount]struct {
	label string
	key   string
}{
	CategoryMisc:      {"Разное", "misc"},
	CategoryWork:      {"Работа", "work"},
	CategoryHome:      {"Дом", "home"},
	CategoryHealth:    {"Здоровье и Спорт", "health"},
	CategoryPeople:    {"Люди", "people"},
	CategoryDocuments: {"Документы", "documents"},
	CategoryFinance:   {"Финансы", "finance"},
}

// displayOrder is the order categories are presented in.
var displayOrder = []Category{
	CategoryWork,
	CategoryHome,
	CategoryHealth,
	CategoryPeople,
	CategoryDocuments,
	CategoryFinance,
	CategoryMisc,
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(displayOrder))
	copy(out, displayOrder)
	return out
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	return c >= 0 && c < categoryCount
}

// Label returns the display and serialization label.
func (c Category) Label() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryInfo[c].label
}

// Key returns the stable ASCII identifier used by command line flags.
func (c Category) Key() string {
	if !c.Valid() {
		return ""
	}
	return categoryInfo[c].key
}

func (c Category) String() string {
	return c.Label()
}

// ParseCategory resolves an exact, case-sensitive label.
func ParseCategory(label string) (Category, error) {
	for i := range categoryInfo {
		if categoryInfo[i].label == label {
			return Category(i), nil
		}
	}
	return CategoryMisc, fmt.Errorf("%w: %q", ErrUnknownCategory, label)
}

// LookupCategory accepts either a label or a key (case-insensitive).
// It is meant for presentation layers; stored documents go through ParseCategory.
func LookupCategory(s string) (Category, error) {
	if c, err := ParseCategory(s); err == nil {
		return c, nil
	}
	needle := strings.TrimSpace(s)
	for i := range categoryInfo {
		if strings.EqualFold(categoryInfo[i].key, needle) || strings.EqualFold(categoryInfo[i].label, needle) {
			return Category(i), nil
		}
	}
	return CategoryMisc, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.Label()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
