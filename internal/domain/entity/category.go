// Package entity contains the core business entities of the domain layer.
package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrUnknownCategory is returned when a label does not name a Category.
var ErrUnknownCategory = errors.New("unknown category")

// Category is the shipping category a package is sorted into.
type Category string

const (
	CategoryStandard Category = "STANDARD" // Neither bulky nor heavy
	CategorySpecial  Category = "SPECIAL"  // Bulky or heavy, but not both
	CategoryRejected Category = "REJECTED" // Both bulky and heavy
)

// categories lists every valid Category.
var categories = []Category{CategoryStandard, CategorySpecial, CategoryRejected}

// Categories returns all valid categories in decision order.
//
// Returns:
//   - []Category: STANDARD, SPECIAL, REJECTED
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is one of the three known categories.
func (c Category) IsValid() bool {
	return lo.Contains(categories, c)
}

// ParseCategory converts a label into a Category.
// Matching ignores case and surrounding whitespace.
//
// Parameters:
//   - label: the category label (e.g., "special")
//
// Returns:
//   - Category: the matching category
//   - error: ErrUnknownCategory if the label names no category
func ParseCategory(label string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(label)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, label)
	}
	return c, nil
}

// categorize applies the decision table.
func categorize(bulky, heavy bool) Category {
	switch {
	case bulky && heavy:
		return CategoryRejected
	case bulky || heavy:
		return CategorySpecial
	default:
		return CategoryStandard
	}
}
