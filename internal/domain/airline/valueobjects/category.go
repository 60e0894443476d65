package valueobjects

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryPremium  Category = "Premium"
	CategoryMajor    Category = "Major"
	CategoryRegional Category = "Regional"
	CategoryLowCost  Category = "LowCost"
)

var validCategories = map[Category]bool{
	CategoryPremium:  true,
	CategoryMajor:    true,
	CategoryRegional: true,
	CategoryLowCost:  true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

// Categories lists the closed set in display order.
func Categories() []Category {
	return []Category{CategoryPremium, CategoryMajor, CategoryRegional, CategoryLowCost}
}

// NewCategory accepts any letter case and returns the canonical spelling.
func NewCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid airline category: %s", s)
}
