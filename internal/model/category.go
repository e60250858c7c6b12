package model

import (
	"strings"

	"github.com/idilsaglam/packlist/internal/errors"
)

// Category tags an item.
type Category string

const (
	Valuables Category = "Valuables"
	Clothing  Category = "Clothing"
	Gadget    Category = "Gadget"
	Other     Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{Valuables, Clothing, Gadget, Other}

func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }

// ParseCategory accepts any casing ("clothing", "CLOTHING").
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown category %q (want one of %s)", s, categoryList())
}

// Next cycles through Categories.
func (c Category) Next() Category {
	for i, k := range Categories {
		if k == c {
			return Categories[(i+1)%len(Categories)]
		}
	}
	return Categories[0]
}

// Filter selects which items a session view shows: All, or one category.
type Filter string

const FilterAll Filter = "All"

// FilterBy narrows a view to one category.
func FilterBy(c Category) Filter { return Filter(c) }

// Match reports whether an item of category c passes the filter.
// The zero Filter behaves like FilterAll.
func (f Filter) Match(c Category) bool {
	return f == FilterAll || f == "" || Category(f) == c
}

func (f Filter) String() string {
	if f == "" {
		return string(FilterAll)
	}
	return string(f)
}

// ParseFilter accepts "all" or a category name, any casing.
func ParseFilter(s string) (Filter, error) {
	if strings.EqualFold(strings.TrimSpace(s), string(FilterAll)) {
		return FilterAll, nil
	}
	c, err := ParseCategory(s)
	if err != nil {
		return "", err
	}
	return FilterBy(c), nil
}

// Next cycles All -> Valuables -> ... -> Other -> All.
func (f Filter) Next() Filter {
	if f == FilterAll || f == "" {
		return FilterBy(Categories[0])
	}
	c := Category(f)
	if c == Categories[len(Categories)-1] {
		return FilterAll
	}
	return FilterBy(c.Next())
}

func categoryList() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
