package model

import (
	"iter"
	"slices"
)

// List helpers never modify their input; they return a new slice.

// Clone returns an independent copy of items.
func Clone(items []Item) []Item {
	if items == nil {
		return []Item{}
	}
	return slices.Clone(items)
}

// WithToggled flips IsPacked on the item with the given id.
// An unknown id returns an unchanged copy.
func WithToggled(items []Item, id string) []Item {
	out := Clone(items)
	for i := range out {
		if out[i].ID == id {
			out[i].IsPacked = !out[i].IsPacked
			break
		}
	}
	return out
}

// WithRemoved drops the item with the given id.
// An unknown id returns an unchanged copy.
func WithRemoved(items []Item, id string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// WithAppended adds it at the end.
func WithAppended(items []Item, it Item) []Item {
	out := make([]Item, 0, len(items)+1)
	out = append(out, items...)
	return append(out, it)
}

// Normalized is a copy with every item unpacked: a saved template
// records contents, not packing progress.
func Normalized(items []Item) []Item {
	out := Clone(items)
	for i := range out {
		out[i].IsPacked = false
	}
	return out
}

// Contains reports whether an item with id exists.
func Contains(items []Item, id string) bool {
	return slices.ContainsFunc(items, func(it Item) bool { return it.ID == id })
}

// Filtered yields the items matching f, in order. The sequence can be
// ranged over any number of times.
func Filtered(items []Item, f Filter) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, it := range items {
			if !f.Match(it.Category) {
				continue
			}
			if !yield(it) {
				return
			}
		}
	}
}

// Stats counts packed and unpacked items.
func Stats(items []Item) (packed, pending int) {
	for _, it := range items {
		if it.IsPacked {
			packed++
		} else {
			pending++
		}
	}
	return
}
