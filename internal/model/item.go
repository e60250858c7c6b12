package model

import (
	"strings"

	"github.com/idilsaglam/packlist/internal/errors"
)

// Item is one entry on a packing list.
// Quantity is carried through storage but nothing changes it.
type Item struct {
	ID       string   `json:"id" yaml:"id" toml:"id"`
	Name     string   `json:"name" yaml:"name" toml:"name"`
	Category Category `json:"category" yaml:"category" toml:"category"`
	IsPacked bool     `json:"isPacked" yaml:"isPacked" toml:"isPacked"`
	Quantity int      `json:"quantity" yaml:"quantity" toml:"quantity"`
}

// NewItem builds an unpacked item with quantity 1.
func NewItem(id, name string, c Category) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, errors.New(errors.ErrInvalidInput, "item name cannot be empty")
	}
	if !c.Valid() {
		return Item{}, errors.Newf(errors.ErrInvalidInput, "unknown category %q", string(c))
	}
	return Item{ID: id, Name: name, Category: c, Quantity: 1}, nil
}

// Validate checks an item read back from storage.
func (it Item) Validate() error {
	switch {
	case it.ID == "":
		return errors.New(errors.ErrInvalidInput, "item has no id")
	case strings.TrimSpace(it.Name) == "":
		return errors.Newf(errors.ErrInvalidInput, "item %s has no name", it.ID)
	case !it.Category.Valid():
		return errors.Newf(errors.ErrInvalidInput, "item %s has unknown category %q", it.ID, string(it.Category))
	case it.Quantity < 1:
		return errors.Newf(errors.ErrInvalidInput, "item %s has quantity %d", it.ID, it.Quantity)
	}
	return nil
}

// Template is a named, ordered list of items.
type Template struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Items []Item `json:"items" yaml:"items" toml:"items"`
}
