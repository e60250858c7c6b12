package templates

import (
	"github.com/google/uuid"

	"github.com/idilsaglam/packlist/internal/model"
)

type seedItem struct {
	name     string
	category model.Category
}

var defaultTemplates = []struct {
	name  string
	items []seedItem
}{
	{"Weekend Trip", []seedItem{
		{"Wallet", model.Valuables},
		{"T-shirts", model.Clothing},
		{"Phone charger", model.Gadget},
		{"Toothbrush", model.Other},
	}},
	{"Business Trip", []seedItem{
		{"Passport", model.Valuables},
		{"Suit", model.Clothing},
		{"Laptop", model.Gadget},
		{"Business cards", model.Other},
	}},
}

// DefaultSeed returns the sample templates used when nothing is stored.
// Item ids are name-derived so they stay stable between runs.
func DefaultSeed() []model.Template {
	out := make([]model.Template, 0, len(defaultTemplates))
	for _, dt := range defaultTemplates {
		t := model.Template{Name: dt.name, Items: make([]model.Item, 0, len(dt.items))}
		for _, it := range dt.items {
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("seed:"+dt.name+":"+it.name)).String()
			t.Items = append(t.Items, model.Item{ID: id, Name: it.name, Category: it.category, Quantity: 1})
		}
		out = append(out, t)
	}
	return out
}
