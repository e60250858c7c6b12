// Package session holds the working copy of the template being edited.
// Nothing here writes to the template store except Commit.
package session

import (
	"iter"

	"github.com/google/uuid"

	"github.com/idilsaglam/packlist/internal/errors"
	"github.com/idilsaglam/packlist/internal/model"
)

// TemplateStore is what a session needs from the durable store.
type TemplateStore interface {
	Template(name string) ([]model.Item, error)
	SaveTemplate(name string, items []model.Item) error
}

type Session struct {
	store TemplateStore
	newID func() string

	selected    string
	hasSelected bool
	items       []model.Item
	active      model.Category
	filter      model.Filter
	dirty       bool
}

type Option func(*Session)

// WithIDFunc replaces the uuid generator for new items.
func WithIDFunc(fn func() string) Option {
	return func(s *Session) { s.newID = fn }
}

// New starts with no template selected, an empty working list,
// active category Other and filter All.
func New(store TemplateStore, opts ...Option) *Session {
	s := &Session{
		store:  store,
		newID:  uuid.NewString,
		items:  []model.Item{},
		active: model.Other,
		filter: model.FilterAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectTemplate loads a fresh copy of name's items. Unsaved edits to the
// previous working list are dropped; check Dirty first to warn about them.
// On error the session is left as it was.
func (s *Session) SelectTemplate(name string) error {
	items, err := s.store.Template(name)
	if err != nil {
		return err
	}
	s.selected, s.hasSelected = name, true
	s.items = model.Clone(items)
	s.dirty = false
	return nil
}

// Selected returns the active template name, if any.
func (s *Session) Selected() (string, bool) {
	return s.selected, s.hasSelected
}

// AddItem appends a new unpacked item to the working list.
func (s *Session) AddItem(name string, c model.Category) (model.Item, error) {
	it, err := model.NewItem(s.newID(), name, c)
	if err != nil {
		return model.Item{}, err
	}
	s.items = model.WithAppended(s.items, it)
	s.dirty = true
	return it, nil
}

// AddActiveItem adds an item under the active category.
func (s *Session) AddActiveItem(name string) (model.Item, error) {
	return s.AddItem(name, s.active)
}

// ToggleItem flips the packed flag of id. Unknown ids are ignored.
func (s *Session) ToggleItem(id string) {
	if !model.Contains(s.items, id) {
		return
	}
	s.items = model.WithToggled(s.items, id)
	s.dirty = true
}

// DeleteItem removes id from the working list. Unknown ids are ignored.
func (s *Session) DeleteItem(id string) {
	if !model.Contains(s.items, id) {
		return
	}
	s.items = model.WithRemoved(s.items, id)
	s.dirty = true
}

func (s *Session) SetFilter(f model.Filter) {
	if f == "" {
		f = model.FilterAll
	}
	s.filter = f
}

func (s *Session) Filter() model.Filter { return s.filter }

// SetActiveCategory sets the category given to items added with AddActiveItem.
func (s *Session) SetActiveCategory(c model.Category) error {
	if !c.Valid() {
		return errors.Newf(errors.ErrInvalidInput, "unknown category %q", string(c))
	}
	s.active = c
	return nil
}

func (s *Session) ActiveCategory() model.Category { return s.active }

// FilteredItems yields the working items passing the current filter, in
// insertion order. The sequence reads the list as it was when called.
func (s *Session) FilteredItems() iter.Seq[model.Item] {
	return model.Filtered(s.items, s.filter)
}

// Items returns a copy of the whole working list.
func (s *Session) Items() []model.Item {
	return model.Clone(s.items)
}

// Dirty reports edits made since the last select or commit.
func (s *Session) Dirty() bool { return s.dirty }

// Commit saves the working list to the selected template. Saving resets
// packed flags, and the working list follows so it matches what was stored.
func (s *Session) Commit() error {
	if !s.hasSelected {
		return errors.New(errors.ErrNoActiveTemplate, "no template selected")
	}
	if err := s.store.SaveTemplate(s.selected, s.items); err != nil {
		return err
	}
	s.items = model.Normalized(s.items)
	s.dirty = false
	return nil
}
