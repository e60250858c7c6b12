// Package templates is the durable source of truth for packing-list
// templates: an insertion-ordered name -> items mapping written in full to
// one storage key after every change.
package templates

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/packlist/internal/errors"
	"github.com/idilsaglam/packlist/internal/logging"
	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/store"
)

// DefaultKey is the storage key holding the serialized mapping.
const DefaultKey = "packing-templates"

type Store struct {
	storage store.Storage
	key     string
	log     zerolog.Logger

	names []string
	items map[string][]model.Item

	seeded bool
}

type options struct {
	key    string
	seed   []model.Template
	logger *zerolog.Logger
}

type Option func(*options)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(o *options) { o.key = key }
}

// WithSeed replaces the built-in sample templates. An empty slice
// makes a fresh store start empty.
func WithSeed(ts []model.Template) Option {
	return func(o *options) { o.seed = ts }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = &l }
}

// New loads the mapping from storage. A missing, unreadable or corrupt value
// falls back to the seed; startup never fails. The seed is not written until
// the first create or save.
func New(s store.Storage, opts ...Option) *Store {
	o := options{key: DefaultKey, seed: DefaultSeed()}
	for _, opt := range opts {
		opt(&o)
	}
	st := &Store{
		storage: s,
		key:     o.key,
		log:     logging.GetLogger("templates"),
		items:   make(map[string][]model.Item),
	}
	if o.logger != nil {
		st.log = *o.logger
	}

	ts, ok := st.load()
	if !ok {
		ts = o.seed
		st.seeded = true
	}
	for _, t := range ts {
		st.names = append(st.names, t.Name)
		st.items[t.Name] = model.Clone(t.Items)
	}
	st.log.Debug().Str("key", st.key).Int("templates", len(st.names)).Bool("seeded", st.seeded).Msg("Template store ready")
	return st
}

func (s *Store) load() ([]model.Template, bool) {
	raw, ok, err := s.storage.Read(s.key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("Reading templates failed, using defaults")
		return nil, false
	}
	if !ok {
		s.log.Info().Str("key", s.key).Msg("No stored templates, using defaults")
		return nil, false
	}
	ts, err := Unmarshal(raw)
	if err != nil {
		s.log.Info().Err(err).Str("key", s.key).Msg("Stored templates are corrupt, using defaults")
		return nil, false
	}
	return ts, true
}

// Seeded reports whether the store holds seed data not yet written to storage.
func (s *Store) Seeded() bool { return s.seeded }

// CreateTemplate adds an empty template. Empty and duplicate names are
// rejected without touching the mapping.
func (s *Store) CreateTemplate(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "template name cannot be empty")
	}
	if s.Has(name) {
		return errors.Newf(errors.ErrAlreadyExists, "template %q already exists", name).WithDetail("name", name)
	}

	s.names = append(s.names, name)
	s.items[name] = []model.Item{}
	if err := s.persist(); err != nil {
		s.names = s.names[:len(s.names)-1]
		delete(s.items, name)
		return err
	}
	s.log.Info().Str("template", name).Msg("Template created")
	return nil
}

// TemplateNames returns names in creation order.
func (s *Store) TemplateNames() []string {
	return slices.Clone(s.names)
}

func (s *Store) Has(name string) bool {
	_, ok := s.items[name]
	return ok
}

func (s *Store) Len() int { return len(s.names) }

// Template returns a copy of the stored items for name.
func (s *Store) Template(name string) ([]model.Item, error) {
	items, ok := s.items[name]
	if !ok {
		return nil, notFound(name)
	}
	return model.Clone(items), nil
}

// Templates returns a copy of the whole mapping in order.
func (s *Store) Templates() []model.Template {
	out := make([]model.Template, 0, len(s.names))
	for _, n := range s.names {
		out = append(out, model.Template{Name: n, Items: model.Clone(s.items[n])})
	}
	return out
}

// SaveTemplate replaces the items of an existing template with an unpacked
// copy of items. It never creates a template. Invalid items are rejected
// before anything changes so the stored mapping always decodes. A failed
// write leaves the previous items in place and returns a PERSISTENCE error.
func (s *Store) SaveTemplate(name string, items []model.Item) error {
	prev, ok := s.items[name]
	if !ok {
		return notFound(name)
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	s.items[name] = model.Normalized(items)
	if err := s.persist(); err != nil {
		s.items[name] = prev
		return err
	}
	s.log.Info().Str("template", name).Int("items", len(items)).Msg("Template saved")
	return nil
}

func (s *Store) persist() error {
	b, err := Marshal(s.Templates())
	if err != nil {
		return errors.Wrap(err, errors.ErrPersistence, "encode templates")
	}
	if err := s.storage.Write(s.key, b); err != nil {
		s.log.Error().Err(err).Str("key", s.key).Msg("Persisting templates failed")
		return errors.Wrapf(err, errors.ErrPersistence, "write %s", s.key)
	}
	s.seeded = false
	return nil
}

func notFound(name string) error {
	return errors.Newf(errors.ErrNotFound, "template %q not found", name).WithDetail("name", name)
}
