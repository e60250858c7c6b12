package cli

import (
	"fmt"
	"io"

	"github.com/idilsaglam/packlist/internal/config"
	"github.com/idilsaglam/packlist/internal/logging"
	"github.com/idilsaglam/packlist/internal/session"
	"github.com/idilsaglam/packlist/internal/store"
	"github.com/idilsaglam/packlist/internal/store/jsonstore"
	"github.com/idilsaglam/packlist/internal/store/sqlitestore"
	"github.com/idilsaglam/packlist/internal/templates"
)

// App is what every subcommand works against.
type App struct {
	Config config.Config
	Store  *templates.Store

	closer io.Closer
}

// OpenApp opens the configured backend and loads the template store.
func OpenApp(cfg config.Config) (*App, error) {
	var (
		backend store.Storage
		closer  io.Closer
	)
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		db, err := sqlitestore.Open(cfg.SQLitePath())
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
		backend, closer = db, db
	default:
		backend = jsonstore.New(cfg.Storage.Dir)
	}

	lg := logging.GetLogger("cli")
	lg.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("dir", cfg.Storage.Dir).
		Msg("Storage opened")

	return &App{
		Config: cfg,
		Store:  templates.New(backend, templates.WithKey(cfg.Storage.Key)),
		closer: closer,
	}, nil
}

// Session starts an edit session, optionally selecting name.
func (a *App) Session(name string) (*session.Session, error) {
	s := session.New(a.Store)
	if name == "" {
		return s, nil
	}
	if err := s.SelectTemplate(name); err != nil {
		return nil, withSuggestion(err, name, a.Store.TemplateNames())
	}
	return s, nil
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
