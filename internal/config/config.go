package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

const appDir = "packlist"

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	UI      UIConfig
}

type StorageConfig struct {
	Backend string
	Dir     string
	Key     string
}

type UIConfig struct {
	Theme string // classic | neon | mono
	Color string // auto | always | never
}

// Load reads defaults, then the config file if present, then PACKLIST_* env
// vars. path overrides the file location; empty means PACKLIST_CONFIG or
// $XDG_CONFIG_HOME/packlist/config.toml.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("storage.backend", BackendJSON)
	v.SetDefault("storage.dir", filepath.Join(xdg.DataHome, appDir))
	v.SetDefault("storage.key", "packing-templates")
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.color", "auto")

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("PACKLIST_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, appDir))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PACKLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing file is fine; a malformed one is not.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("storage.backend: unknown backend %q (want json or sqlite)", c.Storage.Backend)
	}
	if strings.TrimSpace(c.Storage.Dir) == "" {
		return fmt.Errorf("storage.dir: empty")
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return fmt.Errorf("storage.key: empty")
	}
	switch c.UI.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("ui.color: unknown mode %q (want auto, always or never)", c.UI.Color)
	}
	switch strings.ToLower(c.UI.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("ui.theme: unknown theme %q (want classic, neon or mono)", c.UI.Theme)
	}
	return nil
}

// SQLitePath is where the sqlite backend keeps its database.
func (c Config) SQLitePath() string {
	return filepath.Join(c.Storage.Dir, appDir+".sqlite")
}
