package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/packlist/internal/config"
	"github.com/idilsaglam/packlist/internal/logging"
	"github.com/idilsaglam/packlist/internal/ui"
)

type rootFlags struct {
	verbosity  int
	configPath string
	backend    string
	dataDir    string
	theme      string
	noColor    bool
}

// NewRootCmd builds the packlist command tree. Each call is independent,
// which keeps tests isolated.
func NewRootCmd() *cobra.Command {
	var (
		f   rootFlags
		app *App
	)
	getApp := func() *App { return app }

	root := &cobra.Command{
		Use:   "packlist",
		Short: "Packing-list templates in your terminal",
		Long: `packlist keeps named packing-list templates. Open one, tick items off as
you pack, add or drop items, and save the template's contents for next time.
Saving records what to pack, never the packed state.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(f.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, f, &cfg)
			if err := cfg.Validate(); err != nil {
				return usageError{err}
			}

			ui.SetTheme(cfg.UI.Theme)
			ui.SetColorMode(cfg.UI.Color)

			app, err = OpenApp(cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.CountVarP(&f.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/packlist/config.toml)")
	pf.StringVar(&f.backend, "storage", "", "storage backend: json or sqlite")
	pf.StringVar(&f.dataDir, "data-dir", "", "directory holding stored templates")
	pf.StringVar(&f.theme, "theme", "", "color theme: classic, neon or mono")
	pf.BoolVar(&f.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newListCmd(getApp),
		newNewCmd(getApp),
		newShowCmd(getApp),
		newAddCmd(getApp),
		newRmCmd(getApp),
		newEditCmd(getApp),
		newExportCmd(getApp),
	)
	return root
}

// applyFlags lets explicit flags win over file and env settings.
func applyFlags(cmd *cobra.Command, f rootFlags, cfg *config.Config) {
	pf := cmd.Root().PersistentFlags()
	if pf.Changed("storage") {
		cfg.Storage.Backend = f.backend
	}
	if pf.Changed("data-dir") {
		cfg.Storage.Dir = f.dataDir
	}
	if pf.Changed("theme") {
		cfg.UI.Theme = f.theme
	}
	if f.noColor {
		cfg.UI.Color = "never"
	}
}

// args wraps a cobra validator so arity mistakes exit with code 2.
func args(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if err := v(cmd, a); err != nil {
			return usageError{err}
		}
		return nil
	}
}
