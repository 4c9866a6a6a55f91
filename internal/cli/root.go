// Package cli implements the ls-rocketry command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-rocketry/internal/config"
	"github.com/litescript/ls-rocketry/internal/logging"
	"github.com/litescript/ls-rocketry/internal/mission"
	"github.com/litescript/ls-rocketry/internal/report"
	"github.com/litescript/ls-rocketry/internal/staging"
	"github.com/litescript/ls-rocketry/internal/vehicles"
	"github.com/litescript/ls-rocketry/internal/version"
)

// ExitError carries a process exit code other than 1.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// app is the state shared by every command once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	jsonOutput bool
	noColor    bool

	cfg      config.Config
	catalog  *config.Catalog
	registry *vehicles.Registry
	log      *logging.Logger
}

// NewRootCommand builds the ls-rocketry command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "ls-rocketry",
		Short: "Rocket staging and delta-v calculator",
		Long: `ls-rocketry computes delta-v, acceleration and payload capacity for
multi-stage rockets built from a catalog of historical engines.

Configuration is read from $HOME/.ls-rocketry.yaml (or --config) and
LS_ROCKETRY_* environment variables. The file may define custom fuels,
engines and vehicles.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default $HOME/.ls-rocketry.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides log_level")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Output JSON instead of human-readable text")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newListCommand(a),
		newReportCommand(a),
		newPayloadCommand(a),
		newExportCommand(a),
		newEnginesCommand(a),
		newTUICommand(a),
	)
	return root
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	levelName := cfg.LogLevel
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	a.log = logging.New(level)
	a.log.SetOutput(stderr)
	if cfg.File != "" {
		a.log.Debug("using config %s", cfg.File)
	}

	a.catalog, err = config.NewCatalog(cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", cfg.File, err)
	}
	a.registry = vehicles.NewRegistry()
	if err := a.catalog.RegisterVehicles(a.registry, cfg.Vehicles); err != nil {
		return fmt.Errorf("config %s: %w", cfg.File, err)
	}
	return nil
}

// styles picks colored output only for terminals.
func (a *app) styles(w io.Writer) report.Styles {
	if a.noColor {
		return report.PlainStyles()
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return report.ColorStyles()
	}
	return report.PlainStyles()
}

func (a *app) payloadOptions() mission.PayloadOptions {
	return mission.PayloadOptions{
		Margin:  a.cfg.PayloadMargin,
		Workers: a.cfg.Workers,
		Logger:  a.log.With("payload"),
	}
}

// build looks up a vehicle and builds its rocket.
func (a *app) build(key string) (vehicles.Vehicle, *staging.Rocket, error) {
	v, err := a.registry.Get(key)
	if err != nil {
		return vehicles.Vehicle{}, nil, err
	}
	r, err := v.Build()
	if err != nil {
		return vehicles.Vehicle{}, nil, fmt.Errorf("build %s: %w", key, err)
	}
	return v, r, nil
}
