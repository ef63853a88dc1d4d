package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"vardecl/internal/config"
)

// settings is the config file merged with explicitly set flags.
type settings struct {
	cfg     config.Config
	quiet   bool
	timings bool
	logger  *slog.Logger
}

// current is filled by the root PersistentPreRunE.
var current *settings

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.Discover(cfgPath, wd)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(flags, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Output.Color {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}

	s := &settings{cfg: cfg}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	levelName, err := flags.GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	if s.logger, err = newLogger(os.Stderr, levelName); err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		s.logger.Debug("config loaded", "path", cfg.Path)
	}
	return s, nil
}

// applyFlags overrides config values with flags the user actually set.
// Command-local flags share names with the keys they override.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) error {
	var err error
	set := func(name string, apply func() error) {
		if err == nil && flags.Lookup(name) != nil && flags.Changed(name) {
			err = apply()
		}
	}
	set("color", func() (e error) { cfg.Output.Color, e = flags.GetString("color"); return })
	set("max-diagnostics", func() (e error) { cfg.Output.MaxDiagnostics, e = flags.GetInt("max-diagnostics"); return })
	set("format", func() (e error) { cfg.Output.Format, e = flags.GetString("format"); return })
	set("jobs", func() (e error) { cfg.Batch.Jobs, e = flags.GetInt("jobs"); return })
	set("cache", func() (e error) { cfg.Batch.Cache, e = flags.GetBool("cache"); return })
	set("ext", func() (e error) { cfg.Batch.Ext, e = flags.GetString("ext"); return })
	set("addr", func() (e error) { cfg.Serve.Addr, e = flags.GetString("addr"); return })
	return err
}

func newLogger(w io.Writer, levelName string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", levelName, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// useColor resolves the color mode against the stream output goes to.
// In auto mode only a terminal gets color.
func (s *settings) useColor(w io.Writer) bool {
	switch s.cfg.Output.Color {
	case "on":
		return true
	case "off":
		return false
	default:
		f, ok := w.(*os.File)
		return ok && isTerminal(f)
	}
}
