// Package config loads vardecl.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up from the working directory upwards.
const FileName = "vardecl.toml"

type Config struct {
	Output Output `toml:"output"`
	Batch  Batch  `toml:"batch"`
	Serve  Serve  `toml:"serve"`

	// Path is the file the config came from; empty for defaults.
	Path string `toml:"-"`
}

type Output struct {
	Format         string `toml:"format"`
	Color          string `toml:"color"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type Batch struct {
	Jobs  int    `toml:"jobs"`
	Cache bool   `toml:"cache"`
	Ext   string `toml:"ext"`
}

type Serve struct {
	Addr string `toml:"addr"`
}

var (
	formats = []string{"pretty", "json", "short", "msgpack"}
	colors  = []string{"auto", "on", "off"}
)

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Output: Output{Format: "pretty", Color: "auto", MaxDiagnostics: 100},
		Batch:  Batch{Ext: ".var"},
		Serve:  Serve{Addr: "127.0.0.1:8765"},
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Discover loads the explicit path when given, otherwise the nearest
// vardecl.toml above startDir, otherwise the defaults.
func Discover(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) Validate() error {
	if !slices.Contains(formats, c.Output.Format) {
		return fmt.Errorf("[output].format must be one of %s, got %q", strings.Join(formats, "|"), c.Output.Format)
	}
	if !slices.Contains(colors, c.Output.Color) {
		return fmt.Errorf("[output].color must be one of %s, got %q", strings.Join(colors, "|"), c.Output.Color)
	}
	if c.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("[output].max_diagnostics must be >= 0")
	}
	if c.Batch.Jobs < 0 {
		return fmt.Errorf("[batch].jobs must be >= 0")
	}
	if !strings.HasPrefix(c.Batch.Ext, ".") {
		return fmt.Errorf("[batch].ext must start with a dot, got %q", c.Batch.Ext)
	}
	if strings.TrimSpace(c.Serve.Addr) == "" {
		return fmt.Errorf("[serve].addr must not be empty")
	}
	return nil
}
