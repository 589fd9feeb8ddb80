package config

import (
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/palettegen/internal/format"
	"github.com/alexisbeaulieu97/palettegen/internal/harmony"
)

// Config is the palettegen configuration document.
type Config struct {
	DefaultMode   string            `yaml:"default_mode,omitempty" validate:"omitempty,mode"`
	DefaultFormat string            `yaml:"default_format,omitempty" validate:"omitempty,code_format"`
	Language      string            `yaml:"language,omitempty" validate:"omitempty,lang"`
	StatePath     string            `yaml:"state_path,omitempty"`
	Log           LogSettings       `yaml:"log,omitempty"`
	Clipboard     ClipboardSettings `yaml:"clipboard,omitempty"`
	Export        ExportSettings    `yaml:"export,omitempty"`
}

// LogSettings controls diagnostic output.
type LogSettings struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Human bool   `yaml:"human,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// ClipboardSettings lists the copy strategies to try, in order.
type ClipboardSettings struct {
	Strategies []string `yaml:"strategies,omitempty" validate:"omitempty,max=3,unique,dive,oneof=system osc52 file"`
	File       string   `yaml:"file,omitempty" validate:"required_if_file_strategy"`
}

// ExportSettings configures the design-token repository target.
type ExportSettings struct {
	Repo     string `yaml:"repo,omitempty"`
	InitRepo bool   `yaml:"init_repo,omitempty"`
	Subdir   string `yaml:"subdir,omitempty" validate:"omitempty,local_path"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DefaultMode:   harmony.DefaultMode.String(),
		DefaultFormat: format.DefaultCodeFormat.String(),
		Language:      "en",
		Log:           LogSettings{Level: "warn", Human: true},
		Clipboard:     ClipboardSettings{Strategies: []string{"system", "osc52"}},
	}
}

// Mode returns the configured default harmony mode.
func (c *Config) Mode() harmony.Mode {
	m, err := harmony.ParseMode(c.DefaultMode)
	if err != nil {
		return harmony.DefaultMode
	}
	return m
}

// Format returns the configured default code format.
func (c *Config) Format() format.CodeFormat {
	f, err := format.ParseCodeFormat(c.DefaultFormat)
	if err != nil {
		return format.DefaultCodeFormat
	}
	return f
}

// ResolveStatePath returns the state file location, falling back to the
// per-user default.
func (c *Config) ResolveStatePath() (string, error) {
	if c.StatePath != "" {
		return expandHome(c.StatePath)
	}
	return DefaultStatePath()
}

// Dir returns the per-user palettegen directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".palettegen"), nil
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultStatePath returns the default saved-state location.
func DefaultStatePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !hasHomePrefix(path) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)
}
