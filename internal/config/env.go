package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvMode     = "PALETTEGEN_MODE"
	EnvFormat   = "PALETTEGEN_FORMAT"
	EnvLanguage = "PALETTEGEN_LANG"
	EnvState    = "PALETTEGEN_STATE"
	EnvLogLevel = "PALETTEGEN_LOG_LEVEL"
)

// LoadDotEnv loads variables from a .env file into the process environment
// without overriding ones already set. A missing file is ignored.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	overrides := []struct {
		key    string
		target *string
	}{
		{EnvMode, &cfg.DefaultMode},
		{EnvFormat, &cfg.DefaultFormat},
		{EnvLanguage, &cfg.Language},
		{EnvState, &cfg.StatePath},
		{EnvLogLevel, &cfg.Log.Level},
	}

	for _, o := range overrides {
		if value, ok := lookup(o.key); ok && strings.TrimSpace(value) != "" {
			*o.target = strings.TrimSpace(value)
		}
	}
}
