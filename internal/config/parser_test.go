package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palettegen/internal/format"
	"github.com/alexisbeaulieu97/palettegen/internal/harmony"
	palerrors "github.com/alexisbeaulieu97/palettegen/pkg/errors"
)

func TestLoad(t *testing.T) {
	validYAML := `default_mode: triadic
default_format: rgb
language: fr
state_path: /tmp/palettegen/state.json
log:
  level: debug
clipboard:
  strategies: [osc52]
export:
  repo: ./tokens
  subdir: design
`

	invalidYAML := `default_mode: [1, 2]
language: en
`

	badMode := `default_mode: split
`

	fileWithoutPath := `clipboard:
  strategies: [file]
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, harmony.Triadic, cfg.Mode())
				require.Equal(t, format.RGB, cfg.Format())
				require.Equal(t, "fr", cfg.Language)
				require.Equal(t, "debug", cfg.Log.Level)
				require.True(t, cfg.Log.Human, "unset keys keep their defaults")
				require.Equal(t, []string{"osc52"}, cfg.Clipboard.Strategies)
				require.Equal(t, "./tokens", cfg.Export.Repo)
				require.Equal(t, "design", cfg.Export.Subdir)

				statePath, err := cfg.ResolveStatePath()
				require.NoError(t, err)
				require.Equal(t, "/tmp/palettegen/state.json", statePath)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *palerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 1, parseErr.Line)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
			},
		},
		{
			name:     "unknown mode returns validation error",
			contents: badMode,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *palerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "config.defaultmode", validationErr.Field)
				require.Contains(t, validationErr.Message, "'mode'")
			},
		},
		{
			name:     "file clipboard strategy requires a path",
			contents: fileWithoutPath,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *palerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "config.clipboard.file", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			cfg, err := Load(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, harmony.Complementary, cfg.Mode())
	require.Equal(t, format.Hex, cfg.Format())
	require.Equal(t, "en", cfg.Language)
	require.Equal(t, []string{"system", "osc52"}, cfg.Clipboard.Strategies)
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvMode, "monochromatic")
	t.Setenv(EnvFormat, " hsl ")
	t.Setenv(EnvLanguage, "de")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_mode: analogous\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, harmony.Monochromatic, cfg.Mode())
	require.Equal(t, format.HSL, cfg.Format())
	require.Equal(t, "de", cfg.Language)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))

	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("PALETTEGEN_TEST_DOTENV=tetradic\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("PALETTEGEN_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(envPath))
	require.Equal(t, "tetradic", os.Getenv("PALETTEGEN_TEST_DOTENV"))
}

func TestResolveStatePathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	cfg.StatePath = "~/palettes/state.json"
	path, err := cfg.ResolveStatePath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "palettes", "state.json"), path)

	cfg.StatePath = ""
	path, err = cfg.ResolveStatePath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".palettegen", "state.json"), path)
}

func TestValidateConfigRejectsNil(t *testing.T) {
	require.Error(t, ValidateConfig(nil))
}
