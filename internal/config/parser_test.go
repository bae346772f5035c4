package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
theme: light
typography:
  scale: compact
decorations:
  enabled: true
  particles: 12
  cell_width: 8
  cell_height: 16
mouse: false
logging:
  level: debug
  file: /tmp/folio.log
`

	invalidYAML := `theme: [dark, light]
`

	badTheme := `theme: sepia
`

	badParticles := `decorations:
  particles: -1
`

	badLevel := `logging:
  level: chatty
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
				require.NotNil(t, cfg)
				require.Equal(t, "light", cfg.Theme)
				require.Equal(t, "compact", cfg.Typography.Scale)
				require.Equal(t, 12, cfg.Decorations.Particles)
				require.False(t, cfg.Mouse)
				require.Equal(t, "debug", cfg.Logging.Level)
				require.Equal(t, "/tmp/folio.log", cfg.Logging.File)
			},
		},
		{
			name:     "empty file keeps defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), *cfg)
			},
		},
		{
			name:     "partial file keeps the other defaults",
			contents: "theme: light\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "light", cfg.Theme)
				require.True(t, cfg.Mouse)
				require.Equal(t, DefaultParticles, cfg.Decorations.Particles)
				require.Equal(t, "display", cfg.Typography.Scale)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				require.Nil(t, cfg)
				var parseErr *folioerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unknown theme returns validation error",
			contents: badTheme,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *folioerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "config.theme", validationErr.Field)
				require.Contains(t, validationErr.Message, "oneof")
			},
		},
		{
			name:     "negative particle count is rejected",
			contents: badParticles,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *folioerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "config.decorations.particles", validationErr.Field)
			},
		},
		{
			name:     "log level must be known to zerolog",
			contents: badLevel,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *folioerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "log_level")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	var parseErr *folioerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)

	path := writeTempConfig(t, "theme: light\n")
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "light", cfg.Theme)
}

func TestDefaultValidates(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, ValidateConfig(&cfg))
	require.Error(t, ValidateConfig(nil))
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, ExtractLine(nil))
	require.Equal(t, 7, ExtractLine(errors.New("yaml: line 7: did not find expected key")))
	require.Equal(t, 0, ExtractLine(errors.New("no position")))
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseConfigTOML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "folio.toml")
	contents := `theme = "light"
mouse = false

[decorations]
enabled = true
particles = 8
cell_width = 8
cell_height = 16
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := ParseConfig(path)
	require.NoError(t, err)
	require.Equal(t, "light", cfg.Theme)
	require.False(t, cfg.Mouse)
	require.Equal(t, 8, cfg.Decorations.Particles)
	require.Equal(t, "display", cfg.Typography.Scale)
}

func TestParseConfigTOMLReportsLine(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("theme = \"dark\"\nmouse = = true\n"), "folio.toml")

	var parseErr *folioerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "folio.toml", parseErr.Path)
	require.Equal(t, 2, parseErr.Line)
}
