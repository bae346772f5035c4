package config

// Config represents the folio configuration document. Every field is optional;
// missing values keep the defaults from Default.
type Config struct {
	Version     string      `yaml:"version,omitempty" toml:"version" validate:"omitempty,semver"`
	Theme       string      `yaml:"theme,omitempty" toml:"theme" validate:"omitempty,oneof=dark light"`
	Typography  Typography  `yaml:"typography,omitempty" toml:"typography"`
	Decorations Decorations `yaml:"decorations,omitempty" toml:"decorations"`
	Mouse       bool        `yaml:"mouse" toml:"mouse"`
	Content     string      `yaml:"content,omitempty" toml:"content" validate:"omitempty,yaml_path"`
	Logging     Logging     `yaml:"logging,omitempty" toml:"logging"`
}

// Typography selects the type scale.
type Typography struct {
	Scale string `yaml:"scale,omitempty" toml:"scale" validate:"omitempty,oneof=display compact"`
}

// Decorations tunes the background layer drawn after mount.
type Decorations struct {
	Enabled   bool `yaml:"enabled" toml:"enabled"`
	Particles int  `yaml:"particles" toml:"particles" validate:"min=0,max=200"`
	// CellWidth and CellHeight convert cells to px for pointer parallax.
	CellWidth  int `yaml:"cell_width" toml:"cell_width" validate:"min=1,max=64"`
	CellHeight int `yaml:"cell_height" toml:"cell_height" validate:"min=1,max=128"`
}

// Logging configures the log sink. The page owns the terminal, so logs are
// discarded unless a file is named.
type Logging struct {
	Level         string `yaml:"level,omitempty" toml:"level" validate:"omitempty,log_level"`
	File          string `yaml:"file,omitempty" toml:"file"`
	HumanReadable bool   `yaml:"human_readable,omitempty" toml:"human_readable"`
}

const (
	DefaultParticles  = 20
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Theme:      "dark",
		Typography: Typography{Scale: "display"},
		Decorations: Decorations{
			Enabled:    true,
			Particles:  DefaultParticles,
			CellWidth:  DefaultCellWidth,
			CellHeight: DefaultCellHeight,
		},
		Mouse:   true,
		Logging: Logging{Level: "info"},
	}
}
