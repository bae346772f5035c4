package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk on top of the defaults,
// validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, folioerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes data, attributing errors to path. Files ending in .toml are
// read as TOML, everything else as YAML.
func Parse(data []byte, path string) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := decode(data, path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func decode(data []byte, path string, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			line := 0
			var parseErr toml.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Position.Line
			}
			return folioerrors.NewParseError(path, line, err)
		}
		return nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return folioerrors.NewParseError(path, ExtractLine(err), err)
	}
	return nil
}

// Load returns the defaults when path is empty and ParseConfig otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return &cfg, nil
	}
	return ParseConfig(path)
}

// ExtractLine pulls the line number out of a yaml.v3 error message.
func ExtractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
