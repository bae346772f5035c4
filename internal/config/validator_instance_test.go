package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetValidator(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	assert.Same(t, v1, v2, "GetValidator should return the shared instance")
}

func TestCustomRules(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name  string
		value string
		tag   string
		valid bool
	}{
		{"semver major.minor", "1.0", "semver", true},
		{"semver full", "1.2.3-beta+sha", "semver", true},
		{"semver word", "beta", "semver", false},

		{"log level info", "info", "log_level", true},
		{"log level upper", "DEBUG", "log_level", true},
		{"log level unknown", "chatty", "log_level", false},

		{"yaml path", "content/portfolio.yaml", "yaml_path", true},
		{"yml path", "./me.YML", "yaml_path", true},
		{"json path", "portfolio.json", "yaml_path", false},
		{"blank path", "  ", "yaml_path", false},
		{"nul path", "a\x00.yaml", "yaml_path", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			assert.Equal(t, tt.valid, err == nil, "%q against %s", tt.value, tt.tag)
		})
	}
}
