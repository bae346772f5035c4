package config

import (
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
			return err == nil
		})

		_ = v.RegisterValidation("yaml_path", func(fl validator.FieldLevel) bool {
			return isYAMLPath(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isYAMLPath performs syntactic validation of a content file path without filesystem access.
func isYAMLPath(path string) bool {
	if strings.TrimSpace(path) == "" || strings.Contains(path, "\x00") {
		return false
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
