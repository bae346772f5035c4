package content

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/folio/internal/config"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// Load returns the built-in portfolio when path is empty, otherwise the
// portfolio with the file at path laid over it.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		p := Default()
		return &p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, folioerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes an override document. Fields absent from data keep their
// defaults; lists present in data replace the default list.
func Parse(data []byte, path string) (*Portfolio, error) {
	p := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, folioerrors.NewParseError(path, config.ExtractLine(err), err)
		}
	}

	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks p against its schema tags.
func Validate(p *Portfolio) error {
	if p == nil {
		return folioerrors.NewValidationError("portfolio", "portfolio is nil", nil)
	}
	if err := config.GetValidator().Struct(p); err != nil {
		return config.ConvertValidationError(err)
	}
	return nil
}
