package file

import (
	"context"
	"os"

	"github.com/bornholm/menud/internal/source"
	"github.com/bornholm/menud/pkg/menu"
	"github.com/pkg/errors"
)

// Source reads the menu document from local disk on every load so
// edits show up without a restart.
type Source struct {
	path string
}

// Load implements source.Source.
func (s *Source) Load(ctx context.Context) (*menu.Config, error) {
	file, err := os.OpenFile(s.path, os.O_RDONLY, os.ModePerm)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer file.Close()

	cfg, err := source.DecodeDocument(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode menu document '%s'", s.path)
	}

	return cfg, nil
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

var _ source.Source = &Source{}
