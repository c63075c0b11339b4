package source

import (
	"io"

	"github.com/bornholm/menud/pkg/menu"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// DecodeDocument parses a YAML menu document into a menu configuration.
// The document carries the three item lists directly:
//
//	left:
//	  - name: Dashboard
//	    path: dashboard
//	right:
//	  - name: My Account
//	    path: user/view
//	    session: write
//	dropdown:
//	  - name: API Help
//	    path: api
//	    session: read
func DecodeDocument(r io.Reader) (*menu.Config, error) {
	var cfg menu.Config

	decoder := yaml.NewDecoder(r)

	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &menu.Config{}, nil
		}

		return nil, errors.WithStack(err)
	}

	return &cfg, nil
}
