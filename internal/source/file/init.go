package file

import (
	"github.com/bornholm/menud/internal/source"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

const Type source.Type = "file"

func init() {
	source.Register(Type, CreateSourceFromOptions)
}

type Options struct {
	Path string `mapstructure:"path"`
}

func CreateSourceFromOptions(options any) (source.Source, error) {
	opts := Options{}

	if err := mapstructure.Decode(options, &opts); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s' menu source options", Type)
	}

	if opts.Path == "" {
		return nil, errors.Errorf("'%s' menu source requires a path", Type)
	}

	return NewSource(opts.Path), nil
}
