package setup

import (
	"context"

	"github.com/bornholm/menud/internal/config"
	"github.com/bornholm/menud/internal/source"
	"github.com/pkg/errors"

	_ "github.com/bornholm/menud/internal/source/all"
)

var NewSourceFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (source.Source, error) {
	var options map[string]any
	if conf.Menu.Options != nil {
		options = conf.Menu.Options.Data
	}

	src, err := source.New(source.Type(conf.Menu.Type), options)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return src, nil
})
