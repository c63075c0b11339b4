package setup

import (
	"context"

	"github.com/bornholm/menud/internal/config"
	"github.com/bornholm/menud/internal/store"
	"github.com/pkg/errors"
)

var NewStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*store.Store, error) {
	store := store.NewStore(string(conf.Store.Path))

	if err := store.HealthCheck(ctx); err != nil {
		return nil, errors.WithStack(err)
	}

	return store, nil
})
