package setup

import (
	"context"
	"sync"

	"github.com/bornholm/menud/internal/config"
	"github.com/pkg/errors"
)

type FromConfigFunc[T any] func(ctx context.Context, conf *config.Config) (T, error)

// createFromConfigOnce memoizes a constructor so every component built
// from the same configuration shares one instance.
func createFromConfigOnce[T any](fn FromConfigFunc[T]) FromConfigFunc[T] {
	var (
		once  sync.Once
		value T
		err   error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			value, err = fn(ctx, conf)
		})

		if err != nil {
			return value, errors.WithStack(err)
		}

		return value, nil
	}
}
