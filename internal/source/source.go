package source

import (
	"context"
	"sort"

	"github.com/bornholm/menud/pkg/menu"
	"github.com/pkg/errors"
)

// Source loads a menu configuration from some backend.
type Source interface {
	Load(ctx context.Context) (*menu.Config, error)
}

type Type string

type Factory func(options any) (Source, error)

var registry = map[Type]Factory{}

func Register(sourceType Type, factory Factory) {
	registry[sourceType] = factory
}

func Registered() []Type {
	types := make([]Type, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool {
		return types[i] < types[j]
	})

	return types
}

func New(sourceType Type, options any) (Source, error) {
	factory, exists := registry[sourceType]
	if !exists {
		return nil, errors.Errorf("no menu source registered for type '%s'", sourceType)
	}

	source, err := factory(options)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return source, nil
}
