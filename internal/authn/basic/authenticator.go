package basic

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/menud/internal/authn"
	"github.com/bornholm/menud/pkg/log"
	"github.com/pkg/errors"
)

type UserProvider interface {
	Authenticate(ctx context.Context, username, password string) (authn.User, error)
}

func NewAuthenticator(userProvider UserProvider) authn.Authenticator {
	return authn.AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (authn.User, error) {
		ctx := r.Context()
		username, password, ok := r.BasicAuth()
		if !ok {
			return nil, nil
		}

		user, err := userProvider.Authenticate(ctx, username, password)
		if err != nil {
			if !errors.Is(err, authn.ErrUnauthenticated) {
				slog.ErrorContext(ctx, "could not authenticate user", log.Error(errors.WithStack(err)))
			}

			return nil, nil
		}

		return user, nil
	})
}
