package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/menud/internal/authn"
	"github.com/bornholm/menud/internal/authn/oauth2"
	"github.com/bornholm/menud/internal/config"
	"github.com/bornholm/menud/internal/store"
	"github.com/pkg/errors"
)

func NewOnAuthenticatedFromConfig(ctx context.Context, conf *config.Config) (authn.OnAuthenticatedFunc, error) {
	userStore, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return func(r *http.Request, user authn.User) (*http.Request, error) {
		ctx := r.Context()

		// Basic auth already resolved the store user
		if storeUser, ok := user.(*store.User); ok {
			if err := userStore.TouchUser(ctx, storeUser.ID); err != nil {
				return nil, errors.WithStack(err)
			}

			return r.WithContext(authn.WithContextUser(ctx, storeUser)), nil
		}

		storeUser, err := userStore.FindOrCreateUser(ctx, user.UserSubject(), user.UserProvider())
		if err != nil {
			return nil, errors.WithStack(err)
		}

		changed := false

		if oauth2User, ok := user.(*oauth2.User); ok {
			if storeUser.Email != oauth2User.Email {
				storeUser.Email = oauth2User.Email
				changed = true
			}

			if storeUser.Nickname != oauth2User.Nickname {
				storeUser.Nickname = oauth2User.Nickname
				changed = true
			}
		}

		isAdmin := false
		for _, u := range conf.Auth.Admins {
			if u.Email == "" {
				continue
			}

			if string(u.Email) != storeUser.Email || string(u.Provider) != storeUser.Provider {
				continue
			}

			isAdmin = true
			break
		}

		if storeUser.IsAdmin != isAdmin {
			storeUser.IsAdmin = isAdmin
			changed = true
		}

		if changed {
			if err := userStore.UpdateUserProfile(ctx, storeUser); err != nil {
				return nil, errors.WithStack(err)
			}
		}

		if err := userStore.TouchUser(ctx, storeUser.ID); err != nil {
			return nil, errors.WithStack(err)
		}

		ctx = authn.WithContextUser(ctx, storeUser)

		return r.WithContext(ctx), nil
	}, nil
}
