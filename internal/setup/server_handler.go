package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/menud/internal/admin"
	"github.com/bornholm/menud/internal/authn"
	"github.com/bornholm/menud/internal/authn/basic"
	"github.com/bornholm/menud/internal/config"
	"github.com/bornholm/menud/internal/nav"
	"github.com/bornholm/menud/internal/pprof"
	"github.com/bornholm/menud/internal/ratelimit"
	"github.com/bornholm/menud/internal/visibility/expr"
	"github.com/pkg/errors"

	sloghttp "github.com/samber/slog-http"
)

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	slogMiddleware := sloghttp.New(slog.Default())

	src, err := NewSourceFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	store, err := NewStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	oauth2Handler, err := NewOAuth2HandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	mux.Handle("/auth/", slogMiddleware(oauth2Handler))

	onAuthenticated, err := NewOnAuthenticatedFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rules := expr.RuleFunc()
	basePath := string(conf.HTTP.BasePath)
	brand := string(conf.HTTP.Brand)

	navHandler := nav.NewHandler(basePath, brand, src, rules)

	rateLimiter := ratelimit.New(10, 20)
	rateLimiterMiddleware := rateLimiter.Middleware(func(r *http.Request) (string, error) {
		user, err := authn.ContextUser(r.Context())
		if err != nil {
			return "", errors.WithStack(err)
		}

		return user.UserProvider() + "-" + user.UserSubject(), nil
	})

	// Anonymous visitors still get the menu, with the synthetic
	// login entry in place of the session gated items.
	navAuth := authn.Chain(
		authn.WithAuthenticators(
			oauth2Handler.Authenticator(false),
			basic.NewAuthenticator(store),
		),
		authn.WithOnAuthenticated(onAuthenticated),
		authn.WithAnonymousHandler(slogMiddleware(navHandler)),
	)

	mux.Handle("/", navAuth(slogMiddleware(rateLimiterMiddleware(navHandler))))

	adminAuth := authn.Chain(
		authn.WithAuthenticators(
			oauth2Handler.Authenticator(true),
		),
		authn.WithOnAuthenticated(onAuthenticated),
	)

	adminHandler := admin.NewHandler("/admin", basePath, brand, store, src, rules)
	mux.Handle("/admin/", adminAuth(slogMiddleware(adminHandler)))

	mux.Handle("/debug/pprof/", adminAuth(pprof.NewHandler("/debug/pprof")))

	return mux, nil
}
