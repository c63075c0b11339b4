package admin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/menud/internal/authn"
	"github.com/bornholm/menud/internal/session"
	"github.com/bornholm/menud/internal/store"
	"github.com/bornholm/menud/internal/ui"
	"github.com/bornholm/menud/pkg/log"
	"github.com/bornholm/menud/pkg/menu"
	"github.com/pkg/errors"
)

// serveIndex handles requests for the admin dashboard
func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	admin, ok := h.contextAdmin(w, r)
	if !ok {
		return
	}

	data := DashboardTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Dashboard - Admin",
		},
		Topbar:    h.topbar(ctx, admin),
		Prefix:    h.prefix,
		Username:  getUserDisplayName(admin),
		UserCount: 0,
		FlagCount: 0,
	}

	userCount, err := h.store.CountUsers(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not count users", log.Error(errors.WithStack(err)))
	} else {
		data.UserCount = int(userCount)
	}

	flagCount, err := h.store.CountFlags(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not count flags", log.Error(errors.WithStack(err)))
	} else {
		data.FlagCount = int(flagCount)
	}

	if err := templates.ExecuteTemplate(w, "dashboard", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}

// contextAdmin retrieves the authenticated admin from the request
// context, writing the error response itself when the visitor is not
// an administrator.
func (h *Handler) contextAdmin(w http.ResponseWriter, r *http.Request) (*store.User, bool) {
	authUser, err := authn.ContextUser(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return nil, false
	}

	storeUser, ok := authUser.(*store.User)
	if !ok || !storeUser.IsAdmin {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return nil, false
	}

	return storeUser, true
}

// topbar renders the same navigation the admin sees everywhere else.
func (h *Handler) topbar(ctx context.Context, admin *store.User) ui.TopbarTemplateData {
	data := ui.TopbarTemplateData{
		BasePath: h.basePath,
		Brand:    h.brand,
	}

	cfg, err := h.source.Load(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not load menu configuration", log.Error(errors.WithStack(err)))
		return data
	}

	view := menu.Resolve(h.basePath, session.FromUser(admin), *cfg, menu.WithRuleFunc(h.rules))
	data.Navbar = ui.NavbarTemplateData{View: view}

	return data
}

// Helper function to get user display name
func getUserDisplayName(user *store.User) string {
	if user.Nickname != "" {
		return user.Nickname
	}
	if user.Email != "" {
		return user.Email
	}
	return "Admin"
}
