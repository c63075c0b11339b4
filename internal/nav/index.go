package nav

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

// serveIndex renders the full page around the navigation bar.
func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cfg, err := h.source.Load(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not load menu configuration", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	sess := h.contextSession(ctx)
	view := menu.Resolve(h.basePath, sess, *cfg, menu.WithRuleFunc(h.rules))

	data := IndexTemplateData{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: h.brand,
		},
		Topbar: ui.TopbarTemplateData{
			BasePath: h.basePath,
			Brand:    h.brand,
			Navbar:   ui.NavbarTemplateData{View: view},
		},
		Username: contextUsername(ctx),
	}

	if err := templates.ExecuteTemplate(w, "index", data); err != nil {
		slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)))
		return
	}
}

// servePartialNavbar serves just the navigation fragment for HTMX
// requests, so the menu can refresh without a full page load.
func (h *Handler) servePartialNavbar(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	ctx := r.Context()

	cfg, err := h.source.Load(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not load menu configuration", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	sess := h.contextSession(ctx)

	if err := ui.RenderNavbar(w, h.basePath, sess, *cfg, menu.WithRuleFunc(h.rules)); err != nil {
		slog.ErrorContext(ctx, "could not render navbar", log.Error(errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) contextSession(ctx context.Context) menu.Session {
	authUser, err := authn.ContextUser(ctx)
	if err != nil {
		return session.Anonymous()
	}

	storeUser, ok := authUser.(*store.User)
	if !ok {
		return session.Anonymous()
	}

	return session.FromUser(storeUser)
}

func contextUsername(ctx context.Context) string {
	authUser, err := authn.ContextUser(ctx)
	if err != nil {
		return ""
	}

	storeUser, ok := authUser.(*store.User)
	if !ok {
		return ""
	}

	if storeUser.Nickname != "" {
		return storeUser.Nickname
	}

	if storeUser.Email != "" {
		return storeUser.Email
	}

	return "User"
}
