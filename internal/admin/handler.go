package admin

import (
	"fmt"
	"net/http"

	"github.com/bornholm/menud/internal/source"
	"github.com/bornholm/menud/internal/store"
	"github.com/bornholm/menud/pkg/menu"
)

type Handler struct {
	prefix   string
	basePath string
	brand    string
	store    *store.Store
	source   source.Source
	rules    menu.RuleFunc
	mux      *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(prefix string, basePath string, brand string, store *store.Store, src source.Source, rules menu.RuleFunc) *Handler {
	handler := &Handler{
		prefix:   prefix,
		basePath: basePath,
		brand:    brand,
		store:    store,
		source:   src,
		rules:    rules,
		mux:      &http.ServeMux{},
	}

	// Register routes
	handler.mux.HandleFunc(fmt.Sprintf("GET %s/", prefix), handler.serveIndex)
	handler.mux.HandleFunc(fmt.Sprintf("GET %s/users", prefix), handler.serveUsers)

	// User management routes
	handler.mux.HandleFunc(fmt.Sprintf("POST %s/users/{id}/access", prefix), handler.serveUpdateAccess)
	handler.mux.HandleFunc(fmt.Sprintf("POST %s/users/{id}/flags", prefix), handler.serveSetFlag)
	handler.mux.HandleFunc(fmt.Sprintf("POST %s/users/{id}/flags/delete", prefix), handler.serveDeleteFlag)
	handler.mux.HandleFunc(fmt.Sprintf("POST %s/users/{id}/credentials", prefix), handler.serveRegenerateCredentials)
	handler.mux.HandleFunc(fmt.Sprintf("POST %s/users/{id}/delete", prefix), handler.serveDeleteUser)

	return handler
}

var _ http.Handler = &Handler{}
