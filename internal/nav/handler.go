package nav

import (
	"net/http"

	"github.com/bornholm/menud/internal/source"
	"github.com/bornholm/menud/pkg/menu"
)

type Handler struct {
	basePath string
	brand    string
	source   source.Source
	rules    menu.RuleFunc
	mux      *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(basePath string, brand string, src source.Source, rules menu.RuleFunc) *Handler {
	handler := &Handler{
		basePath: basePath,
		brand:    brand,
		source:   src,
		rules:    rules,
		mux:      &http.ServeMux{},
	}

	// Register routes
	handler.mux.HandleFunc("GET /", handler.serveIndex)
	handler.mux.HandleFunc("GET /partial/navbar", handler.servePartialNavbar)

	return handler
}

var _ http.Handler = &Handler{}
