package oauth2

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/menud/internal/ui"
	"github.com/bornholm/menud/pkg/log"
	"github.com/pkg/errors"
)

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	data := struct {
		ui.HeadTemplateData
		Prefix    string
		Providers []Provider
	}{
		HeadTemplateData: ui.HeadTemplateData{
			PageTitle: "Log In",
		},
		Prefix:    h.prefix,
		Providers: h.providers,
	}

	if err := templates.ExecuteTemplate(w, "login", data); err != nil {
		slog.ErrorContext(r.Context(), "could not execute template", log.Error(errors.WithStack(err)))
	}
}
