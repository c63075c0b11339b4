package ui

import (
	"html/template"
	"io"

	"github.com/bornholm/menud/pkg/menu"
	"github.com/pkg/errors"
)

var templates *template.Template

func init() {
	tmpl, err := Templates(nil)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// NavbarTemplateData is the data consumed by the "navbar" template.
type NavbarTemplateData struct {
	menu.View
}

// TopbarTemplateData is the data consumed by the "topbar" layout
// wrapping the navbar fragment into the collapsible top bar.
type TopbarTemplateData struct {
	BasePath string
	Brand    string
	Navbar   NavbarTemplateData
}

// RenderNavbar resolves the menu against the session and writes the
// navigation bar fragment: one <ul class="nav"> with the left items
// and the optional Extras toggle, then one <ul class="nav pull-right">
// with the right items. Item names and paths are escaped by
// html/template.
func RenderNavbar(w io.Writer, path string, session menu.Session, cfg menu.Config, funcs ...menu.ResolveOptionFunc) error {
	view := menu.Resolve(path, session, cfg, funcs...)

	if err := templates.ExecuteTemplate(w, "navbar", NavbarTemplateData{View: view}); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
