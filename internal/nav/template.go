package nav

import (
	"embed"
	"html/template"

	"github.com/bornholm/menud/internal/ui"
	"github.com/pkg/errors"
)

//go:embed templates/**
var templateFs embed.FS

var templates *template.Template

func init() {
	tmpl, err := ui.Templates(nil, templateFs)
	if err != nil {
		panic(errors.WithStack(err))
	}

	templates = tmpl
}

// IndexTemplateData is the data needed to render the landing page.
type IndexTemplateData struct {
	ui.HeadTemplateData
	Topbar   ui.TopbarTemplateData
	Username string
}
