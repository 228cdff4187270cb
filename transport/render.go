package transport

import (
	"embed"
	"html/template"
	"io"

	"github.com/pkg/errors"
)

const (
	viewIndex    = "index.gohtml"
	viewReport   = "report.gohtml"
	viewLogin    = "login.gohtml"
	viewRegister = "register.gohtml"
)

// Renderer turns a named view plus a payload into markup.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

//go:embed templates/*.gohtml
var templateFS embed.FS

type HTMLRenderer struct {
	templates *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return &HTMLRenderer{templates: t}, nil
}

func (r *HTMLRenderer) Render(w io.Writer, name string, data any) error {
	return errors.Wrapf(r.templates.ExecuteTemplate(w, name, data), "render %s", name)
}
