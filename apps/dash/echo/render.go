package echodash

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

type renderer struct {
	tmpl *template.Template
}

func newRenderer() *renderer {
	return &renderer{
		tmpl: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}
