package server

import (
	"embed"
	"html/template"
	"io"

	"app/internal/view"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer はhtml/templateをechoに繋ぐ。
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	t := template.Must(
		template.New("").
			Funcs(template.FuncMap{"formatPrice": view.FormatPrice}).
			ParseFS(templateFS, "templates/*.html"),
	)
	return &Renderer{templates: t}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
