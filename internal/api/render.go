package api

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"xss-labs/internal/domain"
	"xss-labs/internal/service"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// These helpers are what make the labs vulnerable: they hand learner input
// to html/template as already-trusted content.
var funcs = template.FuncMap{
	"raw": func(s string) template.HTML {
		return template.HTML(s)
	},
	"rawjs": func(s string) template.JS {
		return template.JS(s)
	},
	"attrimg": func(s string) template.HTML {
		return template.HTML(fmt.Sprintf(
			`<img src="data:image/gif;base64,R0lGODlhAQABAAAAACw=" title="%s" alt="%s" width="120" height="120">`, s, s))
	},
}

// Renderer implements echo.Renderer over the embedded lab templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("labs").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// TemplateNames lista os templates que o servidor precisa: o dashboard e um por lab.
func TemplateNames(labs []*domain.Lab) []string {
	names := make([]string, 0, len(labs)+1)
	names = append(names, "dashboard")
	for _, l := range labs {
		names = append(names, l.Key)
	}
	return names
}

func (r *Renderer) Missing(names ...string) []string {
	var missing []string
	for _, n := range names {
		if r.templates.Lookup(n) == nil {
			missing = append(missing, n)
		}
	}
	return missing
}

// HealthCheck confere que cada página servida tem template definido.
func (r *Renderer) HealthCheck(names ...string) service.Check {
	return service.Check{
		Name: "templates",
		Run: func(context.Context) (string, error) {
			if missing := r.Missing(names...); len(missing) > 0 {
				return "", fmt.Errorf("sem template para %s", strings.Join(missing, ", "))
			}
			return fmt.Sprintf("ok (%d páginas)", len(names)), nil
		},
	}
}
