// Package view renders the server-side pages.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "layout.html"

// Renderer implements echo.Renderer with one template set per page, each
// sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	layout, err := template.New(layoutFile).Funcs(funcMap()).ParseFS(templateFS, "templates/"+layoutFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse layout")
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := path.Base(file)
		if name == layoutFile {
			continue
		}

		page, err := layout.Clone()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to clone layout for %s", name)
		}
		if _, err := page.ParseFS(templateFS, file); err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", name)
		}

		pages[strings.TrimSuffix(name, ".html")] = page
	}

	return &Renderer{pages: pages}, nil
}

// Render executes the page into a buffer first so a template error never
// leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	page, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout", data); err != nil {
		return errors.Wrapf(err, "failed to render %s", name)
	}

	_, err := buf.WriteTo(w)

	return errors.WithStack(err)
}
