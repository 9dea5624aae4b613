// Package view turns task records into the to-do page.
package view

import (
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/valyala/bytebufferpool"

	"github.com/THPTUHA/todoweb/pkg/todo"
)

// Lister is the data source of the to-do page.
type Lister interface {
	List(ctx context.Context) ([]todo.Task, error)
}

// Page is the data every page template receives.
type Page struct {
	Title string
	Lines []string
}

// Line is how a task is shown: "<id> - <task>".
func Line(t todo.Task) string {
	return fmt.Sprintf("%d - %s", t.ID, t.Task)
}

func Lines(tasks []todo.Task) []string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, Line(t))
	}
	return lines
}

// Load does the page's single fetch. Errors are returned as is; there is no
// retry and no fallback content.
func Load(ctx context.Context, l Lister) (*Page, error) {
	tasks, err := l.List(ctx)
	if err != nil {
		return nil, err
	}
	return &Page{Title: "To Dos", Lines: Lines(tasks)}, nil
}

// WriteLines prints one line per task, as `todoweb fetch` does.
func WriteLines(w io.Writer, tasks []todo.Task) error {
	for _, t := range tasks {
		if _, err := fmt.Fprintln(w, Line(t)); err != nil {
			return err
		}
	}
	return nil
}

// BaseURL picks the api root for a page render. Nothing from the incoming
// request is used: an empty configured value falls back to local.
func BaseURL(configured, local string) string {
	if configured != "" {
		return configured
	}
	return local
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer(tmpl *template.Template) *Renderer {
	return &Renderer{tmpl: tmpl}
}

// Render executes the named template into a pooled buffer and only copies it
// to w once the whole page rendered.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := r.tmpl.ExecuteTemplate(buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
