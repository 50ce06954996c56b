// Package ui holds the markup helpers and small shared components the
// page components are written with.
package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer writes HTML fragments and remembers the first error.
// Every call after an error is a no-op.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s unescaped.
func (w *Writer) Raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Text writes s escaped for an HTML text node.
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped.
func (w *Writer) Attr(name, value string) {
	w.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// Component renders c in place.
func (w *Writer) Component(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

func (w *Writer) Err() error { return w.err }

// Text returns a component rendering s escaped.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
