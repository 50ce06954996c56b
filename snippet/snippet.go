// Package snippet provides the decorative code listings shown next to the
// hero and renders them syntax-highlighted.
package snippet

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Snippet is an ordered list of source lines. Lines must not be modified
// after Code has been rendered once.
type Snippet struct {
	name     string
	language string
	style    string
	lines    []string

	once sync.Once
	html string
	err  error
}

func New(name, language string, lines ...string) *Snippet {
	return &Snippet{name: name, language: language, style: "dracula", lines: lines}
}

// WithStyle sets the chroma style used by Code.
func (s *Snippet) WithStyle(style string) *Snippet {
	s.style = style
	return s
}

func (s *Snippet) Name() string    { return s.name }
func (s *Snippet) Len() int        { return len(s.lines) }
func (s *Snippet) Lines() []string { return append([]string(nil), s.lines...) }

// Code renders the highlighted listing.
func (s *Snippet) Code() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s.once.Do(func() { s.html, s.err = s.highlight() })
		if s.err != nil {
			return s.err
		}
		_, err := io.WriteString(w, s.html)
		return err
	})
}

func (s *Snippet) highlight() (string, error) {
	lexer := lexers.Get(s.language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	style := styles.Get(s.style)
	if style == nil {
		style = styles.Fallback
	}
	formatter := chromahtml.New(
		chromahtml.WithClasses(false),
		chromahtml.WithLineNumbers(false),
		chromahtml.TabWidth(2),
	)
	it, err := lexer.Tokenise(nil, strings.Join(s.lines, "\n"))
	if err != nil {
		return "", fmt.Errorf("tokenise %s: %w", s.name, err)
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, it); err != nil {
		return "", fmt.Errorf("format %s: %w", s.name, err)
	}
	return buf.String(), nil
}

// LineNumbers returns "01", "02", ... up to n. It is empty for n <= 0.
func LineNumbers(n int) []string {
	out := make([]string, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		out = append(out, fmt.Sprintf("%02d", i))
	}
	return out
}

// Counter is the listing shown on the hero.
var Counter = New("Counter.jsx", "jsx",
	`import { createSignal } from "solid-js";`,
	``,
	`function Counter() {`,
	`  const [count, setCount] = createSignal(1);`,
	`  const increment = () => setCount(count() + 1);`,
	``,
	`  return (`,
	`    <button type="button" onClick={increment}>`,
	`      {count()}`,
	`    </button>`,
	`  );`,
	`}`,
)
