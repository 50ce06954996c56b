// Package content loads the markdown documentation pages served by the site.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"

	"github.com/jackielii/docsite/route"
)

//go:embed docs
var docs embed.FS

// Page is a rendered documentation page.
type Page struct {
	Path        string
	Title       string
	Description string
	// Hero asks the layout to show the hero section above the page.
	Hero bool
	// HTML is sanitized.
	HTML string
}

type frontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Hero        bool   `yaml:"hero"`
}

// Store holds every page, keyed by its cleaned URL path.
type Store struct {
	pages map[string]*Page
}

// Default loads the embedded pages.
func Default() (*Store, error) {
	sub, err := fs.Sub(docs, "docs")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Load renders every .md file in fsys. "a/index.md" is served at "/a",
// "a/b.md" at "/a/b".
func Load(fsys fs.FS) (*Store, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	s := &Store{pages: map[string]*Page{}}
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(name) != ".md" {
			return nil
		}
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		page, err := render(md, policy, raw)
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		page.Path = urlPath(name)
		if _, dup := s.pages[page.Path]; dup {
			return fmt.Errorf("render %s: duplicate page for %s", name, page.Path)
		}
		s.pages[page.Path] = page
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return s, nil
}

// Lookup returns the page served at p.
func (s *Store) Lookup(p string) (*Page, bool) {
	page, ok := s.pages[route.Clean(p)]
	return page, ok
}

// Paths lists every page path in order.
func (s *Store) Paths() []string {
	out := make([]string, 0, len(s.pages))
	for p := range s.pages {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func urlPath(name string) string {
	name = strings.TrimSuffix(name, ".md")
	if name == "index" {
		return "/"
	}
	name = strings.TrimSuffix(name, "/index")
	return route.Clean(name)
}

func render(md goldmark.Markdown, policy *bluemonday.Policy, raw []byte) (*Page, error) {
	fm, body, err := splitFrontMatter(raw)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return nil, err
	}
	title := fm.Title
	if title == "" {
		title = firstHeading(body)
	}
	return &Page{
		Title:       title,
		Description: fm.Description,
		Hero:        fm.Hero,
		HTML:        policy.Sanitize(buf.String()),
	}, nil
}

func splitFrontMatter(raw []byte) (frontMatter, []byte, error) {
	var fm frontMatter
	const delim = "---"
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	if !strings.HasPrefix(text, delim+"\n") {
		return fm, raw, nil
	}
	head, body, ok := strings.Cut(text[len(delim)+1:], "\n"+delim+"\n")
	if !ok {
		return fm, nil, fmt.Errorf("unterminated front matter")
	}
	if err := yaml.Unmarshal([]byte(head), &fm); err != nil {
		return fm, nil, fmt.Errorf("front matter: %w", err)
	}
	return fm, []byte(body), nil
}

func firstHeading(body []byte) string {
	for _, line := range strings.Split(string(body), "\n") {
		if h, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(h)
		}
	}
	return ""
}
