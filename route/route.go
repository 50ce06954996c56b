// Package route exposes the current request location to components and
// answers route-prefix questions about it.
package route

import (
	"context"
	"path"
	"strings"

	"github.com/jackielii/ctxkey"
)

// Location is the part of the request a component may depend on.
// Path never carries the locale segment.
type Location struct {
	Path          string
	Locale        string
	DefaultLocale string
}

var locationCtx = ctxkey.New[Location]("route.location", Location{Path: "/"})

// WithLocation stores loc in ctx. The path is cleaned first.
func WithLocation(ctx context.Context, loc Location) context.Context {
	loc.Path = Clean(loc.Path)
	return locationCtx.WithValue(ctx, loc)
}

// FromContext returns the current location, or "/" when none was stored.
func FromContext(ctx context.Context) Location {
	return locationCtx.Value(ctx)
}

// RouteMatch is the result of a successful Match.
type RouteMatch struct {
	Path   string
	Params map[string]string
}

// Match reports whether the current location matches pattern.
// It returns nil when it doesn't.
func Match(ctx context.Context, pattern string) *RouteMatch {
	return MatchPath(FromContext(ctx).Path, pattern)
}

// MatchPath matches p against pattern. Patterns are made of literal
// segments, ":name" parameters and an optional trailing "*" or "*name"
// splat that consumes zero or more segments. Literal segments compare
// case-insensitively.
func MatchPath(p, pattern string) *RouteMatch {
	p = Clean(p)
	pSegs := segments(p)
	patSegs := segments(pattern)

	m := &RouteMatch{Path: p}
	for i, seg := range patSegs {
		if strings.HasPrefix(seg, "*") {
			if i != len(patSegs)-1 {
				return nil
			}
			name := strings.TrimPrefix(seg, "*")
			if name == "" {
				name = "*"
			}
			m.setParam(name, strings.Join(pSegs[min(i, len(pSegs)):], "/"))
			return m
		}
		if i >= len(pSegs) {
			return nil
		}
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			m.setParam(name, pSegs[i])
			continue
		}
		if !strings.EqualFold(seg, pSegs[i]) {
			return nil
		}
	}
	if len(pSegs) != len(patSegs) {
		return nil
	}
	return m
}

func (m *RouteMatch) setParam(name, value string) {
	if m.Params == nil {
		m.Params = make(map[string]string)
	}
	m.Params[name] = value
}

// Clean normalizes p into an absolute path without a trailing slash.
func Clean(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func segments(p string) []string {
	p = strings.Trim(Clean(p), "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
