// Package chirouter mounts a docsite.Site on a chi router.
package chirouter

import (
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/jackielii/docsite"
)

var _ docsite.Router = (*chiRouter)(nil)

type chiRouter struct {
	router chi.Router
}

// NewChiRouter adapts r to docsite.Router so Site.Mount can register on it.
func NewChiRouter(r chi.Router) *chiRouter {
	return &chiRouter{router: r}
}

// ServeMux style "{name...}" wildcards become chi's "*".
var restWildcard = regexp.MustCompile(`\{[^{}/]+\.\.\.\}$`)

func (r *chiRouter) HandleMethod(method, path string, handler http.Handler) {
	path = restWildcard.ReplaceAllString(path, "*")
	if method == "ALL" || method == "" {
		r.router.Handle(path, handler)
	} else {
		r.router.Method(method, path, handler)
	}
}

func (r *chiRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
