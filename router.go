package docsite

import (
	"net/http"
)

// Router is where Site.Mount registers the health check and the catch-all
// page handler. Patterns use ServeMux syntax: the page route is
// "/{path...}", which other adapters translate to their own wildcard.
type Router interface {
	HandleMethod(method, path string, handler http.Handler)
}

type stdRouter struct {
	router *http.ServeMux
}

// NewRouter mounts on a ServeMux, http.DefaultServeMux when router is nil.
//
//	mux := http.NewServeMux()
//	site.Mount(docsite.NewRouter(mux))
//	http.ListenAndServe(":8080", mux)
func NewRouter(router *http.ServeMux) *stdRouter {
	if router == nil {
		router = http.DefaultServeMux
	}
	return &stdRouter{router: router}
}

// HandleMethod prefixes pattern with method unless it is methodAll or empty.
func (r *stdRouter) HandleMethod(method, pattern string, handler http.Handler) {
	if method != methodAll && method != "" {
		pattern = method + " " + pattern
	}
	r.router.Handle(pattern, handler)
}

func (r *stdRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

const methodAll = "ALL"
