package docsite

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/jackielii/docsite/content"
	"github.com/jackielii/docsite/hero"
	"github.com/jackielii/docsite/i18n"
	"github.com/jackielii/docsite/pages"
	"github.com/jackielii/docsite/route"
	"github.com/jackielii/docsite/snippet"
)

type MiddlewareFunc = func(http.Handler) http.Handler

const (
	healthPattern = "/healthz"
	pagePattern   = "/{path...}"
)

type Site struct {
	bundle      *i18n.Bundle
	store       *content.Store
	listing     hero.Listing
	logger      *zap.Logger
	onError     func(http.ResponseWriter, *http.Request, error)
	middlewares []MiddlewareFunc
}

func New(bundle *i18n.Bundle, store *content.Store, options ...func(*Site)) *Site {
	s := &Site{
		bundle:  bundle,
		store:   store,
		listing: snippet.Counter,
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.onError == nil {
		s.onError = func(w http.ResponseWriter, r *http.Request, err error) {
			s.logger.Error("render failed", zap.String("path", r.URL.Path), zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	}
	return s
}

func WithErrorHandler(onError func(http.ResponseWriter, *http.Request, error)) func(*Site) {
	return func(s *Site) {
		s.onError = onError
	}
}

// WithMiddlewares wraps the page handler. The first middleware is the outermost.
func WithMiddlewares(middlewares ...MiddlewareFunc) func(*Site) {
	return func(s *Site) {
		s.middlewares = append(s.middlewares, middlewares...)
	}
}

func WithLogger(logger *zap.Logger) func(*Site) {
	return func(s *Site) {
		s.logger = logger
	}
}

// WithListing replaces the code listing shown by the hero.
func WithListing(listing hero.Listing) func(*Site) {
	return func(s *Site) {
		s.listing = listing
	}
}

// Mount registers the health check and the page handler on router.
func (s *Site) Mount(router Router) {
	router.HandleMethod(http.MethodGet, healthPattern, http.HandlerFunc(healthz))
	router.HandleMethod(http.MethodGet, pagePattern, s.Handler())
}

// Handler serves every page path, locale-prefixed or not.
func (s *Site) Handler() http.Handler {
	var h http.Handler = http.HandlerFunc(s.servePage)
	h = s.localize(h)
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		h = s.middlewares[i](h)
	}
	return h
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Site) servePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc := route.FromContext(ctx)
	sec, retarget := requestedSection(r)
	comp, status := s.component(r, loc.Path, sec)

	w.Header().Add("Vary", "HX-Request")
	if retarget {
		w.Header().Set("HX-Retarget", "body")
	}

	bw := newBuffered(w)
	if err := comp.Render(ctx, bw); err != nil {
		bw.discard()
		s.onError(w, r, fmt.Errorf("render %s: %w", loc.Path, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	bw.WriteHeader(status)
	if err := bw.close(); err != nil {
		s.logger.Warn("write response", zap.String("path", loc.Path), zap.Error(err))
	}
}

// component picks what to render for path. The hero fragment does not need
// a page: it only depends on the path.
func (s *Site) component(r *http.Request, path string, sec section) (templ.Component, int) {
	if sec == sectionHero {
		return hero.Hero(s.listing), http.StatusOK
	}
	page, ok := s.store.Lookup(path)
	switch {
	case sec == sectionMain && ok:
		return pages.Article(page), http.StatusOK
	case sec == sectionMain:
		return pages.NotFound(), http.StatusNotFound
	case ok:
		return pages.Layout(page.Title, pages.Doc(page, s.listing)), http.StatusOK
	default:
		title := i18n.T(r.Context(), "notfound.title")
		return pages.Layout(title, pages.NotFound()), http.StatusNotFound
	}
}

// localize resolves the request locale and stores the location and the
// localizer in the request context. A leading locale segment wins over
// Accept-Language and is stripped from the path.
func (s *Site) localize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale, p := route.SplitLocale(r.URL.Path, s.bundle.Has)
		w.Header().Add("Vary", "Accept-Language")
		if locale == "" {
			locale = s.bundle.Resolve(r.Header.Get("Accept-Language"))
		}
		w.Header().Set("Content-Language", locale)

		ctx := route.WithLocation(r.Context(), route.Location{
			Path:          p,
			Locale:        locale,
			DefaultLocale: s.bundle.Fallback(),
		})
		ctx = i18n.WithLocalizer(ctx, s.bundle.Localizer(locale))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
