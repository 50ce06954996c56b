package docsite

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jackielii/docsite/content"
	"github.com/jackielii/docsite/i18n"
)

func newTestSite(t *testing.T, options ...func(*Site)) *Site {
	t.Helper()
	bundle, err := i18n.Default()
	require.NoError(t, err)
	store, err := content.Default()
	require.NoError(t, err)
	return New(bundle, store, options...)
}

func serve(t *testing.T, s *Site, req *http.Request) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	mux := http.NewServeMux()
	r := NewRouter(mux)
	s.Mount(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	return rec, doc
}

func TestHealthz(t *testing.T) {
	mux := http.NewServeMux()
	newTestSite(t).Mount(NewRouter(mux))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestLandingPages(t *testing.T) {
	tests := []struct {
		path        string
		wantVariant string
		wantHref    string
	}{
		{"/", "default", "/quick-start"},
		{"/solid-start", "start", "/solid-start/getting-started"},
		{"/solid-router", "router", "/solid-router/getting-started/installation-and-setup"},
		{"/solid-meta/", "meta", "/solid-meta/getting-started/installation-and-setup"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, doc := serve(t, newTestSite(t), httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))
			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			require.Equal(t, "en", rec.Header().Get("Content-Language"))

			hero := doc.Find("#hero")
			require.Equal(t, 1, hero.Length())
			variant, _ := hero.Attr("data-variant")
			require.Equal(t, tt.wantVariant, variant)
			href, _ := hero.Find("a").First().Attr("href")
			require.Equal(t, tt.wantHref, href)
			require.Equal(t, 1, doc.Find("#main-content").Length())
		})
	}
}

func TestHeroButtonsResolve(t *testing.T) {
	s := newTestSite(t)
	for _, landing := range []string{"/", "/solid-start", "/solid-router", "/solid-meta"} {
		_, doc := serve(t, s, httptest.NewRequest(http.MethodGet, landing, http.NoBody))
		href, ok := doc.Find("#hero a").First().Attr("href")
		require.True(t, ok)
		rec, _ := serve(t, s, httptest.NewRequest(http.MethodGet, href, http.NoBody))
		require.Equal(t, http.StatusOK, rec.Code, "primary button of %s points at missing page %s", landing, href)
	}
}

func TestPageWithoutHero(t *testing.T) {
	rec, doc := serve(t, newTestSite(t), httptest.NewRequest(http.MethodGet, "/quick-start", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 0, doc.Find("#hero").Length())
	require.Equal(t, "Quick start", doc.Find("title").Text())
}

func TestLocalePrefix(t *testing.T) {
	rec, doc := serve(t, newTestSite(t), httptest.NewRequest(http.MethodGet, "/pt-br/solid-start", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "pt-br", rec.Header().Get("Content-Language"))
	require.Contains(t, rec.Header().Values("Vary"), "Accept-Language")

	hero := doc.Find("#hero")
	variant, _ := hero.Attr("data-variant")
	require.Equal(t, "start", variant)
	primary := hero.Find("a").First()
	href, _ := primary.Attr("href")
	require.Equal(t, "/pt-br/solid-start/getting-started", href)
	require.Equal(t, "Começar", primary.Text())
	lang, _ := doc.Find("html").Attr("lang")
	require.Equal(t, "pt-br", lang)
}

func TestAcceptLanguage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Accept-Language", "ja,en;q=0.5")
	rec, doc := serve(t, newTestSite(t), req)
	require.Equal(t, "ja", rec.Header().Get("Content-Language"))
	require.Equal(t, "Solid ドキュメント", doc.Find("#hero h2").Text())
	href, _ := doc.Find("#hero a").First().Attr("href")
	require.Equal(t, "/ja/quick-start", href)
}

func TestNotFound(t *testing.T) {
	rec, doc := serve(t, newTestSite(t), httptest.NewRequest(http.MethodGet, "/docs/intro", http.NoBody))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Page not found", doc.Find("h1").Text())
	require.Equal(t, 0, doc.Find("#hero").Length())
}

func TestHTMXHeroFragment(t *testing.T) {
	tests := []struct {
		path        string
		wantVariant string
	}{
		// the fragment follows the path even where no page exists
		{"/docs/intro", "default"},
		{"/solid-router/anything", "router"},
		{"/ja/solid-meta/anything", "meta"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			req.Header.Set("HX-Request", "true")
			req.Header.Set("HX-Target", "hero")
			rec, doc := serve(t, newTestSite(t), req)
			require.Equal(t, http.StatusOK, rec.Code)
			require.Contains(t, rec.Header().Values("Vary"), "HX-Request")
			require.Equal(t, 0, doc.Find("title").Length())
			require.Equal(t, 0, doc.Find("#main-content").Length())
			variant, _ := doc.Find("#hero").Attr("data-variant")
			require.Equal(t, tt.wantVariant, variant)
		})
	}
}

func TestHTMXMainFragment(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/quick-start", http.NoBody)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "main-content")
	rec, doc := serve(t, newTestSite(t), req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 0, doc.Find("nav").Length())
	require.Equal(t, "Quick start", doc.Find("#main-content h1").Text())
}

func TestHTMXUnknownTargetRetargetsBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("HX-Request", "true")
	req.Header.Set("HX-Target", "sidebar")
	rec, doc := serve(t, newTestSite(t), req)
	require.Equal(t, "body", rec.Header().Get("HX-Retarget"))
	require.Equal(t, 1, doc.Find("title").Length())
}

type failingListing struct{}

func (failingListing) Name() string { return "broken.jsx" }
func (failingListing) Len() int     { return 1 }
func (failingListing) Code() templ.Component {
	return templ.ComponentFunc(func(context.Context, io.Writer) error {
		return errors.New("highlighter exploded")
	})
}

func TestRenderErrorUsesErrorHandler(t *testing.T) {
	var got error
	s := newTestSite(t,
		WithListing(failingListing{}),
		WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			got = err
			http.Error(w, "custom", http.StatusTeapot)
		}),
	)
	rec, _ := serve(t, s, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "custom\n", rec.Body.String())
	require.ErrorContains(t, got, "highlighter exploded")
}

func TestDefaultErrorHandlerLogs(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	s := newTestSite(t, WithListing(failingListing{}), WithLogger(zap.New(core)))
	rec, _ := serve(t, s, httptest.NewRequest(http.MethodGet, "/solid-start", http.NoBody))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.FilterMessage("render failed").Len())
}

func TestMiddlewaresOrder(t *testing.T) {
	var order []string
	mw := func(name string) MiddlewareFunc {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	s := newTestSite(t, WithMiddlewares(mw("outer"), mw("inner")))
	rec, _ := serve(t, s, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"outer", "inner"}, order)
}
