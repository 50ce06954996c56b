package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir()) // no stray .env
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderHeroOnly(t *testing.T) {
	out, err := run(t, "render", "--hero-only", "/solid-router/anything")
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	variant, _ := doc.Find("#hero").Attr("data-variant")
	require.Equal(t, "router", variant)
	require.Equal(t, 0, doc.Find("title").Length())
}

func TestRenderWithLang(t *testing.T) {
	out, err := run(t, "render", "--lang", "pt-BR", "/")
	require.NoError(t, err)
	require.Contains(t, out, `lang="pt-br"`)
	require.Contains(t, out, `href="/pt-br/quick-start"`)
}

func TestRenderMissingPage(t *testing.T) {
	_, err := run(t, "render", "/docs/intro")
	require.ErrorContains(t, err, "status 404")
}

func TestRoutes(t *testing.T) {
	out, err := run(t, "routes")
	require.NoError(t, err)
	require.Contains(t, out, "/solid-start/*")
	require.Contains(t, out, "/quick-start")
}

func TestEnvConfig(t *testing.T) {
	t.Setenv("DOCSITE_ADDR", ":9999")
	t.Setenv("DOCSITE_SHUTDOWN_TIMEOUT", "3s")
	t.Chdir(t.TempDir())
	cfg, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, "en", cfg.DefaultLocale)
	require.Equal(t, "3s", cfg.ShutdownTimeout.String())
}

func TestEnvConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("DOCSITE_SHUTDOWN_TIMEOUT", "soon")
	t.Chdir(t.TempDir())
	_, err := loadConfig()
	require.Error(t, err)
}

func TestDefaultLocaleFromEnv(t *testing.T) {
	t.Setenv("DOCSITE_DEFAULT_LOCALE", "ja")

	out, err := run(t, "routes")
	require.NoError(t, err)
	require.Contains(t, out, "ja, en, pt-br")

	cfg, err := loadConfig()
	require.NoError(t, err)
	bundle, err := cfg.bundle()
	require.NoError(t, err)
	require.Equal(t, "ja", bundle.Supported()[0])

	site, err := newSite(&cfg, zap.NewNop())
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-FR")
	rec := httptest.NewRecorder()
	site.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ja", rec.Header().Get("Content-Language"))
	require.Contains(t, rec.Body.String(), `lang="ja"`)
}

func TestUnknownDefaultLocale(t *testing.T) {
	t.Setenv("DOCSITE_DEFAULT_LOCALE", "de")
	_, err := run(t, "routes")
	require.ErrorContains(t, err, "fallback locale de not loaded")
}
