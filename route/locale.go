package route

import (
	"context"
	"strings"
)

// SplitLocale removes a leading locale segment from p when isLocale accepts
// it. It returns the locale (or "") and the remaining path.
func SplitLocale(p string, isLocale func(string) bool) (locale, rest string) {
	p = Clean(p)
	first, tail, _ := strings.Cut(strings.TrimPrefix(p, "/"), "/")
	if first == "" || !isLocale(strings.ToLower(first)) {
		return "", p
	}
	return strings.ToLower(first), Clean(tail)
}

// LocaleHref prefixes href with the current locale segment. Links to other
// origins and in-page fragments are returned untouched, as is everything
// when the current locale is the default one.
func LocaleHref(ctx context.Context, href string) string {
	if isExternal(href) || strings.HasPrefix(href, "#") {
		return href
	}
	loc := FromContext(ctx)
	href = "/" + strings.TrimPrefix(href, "/")
	if loc.Locale == "" || strings.EqualFold(loc.Locale, loc.DefaultLocale) {
		return href
	}
	if href == "/" {
		return "/" + loc.Locale
	}
	return "/" + loc.Locale + href
}

func isExternal(href string) bool {
	if strings.HasPrefix(href, "//") || strings.HasPrefix(href, "mailto:") {
		return true
	}
	scheme, _, ok := strings.Cut(href, "://")
	return ok && !strings.ContainsAny(scheme, "/?#")
}
