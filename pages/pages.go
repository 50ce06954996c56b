// Package pages composes the hero and the documentation content into full
// HTML documents.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/jackielii/docsite/content"
	"github.com/jackielii/docsite/hero"
	"github.com/jackielii/docsite/i18n"
	"github.com/jackielii/docsite/route"
	"github.com/jackielii/docsite/ui"
)

// MainID is the element id of the article, usable as an hx-target.
const MainID = "main-content"

// Layout wraps body in the HTML document shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		loc := route.FromContext(ctx)
		lang := loc.Locale
		if lang == "" {
			lang = loc.DefaultLocale
		}
		w := ui.NewWriter(out)
		w.Raw("<!doctype html><html")
		if lang != "" {
			w.Attr("lang", lang)
		}
		w.Raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.Raw("<title>")
		w.Text(title)
		w.Raw("</title>")
		w.Raw(`<script src="https://cdn.tailwindcss.com"></script>`)
		w.Raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`)
		w.Raw(`</head><body hx-boost="true" class="bg-white dark:bg-slate-900">`)
		w.Raw(`<nav class="px-4 py-3 text-sm"><a`)
		w.Attr("href", route.LocaleHref(ctx, "/"))
		w.Raw(">")
		w.Text(i18n.T(ctx, "nav.home"))
		w.Raw("</a></nav>")
		w.Component(ctx, body)
		w.Raw("</body></html>")
		return w.Err()
	})
}

// Doc renders page, preceded by the hero when the page asks for one.
func Doc(page *content.Page, listing hero.Listing) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := ui.NewWriter(out)
		if page.Hero {
			w.Component(ctx, hero.Hero(listing))
		}
		w.Component(ctx, Article(page))
		return w.Err()
	})
}

// Article renders only the page content.
func Article(page *content.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := ui.NewWriter(out)
		w.Raw(`<main id="` + MainID + `" class="prose mx-auto max-w-3xl px-4 dark:prose-invert">`)
		if page.Description != "" {
			w.Raw(`<p class="lead">`)
			w.Text(page.Description)
			w.Raw(`</p>`)
		}
		// sanitized by content.Load
		w.Raw(page.HTML)
		w.Raw(`</main>`)
		return w.Err()
	})
}

// NotFound is rendered for paths without a page.
func NotFound() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := ui.NewWriter(out)
		w.Raw(`<main id="` + MainID + `" class="mx-auto max-w-3xl px-4 py-16"><h1 class="text-3xl font-bold">`)
		w.Text(i18n.T(ctx, "notfound.title"))
		w.Raw(`</h1><p class="mt-4">`)
		w.Text(i18n.T(ctx, "notfound.body"))
		w.Raw(`</p><p class="mt-8">`)
		w.Component(ctx, ui.ButtonLink("/", ui.ButtonPrimary, true, ui.Text(i18n.T(ctx, "notfound.back"))))
		w.Raw(`</p></main>`)
		return w.Err()
	})
}
