// Package hero renders the landing section shown at the top of the docs
// home pages. Title, subtitle and the primary call to action depend on
// which sub-site the current path belongs to.
package hero

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/jackielii/docsite/i18n"
	"github.com/jackielii/docsite/snippet"
	"github.com/jackielii/docsite/ui"
)

// ID is the element id of the section, usable as an hx-target.
const ID = "hero"

const discordHref = "https://discord.com/invite/solidjs"

// Listing is the code shown in the panel. The hero only reads its length
// and name and mounts Code.
type Listing interface {
	Name() string
	Len() int
	Code() templ.Component
}

type emptyListing struct{}

func (emptyListing) Name() string          { return "" }
func (emptyListing) Len() int              { return 0 }
func (emptyListing) Code() templ.Component { return templ.NopComponent }

// Hero renders the section for the location in ctx. A nil listing still
// gets the code panel, with no file name and no lines.
func Hero(listing Listing) templ.Component {
	if listing == nil {
		listing = emptyListing{}
	}
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		v := SelectVariant(ctx)
		w := ui.NewWriter(out)

		w.Raw(`<div id="` + ID + `" data-variant="` + v.String() + `" class="mb-10 overflow-hidden border border-sky-200 bg-sky-100/80 dark:border-none dark:bg-slate-900">`)
		w.Raw(`<div class="py-10 sm:px-2 lg:relative">`)
		w.Raw(`<div class="mx-auto grid max-w-2xl grid-cols-1 items-center gap-x-8 gap-y-16 px-4 lg:max-w-8xl lg:grid-cols-2 lg:px-8 xl:gap-x-16 xl:px-12">`)

		w.Raw(`<div class="relative md:text-center lg:text-left"><div class="relative">`)
		w.Raw(`<h2 class="inline bg-gradient-to-r from-blue-700 via-slate-800 to-blue-700 bg-clip-text text-5xl font-bold tracking-tight text-transparent dark:from-indigo-200 dark:via-blue-400 dark:to-indigo-200">`)
		writeTitle(ctx, w, v)
		w.Raw(`</h2>`)
		w.Raw(`<p class="mt-3 text-2xl tracking-tight dark:text-slate-300">`)
		w.Text(subtitle(ctx, v))
		w.Raw(`</p>`)
		w.Raw(`<div class="mt-8 flex gap-4 md:justify-center lg:justify-start">`)
		w.Component(ctx, ui.ButtonLink(v.Href(), ui.ButtonPrimary, true, ui.Text(i18n.T(ctx, "hero.button.primary"))))
		w.Component(ctx, ui.ButtonLink(discordHref, ui.ButtonSecondary, false, ui.Text(i18n.T(ctx, "hero.button.secondary"))))
		w.Raw(`</div></div></div>`)

		writePanel(ctx, w, listing)

		w.Raw(`</div></div></div>`)
		return w.Err()
	})
}

func writeTitle(ctx context.Context, w *ui.Writer, v Variant) {
	switch v {
	case Start:
		w.Raw(`Solid<span class="font-thin">Start</span>`)
	case Router:
		w.Raw(`<span class="font-thin">Solid </span>Router`)
	case Meta:
		w.Raw(`<span class="font-thin">Solid-</span>Meta`)
	default:
		w.Text(i18n.T(ctx, "hero.title"))
	}
}

func subtitle(ctx context.Context, v Variant) string {
	if v == Start {
		return i18n.T(ctx, "hero.subtitle.start")
	}
	return i18n.T(ctx, "hero.subtitle")
}

func writePanel(ctx context.Context, w *ui.Writer, listing Listing) {
	n := max(listing.Len(), 0)
	w.Raw(`<div class="relative lg:static xl:pl-10"><div class="relative">`)
	w.Raw(`<div class="absolute inset-0 rounded-2xl bg-gradient-to-tr from-blue-500 via-blue-500/70 to-blue-300 opacity-10 blur-lg dark:bg-white dark:from-blue-300 dark:via-blue-300/70"></div>`)
	w.Raw(`<div class="absolute inset-0 rounded-2xl bg-gradient-to-tr from-blue-300 via-blue-300/70 to-blue-300 opacity-10"></div>`)
	w.Raw(`<div class="relative rounded-2xl bg-[#0A101F]/80 ring-1 ring-blue-200/10 backdrop-blur">`)
	w.Raw(`<div class="absolute -top-px left-20 right-11 h-px bg-gradient-to-r from-blue-300/0 via-blue-300/70 to-blue-300/0"></div>`)
	w.Raw(`<div class="absolute -bottom-px left-11 right-20 h-px bg-gradient-to-r from-blue-400/0 via-blue-800 to-blue-400/0 dark:via-blue-400"></div>`)
	w.Raw(`<div class="pl-4 pt-4">`)
	w.Component(ctx, TrafficLightsIcon("h-2.5 w-auto stroke-slate-500/30"))

	w.Raw(`<div class="mt-4 flex space-x-2 text-xs">`)
	w.Raw(`<div class="flex h-6 rounded-full border border-blue-400 bg-gradient-to-r from-blue-400/30 via-blue-400 to-blue-400/30 p-px font-semibold text-blue-300 shadow-sm dark:border-none">`)
	w.Raw(`<div class="flex items-center rounded-full bg-slate-800 px-2.5" data-role="filename">`)
	w.Text(listing.Name())
	w.Raw(`</div></div></div>`)

	w.Raw(`<div class="mt-6 flex items-start px-1 text-sm">`)
	w.Raw(`<div aria-hidden="true" data-role="line-numbers" class="select-none border-r border-slate-300/5 pb-6 pr-4 font-mono text-slate-300">`)
	for _, num := range snippet.LineNumbers(n) {
		w.Raw("<pre>" + num + "</pre>")
	}
	w.Raw(`</div>`)
	w.Raw(`<div data-role="code"`)
	w.Attr("class", fmt.Sprintf("flex overflow-x-auto px-4 min-h-[%dem] custom-scrollbar text-white", n+5))
	w.Raw(`>`)
	w.Component(ctx, listing.Code())
	w.Raw(`</div></div>`)

	w.Raw(`</div></div></div></div>`)
}
