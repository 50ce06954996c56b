package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/jackielii/docsite/route"
)

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
)

var buttonClasses = map[ButtonVariant]string{
	ButtonPrimary: "rounded-full bg-blue-300 py-2 px-4 text-sm font-semibold text-slate-900 " +
		"hover:bg-blue-200 focus:outline-none focus-visible:outline-2 focus-visible:outline-offset-2 " +
		"focus-visible:outline-blue-300/50 active:bg-blue-500",
	ButtonSecondary: "rounded-full bg-slate-800 py-2 px-4 text-sm font-medium text-white " +
		"hover:bg-slate-700 focus:outline-none focus-visible:outline-2 focus-visible:outline-offset-2 " +
		"focus-visible:outline-white/50 active:text-slate-400",
}

// ButtonLink renders an anchor styled as a button. With addLocale the href
// is prefixed with the current locale segment.
func ButtonLink(href string, variant ButtonVariant, addLocale bool, label templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		dest := href
		if addLocale {
			dest = route.LocaleHref(ctx, href)
		}
		class, ok := buttonClasses[variant]
		if !ok {
			class = buttonClasses[ButtonPrimary]
		}
		w := NewWriter(out)
		w.Raw("<a")
		w.Attr("href", dest)
		w.Attr("class", class)
		w.Attr("data-variant", string(variant))
		w.Raw(">")
		w.Component(ctx, label)
		w.Raw("</a>")
		return w.Err()
	})
}
