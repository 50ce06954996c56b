package hero

import (
	"context"

	"github.com/jackielii/docsite/route"
)

// Variant is the sub-site flavour of the hero.
type Variant int

const (
	Default Variant = iota
	Start
	Router
	Meta
)

func (v Variant) String() string {
	switch v {
	case Start:
		return "start"
	case Router:
		return "router"
	case Meta:
		return "meta"
	default:
		return "default"
	}
}

// Href is the destination of the primary call to action.
func (v Variant) Href() string {
	switch v {
	case Start:
		return "solid-start/getting-started"
	case Router:
		return "solid-router/getting-started/installation-and-setup"
	case Meta:
		return "solid-meta/getting-started/installation-and-setup"
	default:
		return "/quick-start"
	}
}

type rule struct {
	pattern string
	variant Variant
}

// Evaluated in order, first match wins.
var rules = []rule{
	{pattern: "/solid-start/*", variant: Start},
	{pattern: "/solid-router/*", variant: Router},
	{pattern: "/solid-meta/*", variant: Meta},
}

// SelectVariant picks the variant for the location in ctx.
func SelectVariant(ctx context.Context) Variant {
	return selectVariant(func(pattern string) bool {
		return route.Match(ctx, pattern) != nil
	})
}

func selectVariant(matches func(pattern string) bool) Variant {
	for _, r := range rules {
		if matches(r.pattern) {
			return r.variant
		}
	}
	return Default
}

// Rule is a printable view of the selection table.
type Rule struct {
	Pattern string
	Variant Variant
}

// Rules returns the selection table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Pattern: r.pattern, Variant: r.variant}
	}
	return out
}
