package docsite

import (
	"net/http"

	htmx "github.com/angelofallars/htmx-go"

	"github.com/jackielii/docsite/hero"
	"github.com/jackielii/docsite/pages"
)

type section int

const (
	sectionPage section = iota
	sectionHero
	sectionMain
)

// sectionTargets maps an hx-target id to the fragment rendered for it.
var sectionTargets = map[string]section{
	hero.ID:      sectionHero,
	pages.MainID: sectionMain,
}

// requestedSection selects what to render for r. Boosted navigation and
// plain requests get the full page, as do htmx requests aimed at a target
// this site has no fragment for.
func requestedSection(r *http.Request) (s section, retarget bool) {
	if !htmx.IsHTMX(r) || htmx.IsBoosted(r) {
		return sectionPage, false
	}
	target, ok := htmx.GetTarget(r)
	if !ok || target == "" {
		return sectionPage, true
	}
	s, ok = sectionTargets[target]
	if !ok {
		return sectionPage, true
	}
	return s, false
}
