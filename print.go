package docsite

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jackielii/docsite/hero"
)

// PrintRoutes describes what s serves: the mounted patterns, the hero
// variant table in evaluation order and the content pages.
func (s *Site) PrintRoutes() string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "routes:")
	fmt.Fprintf(tw, "  GET\t%s\n", healthPattern)
	fmt.Fprintf(tw, "  GET\t%s\n", pagePattern)

	fmt.Fprintln(tw, "hero variants (first match wins):")
	for _, r := range hero.Rules() {
		fmt.Fprintf(tw, "  %s\t%s\t-> %s\n", r.Pattern, r.Variant, r.Variant.Href())
	}
	fmt.Fprintf(tw, "  (none)\t%s\t-> %s\n", hero.Default, hero.Default.Href())

	fmt.Fprintf(tw, "locales:\t%s\n", strings.Join(s.bundle.Supported(), ", "))

	fmt.Fprintln(tw, "pages:")
	for _, p := range s.store.Paths() {
		page, _ := s.store.Lookup(p)
		mark := ""
		if page.Hero {
			mark = "hero"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", p, page.Title, mark)
	}
	_ = tw.Flush()
	return sb.String()
}
