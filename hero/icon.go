package hero

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/jackielii/docsite/ui"
)

// TrafficLightsIcon draws the three window buttons of the code panel.
func TrafficLightsIcon(class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := ui.NewWriter(out)
		w.Raw(`<svg aria-hidden="true" viewBox="0 0 42 10" fill="none"`)
		if class != "" {
			w.Attr("class", class)
		}
		w.Raw(`><circle cx="5" cy="5" r="4.5"></circle>`)
		w.Raw(`<circle cx="21" cy="5" r="4.5"></circle>`)
		w.Raw(`<circle cx="37" cy="5" r="4.5"></circle></svg>`)
		return w.Err()
	})
}
