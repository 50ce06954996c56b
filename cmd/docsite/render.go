package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jackielii/docsite/hero"
)

func newRenderCmd(cfg *config) *cobra.Command {
	var (
		heroOnly bool
		lang     string
	)
	cmd := &cobra.Command{
		Use:   "render <path>",
		Short: "Render the page served at path to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := newSite(cfg, zap.NewNop())
			if err != nil {
				return err
			}
			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, args[0], http.NoBody)
			if err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}
			if lang != "" {
				req.Header.Set("Accept-Language", lang)
			}
			if heroOnly {
				req.Header.Set("HX-Request", "true")
				req.Header.Set("HX-Target", hero.ID)
			}
			rec := httptest.NewRecorder()
			site.Handler().ServeHTTP(rec, req)
			if _, err := cmd.OutOrStdout().Write(rec.Body.Bytes()); err != nil {
				return err
			}
			if rec.Code != http.StatusOK {
				return fmt.Errorf("render %s: status %d", args[0], rec.Code)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&heroOnly, "hero-only", false, "render only the hero section")
	cmd.Flags().StringVar(&lang, "lang", "", "preferred language, as an Accept-Language value")
	return cmd
}
