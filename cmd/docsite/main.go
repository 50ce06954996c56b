package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jackielii/docsite"
	"github.com/jackielii/docsite/chirouter"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config
	root := &cobra.Command{
		Use:          "docsite",
		Short:        "Serve the documentation site",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig()
			if err != nil {
				return err
			}
			// flags win over the environment
			flags := cmd.Flags()
			if !flags.Changed("addr") {
				cfg.Addr = loaded.Addr
			}
			if !flags.Changed("locales") {
				cfg.LocalesDir = loaded.LocalesDir
			}
			if !flags.Changed("content") {
				cfg.ContentDir = loaded.ContentDir
			}
			if !flags.Changed("dev") {
				cfg.Dev = loaded.Dev
			}
			cfg.DefaultLocale = loaded.DefaultLocale
			cfg.ShutdownTimeout = loaded.ShutdownTimeout
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfg.Addr, "addr", ":8080", "HTTP listen address")
	pf.StringVar(&cfg.LocalesDir, "locales", "", "directory of translation dictionaries (default: embedded)")
	pf.StringVar(&cfg.ContentDir, "content", "", "directory of markdown pages (default: embedded)")
	pf.BoolVar(&cfg.Dev, "dev", false, "development logging")

	root.AddCommand(newServeCmd(&cfg), newRenderCmd(&cfg), newRoutesCmd(&cfg))
	return root
}

func newLogger(cfg *config) (*zap.Logger, error) {
	if cfg.Dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newSite(cfg *config, logger *zap.Logger) (*docsite.Site, error) {
	bundle, err := cfg.bundle()
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	store, err := cfg.store()
	if err != nil {
		return nil, err
	}
	return docsite.New(bundle, store, docsite.WithLogger(logger)), nil
}

func newServeCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			site, err := newSite(cfg, logger)
			if err != nil {
				return err
			}

			r := chi.NewRouter()
			r.Use(middleware.RequestID)
			// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
			// X-Forwarded-For to determine the client IP.
			r.Use(middleware.RealIP)
			r.Use(docsite.RequestLogger(logger))
			r.Use(middleware.Recoverer)
			r.Use(middleware.Compress(5))
			r.Use(middleware.Timeout(30 * time.Second))
			site.Mount(chirouter.NewChiRouter(r))

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       15 * time.Second,
				WriteTimeout:      15 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				logger.Info("docsite listening", zap.String("addr", cfg.Addr), zap.Bool("dev", cfg.Dev))
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("listen: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}
}

func newRoutesCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print routes, hero variants and pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := newSite(cfg, zap.NewNop())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), site.PrintRoutes())
			return err
		},
	}
}
