package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/yuva-embroidery/storefront/internal/carousel"
	"github.com/yuva-embroidery/storefront/internal/handlers"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the storefront web server",
		Long: `Starts the storefront page and JSON API on the specified port.

The cart is loaded from the configured storage profile at startup and saved
after every change.`,
		Example: `  # Start server on default port 8888
  storefront serve

  # Start server on custom port with a Redis-backed cart
  REDIS_ADDR=localhost:6379 STOREFRONT_STORAGE=redis storefront serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			ctx := cmd.Context()
			page, release, err := buildPage(ctx, cfg, newPresenter(cfg))
			if err != nil {
				return err
			}
			defer release()

			handlerOpts := []handlers.Option{handlers.WithZoomFactor(cfg.Zoom.Factor)}
			if len(cfg.Carousel.Slides) > 0 {
				slides := carousel.NewSlides(cfg.Carousel.Slides)
				handlerOpts = append(handlerOpts, handlers.WithSlides(slides))
				rotator := carousel.NewRotator(func() carousel.Advancer { return slides }, cfg.Carousel.Interval)
				go rotator.Run(ctx)
			}

			addr := ":" + cfg.Server.Port
			server := &http.Server{
				Addr:    addr,
				Handler: handlers.New(page, handlerOpts...).Routes(),
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Storefront available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-ctx.Done():
				slog.Info("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on (default from config)")

	return cmd
}
