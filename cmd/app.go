package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/yuva-embroidery/storefront/internal/catalog"
	"github.com/yuva-embroidery/storefront/internal/config"
	"github.com/yuva-embroidery/storefront/internal/notify"
	"github.com/yuva-embroidery/storefront/internal/storage"
	"github.com/yuva-embroidery/storefront/internal/storefront"
	"github.com/yuva-embroidery/storefront/internal/view"
)

func loadProvider(path string, fallback *catalog.Static) (catalog.Provider, error) {
	if path == "" {
		return fallback, nil
	}
	provider, err := catalog.NewLoader(path).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return provider, nil
}

// buildPage wires a Page from configuration. The returned release func
// closes the storage backend and must be called once the page is done.
func buildPage(ctx context.Context, cfg config.Config, presenter storefront.Presenter) (*storefront.Page, func(), error) {
	products, err := loadProvider(cfg.Catalog.Path, catalog.Sample())
	if err != nil {
		return nil, nil, err
	}
	featured, err := loadProvider(cfg.Catalog.FeaturedPath, catalog.Featured())
	if err != nil {
		return nil, nil, err
	}

	backend, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	release := func() { closeStore(backend) }

	slog.Debug("Storefront configured", "storage", cfg.Storage.Backend, "profile", cfg.Storage.Profile, "catalog", cfg.Catalog.Path)
	page, err := storefront.New(ctx, storefront.Deps{
		Storage:     backend,
		Catalog:     products,
		Featured:    featured,
		Presenter:   presenter,
		Renderer:    view.NewRenderer(cfg.Currency),
		MaxQuantity: cfg.Detail.MaxQuantity,
	})
	if err != nil {
		release()
		return nil, nil, err
	}
	return page, release, nil
}

// closeStore closes backends that hold connections, such as Redis.
func closeStore(backend storage.Store) {
	closer, ok := backend.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		slog.Warn("Unable to close storage", "err", err)
		return
	}
	slog.Debug("Storage closed")
}

func newPresenter(cfg config.Config, opts ...notify.Option) *notify.Presenter {
	timing := notify.Timing{
		ShowDelay: cfg.Notification.ShowDelay,
		Lifetime:  cfg.Notification.Lifetime,
		FadeOut:   cfg.Notification.FadeOut,
	}
	return notify.New(append([]notify.Option{notify.WithTiming(timing)}, opts...)...)
}
