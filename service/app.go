package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"inkwell/app/config"
	"inkwell/app/models"
	"inkwell/app/routes"
	"inkwell/app/services"
)

const shutdownTimeout = 10 * time.Second

// NewBlogService opens the configured store and loads the blog tree from it.
// The caller must close the returned store.
func NewBlogService(cfg *config.Config, log *slog.Logger) (*services.BlogService, func() error, error) {
	store, err := OpenStore(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s store: %w", cfg.Storage.Type, err)
	}

	svc := services.NewBlogService(store,
		services.WithLogger(log),
		services.WithRenderer(models.Renderer{
			EscapeHTML:    cfg.Render.EscapeHTML,
			SummaryLength: cfg.Render.SummaryLength,
		}),
	)
	if err := svc.Load(); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("loading blog tree: %w", err)
	}
	return svc, store.Close, nil
}

// RunAppServer serves the blog on ln until ctx is cancelled, then shuts down
// gracefully.
func RunAppServer(ctx context.Context, ln net.Listener, svc *services.BlogService, log *slog.Logger) error {
	srv := &http.Server{
		Handler:           routes.SetupRoutes(svc, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("blog service listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
