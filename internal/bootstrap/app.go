package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/support-qa/internal/domain/faq"
	"github.com/yanqian/support-qa/internal/infra/config"
	"github.com/yanqian/support-qa/internal/infra/kbsource"
)

// App encapsulates the HTTP server lifecycle and the knowledge base refreshers.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	server  *http.Server
	faqSvc  faq.Service
	watcher *kbsource.Watcher
}

// NewApp is used by Wire to build the runnable app. watcher may be nil.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, faqSvc faq.Service, watcher *kbsource.Watcher) *App {
	return &App{
		cfg:     cfg,
		logger:  logger.With("component", "bootstrap"),
		server:  server,
		faqSvc:  faqSvc,
		watcher: watcher,
	}
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	reloadCtx, stopReload := context.WithCancel(ctx)
	defer stopReload()
	if interval := a.cfg.KnowledgeBase.ReloadInterval; interval > 0 {
		go a.reloadLoop(reloadCtx, interval)
	}
	if a.watcher != nil {
		go a.watcher.Run(reloadCtx, func(ctx context.Context) { a.reload(ctx, "file_change") })
	}

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// reloadLoop refreshes the knowledge base every interval. A failed reload keeps
// the current snapshot.
func (a *App) reloadLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	a.logger.Info("knowledge base refresher started", "interval", interval.String())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.reload(ctx, "schedule")
		}
	}
}

func (a *App) reload(ctx context.Context, trigger string) {
	result, err := a.faqSvc.Reload(ctx)
	if err != nil {
		a.logger.Warn("knowledge base reload failed", "trigger", trigger, "error", err)
		return
	}
	a.logger.Info("knowledge base reloaded", "trigger", trigger, "source", result.Current.Source, "entries", result.Current.Entries)
}
