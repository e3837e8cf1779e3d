package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

func (a *App) runServices(ctx context.Context, deps *Dependencies) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("starting http server",
			"host", a.Cfg.Server.Host,
			"port", a.Cfg.Server.Port)

		err := deps.HTTPServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.runPolling(gCtx, deps)
	})

	// Запускаем планировщик джоб (запускает горутины внутри, сам не блокирует)
	if deps.JobScheduler != nil {
		a.Log.Info("starting job scheduler")
		if err := deps.JobScheduler.Start(gCtx); err != nil {
			a.Log.Error("failed to start job scheduler", "error", err)
		}
	}

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.Log.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := deps.HTTPServer.Shutdown(shutdownCtx); err != nil {
			a.Log.Error("failed to shutdown http server", "error", err)
		}

		if deps.DB != nil {
			if err := deps.DB.Close(); err != nil {
				a.Log.Error("failed to close database", "error", err)
			}
		}

		a.Log.Info("application shutdown completed")
		return nil
	})

	// context.Canceled при остановке по сигналу - штатное завершение, не ошибка
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.Log.Error("application error", "error", err)
		return err
	}

	return nil
}

// runPolling запускает long polling обновлений Telegram
func (a *App) runPolling(ctx context.Context, deps *Dependencies) error {
	if deps.TelegramPoller == nil {
		return fmt.Errorf("telegram poller is not initialized")
	}

	// Удаляем webhook перед запуском polling
	deleteCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := deps.TelegramPoller.DeleteWebhook(deleteCtx); err != nil {
		a.Log.Warn("failed to delete webhook, continuing anyway", "error", err)
		// Ждём немного перед запуском polling, чтобы дать время на удаление webhook
		time.Sleep(2 * time.Second)
	} else {
		a.Log.Info("webhook deleted successfully, starting polling")
	}

	return deps.TelegramPoller.Start(ctx)
}
