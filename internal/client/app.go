package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-delta-sync/internal/config"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/internal/service"
	"github.com/MKhiriev/go-delta-sync/internal/workers"
)

// App is the sync-client runtime: it authenticates against the feed server,
// runs one initial sync session, then keeps the local replica fresh with the
// periodic sync job until the process is told to stop.
type App struct {
	services *service.ClientServices
	workers  *workers.Workers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("client services are not initialised")
	}

	w := &workers.Workers{}
	w.Register(services.SyncJob, workersCfg.SyncInterval)

	return &App{services: services, workers: w, logger: log}, nil
}

// Run implements [Client]. It blocks until the process receives SIGTERM,
// SIGINT, or SIGQUIT, then stops the background workers and returns.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := a.services.AuthService.Authenticate(ctx); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	// The first session runs in the foreground so startup fails loudly on a
	// broken configuration; transient feed trouble is only logged, the
	// periodic job retries it.
	if err := a.services.Coordinator.SyncAll(ctx); err != nil {
		if !service.IsTransientError(err) {
			return fmt.Errorf("initial sync session: %w", err)
		}
		a.logger.Warn().Err(err).Msg("initial sync session failed, will retry on schedule")
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Msg("sync client running")
	<-ctx.Done()
	a.logger.Info().Msg("sync client shutting down")

	return nil
}
