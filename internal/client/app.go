package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-screen-sync/internal/adapter"
	"github.com/MKhiriev/go-screen-sync/internal/config"
	"github.com/MKhiriev/go-screen-sync/internal/datasource"
	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/service"
	"github.com/MKhiriev/go-screen-sync/internal/store"
	"github.com/MKhiriev/go-screen-sync/internal/utils"
)

// maintenanceInterval is how often the agent prunes old synced screens
// and reports store statistics.
const maintenanceInterval = 12 * time.Hour

// disconnectTimeout bounds how long shutdown waits for the change feed
// to terminate.
const disconnectTimeout = 5 * time.Second

// App is the sync agent runtime. It owns the offline-first data source
// and the background machinery around it: the pending queue drain, the
// live change feed, and periodic maintenance.
type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	source   datasource.DataSource
	provider *datasource.Provider

	logger *logger.Logger
}

// NewApp wires the whole agent stack: local SQLite storages, the HTTP
// server adapter, the client services, and the hybrid data source
// registered as the process's active source.
func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if cfg.Agent.ClientID == "" {
		cfg.Agent.ClientID = utils.NewUUIDGenerator().Generate()
		logger.Info().Str("client_id", cfg.Agent.ClientID).Msg("no client id configured, generated one")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Agent, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	bus := datasource.NewBus()
	services := service.NewClientServices(storages, serverAdapter, cfg, bus.Publish, logger)

	source := datasource.NewHybridDataSource(
		storages.Screens,
		services.Queue,
		services.Orchestrator,
		serverAdapter,
		bus,
		datasource.HybridConfig{
			ClientID: cfg.Agent.ClientID,
			Resolver: services.Resolver,
		},
		logger,
	)

	provider := datasource.NewProvider()
	provider.Register(source)

	return &App{
		cfg:      cfg,
		services: services,
		source:   source,
		provider: provider,
		logger:   logger,
	}, nil
}

// Run connects the agent to the backend, starts the background sync job,
// and blocks until the process receives a stop signal. A backend that is
// unreachable at startup is not fatal: the agent begins offline and the
// sync job reconciles once connectivity returns.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := a.source.Connect(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("backend unreachable, starting offline")
	}

	a.services.SyncJob.Start(ctx, a.cfg.Agent.SyncInterval)

	go a.maintenanceLoop(ctx)

	a.logger.Info().Str("client_id", a.cfg.Agent.ClientID).Msg("agent running")
	<-ctx.Done()

	a.services.SyncJob.Stop()

	disconnectCtx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	if err := a.source.Disconnect(disconnectCtx); err != nil {
		a.logger.Warn().Err(err).Msg("disconnect")
	}

	a.logger.Info().Msg("agent stopped gracefully")

	return nil
}

// DataSource returns the process's active data source through the
// provider registry. Embedding code reads through this accessor rather
// than holding the source directly, so a re-registration is picked up on
// the next call.
func (a *App) DataSource() (datasource.DataSource, error) {
	return a.provider.Active()
}

// maintenanceLoop periodically prunes fully synced screens past the
// default retention and logs store statistics. Failures are logged and
// the loop keeps going.
func (a *App) maintenanceLoop(ctx context.Context) {
	ticker := time.NewTicker(maintenanceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			source, err := a.provider.Active()
			if err != nil {
				a.logger.Warn().Err(err).Msg("no active data source")
				continue
			}

			removed, err := source.ClearOldScreens(ctx, 0)
			if err != nil {
				a.logger.Warn().Err(err).Msg("clear old screens")
				continue
			}
			if removed > 0 {
				a.logger.Info().Int64("removed", removed).Msg("old synced screens cleared")
			}

			stats, err := source.Stats(ctx)
			if err != nil {
				a.logger.Warn().Err(err).Msg("store stats")
				continue
			}
			a.logger.Debug().Int("total", stats.Total).Int64("total_bytes", stats.TotalBytes).Msg("local store stats")
		}
	}
}
