package service

import (
	"github.com/MKhiriev/go-screen-sync/internal/adapter"
	"github.com/MKhiriev/go-screen-sync/internal/config"
	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/store"
	"github.com/MKhiriev/go-screen-sync/models"
)

type ClientServices struct {
	Queue        QueueService
	Resolver     Resolver
	Orchestrator SyncOrchestrator
	SyncJob      SyncJob
}

// NewClientServices assembles the agent-side service stack. notify, when
// non-nil, receives a change event for every screen the background sync
// machinery touches; pass nil when nothing subscribes. The default
// last-write-wins conflict policy is used; callers needing a different
// one assemble the services by hand.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, notify func(models.ChangeEvent), logger *logger.Logger) *ClientServices {
	queueService := NewQueueService(storages.Pending, NewRetryPolicy(cfg.Retry), logger)
	resolver := NewLastWriteWinsResolver()
	orchestrator := NewSyncOrchestrator(storages.Screens, queueService, serverAdapter, OrchestratorConfig{
		ClientID: cfg.Agent.ClientID,
		Workers:  cfg.Agent.PushWorkers,
		Resolver: resolver,
		Notify:   notify,
	}, logger)

	return &ClientServices{
		Queue:        queueService,
		Resolver:     resolver,
		Orchestrator: orchestrator,
		SyncJob:      NewSyncJob(orchestrator),
	}
}
