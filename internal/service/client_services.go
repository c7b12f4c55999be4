package service

import (
	"github.com/MKhiriev/go-delta-sync/internal/adapter"
	"github.com/MKhiriev/go-delta-sync/internal/config"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/internal/store"
	"github.com/MKhiriev/go-delta-sync/models"
)

type ClientServices struct {
	AuthService ClientAuthService
	Coordinator SyncCoordinator
	Syncers     []CollectionSyncer
	SyncJob     ClientSyncJob
}

// NewClientServices wires one collection syncer per replica table over the
// shared feed client and cursor store, and composes them into the session
// coordinator and the periodic sync job.
func NewClientServices(storages *store.ClientStorages, feedClient adapter.FeedClient, adapterCfg config.ClientAdapter, log *logger.Logger) *ClientServices {
	syncers := []CollectionSyncer{
		NewCollectionSyncer(models.CollectionTopics,
			adapter.NewCollectionFeed[models.Topic](feedClient, models.CollectionTopics),
			storages.Topics, storages.Cursors, log),
		NewCollectionSyncer(models.CollectionAuthors,
			adapter.NewCollectionFeed[models.Author](feedClient, models.CollectionAuthors),
			storages.Authors, storages.Cursors, log),
		NewCollectionSyncer(models.CollectionResources,
			adapter.NewCollectionFeed[models.Resource](feedClient, models.CollectionResources),
			storages.Resources, storages.Cursors, log),
	}

	coordinator := NewSyncCoordinator(log, syncers...)

	return &ClientServices{
		AuthService: NewClientAuthService(feedClient, adapterCfg, log),
		Coordinator: coordinator,
		Syncers:     syncers,
		SyncJob:     NewClientSyncJob(coordinator, log),
	}
}
