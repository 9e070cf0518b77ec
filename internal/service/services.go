package service

import (
	"github.com/ivolkoff/shopsync/internal/config"
	"github.com/ivolkoff/shopsync/internal/remote"
	"github.com/ivolkoff/shopsync/internal/store"
)

// Services groups the client-side application services.
type Services struct {
	List   ListService
	Sync   SyncEngine
	Status *StatusBroadcaster
	Job    SyncJob
}

func NewServices(storages *store.Storages, client remote.Client, cfg config.ClientSync) *Services {
	status := NewStatusBroadcaster()

	policy := RetryPolicy{
		MaxAttempts:   cfg.MaxAttempts,
		BaseDelay:     cfg.RetryBaseDelay,
		JitterPercent: 30,
	}
	if policy.MaxAttempts < 1 {
		policy = DefaultRetryPolicy()
	}

	engine := NewSyncEngine(storages.Items, client, status, policy)

	return &Services{
		List:   NewListService(storages.Items),
		Sync:   engine,
		Status: status,
		Job:    NewSyncJob(engine),
	}
}
