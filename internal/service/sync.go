// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Volkov

package service

import (
	"context"
	"fmt"

	"github.com/ivolkoff/shopsync/internal/logger"
	"github.com/ivolkoff/shopsync/internal/remote"
	"github.com/ivolkoff/shopsync/internal/store"
	"github.com/ivolkoff/shopsync/models"
)

// syncEngine implements [SyncEngine] over the local repository and the remote
// HTTP client. One engine serves the whole process; cycles are expected to be
// run one at a time (the background job never overlaps them).
type syncEngine struct {
	repo   store.ItemRepository
	client remote.Client
	status *StatusBroadcaster
	policy RetryPolicy
}

// NewSyncEngine wires a sync engine. status may be shared with UI consumers;
// nil disables broadcasting.
func NewSyncEngine(repo store.ItemRepository, client remote.Client, status *StatusBroadcaster, policy RetryPolicy) SyncEngine {
	if status == nil {
		status = NewStatusBroadcaster()
	}
	return &syncEngine{
		repo:   repo,
		client: client,
		status: status,
		policy: policy,
	}
}

// Synchronize runs one push-then-pull cycle and reports it on the status
// stream: syncing first, then success with the pushed-record count or error
// with the failure, then idle.
func (s *syncEngine) Synchronize(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info().Str("func", "syncEngine.Synchronize").Msg("sync cycle started")

	s.status.Publish(SyncStatusEvent{State: SyncStateSyncing})

	pushed, err := s.PushLocalChanges(ctx)
	if err != nil {
		s.finish(SyncStatusEvent{State: SyncStateError, Err: err})
		return fmt.Errorf("error pushing local changes: %w", err)
	}

	if err := s.PullRemoteChanges(ctx); err != nil {
		s.finish(SyncStatusEvent{State: SyncStateError, Err: err})
		return fmt.Errorf("error pulling remote changes: %w", err)
	}

	log.Info().Str("func", "syncEngine.Synchronize").Int("pushed", pushed).Msg("sync cycle finished")
	s.finish(SyncStatusEvent{State: SyncStateSuccess, Processed: pushed})
	return nil
}

// finish publishes the terminal event of a cycle followed by the return to
// idle.
func (s *syncEngine) finish(event SyncStatusEvent) {
	s.status.Publish(event)
	s.status.Publish(SyncStatusEvent{State: SyncStateIdle})
}

// PushLocalChanges sends every needsSync and failed record to the remote
// collection. Records are bulk-marked syncing up front; each record is pushed
// independently with retries, so one stubborn record does not block the rest.
// Records confirmed by the server are bulk-marked synced, the rest are marked
// failed and picked up again on the next cycle.
func (s *syncEngine) PushLocalChanges(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	dirty, err := s.repo.ItemsNeedingSync(ctx)
	if err != nil {
		return 0, fmt.Errorf("error listing items needing sync: %w", err)
	}
	if len(dirty) == 0 {
		log.Debug().Str("func", "syncEngine.PushLocalChanges").Msg("nothing to push")
		return 0, nil
	}

	if err := s.repo.UpdateSyncStatus(ctx, dirty, models.SyncStatusSyncing); err != nil {
		return 0, fmt.Errorf("error marking items syncing: %w", err)
	}

	var succeeded, failed []models.ShoppingItem
	for _, item := range dirty {
		if err := s.pushItem(ctx, item); err != nil {
			log.Warn().Err(err).
				Str("func", "syncEngine.PushLocalChanges").
				Str("item_id", item.ID).
				Msg("push failed for item")
			failed = append(failed, item)
			continue
		}
		succeeded = append(succeeded, item)
	}

	if len(succeeded) > 0 {
		if err := s.repo.MarkItemsAsSynced(ctx, succeeded); err != nil {
			return 0, fmt.Errorf("error marking items synced: %w", err)
		}
	}
	if len(failed) > 0 {
		if err := s.repo.UpdateSyncStatus(ctx, failed, models.SyncStatusFailed); err != nil {
			return 0, fmt.Errorf("error marking items failed: %w", err)
		}
	}

	log.Info().
		Str("func", "syncEngine.PushLocalChanges").
		Int("pushed", len(succeeded)).
		Int("failed", len(failed)).
		Msg("push finished")

	return len(succeeded), nil
}

// pushItem sends one record using the operation its state calls for:
// soft-deleted records become remote deletes, records never confirmed on the
// server become creates, everything else becomes updates.
func (s *syncEngine) pushItem(ctx context.Context, item models.ShoppingItem) error {
	switch {
	case item.IsDeleted:
		return doWithRetry(ctx, s.policy, remote.IsRetryable, func(ctx context.Context) error {
			return s.client.Delete(ctx, item.ID)
		})
	case item.NeverSynced():
		_, err := withRetry(ctx, s.policy, remote.IsRetryable, func(ctx context.Context) (models.ShoppingItemDTO, error) {
			return s.client.Create(ctx, item.ToDTO())
		})
		return err
	default:
		_, err := withRetry(ctx, s.policy, remote.IsRetryable, func(ctx context.Context) (models.ShoppingItemDTO, error) {
			return s.client.Update(ctx, item.ToDTO())
		})
		return err
	}
}

// PullRemoteChanges fetches the full remote collection and merges it into the
// local store with last-write-wins on the modification timestamp.
func (s *syncEngine) PullRemoteChanges(ctx context.Context) error {
	log := logger.FromContext(ctx)

	dtos, err := withRetry(ctx, s.policy, remote.IsRetryable, func(ctx context.Context) ([]models.ShoppingItemDTO, error) {
		return s.client.FetchAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("error fetching remote items: %w", err)
	}

	items := make([]models.ShoppingItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := dto.ToItem()
		if err != nil {
			return fmt.Errorf("error decoding remote item %s: %w", dto.ID, err)
		}
		items = append(items, item)
	}

	if err := s.repo.MergeRemoteItems(ctx, items); err != nil {
		return fmt.Errorf("error merging remote items: %w", err)
	}

	log.Info().
		Str("func", "syncEngine.PullRemoteChanges").
		Int("fetched", len(items)).
		Msg("pull finished")

	return nil
}
