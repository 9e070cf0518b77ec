// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Volkov

// Package store implements the client-side local store for shopping items:
// a SQLite database that is the single source of truth for the UI and the
// change-tracking substrate for the sync engine.
//
// Records are soft-deleted only; a deleted row stays in place so the deletion
// can propagate to the remote collection on the next push. Synced,
// soft-deleted rows are never purged (known limitation, kept deliberately).
package store

import (
	"context"

	"github.com/ivolkoff/shopsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ItemRepository is the local shopping-item repository.
type ItemRepository interface {
	// FetchItems returns all items that are not soft-deleted. Ordering is a
	// consistent snapshot by creation time; callers re-sort for display.
	FetchItems(ctx context.Context) ([]models.ShoppingItem, error)

	// Get returns the item with the given id, soft-deleted or not.
	// Returns [ErrItemNotFound] if the id is unknown.
	Get(ctx context.Context, id string) (models.ShoppingItem, error)

	// Save inserts the item if its id is unseen, otherwise overwrites the
	// stored row in place. Save does not touch SyncStatus by itself; callers
	// set it before saving.
	Save(ctx context.Context, item models.ShoppingItem) error

	// Delete soft-deletes the item: sets is_deleted, bumps modified_at and
	// queues the row for the next push. The row is not removed from storage.
	Delete(ctx context.Context, item models.ShoppingItem) error

	// ItemsNeedingSync returns all items whose status is needsSync or failed.
	ItemsNeedingSync(ctx context.Context) ([]models.ShoppingItem, error)

	// MarkItemsAsSynced bulk-marks the given items synced and stamps their
	// last_synced_at.
	MarkItemsAsSynced(ctx context.Context, items []models.ShoppingItem) error

	// UpdateSyncStatus bulk-sets the sync status of the given items. Used to
	// mark records syncing before a push and failed after exhausted retries.
	UpdateSyncStatus(ctx context.Context, items []models.ShoppingItem, status models.SyncStatus) error

	// MergeRemoteItems merges records fetched from the remote collection
	// using last-write-wins on modified_at. Unknown ids are inserted marked
	// synced; known ids are overwritten and marked synced only when the
	// remote timestamp is strictly newer. The local row wins ties.
	MergeRemoteItems(ctx context.Context, items []models.ShoppingItem) error
}
