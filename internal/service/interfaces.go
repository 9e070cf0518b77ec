// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Volkov

// Package service holds the client-side application services: the
// caller-facing list operations, the sync engine that drives the push/pull
// cycle against the remote collection, the status stream consumed by the UI,
// and the ticker-driven background sync job.
package service

import (
	"context"
	"time"

	"github.com/ivolkoff/shopsync/models"
)

// ListService is the caller-facing surface for the shopping list. It
// validates input, stamps timestamps and sync metadata, and delegates
// persistence to the local store. All reads come from the local store only;
// the remote collection is reconciled separately by [SyncEngine].
type ListService interface {
	// Items returns all items that are not soft-deleted.
	Items(ctx context.Context) ([]models.ShoppingItem, error)

	// Add validates name and quantity, creates the item in needsSync state
	// and persists it. Returns [ErrEmptyName] or [ErrInvalidQuantity]
	// without touching storage when validation fails.
	Add(ctx context.Context, name string, quantity int, note *string) (models.ShoppingItem, error)

	// Update validates and applies new field values to an existing item,
	// queueing it for the next push.
	Update(ctx context.Context, id, name string, quantity int, note *string) (models.ShoppingItem, error)

	// ToggleBought flips the bought flag, queueing the item for the next
	// push.
	ToggleBought(ctx context.Context, id string) (models.ShoppingItem, error)

	// Remove soft-deletes the item so the deletion propagates on the next
	// push.
	Remove(ctx context.Context, id string) error
}

// SyncEngine drives full synchronization cycles between the local store and
// the remote collection and broadcasts progress on the status stream.
type SyncEngine interface {
	// Synchronize runs one full cycle: push local changes, then pull and
	// merge remote ones. Status transitions are broadcast throughout; a
	// systemic failure is both broadcast and returned.
	Synchronize(ctx context.Context) error

	// PushLocalChanges sends every dirty record to the remote collection
	// and returns the number of records confirmed pushed. Per-record push
	// failures mark the record failed but do not abort the rest.
	PushLocalChanges(ctx context.Context) (int, error)

	// PullRemoteChanges fetches the remote collection and merges it into
	// the local store using last-write-wins.
	PullRemoteChanges(ctx context.Context) error
}

// SyncJob periodically runs full sync cycles in the background.
type SyncJob interface {
	// Start launches the background loop with the given interval. A
	// previously running loop is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background loop and waits for it to exit. Safe to
	// call when the job is not running.
	Stop()
}
