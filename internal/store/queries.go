// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Volkov

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ivolkoff/shopsync/models"
)

const (
	fetchItems = `
		SELECT
			id,
			name,
			quantity,
			note,
			is_bought,
			created_at,
			modified_at,
			sync_status,
			last_synced_at,
			is_deleted
		FROM items
		WHERE is_deleted = FALSE
		ORDER BY created_at;`

	getItem = `
		SELECT
			id,
			name,
			quantity,
			note,
			is_bought,
			created_at,
			modified_at,
			sync_status,
			last_synced_at,
			is_deleted
		FROM items
		WHERE id = ?;`

	itemsNeedingSync = `
		SELECT
			id,
			name,
			quantity,
			note,
			is_bought,
			created_at,
			modified_at,
			sync_status,
			last_synced_at,
			is_deleted
		FROM items
		WHERE sync_status IN (?, ?)
		ORDER BY created_at;`

	upsertItem = `
		INSERT INTO items (
			id,
			name,
			quantity,
			note,
			is_bought,
			created_at,
			modified_at,
			sync_status,
			last_synced_at,
			is_deleted
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name           = excluded.name,
			quantity       = excluded.quantity,
			note           = excluded.note,
			is_bought      = excluded.is_bought,
			modified_at    = excluded.modified_at,
			sync_status    = excluded.sync_status,
			last_synced_at = excluded.last_synced_at,
			is_deleted     = excluded.is_deleted;`

	softDeleteItem = `
		UPDATE items SET
			is_deleted  = TRUE,
			modified_at = ?,
			sync_status = ?
		WHERE id = ?;`

	getItemModifiedAt = `
		SELECT modified_at
		FROM items
		WHERE id = ?;`

	mergeOverwriteItem = `
		UPDATE items SET
			name           = ?,
			quantity       = ?,
			note           = ?,
			is_bought      = ?,
			is_deleted     = ?,
			modified_at    = ?,
			sync_status    = ?,
			last_synced_at = ?
		WHERE id = ?;`
)

// Bulk status updates carry a variable-length id list, so the statements are
// built with squirrel instead of hand-counting placeholders.

func buildMarkSyncedQuery(ids []string, syncedAt time.Time) (string, []any, error) {
	return sq.Update("items").
		Set("sync_status", string(models.SyncStatusSynced)).
		Set("last_synced_at", syncedAt).
		Where(sq.Eq{"id": ids}).
		ToSql()
}

func buildUpdateStatusQuery(ids []string, status models.SyncStatus) (string, []any, error) {
	return sq.Update("items").
		Set("sync_status", string(status)).
		Where(sq.Eq{"id": ids}).
		ToSql()
}
