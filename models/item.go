package models

import "time"

// SyncStatus describes where a shopping item stands in the push/pull cycle.
type SyncStatus string

const (
	// SyncStatusSynced means the remote copy is confirmed up to date.
	SyncStatusSynced SyncStatus = "synced"
	// SyncStatusNeedsSync means the item has local changes not yet pushed.
	SyncStatusNeedsSync SyncStatus = "needsSync"
	// SyncStatusSyncing means the item is part of an in-flight push.
	SyncStatusSyncing SyncStatus = "syncing"
	// SyncStatusFailed means the last push attempt exhausted its retries.
	SyncStatusFailed SyncStatus = "failed"
)

// ShoppingItem is a single list entry together with the sync metadata the
// local store needs to track it against the remote collection. ID is assigned
// at creation and is the join key between the local and remote copies.
type ShoppingItem struct {
	ID           string
	Name         string
	Quantity     int
	Note         *string
	IsBought     bool
	CreatedAt    time.Time
	ModifiedAt   time.Time
	SyncStatus   SyncStatus
	LastSyncedAt *time.Time
	IsDeleted    bool
}

// NewShoppingItem builds a fresh item in needsSync state so the next push
// picks it up.
func NewShoppingItem(id, name string, quantity int, note *string, now time.Time) ShoppingItem {
	return ShoppingItem{
		ID:         id,
		Name:       name,
		Quantity:   quantity,
		Note:       note,
		CreatedAt:  now,
		ModifiedAt: now,
		SyncStatus: SyncStatusNeedsSync,
	}
}

// Touch records a local mutation: ModifiedAt is refreshed and the item is
// queued for the next push regardless of its previous status.
func (i *ShoppingItem) Touch(now time.Time) {
	i.ModifiedAt = now
	i.SyncStatus = SyncStatusNeedsSync
}

// MarkDeleted soft-deletes the item. The row stays in storage so the deletion
// can propagate to the remote collection on the next push.
func (i *ShoppingItem) MarkDeleted(now time.Time) {
	i.IsDeleted = true
	i.Touch(now)
}

// NeverSynced reports whether the item has never been confirmed on the
// remote side. The push path uses it to choose between create and update.
func (i *ShoppingItem) NeverSynced() bool {
	return i.LastSyncedAt == nil
}
