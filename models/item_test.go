package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShoppingItem_StartsDirty(t *testing.T) {
	now := time.Now()
	item := NewShoppingItem("id-1", "Milk", 1, nil, now)

	assert.Equal(t, SyncStatusNeedsSync, item.SyncStatus)
	assert.Equal(t, now, item.CreatedAt)
	assert.Equal(t, now, item.ModifiedAt)
	assert.Nil(t, item.LastSyncedAt)
	assert.True(t, item.NeverSynced())
	assert.False(t, item.IsDeleted)
}

func TestTouch_FlipsSyncedBackToDirty(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	item := NewShoppingItem("id-1", "Milk", 1, nil, created)

	syncedAt := time.Now().Add(-time.Minute)
	item.SyncStatus = SyncStatusSynced
	item.LastSyncedAt = &syncedAt

	now := time.Now()
	item.Touch(now)

	assert.Equal(t, SyncStatusNeedsSync, item.SyncStatus)
	assert.Equal(t, now, item.ModifiedAt)
	assert.False(t, item.ModifiedAt.Before(item.CreatedAt))
	// LastSyncedAt keeps recording the last confirmed sync.
	assert.NotNil(t, item.LastSyncedAt)
	assert.False(t, item.NeverSynced())
}

func TestMarkDeleted_KeepsRecordAndQueuesPush(t *testing.T) {
	item := NewShoppingItem("id-1", "Milk", 1, nil, time.Now().Add(-time.Hour))
	item.SyncStatus = SyncStatusSynced

	now := time.Now()
	item.MarkDeleted(now)

	assert.True(t, item.IsDeleted)
	assert.Equal(t, SyncStatusNeedsSync, item.SyncStatus)
	assert.Equal(t, now, item.ModifiedAt)
}

func TestDTORoundTrip(t *testing.T) {
	note := "2% fat"
	created := time.Date(2026, 8, 20, 10, 0, 0, 123456789, time.UTC)
	modified := created.Add(5 * time.Minute)

	item := ShoppingItem{
		ID:         "id-1",
		Name:       "Milk",
		Quantity:   2,
		Note:       &note,
		IsBought:   true,
		CreatedAt:  created,
		ModifiedAt: modified,
		SyncStatus: SyncStatusNeedsSync,
		IsDeleted:  true,
	}

	got, err := item.ToDTO().ToItem()
	require.NoError(t, err)

	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, item.Name, got.Name)
	assert.Equal(t, item.Quantity, got.Quantity)
	require.NotNil(t, got.Note)
	assert.Equal(t, note, *got.Note)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.True(t, got.ModifiedAt.Equal(modified))
	assert.True(t, got.IsDeleted)
	// Anything that came off the wire is the remote's confirmed state.
	assert.Equal(t, SyncStatusSynced, got.SyncStatus)
}

func TestToItem_RejectsBadTimestamps(t *testing.T) {
	dto := ShoppingItemDTO{ID: "id-1", CreatedAt: "yesterday", ModifiedAt: "2026-08-20T10:00:00Z"}
	_, err := dto.ToItem()
	require.Error(t, err)

	dto = ShoppingItemDTO{ID: "id-1", CreatedAt: "2026-08-20T10:00:00Z", ModifiedAt: ""}
	_, err = dto.ToItem()
	require.Error(t, err)
}
