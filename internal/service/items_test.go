package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ivolkoff/shopsync/internal/mock"
	"github.com/ivolkoff/shopsync/internal/store"
	"github.com/ivolkoff/shopsync/models"
)

func newTestListSvc(t *testing.T, ctrl *gomock.Controller) (*listService, *mock.MockItemRepository) {
	t.Helper()

	mockRepo := mock.NewMockItemRepository(ctrl)
	svc := NewListService(mockRepo).(*listService)
	svc.nowFunc = func() time.Time {
		return time.Date(2026, 8, 21, 12, 0, 0, 0, time.UTC)
	}
	return svc, mockRepo
}

func TestListService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestListSvc(t, ctrl)
	ctx := context.Background()

	var saved models.ShoppingItem
	mockRepo.EXPECT().Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, item models.ShoppingItem) error {
			saved = item
			return nil
		})

	item, err := svc.Add(ctx, "  Milk  ", 2, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Milk", item.Name)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, models.SyncStatusNeedsSync, item.SyncStatus)
	assert.Equal(t, item.CreatedAt, item.ModifiedAt)
	assert.Nil(t, item.LastSyncedAt)
	assert.Equal(t, item, saved)
}

func TestListService_Add_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestListSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Add(ctx, "   ", 1, nil)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = svc.Add(ctx, "Milk", 0, nil)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.Add(ctx, "Milk", -3, nil)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestListService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestListSvc(t, ctrl)
	ctx := context.Background()

	existing := models.NewShoppingItem("id-1", "Milk", 1, nil, time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC))
	existing.SyncStatus = models.SyncStatusSynced

	note := "lactose free"
	mockRepo.EXPECT().Get(ctx, "id-1").Return(existing, nil)
	mockRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	item, err := svc.Update(ctx, "id-1", "Oat milk", 3, &note)
	require.NoError(t, err)

	assert.Equal(t, "Oat milk", item.Name)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, &note, item.Note)
	assert.Equal(t, models.SyncStatusNeedsSync, item.SyncStatus)
	assert.True(t, item.ModifiedAt.After(existing.ModifiedAt))
	assert.Equal(t, existing.CreatedAt, item.CreatedAt)
}

func TestListService_Update_UnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestListSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().Get(ctx, "ghost").Return(models.ShoppingItem{}, store.ErrItemNotFound)

	_, err := svc.Update(ctx, "ghost", "Milk", 1, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestListService_ToggleBought(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestListSvc(t, ctrl)
	ctx := context.Background()

	existing := models.NewShoppingItem("id-1", "Milk", 1, nil, time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC))
	existing.SyncStatus = models.SyncStatusSynced

	mockRepo.EXPECT().Get(ctx, "id-1").Return(existing, nil)
	mockRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	item, err := svc.ToggleBought(ctx, "id-1")
	require.NoError(t, err)

	assert.True(t, item.IsBought)
	assert.Equal(t, models.SyncStatusNeedsSync, item.SyncStatus)
}

func TestListService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestListSvc(t, ctrl)
	ctx := context.Background()

	existing := models.NewShoppingItem("id-1", "Milk", 1, nil, time.Now())

	mockRepo.EXPECT().Get(ctx, "id-1").Return(existing, nil)
	mockRepo.EXPECT().Delete(ctx, existing).Return(nil)

	require.NoError(t, svc.Remove(ctx, "id-1"))
}

func TestListService_Items_PropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestListSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("db closed")
	mockRepo.EXPECT().FetchItems(ctx).Return(nil, dbErr)

	_, err := svc.Items(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}
