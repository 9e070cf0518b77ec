package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ivolkoff/shopsync/internal/logger"
	"github.com/ivolkoff/shopsync/models"
)

type itemRepository struct {
	*DB
	logger *logger.Logger
}

func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *itemRepository) FetchItems(ctx context.Context) ([]models.ShoppingItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, fetchItems)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.FetchItems").
			Msg("failed to execute query for fetching items")
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *itemRepository) Get(ctx context.Context, id string) (models.ShoppingItem, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getItem, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ShoppingItem{}, fmt.Errorf("%w (id=%s)", ErrItemNotFound, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.Get").
			Str("id", id).
			Msg("failed to scan item row")
		return models.ShoppingItem{}, fmt.Errorf("failed to scan item row: %w", err)
	}

	return item, nil
}

func (r *itemRepository) Save(ctx context.Context, item models.ShoppingItem) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertItem,
		item.ID,
		item.Name,
		item.Quantity,
		noteValue(item.Note),
		item.IsBought,
		item.CreatedAt,
		item.ModifiedAt,
		string(item.SyncStatus),
		lastSyncedValue(item.LastSyncedAt),
		item.IsDeleted,
	)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.Save").
			Str("id", item.ID).
			Msg("failed to execute upsert for item")
		return fmt.Errorf("failed to save item (id=%s): %w", item.ID, err)
	}

	return nil
}

func (r *itemRepository) Delete(ctx context.Context, item models.ShoppingItem) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, softDeleteItem,
		time.Now(),
		string(models.SyncStatusNeedsSync),
		item.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.Delete").
			Str("id", item.ID).
			Msg("failed to execute soft delete for item")
		return fmt.Errorf("failed to delete item (id=%s): %w", item.ID, err)
	}

	return nil
}

func (r *itemRepository) ItemsNeedingSync(ctx context.Context) ([]models.ShoppingItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, itemsNeedingSync,
		string(models.SyncStatusNeedsSync),
		string(models.SyncStatusFailed),
	)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.ItemsNeedingSync").
			Msg("failed to execute query for items needing sync")
		return nil, fmt.Errorf("failed to query items needing sync: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *itemRepository) MarkItemsAsSynced(ctx context.Context, items []models.ShoppingItem) error {
	if len(items) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildMarkSyncedQuery(collectIDs(items), time.Now())
	if err != nil {
		return fmt.Errorf("failed to build mark-synced query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "itemRepository.MarkItemsAsSynced").
			Int("count", len(items)).
			Msg("failed to execute bulk mark-synced update")
		return fmt.Errorf("failed to mark items as synced: %w", err)
	}

	return nil
}

func (r *itemRepository) UpdateSyncStatus(ctx context.Context, items []models.ShoppingItem, status models.SyncStatus) error {
	if len(items) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateStatusQuery(collectIDs(items), status)
	if err != nil {
		return fmt.Errorf("failed to build status update query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "itemRepository.UpdateSyncStatus").
			Str("status", string(status)).
			Int("count", len(items)).
			Msg("failed to execute bulk status update")
		return fmt.Errorf("failed to update sync status: %w", err)
	}

	return nil
}

func (r *itemRepository) MergeRemoteItems(ctx context.Context, items []models.ShoppingItem) error {
	if len(items) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin merge transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for _, remote := range items {
		if err = r.mergeOne(ctx, tx, remote, now); err != nil {
			log.Err(err).
				Str("func", "itemRepository.MergeRemoteItems").
				Str("id", remote.ID).
				Msg("failed to merge remote item")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit merge transaction: %w", err)
	}

	return nil
}

// mergeOne applies last-write-wins for a single remote record. The comparison
// is strictly greater-than: on equal timestamps the local row is kept.
func (r *itemRepository) mergeOne(ctx context.Context, tx *sql.Tx, remote models.ShoppingItem, now time.Time) error {
	var localModifiedAt time.Time
	err := tx.QueryRowContext(ctx, getItemModifiedAt, remote.ID).Scan(&localModifiedAt)

	if errors.Is(err, sql.ErrNoRows) {
		_, err = tx.ExecContext(ctx, upsertItem,
			remote.ID,
			remote.Name,
			remote.Quantity,
			noteValue(remote.Note),
			remote.IsBought,
			remote.CreatedAt,
			remote.ModifiedAt,
			string(models.SyncStatusSynced),
			now,
			remote.IsDeleted,
		)
		if err != nil {
			return fmt.Errorf("failed to insert remote item (id=%s): %w", remote.ID, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load local modified_at (id=%s): %w", remote.ID, err)
	}

	if !remote.ModifiedAt.After(localModifiedAt) {
		return nil
	}

	_, err = tx.ExecContext(ctx, mergeOverwriteItem,
		remote.Name,
		remote.Quantity,
		noteValue(remote.Note),
		remote.IsBought,
		remote.IsDeleted,
		remote.ModifiedAt,
		string(models.SyncStatusSynced),
		now,
		remote.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to overwrite local item (id=%s): %w", remote.ID, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (models.ShoppingItem, error) {
	var (
		item         models.ShoppingItem
		note         sql.NullString
		status       string
		lastSyncedAt sql.NullTime
	)

	err := s.Scan(
		&item.ID,
		&item.Name,
		&item.Quantity,
		&note,
		&item.IsBought,
		&item.CreatedAt,
		&item.ModifiedAt,
		&status,
		&lastSyncedAt,
		&item.IsDeleted,
	)
	if err != nil {
		return models.ShoppingItem{}, err
	}

	if note.Valid {
		item.Note = &note.String
	}
	if lastSyncedAt.Valid {
		item.LastSyncedAt = &lastSyncedAt.Time
	}
	item.SyncStatus = models.SyncStatus(status)

	return item, nil
}

func scanItems(rows *sql.Rows) ([]models.ShoppingItem, error) {
	var items []models.ShoppingItem

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", rowsErr)
	}

	return items, nil
}

func collectIDs(items []models.ShoppingItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func noteValue(note *string) any {
	if note == nil {
		return nil
	}
	return *note
}

func lastSyncedValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
