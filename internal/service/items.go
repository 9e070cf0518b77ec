// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Volkov

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ivolkoff/shopsync/internal/logger"
	"github.com/ivolkoff/shopsync/internal/store"
	"github.com/ivolkoff/shopsync/models"
)

// listService implements [ListService] over the local repository. Every
// mutation stamps the item needsSync so the next push cycle picks it up; the
// remote collection is never consulted here.
type listService struct {
	repo    store.ItemRepository
	nowFunc func() time.Time
}

func NewListService(repo store.ItemRepository) ListService {
	return &listService{repo: repo, nowFunc: time.Now}
}

func (s *listService) Items(ctx context.Context) ([]models.ShoppingItem, error) {
	items, err := s.repo.FetchItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching items: %w", err)
	}
	return items, nil
}

func (s *listService) Add(ctx context.Context, name string, quantity int, note *string) (models.ShoppingItem, error) {
	log := logger.FromContext(ctx)

	if err := validateItemInput(name, quantity); err != nil {
		return models.ShoppingItem{}, err
	}

	item := models.NewShoppingItem(newItemID(), strings.TrimSpace(name), quantity, note, s.nowFunc())
	if err := s.repo.Save(ctx, item); err != nil {
		return models.ShoppingItem{}, fmt.Errorf("error saving new item: %w", err)
	}

	log.Info().Str("func", "listService.Add").Str("item_id", item.ID).Msg("item added")
	return item, nil
}

func (s *listService) Update(ctx context.Context, id, name string, quantity int, note *string) (models.ShoppingItem, error) {
	log := logger.FromContext(ctx)

	if err := validateItemInput(name, quantity); err != nil {
		return models.ShoppingItem{}, err
	}

	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.ShoppingItem{}, fmt.Errorf("error loading item %s: %w", id, err)
	}

	item.Name = strings.TrimSpace(name)
	item.Quantity = quantity
	item.Note = note
	item.Touch(s.nowFunc())

	if err := s.repo.Save(ctx, item); err != nil {
		return models.ShoppingItem{}, fmt.Errorf("error saving item %s: %w", id, err)
	}

	log.Info().Str("func", "listService.Update").Str("item_id", id).Msg("item updated")
	return item, nil
}

func (s *listService) ToggleBought(ctx context.Context, id string) (models.ShoppingItem, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.ShoppingItem{}, fmt.Errorf("error loading item %s: %w", id, err)
	}

	item.IsBought = !item.IsBought
	item.Touch(s.nowFunc())

	if err := s.repo.Save(ctx, item); err != nil {
		return models.ShoppingItem{}, fmt.Errorf("error saving item %s: %w", id, err)
	}
	return item, nil
}

func (s *listService) Remove(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("error loading item %s: %w", id, err)
	}

	if err := s.repo.Delete(ctx, item); err != nil {
		return fmt.Errorf("error deleting item %s: %w", id, err)
	}

	log.Info().Str("func", "listService.Remove").Str("item_id", id).Msg("item removed")
	return nil
}

func validateItemInput(name string, quantity int) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// newItemID prefers time-ordered UUIDv7 so locally created rows sort by
// creation; v7 can fail only when the entropy source does, in which case v4
// is good enough.
func newItemID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
