package models

import (
	"fmt"
	"time"
)

// ShoppingItemDTO is the wire representation of a [ShoppingItem]. Timestamps
// travel as RFC 3339 strings so the encoding is stable across platforms.
// SyncStatus and LastSyncedAt are purely local bookkeeping and never leave
// the device.
type ShoppingItemDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Note       *string `json:"note"`
	IsBought   bool    `json:"isBought"`
	CreatedAt  string  `json:"createdAt"`
	ModifiedAt string  `json:"modifiedAt"`
	IsDeleted  bool    `json:"isDeleted"`
}

// ToDTO converts the item to its wire form.
func (i ShoppingItem) ToDTO() ShoppingItemDTO {
	return ShoppingItemDTO{
		ID:         i.ID,
		Name:       i.Name,
		Quantity:   i.Quantity,
		Note:       i.Note,
		IsBought:   i.IsBought,
		CreatedAt:  i.CreatedAt.UTC().Format(time.RFC3339Nano),
		ModifiedAt: i.ModifiedAt.UTC().Format(time.RFC3339Nano),
		IsDeleted:  i.IsDeleted,
	}
}

// ToItem converts a DTO received from the remote collection back to a domain
// item. The result is marked synced: a record coming off the wire is by
// definition the remote's confirmed state. Returns an error if either
// timestamp is not valid RFC 3339.
func (d ShoppingItemDTO) ToItem() (ShoppingItem, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, d.CreatedAt)
	if err != nil {
		return ShoppingItem{}, fmt.Errorf("parse createdAt for item %s: %w", d.ID, err)
	}
	modifiedAt, err := time.Parse(time.RFC3339Nano, d.ModifiedAt)
	if err != nil {
		return ShoppingItem{}, fmt.Errorf("parse modifiedAt for item %s: %w", d.ID, err)
	}

	return ShoppingItem{
		ID:         d.ID,
		Name:       d.Name,
		Quantity:   d.Quantity,
		Note:       d.Note,
		IsBought:   d.IsBought,
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		SyncStatus: SyncStatusSynced,
		IsDeleted:  d.IsDeleted,
	}, nil
}
