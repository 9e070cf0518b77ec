// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Volkov

// Package remote provides the transport layer for talking to the remote
// items service.
//
// The primary abstraction is [Client], which decouples the sync engine from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPClient]).
//
// Error values defined in errors.go are mapped from transport failures and
// HTTP status codes so that callers can use [errors.Is]/[errors.As] for
// transport-agnostic handling, and [IsRetryable] to drive retry policy.
// The client itself never retries; that is the sync engine's job.
package remote

import (
	"context"

	"github.com/ivolkoff/shopsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_mock.go -package=mock

// Client defines stateless CRUD against the remote items collection.
// Implementations are responsible for serialisation and for mapping
// transport-level failures to the error taxonomy in this package.
type Client interface {
	// FetchAll returns every record in the remote collection.
	FetchAll(ctx context.Context) ([]models.ShoppingItemDTO, error)

	// Create adds a new record to the remote collection and returns the
	// created record as the server stored it.
	Create(ctx context.Context, dto models.ShoppingItemDTO) (models.ShoppingItemDTO, error)

	// Update overwrites the remote record with the same id and returns the
	// updated record.
	Update(ctx context.Context, dto models.ShoppingItemDTO) (models.ShoppingItemDTO, error)

	// Delete removes the record with the given id from the remote
	// collection. Any 2xx response counts as success.
	Delete(ctx context.Context, id string) error
}
