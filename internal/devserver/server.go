// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Volkov

// Package devserver is a minimal in-memory implementation of the remote
// items service. It exists for local development and end-to-end tests; it
// keeps no durable state and applies no merge logic of its own, the server
// copy is simply the last write it received.
package devserver

import (
	"encoding/json"
	"net/http"
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ivolkoff/shopsync/internal/logger"
	"github.com/ivolkoff/shopsync/models"
)

// Server holds the in-memory items collection behind a chi router.
type Server struct {
	mu     sync.RWMutex
	items  map[string]models.ShoppingItemDTO
	logger *logger.Logger
}

func NewServer(log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		items:  make(map[string]models.ShoppingItemDTO),
		logger: log,
	}
}

// Router builds the HTTP surface the client transport expects.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/items", func(r chi.Router) {
		r.Get("/", s.listItems)
		r.Post("/", s.createItem)
		r.Put("/{id}", s.updateItem)
		r.Delete("/{id}", s.deleteItem)
	})

	return r
}

// Seed replaces the stored collection. Test helper.
func (s *Server) Seed(items ...models.ShoppingItemDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]models.ShoppingItemDTO, len(items))
	for _, item := range items {
		s.items[item.ID] = item
	}
}

// Items returns a snapshot of the stored collection ordered by id. Test
// helper.
func (s *Server) Items() []models.ShoppingItemDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ShoppingItemDTO, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Items())
}

func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	var dto models.ShoppingItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if dto.ID == "" {
		http.Error(w, "item id is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.items[dto.ID] = dto
	s.mu.Unlock()

	s.logger.Debug().Str("func", "Server.createItem").Str("item_id", dto.ID).Msg("item stored")
	s.writeJSON(w, http.StatusCreated, dto)
}

func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var dto models.ShoppingItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	dto.ID = id

	s.mu.Lock()
	_, exists := s.items[id]
	if exists {
		s.items[id] = dto
	}
	s.mu.Unlock()

	if !exists {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	s.writeJSON(w, http.StatusOK, dto)
}

// deleteItem is idempotent: deleting an id the server never saw still
// succeeds, so a client removing a never-pushed record does not get stuck
// retrying.
func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Str("func", "Server.writeJSON").Msg("response encoding failed")
	}
}
