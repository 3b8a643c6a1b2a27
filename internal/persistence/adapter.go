// Package persistence saves and restores the reservation list as a single
// JSON blob in a key/value store. Products are never persisted.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/store-reservations/internal/infra/kv"
	"github.com/BruksfildServices01/store-reservations/internal/models"
)

const DefaultKey = "reservations"

type Adapter struct {
	store kv.Store
	key   string
}

func New(store kv.Store, key string) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	return &Adapter{store: store, key: key}
}

// Load returns the saved reservations. Missing or unreadable data yields an
// empty list; the reason is logged, never returned.
func (a *Adapter) Load(ctx context.Context) []models.Reservation {
	raw, err := a.store.Get(ctx, a.key)
	if errors.Is(err, kv.ErrNotFound) {
		return []models.Reservation{}
	}
	if err != nil {
		zap.L().Warn("failed to read saved reservations", zap.String("key", a.key), zap.Error(err))
		return []models.Reservation{}
	}

	var out []models.Reservation
	if err := json.Unmarshal(raw, &out); err != nil {
		zap.L().Warn("saved reservations are malformed, starting empty", zap.String("key", a.key), zap.Error(err))
		return []models.Reservation{}
	}
	if out == nil {
		out = []models.Reservation{}
	}
	return out
}

// Save overwrites the stored list with list.
func (a *Adapter) Save(ctx context.Context, list []models.Reservation) error {
	if list == nil {
		list = []models.Reservation{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode reservations: %w", err)
	}
	return a.store.Set(ctx, a.key, b)
}
