package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/store-reservations/internal/infra/kv"
	"github.com/BruksfildServices01/store-reservations/internal/models"
)

func TestPostgresStoreUpsert(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Skipf("postgres unavailable: %v", err)
	}
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	s := New(db)
	ctx := context.Background()
	key := "test-" + uuid.NewString()
	defer db.Where("key = ?", key).Delete(&models.KVEntry{})

	if _, err := s.Get(ctx, key); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	for _, v := range []string{`[]`, `[{"id":"r1"}]`} {
		if err := s.Set(ctx, key, []byte(v)); err != nil {
			t.Fatalf("set: %v", err)
		}
	}
	got, err := s.Get(ctx, key)
	if err != nil || string(got) != `[{"id":"r1"}]` {
		t.Fatalf("get = %q, %v", got, err)
	}
}
