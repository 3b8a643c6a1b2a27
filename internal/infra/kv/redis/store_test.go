package redis

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/store-reservations/internal/infra/kv"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := NewClient(addr, os.Getenv("REDIS_PASSWORD"))
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}

	s := New(client)
	key := "test:reservations:" + uuid.NewString()
	defer client.Del(ctx, key)

	if _, err := s.Get(ctx, key); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := s.Set(ctx, key, []byte(`[{"id":"r1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.Get(ctx, key)
	if err != nil || string(got) != `[{"id":"r1"}]` {
		t.Fatalf("get = %q, %v", got, err)
	}
}
