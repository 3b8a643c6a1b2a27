package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/BruksfildServices01/store-reservations/internal/infra/kv"
)

func TestGetSet(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.Get(ctx, "reservations"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	value := []byte(`[]`)
	if err := s.Set(ctx, "reservations", value); err != nil {
		t.Fatalf("set: %v", err)
	}
	value[0] = 'x'

	got, err := s.Get(ctx, "reservations")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("stored value aliased caller slice: %q", got)
	}
}
