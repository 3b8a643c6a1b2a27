package persistence

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/BruksfildServices01/store-reservations/internal/infra/kv/memory"
	"github.com/BruksfildServices01/store-reservations/internal/models"
)

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) { return nil, errors.New("boom") }
func (failingStore) Set(context.Context, string, []byte) error   { return errors.New("boom") }

func sample() []models.Reservation {
	at := time.Date(2024, 5, 1, 10, 30, 0, 125_000_000, time.UTC)
	return []models.Reservation{
		{
			ID: "a1", ProductID: "1", FullName: "Ana Silva", Phone: "912345678",
			Address: "Rua X", Email: "ana@x.pt", ReservationNumber: "RES-ABC123",
			CreatedAt: at, Status: "pending", SelectedSize: "M", SelectedColor: "Azul",
		},
		{
			ID: "b2", ProductID: "2", FullName: "Rui Costa", Phone: "913000000",
			Address: "Av. Y", Email: "rui@y.pt", ReservationNumber: "RES-XYZ789",
			CreatedAt: at.Add(time.Hour), Status: "canceled",
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	a := New(memory.New(), "")

	want := sample()
	if err := a.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := a.Load(ctx)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestSaveUsesLegacyFieldNames(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	a := New(store, "reservations")

	if err := a.Save(ctx, sample()[:1]); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _ := store.Get(ctx, "reservations")
	for _, field := range []string{`"girlfriendName":"Rua X"`, `"productId":"1"`, `"reservationNumber":"RES-ABC123"`, `"createdAt":"2024-05-01T10:30:00.125Z"`} {
		if !strings.Contains(string(raw), field) {
			t.Fatalf("saved blob %s missing %s", raw, field)
		}
	}
}

func TestLoadReadsBrowserSavedData(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	blob := `[{"id":"k3j2","productId":"4","fullName":"Maria","phone":"91","girlfriendName":"Rua Z","email":"m@z.pt","reservationNumber":"RES-Q1W2E3","createdAt":"2024-06-01T09:00:00.000Z","status":"confirmed","selectedSize":"P","selectedColor":"Rosa"}]`
	_ = store.Set(ctx, DefaultKey, []byte(blob))

	got := New(store, "").Load(ctx)
	if len(got) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(got))
	}
	if got[0].Address != "Rua Z" || got[0].Status != "confirmed" || got[0].CreatedAt.Hour() != 9 {
		t.Fatalf("unexpected reservation %+v", got[0])
	}
}

func TestLoadDegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	if got := New(memory.New(), "").Load(ctx); got == nil || len(got) != 0 {
		t.Fatalf("absent key: %+v", got)
	}

	store := memory.New()
	_ = store.Set(ctx, DefaultKey, []byte(`{not json`))
	if got := New(store, "").Load(ctx); len(got) != 0 {
		t.Fatalf("malformed data: %+v", got)
	}

	_ = store.Set(ctx, DefaultKey, []byte(`null`))
	if got := New(store, "").Load(ctx); got == nil {
		t.Fatalf("null blob should load as empty list")
	}

	if got := New(failingStore{}, "").Load(ctx); len(got) != 0 {
		t.Fatalf("read failure: %+v", got)
	}
}

func TestSaveEmptyWritesArray(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	if err := New(store, "").Save(ctx, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _ := store.Get(ctx, DefaultKey)
	if string(raw) != "[]" {
		t.Fatalf("got %q", raw)
	}
	if err := New(failingStore{}, "").Save(ctx, nil); err == nil {
		t.Fatalf("expected write error")
	}
}
