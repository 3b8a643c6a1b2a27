package reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/BruksfildServices01/store-reservations/internal/catalog"
	domain "github.com/BruksfildServices01/store-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/store-reservations/internal/httperr"
	"github.com/BruksfildServices01/store-reservations/internal/reservation"
	"github.com/BruksfildServices01/store-reservations/internal/validators"
)

type fixture struct {
	catalog *catalog.Store
	store   *reservation.Store
	clock   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		catalog: catalog.NewStore(catalog.Seed()),
		clock:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	n := 0
	f.store = reservation.NewStore(f.catalog, nil, nil,
		reservation.WithClock(func() time.Time {
			f.clock = f.clock.Add(time.Minute)
			return f.clock
		}),
		reservation.WithNumberGenerator(func() string {
			n++
			return fmt.Sprintf("RES-%06d", n)
		}),
	)
	return f
}

func form(productID string) CreateReservationInput {
	return CreateReservationInput{
		ProductID: productID,
		FullName:  "Ana Silva",
		Phone:     "912345678",
		Address:   "Rua das Flores 1",
		Email:     "ana@example.pt",
	}
}

func TestCreateReservation(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateReservation(f.catalog, f.store)
	ctx := context.Background()

	in := form("1")
	in.SelectedSize = " M "
	r, err := uc.Execute(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.Status != string(domain.StatusPending) || r.SelectedSize != "M" {
		t.Fatalf("reservation = %+v", r)
	}
	if r.SelectedColor != "Azul" {
		t.Fatalf("blank colour should default to the first option, got %q", r.SelectedColor)
	}
	if p, _ := f.catalog.Get("1"); p.Available {
		t.Fatalf("product still available")
	}

	cases := []struct {
		name string
		in   CreateReservationInput
		code string
	}{
		{"already reserved", form("1"), httperr.CodeProductUnavailable},
		{"missing product", form("999"), httperr.CodeProductUnavailable},
		{"bad email", func() CreateReservationInput { in := form("2"); in.Email = "ana"; return in }(), validators.CodeInvalidEmail},
		{"size not offered", func() CreateReservationInput { in := form("2"); in.SelectedSize = "XS"; return in }(), validators.CodeInvalidSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := len(f.store.List())
			if _, err := uc.Execute(ctx, tc.in); !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("err = %v, want %s", err, tc.code)
			}
			if len(f.store.List()) != before {
				t.Fatalf("failed create changed the list")
			}
		})
	}

	if p, _ := f.catalog.Get("2"); !p.Available {
		t.Fatalf("validation failure took product 2 off the shelf")
	}
}

func TestUpdateReservationStatusShortcuts(t *testing.T) {
	f := newFixture(t)
	create := NewCreateReservation(f.catalog, f.store)
	uc := NewUpdateReservationStatus(f.store)
	ctx := context.Background()

	r, _ := create.Execute(ctx, form("3"))

	if got, err := uc.Confirm(ctx, r.ID); err != nil || got.Status != "confirmed" {
		t.Fatalf("confirm: %v %+v", err, got)
	}
	if got, err := uc.Complete(ctx, r.ID); err != nil || got.Status != "completed" {
		t.Fatalf("complete: %v %+v", err, got)
	}
	if p, _ := f.catalog.Get("3"); p.Available {
		t.Fatalf("completed reservation must keep the product off the shelf")
	}

	r2, _ := create.Execute(ctx, form("4"))
	if got, err := uc.Cancel(ctx, r2.ID); err != nil || got.Status != "canceled" {
		t.Fatalf("cancel: %v %+v", err, got)
	}
	if p, _ := f.catalog.Get("4"); !p.Available {
		t.Fatalf("cancel did not release the product")
	}

	if _, err := uc.Execute(ctx, r2.ID, "lost"); !httperr.IsBusiness(err, httperr.CodeInvalidStatus) {
		t.Fatalf("err = %v", err)
	}
}

func TestListReservationsFilters(t *testing.T) {
	f := newFixture(t)
	create := NewCreateReservation(f.catalog, f.store)
	status := NewUpdateReservationStatus(f.store)
	ctx := context.Background()

	a, _ := create.Execute(ctx, form("1"))
	in := form("2")
	in.FullName = "Bruno Costa"
	in.Email = "bruno@example.pt"
	b, _ := create.Execute(ctx, in)
	_, _ = status.Confirm(ctx, b.ID)

	if err := f.catalog.Delete("1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	uc := NewListReservations(f.catalog, f.store, "UTC")

	all, err := uc.Execute(ctx, ListFilter{Status: "all"})
	if err != nil || len(all) != 2 {
		t.Fatalf("all = %d, %v", len(all), err)
	}
	if all[0].ID != a.ID || all[0].Product != nil {
		t.Fatalf("dangling row should have nil product: %+v", all[0])
	}
	if all[1].Product == nil || all[1].Product.ID != "2" || all[1].StatusLabel != "Confirmada" {
		t.Fatalf("joined row = %+v", all[1])
	}

	cases := []struct {
		name   string
		filter ListFilter
		want   []string
	}{
		{"by status", ListFilter{Status: "confirmed"}, []string{b.ID}},
		{"by name", ListFilter{Query: "ana"}, []string{a.ID}},
		{"by number lowercase", ListFilter{Query: "res-000002"}, []string{b.ID}},
		{"by email", ListFilter{Query: "BRUNO@"}, []string{b.ID}},
		{"status and query", ListFilter{Status: "pending", Query: "bruno"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := uc.Execute(ctx, tc.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(rows) != len(tc.want) {
				t.Fatalf("got %d rows, want %d", len(rows), len(tc.want))
			}
			for i, id := range tc.want {
				if rows[i].ID != id {
					t.Fatalf("row %d = %s, want %s", i, rows[i].ID, id)
				}
			}
		})
	}

	if _, err := uc.Execute(ctx, ListFilter{Status: "archived"}); !httperr.IsBusiness(err, httperr.CodeInvalidStatus) {
		t.Fatalf("unknown status filter err = %v", err)
	}
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	create := NewCreateReservation(f.catalog, f.store)
	status := NewUpdateReservationStatus(f.store)
	ctx := context.Background()

	var ids []string
	for _, pid := range []string{"1", "2", "3", "4", "5", "6"} {
		r, err := create.Execute(ctx, form(pid))
		if err != nil {
			t.Fatalf("create %s: %v", pid, err)
		}
		ids = append(ids, r.ID)
	}
	_, _ = status.Cancel(ctx, ids[0])
	_, _ = status.Confirm(ctx, ids[1])
	_, _ = status.Confirm(ctx, ids[2])
	_, _ = status.Complete(ctx, ids[2])

	got := NewDashboard(f.catalog, f.store, "Europe/Lisbon").Execute(ctx)

	if got.TotalProducts != 6 || got.AvailableProducts != 1 || got.ReservedProducts != 5 {
		t.Fatalf("product totals = %+v", got)
	}
	if got.TotalReservations != 6 {
		t.Fatalf("total reservations = %d", got.TotalReservations)
	}
	want := map[string]int{"pending": 3, "confirmed": 1, "canceled": 1, "completed": 1}
	for k, v := range want {
		if got.ByStatus[k] != v {
			t.Fatalf("byStatus[%s] = %d, want %d", k, got.ByStatus[k], v)
		}
	}

	if len(got.RecentReservations) != 5 {
		t.Fatalf("recent = %d", len(got.RecentReservations))
	}
	if got.RecentReservations[0].ID != ids[5] || got.RecentReservations[4].ID != ids[1] {
		t.Fatalf("recent not newest first: %s .. %s", got.RecentReservations[0].ID, got.RecentReservations[4].ID)
	}
}

func TestDashboardEmpty(t *testing.T) {
	f := newFixture(t)
	got := NewDashboard(f.catalog, f.store, "UTC").Execute(context.Background())
	if got.TotalReservations != 0 || got.RecentReservations == nil || got.ByStatus["pending"] != 0 {
		t.Fatalf("empty dashboard = %+v", got)
	}
}
