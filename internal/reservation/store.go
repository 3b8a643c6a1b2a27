// Package reservation owns the reservation list and keeps product
// availability in step with it.
package reservation

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/store-reservations/internal/audit"
	domain "github.com/BruksfildServices01/store-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/store-reservations/internal/httperr"
	"github.com/BruksfildServices01/store-reservations/internal/models"
)

// Catalog is the slice of the catalog store the reservation flow needs.
type Catalog interface {
	Reserve(id string) error
	Hold(id string) bool
	Release(id string) bool
}

// Persister writes the full list after every change.
type Persister interface {
	Save(ctx context.Context, list []models.Reservation) error
}

type CreateInput struct {
	ProductID     string
	FullName      string
	Phone         string
	Address       string
	Email         string
	SelectedSize  string
	SelectedColor string
}

type Store struct {
	mu      sync.RWMutex
	items   []models.Reservation
	numbers map[string]struct{}

	catalog   Catalog
	persister Persister
	notifier  audit.Notifier
	policy    domain.TransitionPolicy

	now       func() time.Time
	newID     func() string
	newNumber domain.NumberGenerator
}

type Option func(*Store)

func WithNotifier(n audit.Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func WithPolicy(p domain.TransitionPolicy) Option {
	return func(s *Store) { s.policy = p }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func WithNumberGenerator(gen domain.NumberGenerator) Option {
	return func(s *Store) { s.newNumber = gen }
}

// NewStore builds the store from previously saved reservations. Products are
// reseeded as available on every start, so any product still held by a
// pending or confirmed reservation is taken off the shelf again here.
func NewStore(catalog Catalog, persister Persister, initial []models.Reservation, opts ...Option) *Store {
	s := &Store{
		items:     make([]models.Reservation, 0, len(initial)),
		numbers:   make(map[string]struct{}, len(initial)),
		catalog:   catalog,
		persister: persister,
		notifier:  audit.Nop{},
		policy:    domain.PolicyStrict,
		now:       time.Now,
		newID:     uuid.NewString,
		newNumber: domain.RandomNumber,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, r := range initial {
		s.items = append(s.items, r)
		s.numbers[r.ReservationNumber] = struct{}{}
		if domain.Status(r.Status).Holds() {
			s.catalog.Hold(r.ProductID)
		}
	}
	return s
}

// ======================================================
// READ
// ======================================================

// List returns a copy of every reservation in insertion order.
func (s *Store) List() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Reservation{}, s.items...)
}

func (s *Store) Get(id string) (models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Reservation{}, httperr.ErrBusiness(httperr.CodeReservationNotFound)
	}
	return s.items[i], nil
}

// ======================================================
// CREATE
// ======================================================

// Create records a pending reservation and takes the product off the shelf.
// Both happen under the store lock; when the product is missing or already
// unavailable nothing changes and product_unavailable is returned.
func (s *Store) Create(ctx context.Context, in CreateInput) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	number, err := domain.UniqueNumber(s.newNumber, s.hasNumber)
	if err != nil {
		return models.Reservation{}, err
	}

	if err := s.catalog.Reserve(in.ProductID); err != nil {
		return models.Reservation{}, err
	}

	r := models.Reservation{
		ID:                s.newID(),
		ProductID:         in.ProductID,
		FullName:          strings.TrimSpace(in.FullName),
		Phone:             strings.TrimSpace(in.Phone),
		Address:           strings.TrimSpace(in.Address),
		Email:             strings.TrimSpace(in.Email),
		ReservationNumber: number,
		CreatedAt:         s.now().UTC().Truncate(time.Millisecond),
		Status:            string(domain.InitialStatus()),
		SelectedSize:      in.SelectedSize,
		SelectedColor:     in.SelectedColor,
	}

	s.items = append(s.items, r)
	s.numbers[number] = struct{}{}
	s.persist(ctx)

	s.notifier.Dispatch(audit.Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: r.ID,
		Metadata: map[string]string{
			"product_id":         r.ProductID,
			"reservation_number": r.ReservationNumber,
		},
	})

	return r, nil
}

// ======================================================
// STATUS
// ======================================================

// UpdateStatus moves a reservation to status. Canceling puts the product back
// on the shelf when it still exists and no other reservation holds it; moving
// back into pending/confirmed (permissive policy only) takes it off again.
// Repeating the current status changes nothing.
func (s *Store) UpdateStatus(ctx context.Context, id string, status string) (models.Reservation, error) {
	next, err := domain.ParseStatus(status)
	if err != nil {
		return models.Reservation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Reservation{}, httperr.ErrBusiness(httperr.CodeReservationNotFound)
	}

	current := s.items[i]
	from := domain.Status(current.Status)
	if from == next {
		return current, nil
	}
	if err := domain.CanTransition(s.policy, from, next); err != nil {
		return models.Reservation{}, err
	}

	switch {
	case next == domain.StatusCanceled && from.Holds(),
		next == domain.StatusCanceled && from == domain.StatusCompleted && !s.heldByOther(current.ProductID, i):
		if !s.catalog.Release(current.ProductID) {
			zap.L().Debug("canceled reservation points at a deleted product",
				zap.String("reservation_id", id),
				zap.String("product_id", current.ProductID),
			)
		}
	case next.Holds() && !from.Holds():
		if err := s.catalog.Reserve(current.ProductID); err != nil {
			return models.Reservation{}, err
		}
	}

	s.items[i].Status = string(next)
	s.persist(ctx)

	s.notifier.Dispatch(audit.Event{
		Action:   "reservation_status_changed",
		Entity:   "reservation",
		EntityID: id,
		Metadata: map[string]string{
			"from": string(from),
			"to":   string(next),
		},
	})

	return s.items[i], nil
}

// ======================================================
// HELPERS
// ======================================================

// persist saves the full list. The save outlives a canceled request so a
// change already applied in memory is not lost when the client goes away.
func (s *Store) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}
	snapshot := append([]models.Reservation{}, s.items...)
	if err := s.persister.Save(context.WithoutCancel(ctx), snapshot); err != nil {
		zap.L().Warn("failed to save reservations", zap.Int("count", len(snapshot)), zap.Error(err))
	}
}

// heldByOther reports whether a pending or confirmed reservation other than
// items[skip] holds productID.
func (s *Store) heldByOther(productID string, skip int) bool {
	for j := range s.items {
		if j != skip && s.items[j].ProductID == productID && domain.Status(s.items[j].Status).Holds() {
			return true
		}
	}
	return false
}

func (s *Store) hasNumber(n string) bool {
	_, ok := s.numbers[n]
	return ok
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
