package catalog

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/store-reservations/internal/audit"
	"github.com/BruksfildServices01/store-reservations/internal/httperr"
	"github.com/BruksfildServices01/store-reservations/internal/models"
)

// Store owns the product list for the running process.
type Store struct {
	mu       sync.RWMutex
	products []models.Product

	notifier audit.Notifier
	newID    func() string
}

type Option func(*Store)

func WithNotifier(n audit.Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func NewStore(seed []models.Product, opts ...Option) *Store {
	s := &Store{
		products: make([]models.Product, 0, len(seed)),
		notifier: audit.Nop{},
		newID:    uuid.NewString,
	}
	for _, p := range seed {
		s.products = append(s.products, p.Clone())
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ======================================================
// READ
// ======================================================

// List returns a copy of every product in insertion order.
func (s *Store) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.Clone())
	}
	return out
}

func (s *Store) Get(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Product{}, httperr.ErrBusiness(httperr.CodeProductNotFound)
	}
	return s.products[i].Clone(), nil
}

type Filter struct {
	Query     string // name, description or category, case-insensitive
	Gender    models.Gender
	Category  string
	Available *bool
}

func (s *Store) Search(f Filter) []models.Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := []models.Product{}
	for _, p := range s.List() {
		if f.Gender != "" && p.Gender != f.Gender {
			continue
		}
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.Available != nil && p.Available != *f.Available {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) &&
			!strings.Contains(strings.ToLower(p.Category), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ======================================================
// ADMIN MUTATIONS
// ======================================================

// Create appends p. An empty id is replaced by a generated one; an id that is
// already in use is rejected.
func (s *Store) Create(p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = s.newID()
	}
	if s.indexOf(p.ID) >= 0 {
		return models.Product{}, httperr.ErrBusiness(httperr.CodeProductIDTaken)
	}

	p = p.Clone()
	s.products = append(s.products, p)

	s.notifier.Dispatch(audit.Event{
		Action:   "product_created",
		Entity:   "product",
		EntityID: p.ID,
	})
	return p.Clone(), nil
}

func (s *Store) Update(id string, patch models.ProductPatch) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Product{}, httperr.ErrBusiness(httperr.CodeProductNotFound)
	}

	s.products[i] = patch.Apply(s.products[i])

	s.notifier.Dispatch(audit.Event{
		Action:   "product_updated",
		Entity:   "product",
		EntityID: id,
		Metadata: patch,
	})
	return s.products[i].Clone(), nil
}

// Delete removes the product. Reservations pointing at it are left as they are.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return httperr.ErrBusiness(httperr.CodeProductNotFound)
	}
	s.products = append(s.products[:i], s.products[i+1:]...)

	s.notifier.Dispatch(audit.Event{
		Action:   "product_deleted",
		Entity:   "product",
		EntityID: id,
	})
	return nil
}

// ======================================================
// AVAILABILITY (used by the reservation store)
// ======================================================

// Reserve flips an available product to unavailable. It fails with
// product_unavailable when the product is missing or already taken.
func (s *Store) Reserve(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 || !s.products[i].Available {
		return httperr.ErrBusiness(httperr.CodeProductUnavailable)
	}
	s.products[i].Available = false
	s.availabilityChanged(id, false)
	return nil
}

// Hold marks the product unavailable whatever its current state. It reports
// false when the product does not exist.
func (s *Store) Hold(id string) bool {
	return s.setAvailable(id, false)
}

// Release puts the product back on the shelf. It reports false when the
// product does not exist.
func (s *Store) Release(id string) bool {
	return s.setAvailable(id, true)
}

func (s *Store) setAvailable(id string, available bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	if s.products[i].Available != available {
		s.products[i].Available = available
		s.availabilityChanged(id, available)
	}
	return true
}

func (s *Store) availabilityChanged(id string, available bool) {
	s.notifier.Dispatch(audit.Event{
		Action:   "product_availability_changed",
		Entity:   "product",
		EntityID: id,
		Metadata: map[string]bool{"available": available},
	})
}

func (s *Store) indexOf(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}
