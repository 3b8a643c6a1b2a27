package reservation

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/store-reservations/internal/dto"
	domain "github.com/BruksfildServices01/store-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/store-reservations/internal/models"
	"github.com/BruksfildServices01/store-reservations/internal/timezone"
)

type ListFilter struct {
	Status string // "" or "all" for every status
	Query  string // matches full name, reservation number or email
}

type ListReservations struct {
	products ProductReader
	repo     Repository
	tz       string
}

func NewListReservations(products ProductReader, repo Repository, tz string) *ListReservations {
	return &ListReservations{
		products: products,
		repo:     repo,
		tz:       tz,
	}
}

func (uc *ListReservations) Execute(_ context.Context, f ListFilter) ([]dto.ReservationRowDTO, error) {
	var status domain.Status
	if s := strings.TrimSpace(f.Status); s != "" && !strings.EqualFold(s, "all") {
		parsed, err := domain.ParseStatus(s)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	products := indexProducts(uc.products.List())

	rows := []dto.ReservationRowDTO{}
	for _, r := range uc.repo.List() {
		if status != "" && domain.Status(r.Status) != status {
			continue
		}
		if query != "" && !matches(r, query) {
			continue
		}
		rows = append(rows, toRow(r, products, uc.tz))
	}
	return rows, nil
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func matches(r models.Reservation, query string) bool {
	return strings.Contains(strings.ToLower(r.FullName), query) ||
		strings.Contains(strings.ToLower(r.ReservationNumber), query) ||
		strings.Contains(strings.ToLower(r.Email), query)
}

func indexProducts(list []models.Product) map[string]models.Product {
	out := make(map[string]models.Product, len(list))
	for _, p := range list {
		out[p.ID] = p
	}
	return out
}

func toRow(r models.Reservation, products map[string]models.Product, tz string) dto.ReservationRowDTO {
	row := dto.ReservationRowDTO{
		Reservation:    r,
		StatusLabel:    domain.Status(r.Status).Label(),
		CreatedAtLocal: r.CreatedAt.In(timezone.Location(tz)),
	}
	if p, ok := products[r.ProductID]; ok {
		row.Product = &p
	}
	return row
}
