package reservation

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/store-reservations/internal/dto"
	domain "github.com/BruksfildServices01/store-reservations/internal/domain/reservation"
)

const recentLimit = 5

type Dashboard struct {
	products ProductReader
	repo     Repository
	tz       string
}

func NewDashboard(products ProductReader, repo Repository, tz string) *Dashboard {
	return &Dashboard{
		products: products,
		repo:     repo,
		tz:       tz,
	}
}

func (uc *Dashboard) Execute(_ context.Context) dto.DashboardDTO {
	products := uc.products.List()
	reservations := uc.repo.List()

	out := dto.DashboardDTO{
		TotalProducts:     len(products),
		TotalReservations: len(reservations),
		ByStatus: map[string]int{
			string(domain.StatusPending):   0,
			string(domain.StatusConfirmed): 0,
			string(domain.StatusCanceled):  0,
			string(domain.StatusCompleted): 0,
		},
	}

	for _, p := range products {
		if p.Available {
			out.AvailableProducts++
		}
	}
	out.ReservedProducts = out.TotalProducts - out.AvailableProducts

	for _, r := range reservations {
		out.ByStatus[r.Status]++
	}

	// newest first; ties keep insertion order
	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].CreatedAt.After(reservations[j].CreatedAt)
	})
	if len(reservations) > recentLimit {
		reservations = reservations[:recentLimit]
	}

	index := indexProducts(products)
	out.RecentReservations = make([]dto.ReservationRowDTO, 0, len(reservations))
	for _, r := range reservations {
		out.RecentReservations = append(out.RecentReservations, toRow(r, index, uc.tz))
	}
	return out
}
