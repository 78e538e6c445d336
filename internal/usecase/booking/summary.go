package booking

import (
	"context"

	domain "github.com/WoolleyCutzz/salon-booking/internal/domain/booking"
)

type DashboardSummary struct {
	repo domain.Repository
}

func NewDashboardSummary(repo domain.Repository) *DashboardSummary {
	return &DashboardSummary{repo: repo}
}

func (uc *DashboardSummary) Execute(
	ctx context.Context,
) (domain.Summary, error) {

	bookings, err := uc.repo.ListBookings(ctx)
	if err != nil {
		return domain.Summary{}, err
	}

	return domain.Summarize(bookings), nil
}
