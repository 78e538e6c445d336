package dto

import domain "github.com/WoolleyCutzz/salon-booking/internal/domain/booking"

type AvailabilityDTO struct {
	Date      string        `json:"date"`
	Available bool          `json:"available"`
	Slots     []domain.Slot `json:"slots"`
}
