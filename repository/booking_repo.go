package repository

import (
	"context"
	"errors"
	"time"

	"transportreports/models"
)

// ErrNotFound is returned when a named loading memo does not exist.
var ErrNotFound = errors.New("not found")

// BookingFilter selects the bookings of one report. LDMNo, when set, selects
// the bookings loaded on that memo; the other fields narrow further.
type BookingFilter struct {
	LDMNo        string    `json:"ldmNo" validate:"omitempty,max=40"`
	FromBranchID int64     `json:"fromBranchId" validate:"gte=0"`
	ToBranchID   int64     `json:"toBranchId" validate:"gte=0"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
}

type BookingRepository interface {
	GetBookings(ctx context.Context, filter BookingFilter) ([]models.Booking, error)
}
