package service

import (
	"context"
	"errors"
	"time"

	"github.com/drivehub/vehicle-rental/internal/model"
	"github.com/drivehub/vehicle-rental/internal/store"
)

// ComputeCost prices a span against the vehicle's rate card.
//
// Daily bookings are billed per started 24-hour block with a one-day
// minimum.  Hourly bookings are billed per started hour of the clock
// difference; they must fit in one calendar day, which CreateBooking
// and EditBooking enforce before pricing.
//
// A vehicle id that does not resolve yields cost 0 with a nil error.
// The zero is a deliberate soft failure: read paths may still render
// a total for orphaned records, while every write path in this
// package rejects a non-positive cost before persisting.
func (s *Service) ComputeCost(ctx context.Context, vehicleID string, sp Span, bookingType string) (int64, error) {
	v, err := s.vehicles.GetByID(ctx, vehicleID)
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	switch bookingType {
	case model.BookingTypeDaily:
		days := ceilDiv(int64(sp.End.Sub(sp.Start)/time.Minute), 24*60)
		if days < 1 {
			days = 1
		}
		return days * v.DailyRate, nil
	case model.BookingTypeHourly:
		mins := int64(sp.End.Sub(sp.Start) / time.Minute)
		if mins <= 0 {
			return 0, errValidationf("hourly booking has no billable time between %s and %s", sp.StartTime, sp.EndTime)
		}
		return ceilDiv(mins, 60) * v.HourlyRate, nil
	default:
		return 0, errValidationf("unknown booking type %q", bookingType)
	}
}

// ceilDiv is integer division rounding up; a and b must be positive.
func ceilDiv(a, b int64) int64 { return (a + b - 1) / b }
