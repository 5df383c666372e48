package service

import (
	"context"
	"errors"
	"time"

	"github.com/drivehub/vehicle-rental/internal/model"
	"github.com/drivehub/vehicle-rental/internal/store"
)

// Availability is the result of resolving a vehicle against a span.
type Availability struct {
	Available bool            `json:"available"`
	Conflicts []model.Booking `json:"conflicts,omitempty"`
	// NextAvailable is a "2006-01-02 15:04" hint for when the vehicle
	// frees up, derived from its future reservations.  Empty when the
	// span is free or no future reservation exists.
	NextAvailable string `json:"nextAvailable,omitempty"`
}

// CheckAvailability resolves whether the vehicle is free for the span.
// Cancelled bookings never block; a booking id passed in exclude is
// skipped so that an edit does not conflict with itself.  Availability
// is fail-closed: an unknown or non-offerable vehicle is unavailable
// with no conflict detail, and a storage error propagates so the
// caller must treat the vehicle as unavailable.
func (s *Service) CheckAvailability(ctx context.Context, vehicleID string, sp Span, exclude string) (*Availability, error) {
	v, err := s.vehicles.GetByID(ctx, vehicleID)
	if errors.Is(err, store.ErrNotFound) {
		return &Availability{Available: false}, nil
	}
	if err != nil {
		return nil, err
	}
	if !v.Offerable() {
		return &Availability{Available: false}, nil
	}

	all, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var conflicts []model.Booking
	for i := range all {
		b := &all[i]
		if b.VehicleID != vehicleID || b.Status == model.BookingStatusCancelled {
			continue
		}
		if exclude != "" && b.ID == exclude {
			continue
		}
		if bookingSpan(b).Overlaps(sp) {
			conflicts = append(conflicts, *b)
		}
	}

	out := &Availability{Available: len(conflicts) == 0, Conflicts: conflicts}
	if !out.Available {
		out.NextAvailable = nextFreeHint(all, vehicleID, s.now())
	}
	return out, nil
}

// nextFreeHint returns the end of the vehicle's last-starting
// non-cancelled reservation that has not finished yet — a reservation
// running right now counts.  It is a heuristic: intermediate gaps
// between reservations are not searched, the hint simply points past
// the busiest known horizon.
func nextFreeHint(all []model.Booking, vehicleID string, now time.Time) string {
	var (
		found       bool
		latestStart time.Time
		hint        string
	)
	for i := range all {
		b := &all[i]
		if b.VehicleID != vehicleID || b.Status == model.BookingStatusCancelled {
			continue
		}
		bs := bookingSpan(b)
		if !bs.End.After(now) {
			continue
		}
		if !found || bs.Start.After(latestStart) {
			found = true
			latestStart = bs.Start
			hint = b.EndDate + " " + b.EndTime
		}
	}
	return hint
}
