// Package service implements the booking and availability engine: span
// overlap detection, availability resolution, rate-card pricing, the
// booking status lifecycle, audit recording and the paginated query
// layer.  The engine talks to storage exclusively through the
// collection interfaces in internal/store and knows nothing about
// HTTP, authentication or the backing database.
package service

import (
	"errors"
	"fmt"

	"github.com/drivehub/vehicle-rental/internal/model"
)

// ErrNotFound is returned when a booking or vehicle id does not
// resolve.  Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when an operation targets a booking that is
// no longer pending: edits against terminal bookings and repeated
// status transitions are rejected before any mutation or audit write.
// Handlers should translate this into an HTTP 403 response.
var ErrForbidden = errors.New("booking is no longer pending")

// ValidationError reports a malformed or unacceptable request: bad
// span ordering, unknown reservation mode, missing required fields, an
// invalid status target, or a submission that cannot be priced.  It is
// always raised before any state change.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// errValidationf builds a ValidationError from a format string.
func errValidationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConflictError reports that the requested span collides with existing
// reservations of the same vehicle, or that availability was lost
// between check and write under concurrent load.  It carries the
// conflicting bookings so callers can prompt re-selection.
type ConflictError struct {
	VehicleID string
	Conflicts []model.Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("vehicle %s is not available for the requested span", e.VehicleID)
}

// IntegrityError reports a booking whose vehicle reference no longer
// resolves.  The booking cannot be priced or displayed with vehicle
// context; the condition is surfaced, never silently defaulted.
type IntegrityError struct {
	BookingID string
	VehicleID string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("booking %s references unknown vehicle %s", e.BookingID, e.VehicleID)
}
