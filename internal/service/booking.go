package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/drivehub/vehicle-rental/internal/model"
	"github.com/drivehub/vehicle-rental/internal/store"
	"github.com/drivehub/vehicle-rental/internal/utils"
)

// CreateBookingInput carries a new reservation request.  All span
// fields are the raw submitted strings; the engine validates and joins
// them.
type CreateBookingInput struct {
	VehicleID       string `json:"vehicleId"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	BookingType     string `json:"bookingType"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
}

// BookingPatch is the delta submitted to EditBooking.  Nil fields keep
// the stored value.  The patch itself is what lands in the audit
// entry's NewData snapshot.
type BookingPatch struct {
	VehicleID       *string `json:"vehicleId,omitempty"`
	CustomerName    *string `json:"customerName,omitempty"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	CustomerAddress *string `json:"customerAddress,omitempty"`
	BookingType     *string `json:"bookingType,omitempty"`
	StartDate       *string `json:"startDate,omitempty"`
	EndDate         *string `json:"endDate,omitempty"`
	StartTime       *string `json:"startTime,omitempty"`
	EndTime         *string `json:"endTime,omitempty"`
}

// CreateBooking validates, prices and persists a new pending booking,
// then records the audit entry and emits the lifecycle event.  The
// availability check and the insert run under the vehicle's lock so
// concurrent submissions for the same span cannot both succeed.
func (s *Service) CreateBooking(ctx context.Context, actor Actor, in CreateBookingInput) (*model.Booking, error) {
	if !actor.valid() {
		return nil, errValidationf("operation requires an attributed admin")
	}
	if in.VehicleID == "" || in.CustomerName == "" || in.CustomerPhone == "" {
		return nil, errValidationf("vehicleId, customerName and customerPhone are required")
	}
	if in.BookingType != model.BookingTypeHourly && in.BookingType != model.BookingTypeDaily {
		return nil, errValidationf("unknown booking type %q", in.BookingType)
	}
	sp, err := ParseSpan(in.StartDate, in.StartTime, in.EndDate, in.EndTime)
	if err != nil {
		return nil, err
	}
	if in.BookingType == model.BookingTypeHourly && !sp.SameDay() {
		return nil, errValidationf("hourly bookings must start and end on the same day")
	}

	unlock := s.locks.acquire(in.VehicleID)
	defer unlock()

	v, err := s.vehicles.GetByID(ctx, in.VehicleID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !v.Offerable() {
		return nil, errValidationf("vehicle %s is not open for reservations", v.VehicleNumber)
	}

	avail, err := s.CheckAvailability(ctx, in.VehicleID, sp, "")
	if err != nil {
		return nil, err
	}
	if !avail.Available {
		return nil, &ConflictError{VehicleID: in.VehicleID, Conflicts: avail.Conflicts}
	}

	cost, err := s.ComputeCost(ctx, in.VehicleID, sp, in.BookingType)
	if err != nil {
		return nil, err
	}
	if cost <= 0 {
		return nil, errValidationf("booking could not be priced for vehicle %s", v.VehicleNumber)
	}

	id, err := utils.NewID()
	if err != nil {
		return nil, err
	}
	now := s.now()
	b := &model.Booking{
		ID:              id,
		VehicleID:       in.VehicleID,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		BookingType:     in.BookingType,
		StartDate:       sp.StartDate,
		EndDate:         sp.EndDate,
		StartTime:       sp.StartTime,
		EndTime:         sp.EndTime,
		TotalCost:       cost,
		Status:          model.BookingStatusPending,
		CreatedAt:       now,
		LastModified:    now,
	}
	if err := s.bookings.Insert(ctx, b); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Created booking for %s - Vehicle: %s", b.CustomerName, v.VehicleNumber)
	if err := s.recorder.Record(ctx, model.AuditEntityBooking, b.ID, model.AuditActionCreate, actor, details, nil, nil); err != nil {
		return nil, err
	}
	s.emit(ctx, model.AuditActionCreate, b)
	return b, nil
}

// EditBooking applies a patch to a pending booking.  Terminal bookings
// are rejected before any field is touched.  When the patch moves the
// booking to a different vehicle, span or mode, availability and cost
// are re-resolved under the target vehicle's lock; the stored total is
// otherwise left alone.
func (s *Service) EditBooking(ctx context.Context, actor Actor, id string, patch BookingPatch) (*model.Booking, error) {
	if !actor.valid() {
		return nil, errValidationf("operation requires an attributed admin")
	}

	current, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if current.Terminal() {
		return nil, ErrForbidden
	}

	next := *current
	applyPatch(&next, patch)
	if next.BookingType != model.BookingTypeHourly && next.BookingType != model.BookingTypeDaily {
		return nil, errValidationf("unknown booking type %q", next.BookingType)
	}
	if next.CustomerName == "" || next.CustomerPhone == "" {
		return nil, errValidationf("customerName and customerPhone are required")
	}
	sp, err := ParseSpan(next.StartDate, next.StartTime, next.EndDate, next.EndTime)
	if err != nil {
		return nil, err
	}
	if next.BookingType == model.BookingTypeHourly && !sp.SameDay() {
		return nil, errValidationf("hourly bookings must start and end on the same day")
	}

	unlock := s.locks.acquire(next.VehicleID)
	defer unlock()

	v, err := s.vehicles.GetByID(ctx, next.VehicleID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &IntegrityError{BookingID: id, VehicleID: next.VehicleID}
	}
	if err != nil {
		return nil, err
	}
	// A booking may keep the vehicle it already holds, but it cannot be
	// moved onto one that is closed for new reservations.
	if next.VehicleID != current.VehicleID && !v.Offerable() {
		return nil, errValidationf("vehicle %s is not open for reservations", v.VehicleNumber)
	}

	if reprices(current, &next) {
		avail, err := s.CheckAvailability(ctx, next.VehicleID, sp, id)
		if err != nil {
			return nil, err
		}
		if !avail.Available {
			return nil, &ConflictError{VehicleID: next.VehicleID, Conflicts: avail.Conflicts}
		}
		cost, err := s.ComputeCost(ctx, next.VehicleID, sp, next.BookingType)
		if err != nil {
			return nil, err
		}
		if cost <= 0 {
			return nil, errValidationf("booking could not be priced for vehicle %s", v.VehicleNumber)
		}
		next.TotalCost = cost
	}
	next.LastModified = s.now()

	if err := s.bookings.Replace(ctx, id, &next); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	details := fmt.Sprintf("Updated booking for %s - Vehicle: %s", next.CustomerName, v.VehicleNumber)
	if err := s.recorder.Record(ctx, model.AuditEntityBooking, id, model.AuditActionEdit, actor, details, current, patch); err != nil {
		return nil, err
	}
	s.emit(ctx, model.AuditActionEdit, &next)
	return &next, nil
}

// SetBookingStatus moves a pending booking to confirmed or cancelled.
// Any other target is a validation error; a booking that already left
// pending is rejected untouched.
func (s *Service) SetBookingStatus(ctx context.Context, actor Actor, id, status string) (*model.Booking, error) {
	if !actor.valid() {
		return nil, errValidationf("operation requires an attributed admin")
	}
	if status != model.BookingStatusConfirmed && status != model.BookingStatusCancelled {
		return nil, errValidationf("status must be %q or %q", model.BookingStatusConfirmed, model.BookingStatusCancelled)
	}

	current, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if current.Status != model.BookingStatusPending {
		return nil, ErrForbidden
	}

	v, err := s.vehicles.GetByID(ctx, current.VehicleID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &IntegrityError{BookingID: id, VehicleID: current.VehicleID}
	}
	if err != nil {
		return nil, err
	}

	next := *current
	next.Status = status
	next.LastModified = s.now()
	if err := s.bookings.Replace(ctx, id, &next); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	verb, action := "Confirmed", model.AuditActionApprove
	if status == model.BookingStatusCancelled {
		verb, action = "Cancelled", model.AuditActionReject
	}
	details := fmt.Sprintf("%s booking for %s - Vehicle: %s", verb, next.CustomerName, v.VehicleNumber)
	if err := s.recorder.Record(ctx, model.AuditEntityBooking, id, action, actor, details, nil, nil); err != nil {
		return nil, err
	}
	s.emit(ctx, action, &next)
	return &next, nil
}

// applyPatch copies the non-nil patch fields onto the booking.
func applyPatch(b *model.Booking, p BookingPatch) {
	if p.VehicleID != nil {
		b.VehicleID = *p.VehicleID
	}
	if p.CustomerName != nil {
		b.CustomerName = *p.CustomerName
	}
	if p.CustomerPhone != nil {
		b.CustomerPhone = *p.CustomerPhone
	}
	if p.CustomerAddress != nil {
		b.CustomerAddress = *p.CustomerAddress
	}
	if p.BookingType != nil {
		b.BookingType = *p.BookingType
	}
	if p.StartDate != nil {
		b.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		b.EndDate = *p.EndDate
	}
	if p.StartTime != nil {
		b.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		b.EndTime = *p.EndTime
	}
}

// reprices reports whether the patched booking moved in a way that
// invalidates the stored total: new vehicle, new span or new mode.
func reprices(prev, next *model.Booking) bool {
	return prev.VehicleID != next.VehicleID ||
		prev.BookingType != next.BookingType ||
		prev.StartDate != next.StartDate ||
		prev.EndDate != next.EndDate ||
		prev.StartTime != next.StartTime ||
		prev.EndTime != next.EndTime
}
