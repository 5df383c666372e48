package service

import (
	"context"
	"time"

	"github.com/drivehub/vehicle-rental/internal/model"
	"github.com/drivehub/vehicle-rental/internal/store"
)

// Actor identifies the admin an operation runs on behalf of.  Every
// mutating operation requires both fields; they are stamped onto the
// audit entry the operation writes.
type Actor struct {
	ID   string
	Name string
}

// NotifyFunc receives a lifecycle event after a mutation has been
// persisted and audited.  Delivery is best-effort; errors inside the
// notifier must not affect the completed operation.
type NotifyFunc func(ctx context.Context, action string, b *model.Booking)

// Service is the booking engine.  It owns the write path for bookings
// and vehicles: validation, availability resolution, pricing, the
// status lifecycle and audit recording all run here, on top of the
// injected store collections.
type Service struct {
	vehicles store.VehicleStore
	bookings store.BookingStore
	recorder *Recorder
	locks    *vehicleLocks
	now      func() time.Time
	notify   NotifyFunc
}

// New wires a Service over the three record collections.
func New(vehicles store.VehicleStore, bookings store.BookingStore, audit store.AuditStore) *Service {
	s := &Service{
		vehicles: vehicles,
		bookings: bookings,
		locks:    newVehicleLocks(),
		now:      time.Now,
	}
	s.recorder = &Recorder{store: audit, now: func() time.Time { return s.now() }}
	return s
}

// SetNotifier installs the lifecycle event sink, typically the message
// queue publisher.  Passing nil disables notifications.
func (s *Service) SetNotifier(fn NotifyFunc) { s.notify = fn }

func (s *Service) emit(ctx context.Context, action string, b *model.Booking) {
	if s.notify != nil {
		s.notify(ctx, action, b)
	}
}

func (a Actor) valid() bool { return a.ID != "" && a.Name != "" }
