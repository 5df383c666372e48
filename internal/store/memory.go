package store

import (
	"context"
	"sync"

	"github.com/drivehub/vehicle-rental/internal/model"
)

// Memory is an in-memory implementation of the three record
// collections.  It is an injected handle with an explicit lifecycle
// (constructed by the caller, garbage-collected when dropped), not a
// package-level singleton.  All collections are guarded by one RWMutex
// so that an insert is atomic with respect to concurrent scans.
// Returned slices and records are copies; mutating them does not
// affect stored state.
type Memory struct {
	mu       sync.RWMutex
	vehicles []model.Vehicle
	bookings []model.Booking
	audit    []model.AuditEntry
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory { return &Memory{} }

// Vehicles returns the vehicle collection view of the store.
func (m *Memory) Vehicles() VehicleStore { return memVehicles{m} }

// Bookings returns the booking collection view of the store.
func (m *Memory) Bookings() BookingStore { return memBookings{m} }

// Audit returns the audit collection view of the store.
func (m *Memory) Audit() AuditStore { return memAudit{m} }

type memVehicles struct{ m *Memory }

func (s memVehicles) ListAll(ctx context.Context) ([]model.Vehicle, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]model.Vehicle, len(s.m.vehicles))
	copy(out, s.m.vehicles)
	return out, nil
}

func (s memVehicles) GetByID(ctx context.Context, id string) (*model.Vehicle, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	for i := range s.m.vehicles {
		if s.m.vehicles[i].ID == id {
			v := s.m.vehicles[i]
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (s memVehicles) Insert(ctx context.Context, v *model.Vehicle) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.vehicles = append(s.m.vehicles, *v)
	return nil
}

func (s memVehicles) Replace(ctx context.Context, id string, v *model.Vehicle) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for i := range s.m.vehicles {
		if s.m.vehicles[i].ID == id {
			s.m.vehicles[i] = *v
			return nil
		}
	}
	return ErrNotFound
}

type memBookings struct{ m *Memory }

func (s memBookings) ListAll(ctx context.Context) ([]model.Booking, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]model.Booking, len(s.m.bookings))
	copy(out, s.m.bookings)
	return out, nil
}

func (s memBookings) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	for i := range s.m.bookings {
		if s.m.bookings[i].ID == id {
			b := s.m.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (s memBookings) Insert(ctx context.Context, b *model.Booking) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.bookings = append(s.m.bookings, *b)
	return nil
}

func (s memBookings) Replace(ctx context.Context, id string, b *model.Booking) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for i := range s.m.bookings {
		if s.m.bookings[i].ID == id {
			s.m.bookings[i] = *b
			return nil
		}
	}
	return ErrNotFound
}

type memAudit struct{ m *Memory }

func (s memAudit) ListAll(ctx context.Context) ([]model.AuditEntry, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]model.AuditEntry, len(s.m.audit))
	copy(out, s.m.audit)
	return out, nil
}

// Insert prepends so reads come back newest-first.
func (s memAudit) Insert(ctx context.Context, e *model.AuditEntry) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.audit = append([]model.AuditEntry{*e}, s.m.audit...)
	return nil
}
