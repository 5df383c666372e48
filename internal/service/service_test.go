package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/drivehub/vehicle-rental/internal/model"
	"github.com/drivehub/vehicle-rental/internal/store"
)

// testClock is the frozen "now" every engine test runs against; all
// fixture spans live in its future.
var testClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

var testActor = Actor{ID: "adm-1", Name: "Priya Nair"}

func newTestService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	m := store.NewMemory()
	s := New(m.Vehicles(), m.Bookings(), m.Audit())
	s.now = func() time.Time { return testClock }
	return s, m
}

// seedVehicle inserts an active, offerable vehicle with the usual
// fixture rate card (800/hour, 5500/day).
func seedVehicle(t *testing.T, m *store.Memory, id, plate string) *model.Vehicle {
	t.Helper()
	v := &model.Vehicle{
		ID:            id,
		VehicleNumber: plate,
		Title:         "BMW 320i",
		Make:          "BMW",
		Model:         "320i",
		Year:          2022,
		Category:      "luxury",
		HourlyRate:    800,
		DailyRate:     5500,
		Status:        model.VehicleStatusActive,
		IsAvailable:   true,
		CreatedAt:     testClock,
		LastModified:  testClock,
	}
	require.NoError(t, m.Vehicles().Insert(context.Background(), v))
	return v
}

// seedBooking inserts a booking record directly, bypassing the engine.
func seedBooking(t *testing.T, m *store.Memory, b model.Booking) model.Booking {
	t.Helper()
	if b.Status == "" {
		b.Status = model.BookingStatusPending
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = testClock
	}
	if b.LastModified.IsZero() {
		b.LastModified = b.CreatedAt
	}
	require.NoError(t, m.Bookings().Insert(context.Background(), &b))
	return b
}

func dailyInput(vehicleID string) CreateBookingInput {
	return CreateBookingInput{
		VehicleID:     vehicleID,
		CustomerName:  "Rahul Sharma",
		CustomerPhone: "9876543210",
		BookingType:   model.BookingTypeDaily,
		StartDate:     "2025-07-10",
		StartTime:     "10:00",
		EndDate:       "2025-07-12",
		EndTime:       "10:00",
	}
}

func auditEntries(t *testing.T, m *store.Memory) []model.AuditEntry {
	t.Helper()
	entries, err := m.Audit().ListAll(context.Background())
	require.NoError(t, err)
	return entries
}
