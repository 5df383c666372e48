package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivehub/vehicle-rental/internal/model"
)

func TestCheckAvailabilityNoBookings(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")

	sp := mustSpan(t, "2025-07-10", "10:00", "2025-07-12", "10:00")
	avail, err := s.CheckAvailability(context.Background(), "v1", sp, "")
	require.NoError(t, err)
	assert.True(t, avail.Available)
	assert.Empty(t, avail.Conflicts)
	assert.Empty(t, avail.NextAvailable)
}

func TestCheckAvailabilityUnknownVehicle(t *testing.T) {
	s, _ := newTestService(t)

	sp := mustSpan(t, "2025-07-10", "10:00", "2025-07-12", "10:00")
	avail, err := s.CheckAvailability(context.Background(), "ghost", sp, "")
	require.NoError(t, err)
	assert.False(t, avail.Available)
	assert.Empty(t, avail.Conflicts)
	assert.Empty(t, avail.NextAvailable)
}

func TestCheckAvailabilityNonOfferableVehicle(t *testing.T) {
	s, m := newTestService(t)
	ctx := context.Background()
	sp := mustSpan(t, "2025-07-10", "10:00", "2025-07-12", "10:00")

	// Kill-switched: active status but isAvailable false.
	v1 := seedVehicle(t, m, "v1", "KA-01-1234")
	v1.IsAvailable = false
	require.NoError(t, m.Vehicles().Replace(ctx, "v1", v1))

	avail, err := s.CheckAvailability(ctx, "v1", sp, "")
	require.NoError(t, err)
	assert.False(t, avail.Available)
	assert.Empty(t, avail.Conflicts)

	// Non-active status with the availability flag still set.
	v2 := seedVehicle(t, m, "v2", "KA-02-5678")
	v2.Status = "maintenance"
	require.NoError(t, m.Vehicles().Replace(ctx, "v2", v2))

	avail, err = s.CheckAvailability(ctx, "v2", sp, "")
	require.NoError(t, err)
	assert.False(t, avail.Available)
}

func TestCheckAvailabilityConflict(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	existing := seedBooking(t, m, model.Booking{
		ID: "b1", VehicleID: "v1",
		CustomerName: "Amit Kumar", CustomerPhone: "9000000001",
		BookingType: model.BookingTypeDaily,
		StartDate:   "2025-07-11", StartTime: "08:00",
		EndDate: "2025-07-13", EndTime: "08:00",
		Status: model.BookingStatusConfirmed,
	})

	sp := mustSpan(t, "2025-07-10", "10:00", "2025-07-12", "10:00")
	avail, err := s.CheckAvailability(context.Background(), "v1", sp, "")
	require.NoError(t, err)
	assert.False(t, avail.Available)
	require.Len(t, avail.Conflicts, 1)
	assert.Equal(t, existing.ID, avail.Conflicts[0].ID)
	assert.Equal(t, "2025-07-13 08:00", avail.NextAvailable)
}

func TestCheckAvailabilityBoundaryTouch(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	seedBooking(t, m, model.Booking{
		ID: "b1", VehicleID: "v1",
		CustomerName: "Amit Kumar", CustomerPhone: "9000000001",
		BookingType: model.BookingTypeDaily,
		StartDate:   "2025-07-08", StartTime: "10:00",
		EndDate: "2025-07-10", EndTime: "10:00",
	})

	// Starts exactly when the existing booking ends.
	sp := mustSpan(t, "2025-07-10", "10:00", "2025-07-12", "10:00")
	avail, err := s.CheckAvailability(context.Background(), "v1", sp, "")
	require.NoError(t, err)
	assert.True(t, avail.Available)
}

func TestCheckAvailabilityIgnoresCancelled(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	seedBooking(t, m, model.Booking{
		ID: "b1", VehicleID: "v1",
		CustomerName: "Amit Kumar", CustomerPhone: "9000000001",
		BookingType: model.BookingTypeDaily,
		StartDate:   "2025-07-10", StartTime: "10:00",
		EndDate: "2025-07-12", EndTime: "10:00",
		Status: model.BookingStatusCancelled,
	})

	sp := mustSpan(t, "2025-07-10", "10:00", "2025-07-12", "10:00")
	avail, err := s.CheckAvailability(context.Background(), "v1", sp, "")
	require.NoError(t, err)
	assert.True(t, avail.Available)
}

func TestCheckAvailabilityIgnoresOtherVehicles(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	seedVehicle(t, m, "v2", "KA-02-5678")
	seedBooking(t, m, model.Booking{
		ID: "b1", VehicleID: "v2",
		CustomerName: "Amit Kumar", CustomerPhone: "9000000001",
		BookingType: model.BookingTypeDaily,
		StartDate:   "2025-07-10", StartTime: "10:00",
		EndDate: "2025-07-12", EndTime: "10:00",
	})

	sp := mustSpan(t, "2025-07-10", "10:00", "2025-07-12", "10:00")
	avail, err := s.CheckAvailability(context.Background(), "v1", sp, "")
	require.NoError(t, err)
	assert.True(t, avail.Available)
}

func TestCheckAvailabilityExcludesSelf(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	seedBooking(t, m, model.Booking{
		ID: "b1", VehicleID: "v1",
		CustomerName: "Amit Kumar", CustomerPhone: "9000000001",
		BookingType: model.BookingTypeDaily,
		StartDate:   "2025-07-10", StartTime: "10:00",
		EndDate: "2025-07-12", EndTime: "10:00",
	})

	sp := mustSpan(t, "2025-07-10", "12:00", "2025-07-12", "12:00")
	avail, err := s.CheckAvailability(context.Background(), "v1", sp, "b1")
	require.NoError(t, err)
	assert.True(t, avail.Available)
}

func TestNextFreeHintPicksLastStartingFutureBooking(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	seedBooking(t, m, model.Booking{
		ID: "b1", VehicleID: "v1",
		CustomerName: "Amit Kumar", CustomerPhone: "9000000001",
		BookingType: model.BookingTypeDaily,
		StartDate:   "2025-07-10", StartTime: "10:00",
		EndDate: "2025-07-12", EndTime: "10:00",
	})
	seedBooking(t, m, model.Booking{
		ID: "b2", VehicleID: "v1",
		CustomerName: "Sneha Rao", CustomerPhone: "9000000002",
		BookingType: model.BookingTypeDaily,
		StartDate:   "2025-07-20", StartTime: "09:00",
		EndDate: "2025-07-22", EndTime: "09:00",
	})

	sp := mustSpan(t, "2025-07-11", "10:00", "2025-07-11", "18:00")
	avail, err := s.CheckAvailability(context.Background(), "v1", sp, "")
	require.NoError(t, err)
	assert.False(t, avail.Available)
	assert.Equal(t, "2025-07-22 09:00", avail.NextAvailable)
}

func TestNextFreeHintCountsRunningBooking(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	// Started before the clock's now (2025-06-01 12:00), still running.
	seedBooking(t, m, model.Booking{
		ID: "b1", VehicleID: "v1",
		CustomerName: "Amit Kumar", CustomerPhone: "9000000001",
		BookingType: model.BookingTypeDaily,
		StartDate:   "2025-05-31", StartTime: "10:00",
		EndDate: "2025-06-02", EndTime: "10:00",
		Status: model.BookingStatusConfirmed,
	})

	sp := mustSpan(t, "2025-06-01", "14:00", "2025-06-01", "18:00")
	avail, err := s.CheckAvailability(context.Background(), "v1", sp, "")
	require.NoError(t, err)
	assert.False(t, avail.Available)
	assert.Equal(t, "2025-06-02 10:00", avail.NextAvailable)
}
