package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivehub/vehicle-rental/internal/model"
)

func TestCreateBooking(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")

	var notified []string
	s.SetNotifier(func(ctx context.Context, action string, b *model.Booking) {
		notified = append(notified, action)
	})

	b, err := s.CreateBooking(context.Background(), testActor, dailyInput("v1"))
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, model.BookingStatusPending, b.Status)
	assert.Equal(t, int64(11000), b.TotalCost) // two days at 5500
	assert.Equal(t, testClock, b.CreatedAt)

	entries := auditEntries(t, m)
	require.Len(t, entries, 1)
	assert.Equal(t, model.AuditActionCreate, entries[0].Action)
	assert.Equal(t, model.AuditEntityBooking, entries[0].EntityType)
	assert.Equal(t, b.ID, entries[0].EntityID)
	assert.Equal(t, testActor.ID, entries[0].AdminID)
	assert.Contains(t, entries[0].Details, "Rahul Sharma")
	assert.Contains(t, entries[0].Details, "KA-01-1234")

	assert.Equal(t, []string{model.AuditActionCreate}, notified)
}

func TestCreateBookingConflictLeavesNoTrace(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")

	_, err := s.CreateBooking(context.Background(), testActor, dailyInput("v1"))
	require.NoError(t, err)

	in := dailyInput("v1")
	in.CustomerName = "Sneha Rao"
	_, err = s.CreateBooking(context.Background(), testActor, in)
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "v1", ce.VehicleID)
	require.Len(t, ce.Conflicts, 1)

	all, err := m.Bookings().ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Len(t, auditEntries(t, m), 1)
}

func TestCreateBookingValidation(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	ctx := context.Background()

	t.Run("missing attribution", func(t *testing.T) {
		_, err := s.CreateBooking(ctx, Actor{}, dailyInput("v1"))
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("missing customer", func(t *testing.T) {
		in := dailyInput("v1")
		in.CustomerName = ""
		_, err := s.CreateBooking(ctx, testActor, in)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("unknown booking type", func(t *testing.T) {
		in := dailyInput("v1")
		in.BookingType = "weekly"
		_, err := s.CreateBooking(ctx, testActor, in)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("hourly across midnight", func(t *testing.T) {
		in := dailyInput("v1")
		in.BookingType = model.BookingTypeHourly
		in.StartDate, in.StartTime = "2025-07-10", "22:00"
		in.EndDate, in.EndTime = "2025-07-11", "02:00"
		_, err := s.CreateBooking(ctx, testActor, in)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		_, err := s.CreateBooking(ctx, testActor, dailyInput("ghost"))
		require.ErrorIs(t, err, ErrNotFound)
	})

	// Nothing above may have persisted anything.
	all, err := m.Bookings().ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, auditEntries(t, m))
}

func TestCreateBookingRejectsUnpriceable(t *testing.T) {
	s, m := newTestService(t)
	v := seedVehicle(t, m, "v1", "KA-01-1234")
	v.DailyRate = 0
	require.NoError(t, m.Vehicles().Replace(context.Background(), "v1", v))

	_, err := s.CreateBooking(context.Background(), testActor, dailyInput("v1"))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	all, err := m.Bookings().ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateBookingRejectsUnofferableVehicle(t *testing.T) {
	s, m := newTestService(t)
	v := seedVehicle(t, m, "v1", "KA-01-1234")
	v.IsAvailable = false
	require.NoError(t, m.Vehicles().Replace(context.Background(), "v1", v))

	_, err := s.CreateBooking(context.Background(), testActor, dailyInput("v1"))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestCreateBookingConcurrentSameSpan(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")

	const workers = 16
	errs := make([]error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.CreateBooking(context.Background(), testActor, dailyInput("v1"))
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var ce *ConflictError
		require.ErrorAs(t, err, &ce)
	}
	assert.Equal(t, 1, successes)

	all, err := m.Bookings().ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSetBookingStatusLifecycle(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	b, err := s.CreateBooking(context.Background(), testActor, dailyInput("v1"))
	require.NoError(t, err)

	confirmed, err := s.SetBookingStatus(context.Background(), testActor, b.ID, model.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, confirmed.Status)

	entries := auditEntries(t, m)
	require.Len(t, entries, 2)
	assert.Equal(t, model.AuditActionApprove, entries[0].Action) // newest first
	assert.Contains(t, entries[0].Details, "Confirmed booking for Rahul Sharma")

	// Confirming again is rejected without touching the record.
	_, err = s.SetBookingStatus(context.Background(), testActor, b.ID, model.BookingStatusConfirmed)
	require.ErrorIs(t, err, ErrForbidden)
	assert.Len(t, auditEntries(t, m), 2)
}

func TestSetBookingStatusReject(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	b, err := s.CreateBooking(context.Background(), testActor, dailyInput("v1"))
	require.NoError(t, err)

	cancelled, err := s.SetBookingStatus(context.Background(), testActor, b.ID, model.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusCancelled, cancelled.Status)

	entries := auditEntries(t, m)
	assert.Equal(t, model.AuditActionReject, entries[0].Action)
	assert.Contains(t, entries[0].Details, "Cancelled booking for Rahul Sharma")
}

func TestSetBookingStatusValidatesTarget(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	b, err := s.CreateBooking(context.Background(), testActor, dailyInput("v1"))
	require.NoError(t, err)

	for _, target := range []string{model.BookingStatusPending, model.BookingStatusCompleted, "approved", ""} {
		_, err := s.SetBookingStatus(context.Background(), testActor, b.ID, target)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "target %q", target)
	}
}

func TestSetBookingStatusOrphanedVehicle(t *testing.T) {
	s, m := newTestService(t)
	seedBooking(t, m, model.Booking{
		ID: "b1", VehicleID: "gone",
		CustomerName: "Amit Kumar", CustomerPhone: "9000000001",
		BookingType: model.BookingTypeDaily,
		StartDate:   "2025-07-10", StartTime: "10:00",
		EndDate: "2025-07-12", EndTime: "10:00",
	})

	_, err := s.SetBookingStatus(context.Background(), testActor, "b1", model.BookingStatusConfirmed)
	var ie *IntegrityError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "b1", ie.BookingID)
	assert.Equal(t, "gone", ie.VehicleID)
}

func TestEditBookingUpdatesCustomerWithoutRepricing(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	b, err := s.CreateBooking(context.Background(), testActor, dailyInput("v1"))
	require.NoError(t, err)

	name := "Rahul S."
	edited, err := s.EditBooking(context.Background(), testActor, b.ID, BookingPatch{CustomerName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Rahul S.", edited.CustomerName)
	assert.Equal(t, b.TotalCost, edited.TotalCost)

	entries := auditEntries(t, m)
	require.Len(t, entries, 2)
	assert.Equal(t, model.AuditActionEdit, entries[0].Action)
	assert.NotEmpty(t, entries[0].PreviousData)
	assert.NotEmpty(t, entries[0].NewData)
}

func TestEditBookingRepricesOnSpanChange(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	b, err := s.CreateBooking(context.Background(), testActor, dailyInput("v1"))
	require.NoError(t, err)
	require.Equal(t, int64(11000), b.TotalCost)

	endDate := "2025-07-13"
	edited, err := s.EditBooking(context.Background(), testActor, b.ID, BookingPatch{EndDate: &endDate})
	require.NoError(t, err)
	assert.Equal(t, int64(16500), edited.TotalCost) // three days at 5500
}

func TestEditBookingConflictOnNewSpan(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	b, err := s.CreateBooking(context.Background(), testActor, dailyInput("v1"))
	require.NoError(t, err)

	in := dailyInput("v1")
	in.StartDate, in.EndDate = "2025-07-20", "2025-07-22"
	other, err := s.CreateBooking(context.Background(), testActor, in)
	require.NoError(t, err)

	startDate, endDate := "2025-07-19", "2025-07-21"
	_, err = s.EditBooking(context.Background(), testActor, b.ID, BookingPatch{StartDate: &startDate, EndDate: &endDate})
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	require.Len(t, ce.Conflicts, 1)
	assert.Equal(t, other.ID, ce.Conflicts[0].ID)
}

func TestEditBookingRejectsMoveToUnofferableVehicle(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	b, err := s.CreateBooking(context.Background(), testActor, dailyInput("v1"))
	require.NoError(t, err)

	v2 := seedVehicle(t, m, "v2", "KA-02-5678")
	v2.Status = "maintenance"
	v2.IsAvailable = false
	require.NoError(t, m.Vehicles().Replace(context.Background(), "v2", v2))

	target := "v2"
	_, err = s.EditBooking(context.Background(), testActor, b.ID, BookingPatch{VehicleID: &target})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	stored, err := m.Bookings().GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "v1", stored.VehicleID)
	assert.Equal(t, b.TotalCost, stored.TotalCost)
}

func TestEditBookingTerminalIsUntouched(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	b, err := s.CreateBooking(context.Background(), testActor, dailyInput("v1"))
	require.NoError(t, err)
	_, err = s.SetBookingStatus(context.Background(), testActor, b.ID, model.BookingStatusConfirmed)
	require.NoError(t, err)
	before := len(auditEntries(t, m))

	name := "Someone Else"
	_, err = s.EditBooking(context.Background(), testActor, b.ID, BookingPatch{CustomerName: &name})
	require.ErrorIs(t, err, ErrForbidden)

	stored, err := m.Bookings().GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rahul Sharma", stored.CustomerName)
	assert.Len(t, auditEntries(t, m), before)
}

func TestEditBookingUnknownID(t *testing.T) {
	s, _ := newTestService(t)
	name := "x"
	_, err := s.EditBooking(context.Background(), testActor, "ghost", BookingPatch{CustomerName: &name})
	require.ErrorIs(t, err, ErrNotFound)
}
