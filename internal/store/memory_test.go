package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivehub/vehicle-rental/internal/model"
)

func TestMemoryVehicleRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	vs := mem.Vehicles()

	v := &model.Vehicle{ID: "veh-1", VehicleNumber: "KA-01-1234", Title: "Swift Dzire", Status: model.VehicleStatusActive}
	require.NoError(t, vs.Insert(ctx, v))

	got, err := vs.GetByID(ctx, "veh-1")
	require.NoError(t, err)
	assert.Equal(t, "KA-01-1234", got.VehicleNumber)

	// Mutating the returned record must not touch stored state.
	got.Title = "changed"
	again, err := vs.GetByID(ctx, "veh-1")
	require.NoError(t, err)
	assert.Equal(t, "Swift Dzire", again.Title)

	_, err = vs.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryReplaceMissing(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	err := mem.Bookings().Replace(ctx, "nope", &model.Booking{ID: "nope"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryAuditPrepends(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	as := mem.Audit()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		e := &model.AuditEntry{ID: id, Timestamp: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, as.Insert(ctx, e))
	}

	all, err := as.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].ID)
	assert.Equal(t, "second", all[1].ID)
	assert.Equal(t, "first", all[2].ID)
}

func TestMemoryListAllIsCopy(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	bs := mem.Bookings()

	require.NoError(t, bs.Insert(ctx, &model.Booking{ID: "bk-1", CustomerName: "Priya Nair"}))

	list, err := bs.ListAll(ctx)
	require.NoError(t, err)
	list[0].CustomerName = "changed"

	got, err := bs.GetByID(ctx, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, "Priya Nair", got.CustomerName)
}
