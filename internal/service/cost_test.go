package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivehub/vehicle-rental/internal/model"
)

func TestComputeCostDaily(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	ctx := context.Background()

	t.Run("exactly one day", func(t *testing.T) {
		sp := mustSpan(t, "2025-07-10", "10:00", "2025-07-11", "10:00")
		cost, err := s.ComputeCost(ctx, "v1", sp, model.BookingTypeDaily)
		require.NoError(t, err)
		assert.Equal(t, int64(5500), cost)
	})

	t.Run("one minute over rounds up to two days", func(t *testing.T) {
		sp := mustSpan(t, "2025-07-10", "10:00", "2025-07-11", "10:01")
		cost, err := s.ComputeCost(ctx, "v1", sp, model.BookingTypeDaily)
		require.NoError(t, err)
		assert.Equal(t, int64(11000), cost)
	})

	t.Run("sub-day span bills the one-day minimum", func(t *testing.T) {
		sp := mustSpan(t, "2025-07-10", "10:00", "2025-07-10", "14:00")
		cost, err := s.ComputeCost(ctx, "v1", sp, model.BookingTypeDaily)
		require.NoError(t, err)
		assert.Equal(t, int64(5500), cost)
	})
}

func TestComputeCostHourly(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	ctx := context.Background()

	t.Run("whole hours", func(t *testing.T) {
		sp := mustSpan(t, "2025-07-10", "10:00", "2025-07-10", "20:00")
		cost, err := s.ComputeCost(ctx, "v1", sp, model.BookingTypeHourly)
		require.NoError(t, err)
		assert.Equal(t, int64(8000), cost)
	})

	t.Run("half hour rounds up to one", func(t *testing.T) {
		sp := mustSpan(t, "2025-07-10", "10:00", "2025-07-10", "10:30")
		cost, err := s.ComputeCost(ctx, "v1", sp, model.BookingTypeHourly)
		require.NoError(t, err)
		assert.Equal(t, int64(800), cost)
	})
}

func TestComputeCostUnknownVehicleSoftFails(t *testing.T) {
	s, _ := newTestService(t)
	sp := mustSpan(t, "2025-07-10", "10:00", "2025-07-11", "10:00")

	cost, err := s.ComputeCost(context.Background(), "ghost", sp, model.BookingTypeDaily)
	require.NoError(t, err)
	assert.Zero(t, cost)
}

func TestComputeCostUnknownTypeFails(t *testing.T) {
	s, m := newTestService(t)
	seedVehicle(t, m, "v1", "KA-01-1234")
	sp := mustSpan(t, "2025-07-10", "10:00", "2025-07-11", "10:00")

	_, err := s.ComputeCost(context.Background(), "v1", sp, "weekly")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}
