package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivehub/vehicle-rental/internal/model"
)

func TestRecordIDsUniqueOnFrozenClock(t *testing.T) {
	// The test clock never advances, so every entry shares one
	// timestamp; the random suffix must still keep ids distinct.
	s, m := newTestService(t)
	for i := 0; i < 8; i++ {
		err := s.recorder.Record(context.Background(), model.AuditEntityBooking, "b1",
			model.AuditActionEdit, testActor, "Updated booking for Rahul Sharma - Vehicle: KA-01-1234", nil, nil)
		require.NoError(t, err)
	}

	entries := auditEntries(t, m)
	require.Len(t, entries, 8)
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		assert.False(t, seen[e.ID], "duplicate audit id %s", e.ID)
		seen[e.ID] = true
	}
}
