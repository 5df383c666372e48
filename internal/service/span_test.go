package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSpan(t *testing.T, startDate, startTime, endDate, endTime string) Span {
	t.Helper()
	sp, err := ParseSpan(startDate, startTime, endDate, endTime)
	require.NoError(t, err)
	return sp
}

func TestParseSpanValid(t *testing.T) {
	sp := mustSpan(t, "2025-07-10", "10:00", "2025-07-12", "18:30")
	assert.Equal(t, "2025-07-10", sp.StartDate)
	assert.Equal(t, "18:30", sp.EndTime)
	assert.True(t, sp.End.After(sp.Start))
	assert.False(t, sp.SameDay())
}

func TestParseSpanRejectsBadInput(t *testing.T) {
	cases := []struct {
		name                                   string
		startDate, startTime, endDate, endTime string
	}{
		{"end before start", "2025-07-12", "10:00", "2025-07-10", "10:00"},
		{"zero length", "2025-07-10", "10:00", "2025-07-10", "10:00"},
		{"bad date", "10-07-2025", "10:00", "2025-07-12", "10:00"},
		{"bad time", "2025-07-10", "10am", "2025-07-12", "10:00"},
		{"empty", "", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSpan(tc.startDate, tc.startTime, tc.endDate, tc.endTime)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	a := mustSpan(t, "2025-07-10", "10:00", "2025-07-12", "10:00")
	b := mustSpan(t, "2025-07-11", "08:00", "2025-07-13", "08:00")
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
}

func TestOverlapsContainment(t *testing.T) {
	outer := mustSpan(t, "2025-07-10", "08:00", "2025-07-15", "20:00")
	inner := mustSpan(t, "2025-07-11", "10:00", "2025-07-12", "10:00")
	assert.True(t, outer.Overlaps(inner))
	assert.True(t, inner.Overlaps(outer))
}

func TestOverlapsBoundaryTouchDoesNotConflict(t *testing.T) {
	a := mustSpan(t, "2025-07-10", "10:00", "2025-07-11", "10:00")
	b := mustSpan(t, "2025-07-11", "10:00", "2025-07-12", "10:00")
	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestZeroSpanOverlapsNothing(t *testing.T) {
	var zero Span
	a := mustSpan(t, "2025-07-10", "10:00", "2025-07-11", "10:00")
	assert.False(t, zero.Overlaps(a))
	assert.False(t, a.Overlaps(zero))
	assert.False(t, zero.Overlaps(zero))
}
