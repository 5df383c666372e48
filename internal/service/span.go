package service

import (
	"time"

	"github.com/drivehub/vehicle-rental/internal/model"
)

// Layouts for the submitted span components.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Span is a validated reservation window.  The four submitted fields
// are kept verbatim for storage; Start and End are the joined absolute
// instants (UTC) used for all overlap and cost math.
type Span struct {
	StartDate string
	EndDate   string
	StartTime string
	EndTime   string

	Start time.Time
	End   time.Time
}

// ParseSpan validates the four span fields and joins them into UTC
// instants.  Any parse failure or a non-positive window (end not
// strictly after start) yields a ValidationError.
func ParseSpan(startDate, startTime, endDate, endTime string) (Span, error) {
	start, err := joinUTC(startDate, startTime)
	if err != nil {
		return Span{}, errValidationf("invalid start of span: %v", err)
	}
	end, err := joinUTC(endDate, endTime)
	if err != nil {
		return Span{}, errValidationf("invalid end of span: %v", err)
	}
	if !end.After(start) {
		return Span{}, errValidationf("span end %s %s must be after start %s %s",
			endDate, endTime, startDate, startTime)
	}
	return Span{
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: startTime,
		EndTime:   endTime,
		Start:     start,
		End:       end,
	}, nil
}

// SameDay reports whether the span starts and ends on one calendar day.
func (s Span) SameDay() bool { return s.StartDate == s.EndDate }

// Overlaps reports whether two half-open windows [Start, End)
// intersect.  Back-to-back spans that merely touch at a boundary do
// not overlap, and a zero-length window overlaps nothing.
func (s Span) Overlaps(o Span) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

// bookingSpan rebuilds the span of a stored booking.  Stored bookings
// were validated on the way in, so a parse failure here means the
// record was corrupted out-of-band; the booking is then treated as a
// zero span, which overlaps nothing, and availability stays closed to
// writes through the conflict scan of valid records.
func bookingSpan(b *model.Booking) Span {
	sp, err := ParseSpan(b.StartDate, b.StartTime, b.EndDate, b.EndTime)
	if err != nil {
		return Span{}
	}
	return sp
}

// joinUTC combines a calendar date and a clock time into one instant.
func joinUTC(date, clock string) (time.Time, error) {
	return time.Parse(dateLayout+" "+timeLayout, date+" "+clock)
}
