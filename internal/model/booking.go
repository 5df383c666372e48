package model

import "time"

// Booking statuses.  A booking is created as pending and can move to
// confirmed or cancelled exactly once.  Confirmed and cancelled are
// terminal for admin operations.  Completed is a historical state set
// by an external batch process; the engine renders and filters it but
// never produces it.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Reservation modes determine the pricing basis of a booking.
const (
	BookingTypeHourly = "hourly"
	BookingTypeDaily  = "daily"
)

// Booking records a customer's reservation of one vehicle for a
// date+time span.  The span is stored exactly as submitted (two
// calendar dates and two clock times); the engine joins them into
// absolute UTC instants for overlap and cost math.  TotalCost is
// derived from the vehicle's rate card and is never accepted from
// callers directly.
//
// Fields:
//  ID              – identifier of the booking record.
//  VehicleID       – reference to the reserved vehicle.  A booking whose
//                    vehicle no longer resolves is a data-integrity error.
//  CustomerName    – customer contact name.
//  CustomerPhone   – customer phone number.
//  CustomerAddress – customer postal address.
//  BookingType     – "hourly" or "daily".
//  StartDate       – first calendar day, "2006-01-02".
//  EndDate         – last calendar day, "2006-01-02".
//  StartTime       – pick-up clock time, "15:04".
//  EndTime         – return clock time, "15:04".
//  TotalCost       – derived cost for the span.
//  Status          – lifecycle status, see constants above.
//  CreatedAt       – creation timestamp, immutable.
//  LastModified    – updated on every mutation.
type Booking struct {
	ID              string    `json:"id"`
	VehicleID       string    `json:"vehicleId"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	CustomerAddress string    `json:"customerAddress"`
	BookingType     string    `json:"bookingType"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	TotalCost       int64     `json:"totalCost"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	LastModified    time.Time `json:"lastModified"`
}

// Terminal reports whether the booking has reached a state in which
// admin edits and status transitions are no longer permitted.
func (b *Booking) Terminal() bool {
	return b.Status == BookingStatusConfirmed ||
		b.Status == BookingStatusCancelled ||
		b.Status == BookingStatusCompleted
}

// BookingWithVehicle joins a booking with its resolved vehicle for
// display.  The vehicle is shared read-only; listings resolve it per
// booking instead of keeping a back-reference on Vehicle.
type BookingWithVehicle struct {
	Booking
	Vehicle *Vehicle `json:"vehicle"`
}
