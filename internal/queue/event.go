// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingEvent is published on every booking lifecycle action (book,
// edit, approve, reject).  It contains enough information for
// downstream consumers to log or trigger analytics without querying
// the primary database.
type BookingEvent struct {
	Action        string `json:"action"`
	BookingID     string `json:"booking_id"`
	VehicleID     string `json:"vehicle_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	BookingType   string `json:"booking_type"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	TotalCost     int64  `json:"total_cost"`
	Status        string `json:"status"`
	OccurredAt    string `json:"occurred_at"`
}
