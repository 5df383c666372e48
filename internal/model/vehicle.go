package model

import "time"

// Vehicle statuses.  Only StatusActive makes a vehicle offerable; any
// other value is tolerated by the engine and treated as "not offerable"
// so that future soft states (maintenance, retired) do not break reads.
const (
	VehicleStatusActive = "active"
)

// Vehicle represents a rentable unit in the fleet.  Pricing is
// expressed through a rate card with an hourly and a daily rate.
// Vehicles are created administratively and are never hard-deleted;
// retiring a vehicle is done through its status or the availability
// kill-switch.
//
// Fields:
//  ID            – identifier of the vehicle record.
//  VehicleNumber – registration plate.
//  Title         – display title shown to admins.
//  Description   – free-form description.
//  Make, Model   – manufacturer and model name.
//  Year          – model year.
//  Category      – fleet category (economy, suv, luxury, bike, ...).
//  ImageURL      – illustrative image.
//  Location      – city / region the vehicle is stationed in.
//  Features      – list of feature labels.
//  HourlyRate    – price per started hour (non-negative).
//  DailyRate     – price per started day (non-negative).
//  Status        – lifecycle status; "active" is the only operative value.
//  IsAvailable   – independent kill-switch for new reservations.
//  CreatedAt     – creation timestamp.
//  LastModified  – updated on every admin edit.
type Vehicle struct {
	ID            string    `json:"id"`
	VehicleNumber string    `json:"vehicleNumber"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Make          string    `json:"make"`
	Model         string    `json:"model"`
	Year          int       `json:"year"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"imageUrl"`
	Location      string    `json:"location"`
	Features      []string  `json:"features"`
	HourlyRate    int64     `json:"hourlyRate"`
	DailyRate     int64     `json:"dailyRate"`
	Status        string    `json:"status"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
	LastModified  time.Time `json:"lastModified"`
}

// Offerable reports whether new reservations may be taken against the
// vehicle.  Both conditions must hold: the status is active AND the
// availability kill-switch is on.
func (v *Vehicle) Offerable() bool {
	return v.Status == VehicleStatusActive && v.IsAvailable
}
