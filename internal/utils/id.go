package utils

// NewID returns a random 24-character hex identifier used as the
// primary key for vehicles and bookings.
func NewID() (string, error) {
	return RandomHex(12)
}
