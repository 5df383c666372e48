package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/drivehub/vehicle-rental/internal/model"
	"github.com/drivehub/vehicle-rental/internal/store"
)

// BookingRepo persists bookings in the 'bookings' table.  Span fields
// are stored exactly as submitted (CHAR date and time columns); only
// the engine joins them into instants.  It satisfies store.BookingStore.
type BookingRepo struct{ db *sql.DB }

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, vehicle_id, customer_name, customer_phone, customer_address,
       booking_type, start_date, end_date, start_time, end_time,
       total_cost, status, created_at, last_modified`

// ListAll returns every booking in insertion order.  Availability and
// listing logic scan the whole collection, so no filtering happens here.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

// GetByID returns one booking or store.ErrNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ? LIMIT 1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return b, err
}

// Insert stores a new booking row.
func (r *BookingRepo) Insert(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings (` + bookingColumns + `)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		b.ID, b.VehicleID, b.CustomerName, b.CustomerPhone, b.CustomerAddress,
		b.BookingType, b.StartDate, b.EndDate, b.StartTime, b.EndTime,
		b.TotalCost, b.Status, b.CreatedAt, b.LastModified)
	return err
}

// Replace overwrites the booking row with the given id.
func (r *BookingRepo) Replace(ctx context.Context, id string, b *model.Booking) error {
	const q = `UPDATE bookings SET vehicle_id=?, customer_name=?, customer_phone=?,
	           customer_address=?, booking_type=?, start_date=?, end_date=?,
	           start_time=?, end_time=?, total_cost=?, status=?, last_modified=?
	           WHERE id=?`
	res, err := r.db.ExecContext(ctx, q,
		b.VehicleID, b.CustomerName, b.CustomerPhone,
		b.CustomerAddress, b.BookingType, b.StartDate, b.EndDate,
		b.StartTime, b.EndTime, b.TotalCost, b.Status, b.LastModified, id)
	if err != nil {
		return err
	}
	return requireRow(ctx, r.db, res, "bookings", id)
}

func scanBooking(row rowScanner) (*model.Booking, error) {
	var b model.Booking
	err := row.Scan(
		&b.ID, &b.VehicleID, &b.CustomerName, &b.CustomerPhone, &b.CustomerAddress,
		&b.BookingType, &b.StartDate, &b.EndDate, &b.StartTime, &b.EndTime,
		&b.TotalCost, &b.Status, &b.CreatedAt, &b.LastModified)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
