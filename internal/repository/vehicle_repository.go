package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/drivehub/vehicle-rental/internal/model"
	"github.com/drivehub/vehicle-rental/internal/store"
)

// VehicleRepo persists vehicles in the 'vehicles' table.  The features
// list is stored as a JSON array in a TEXT column.  It satisfies
// store.VehicleStore.
type VehicleRepo struct{ db *sql.DB }

// NewVehicleRepo returns a VehicleRepo bound to the given database.
func NewVehicleRepo(db *sql.DB) *VehicleRepo { return &VehicleRepo{db: db} }

const vehicleColumns = `id, vehicle_number, title, description, make, model, year,
       category, image_url, location, features, hourly_rate, daily_rate,
       status, is_available, created_at, last_modified`

// ListAll returns every vehicle in insertion order.
func (r *VehicleRepo) ListAll(ctx context.Context) ([]model.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

// GetByID returns one vehicle or store.ErrNotFound.
func (r *VehicleRepo) GetByID(ctx context.Context, id string) (*model.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = ? LIMIT 1`
	v, err := scanVehicle(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return v, err
}

// Insert stores a new vehicle row.
func (r *VehicleRepo) Insert(ctx context.Context, v *model.Vehicle) error {
	features, err := json.Marshal(v.Features)
	if err != nil {
		return err
	}
	const q = `INSERT INTO vehicles (` + vehicleColumns + `)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, q,
		v.ID, v.VehicleNumber, v.Title, v.Description, v.Make, v.Model, v.Year,
		v.Category, v.ImageURL, v.Location, string(features), v.HourlyRate, v.DailyRate,
		v.Status, v.IsAvailable, v.CreatedAt, v.LastModified)
	return err
}

// Replace overwrites the vehicle row with the given id.
func (r *VehicleRepo) Replace(ctx context.Context, id string, v *model.Vehicle) error {
	features, err := json.Marshal(v.Features)
	if err != nil {
		return err
	}
	const q = `UPDATE vehicles SET vehicle_number=?, title=?, description=?, make=?, model=?,
	           year=?, category=?, image_url=?, location=?, features=?, hourly_rate=?,
	           daily_rate=?, status=?, is_available=?, last_modified=?
	           WHERE id=?`
	res, err := r.db.ExecContext(ctx, q,
		v.VehicleNumber, v.Title, v.Description, v.Make, v.Model,
		v.Year, v.Category, v.ImageURL, v.Location, string(features), v.HourlyRate,
		v.DailyRate, v.Status, v.IsAvailable, v.LastModified, id)
	if err != nil {
		return err
	}
	return requireRow(ctx, r.db, res, "vehicles", id)
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface{ Scan(dest ...any) error }

func scanVehicle(row rowScanner) (*model.Vehicle, error) {
	var (
		v        model.Vehicle
		features sql.NullString
	)
	err := row.Scan(
		&v.ID, &v.VehicleNumber, &v.Title, &v.Description, &v.Make, &v.Model, &v.Year,
		&v.Category, &v.ImageURL, &v.Location, &features, &v.HourlyRate, &v.DailyRate,
		&v.Status, &v.IsAvailable, &v.CreatedAt, &v.LastModified)
	if err != nil {
		return nil, err
	}
	if features.Valid && features.String != "" {
		if err := json.Unmarshal([]byte(features.String), &v.Features); err != nil {
			return nil, err
		}
	}
	return &v, nil
}

// requireRow maps an UPDATE that touched no rows onto store.ErrNotFound,
// distinguishing a missing row from an update with identical values.
func requireRow(ctx context.Context, db *sql.DB, res sql.Result, table, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	var one int
	err = db.QueryRowContext(ctx, `SELECT 1 FROM `+table+` WHERE id = ? LIMIT 1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
