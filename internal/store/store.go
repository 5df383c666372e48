// Package store defines the record-collection contract the booking
// engine depends on.  Each collection is a durable keyed sequence
// supporting list, get-by-id, insert and replace-by-id.  The engine
// never assumes anything about the backing medium; MySQL repositories
// and the in-memory store in this package both satisfy the contract.
package store

import (
	"context"
	"errors"

	"github.com/drivehub/vehicle-rental/internal/model"
)

// ErrNotFound is returned by GetByID and Replace when no record with
// the requested id exists in the collection.
var ErrNotFound = errors.New("record not found")

// VehicleStore is the keyed collection of vehicles.  ListAll returns
// records in stored order.
type VehicleStore interface {
	ListAll(ctx context.Context) ([]model.Vehicle, error)
	GetByID(ctx context.Context, id string) (*model.Vehicle, error)
	Insert(ctx context.Context, v *model.Vehicle) error
	Replace(ctx context.Context, id string, v *model.Vehicle) error
}

// BookingStore is the keyed collection of bookings.  ListAll returns
// records in stored order; availability and listing logic scan the
// full collection rather than relying on secondary indexes.
type BookingStore interface {
	ListAll(ctx context.Context) ([]model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	Insert(ctx context.Context, b *model.Booking) error
	Replace(ctx context.Context, id string, b *model.Booking) error
}

// AuditStore is the append-only collection of audit entries.  Insert
// prepends: ListAll must return entries newest-first without the
// caller sorting.  Entries are never replaced or deleted.
type AuditStore interface {
	ListAll(ctx context.Context) ([]model.AuditEntry, error)
	Insert(ctx context.Context, e *model.AuditEntry) error
}
