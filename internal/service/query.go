package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/drivehub/vehicle-rental/internal/model"
	"github.com/drivehub/vehicle-rental/internal/store"
)

// Default page sizes for the two list endpoints.
const (
	defaultBookingPageSize = 10
	defaultAuditPageSize   = 20
)

// BookingFilter narrows and pages ListBookings.  Status "" or "all"
// matches everything; Search is matched case-insensitively against the
// customer name, phone, booking id and vehicle registration plate.
type BookingFilter struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

// AuditFilter narrows and pages ListAuditEntries.  EntityType, Action
// and Admin "" or "all" match everything; Admin matches the entry's
// admin name exactly, while Search is matched case-insensitively
// against the entity id, admin name and details.
type AuditFilter struct {
	EntityType string
	Action     string
	Admin      string
	Search     string
	Page       int
	PageSize   int
}

// BookingPage is one page of joined bookings.
type BookingPage struct {
	Items      []model.BookingWithVehicle `json:"items"`
	Total      int                        `json:"total"`
	Page       int                        `json:"page"`
	PageSize   int                        `json:"pageSize"`
	TotalPages int                        `json:"totalPages"`
}

// AuditPage is one page of audit entries, newest first.
type AuditPage struct {
	Items      []model.AuditEntry `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}

// ListBookings returns a filtered page of bookings joined with their
// vehicles, newest first.  Filtering runs before pagination so the
// page count reflects the filtered set.  A booking whose vehicle no
// longer resolves fails the whole listing with an IntegrityError
// rather than rendering a placeholder.
func (s *Service) ListBookings(ctx context.Context, f BookingFilter) (*BookingPage, error) {
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicleIndex(ctx)
	if err != nil {
		return nil, err
	}

	joined := make([]model.BookingWithVehicle, 0, len(bookings))
	for i := range bookings {
		b := bookings[i]
		v, ok := vehicles[b.VehicleID]
		if !ok {
			return nil, &IntegrityError{BookingID: b.ID, VehicleID: b.VehicleID}
		}
		if !matchesBooking(&b, v, f) {
			continue
		}
		joined = append(joined, model.BookingWithVehicle{Booking: b, Vehicle: v})
	}

	sort.SliceStable(joined, func(i, j int) bool {
		return joined[i].CreatedAt.After(joined[j].CreatedAt)
	})

	page, size := clampPage(f.Page, f.PageSize, defaultBookingPageSize)
	items, totalPages := paginate(joined, page, size)
	return &BookingPage{
		Items:      items,
		Total:      len(joined),
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}, nil
}

// GetBooking returns one booking joined with its vehicle.
func (s *Service) GetBooking(ctx context.Context, id string) (*model.BookingWithVehicle, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	v, err := s.vehicles.GetByID(ctx, b.VehicleID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &IntegrityError{BookingID: b.ID, VehicleID: b.VehicleID}
	}
	if err != nil {
		return nil, err
	}
	return &model.BookingWithVehicle{Booking: *b, Vehicle: v}, nil
}

// ListAuditEntries returns a filtered page of the audit trail.  The
// store already yields entries newest-first; the order is preserved,
// never re-derived.
func (s *Service) ListAuditEntries(ctx context.Context, f AuditFilter) (*AuditPage, error) {
	all, err := s.recorder.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := all[:0:0]
	for i := range all {
		if matchesAudit(&all[i], f) {
			filtered = append(filtered, all[i])
		}
	}

	page, size := clampPage(f.Page, f.PageSize, defaultAuditPageSize)
	items, totalPages := paginate(filtered, page, size)
	return &AuditPage{
		Items:      items,
		Total:      len(filtered),
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}, nil
}

// vehicleIndex loads the full fleet keyed by id for joining.
func (s *Service) vehicleIndex(ctx context.Context) (map[string]*model.Vehicle, error) {
	all, err := s.vehicles.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]*model.Vehicle, len(all))
	for i := range all {
		idx[all[i].ID] = &all[i]
	}
	return idx, nil
}

func matchesBooking(b *model.Booking, v *model.Vehicle, f BookingFilter) bool {
	if f.Status != "" && f.Status != "all" && b.Status != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	return containsFold(b.CustomerName, q) ||
		containsFold(b.CustomerPhone, q) ||
		containsFold(b.ID, q) ||
		containsFold(v.VehicleNumber, q)
}

func matchesAudit(e *model.AuditEntry, f AuditFilter) bool {
	if f.EntityType != "" && f.EntityType != "all" && e.EntityType != f.EntityType {
		return false
	}
	if f.Action != "" && f.Action != "all" && e.Action != f.Action {
		return false
	}
	if f.Admin != "" && f.Admin != "all" && e.AdminName != f.Admin {
		return false
	}
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	return containsFold(e.EntityID, q) ||
		containsFold(e.AdminName, q) ||
		containsFold(e.Details, q)
}

// containsFold reports whether s contains q; q must already be lowered.
func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}

// clampPage normalizes page and page size: non-positive pages become
// page 1, non-positive sizes fall back to the endpoint default.
func clampPage(page, size, defaultSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = defaultSize
	}
	return page, size
}

// paginate slices one page out of items and returns it with the total
// page count.  A page past the end yields an empty slice, not an error.
func paginate[T any](items []T, page, size int) ([]T, int) {
	totalPages := 0
	if len(items) > 0 {
		totalPages = (len(items) + size - 1) / size
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}, totalPages
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end:end], totalPages
}
