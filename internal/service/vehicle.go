package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/drivehub/vehicle-rental/internal/model"
	"github.com/drivehub/vehicle-rental/internal/store"
	"github.com/drivehub/vehicle-rental/internal/utils"
)

// VehicleInput carries a new fleet entry.
type VehicleInput struct {
	VehicleNumber string   `json:"vehicleNumber"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Make          string   `json:"make"`
	Model         string   `json:"model"`
	Year          int      `json:"year"`
	Category      string   `json:"category"`
	ImageURL      string   `json:"imageUrl"`
	Location      string   `json:"location"`
	Features      []string `json:"features"`
	HourlyRate    int64    `json:"hourlyRate"`
	DailyRate     int64    `json:"dailyRate"`
}

// VehiclePatch is the delta submitted to UpdateVehicle.  Nil fields
// keep the stored value.
type VehiclePatch struct {
	VehicleNumber *string   `json:"vehicleNumber,omitempty"`
	Title         *string   `json:"title,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Make          *string   `json:"make,omitempty"`
	Model         *string   `json:"model,omitempty"`
	Year          *int      `json:"year,omitempty"`
	Category      *string   `json:"category,omitempty"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	Location      *string   `json:"location,omitempty"`
	Features      *[]string `json:"features,omitempty"`
	HourlyRate    *int64    `json:"hourlyRate,omitempty"`
	DailyRate     *int64    `json:"dailyRate,omitempty"`
	Status        *string   `json:"status,omitempty"`
	IsAvailable   *bool     `json:"isAvailable,omitempty"`
}

// ListVehicles returns the active fleet in stored order.
func (s *Service) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	all, err := s.vehicles.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Vehicle, 0, len(all))
	for i := range all {
		if all[i].Status == model.VehicleStatusActive {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// GetVehicle returns one vehicle by id.
func (s *Service) GetVehicle(ctx context.Context, id string) (*model.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	return v, err
}

// CreateVehicle adds a fleet entry.  New vehicles start active and
// open for reservations.
func (s *Service) CreateVehicle(ctx context.Context, actor Actor, in VehicleInput) (*model.Vehicle, error) {
	if !actor.valid() {
		return nil, errValidationf("operation requires an attributed admin")
	}
	if in.VehicleNumber == "" || in.Title == "" {
		return nil, errValidationf("vehicleNumber and title are required")
	}
	if in.HourlyRate < 0 || in.DailyRate < 0 {
		return nil, errValidationf("rates must be non-negative")
	}

	id, err := utils.NewID()
	if err != nil {
		return nil, err
	}
	now := s.now()
	v := &model.Vehicle{
		ID:            id,
		VehicleNumber: in.VehicleNumber,
		Title:         in.Title,
		Description:   in.Description,
		Make:          in.Make,
		Model:         in.Model,
		Year:          in.Year,
		Category:      in.Category,
		ImageURL:      in.ImageURL,
		Location:      in.Location,
		Features:      in.Features,
		HourlyRate:    in.HourlyRate,
		DailyRate:     in.DailyRate,
		Status:        model.VehicleStatusActive,
		IsAvailable:   true,
		CreatedAt:     now,
		LastModified:  now,
	}
	if err := s.vehicles.Insert(ctx, v); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Created vehicle %s - %s", v.VehicleNumber, v.Title)
	if err := s.recorder.Record(ctx, model.AuditEntityVehicle, v.ID, model.AuditActionCreate, actor, details, nil, nil); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateVehicle applies a patch to a fleet entry and records the edit
// with before/after snapshots.
func (s *Service) UpdateVehicle(ctx context.Context, actor Actor, id string, patch VehiclePatch) (*model.Vehicle, error) {
	if !actor.valid() {
		return nil, errValidationf("operation requires an attributed admin")
	}

	current, err := s.vehicles.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	next := *current
	applyVehiclePatch(&next, patch)
	if next.VehicleNumber == "" || next.Title == "" {
		return nil, errValidationf("vehicleNumber and title are required")
	}
	if next.HourlyRate < 0 || next.DailyRate < 0 {
		return nil, errValidationf("rates must be non-negative")
	}
	next.LastModified = s.now()

	if err := s.vehicles.Replace(ctx, id, &next); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	details := fmt.Sprintf("Updated vehicle %s - %s", next.VehicleNumber, next.Title)
	if err := s.recorder.Record(ctx, model.AuditEntityVehicle, id, model.AuditActionEdit, actor, details, current, patch); err != nil {
		return nil, err
	}
	return &next, nil
}

// AvailableVehicles returns every offerable vehicle free for the span.
// A booking id in exclude is ignored during the conflict scan, so an
// edit form can list the vehicle its own booking currently occupies.
func (s *Service) AvailableVehicles(ctx context.Context, sp Span, exclude string) ([]model.Vehicle, error) {
	all, err := s.vehicles.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Vehicle, 0, len(all))
	for i := range all {
		v := &all[i]
		if !v.Offerable() {
			continue
		}
		avail, err := s.CheckAvailability(ctx, v.ID, sp, exclude)
		if err != nil {
			return nil, err
		}
		if avail.Available {
			out = append(out, *v)
		}
	}
	return out, nil
}

func applyVehiclePatch(v *model.Vehicle, p VehiclePatch) {
	if p.VehicleNumber != nil {
		v.VehicleNumber = *p.VehicleNumber
	}
	if p.Title != nil {
		v.Title = *p.Title
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if p.Make != nil {
		v.Make = *p.Make
	}
	if p.Model != nil {
		v.Model = *p.Model
	}
	if p.Year != nil {
		v.Year = *p.Year
	}
	if p.Category != nil {
		v.Category = *p.Category
	}
	if p.ImageURL != nil {
		v.ImageURL = *p.ImageURL
	}
	if p.Location != nil {
		v.Location = *p.Location
	}
	if p.Features != nil {
		v.Features = *p.Features
	}
	if p.HourlyRate != nil {
		v.HourlyRate = *p.HourlyRate
	}
	if p.DailyRate != nil {
		v.DailyRate = *p.DailyRate
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	if p.IsAvailable != nil {
		v.IsAvailable = *p.IsAvailable
	}
}
