package entity

import (
	"time"

	errs "github.com/parkspot-io/parkspot-api/internal/domain/error"
	"github.com/parkspot-io/parkspot-api/internal/domain/geo"
	coreport "github.com/parkspot-io/parkspot-api/internal/domain/port/core"
)

// SlotStatus represents the availability state of a parking slot
type SlotStatus string

// Slot states
const (
	StatusAvailable SlotStatus = "available"
	StatusReserved  SlotStatus = "reserved"
)

// Slot represents a geolocated parking space published by an owner
type Slot struct {
	ID          uint64     // Unique identifier for the slot
	Latitude    float64    // Latitude in [-90, 90]
	Longitude   float64    // Longitude in [-180, 180]
	Description string     // Free-form description shown to drivers
	Status      SlotStatus // Current availability state
	OwnerID     *uint64    // Owner account, nil when ownership is untracked
	CreatedAt   time.Time  // When the slot was published
	UpdatedAt   time.Time  // When the slot was last updated
}

// NewSlot creates a new available slot with validated coordinates. The ID is
// assigned later by the repository.
func NewSlot(latitude, longitude float64, description string, ownerID *uint64, timeProvider coreport.TimeProvider) (*Slot, error) {
	if !geo.ValidLatitude(latitude) || !geo.ValidLongitude(longitude) {
		return nil, errs.ErrInvalidCoordinates
	}

	now := timeProvider.Now()
	return &Slot{
		Latitude:    latitude,
		Longitude:   longitude,
		Description: description,
		Status:      StatusAvailable,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsAvailable reports whether the slot can currently be reserved
func (s *Slot) IsAvailable() bool {
	return s.Status == StatusAvailable
}

// Reserve transitions the slot to reserved.
// Returns ErrSlotAlreadyReserved if the slot is not available.
func (s *Slot) Reserve(timeProvider coreport.TimeProvider) error {
	if s.Status != StatusAvailable {
		return errs.ErrSlotAlreadyReserved
	}

	s.Status = StatusReserved
	s.UpdatedAt = timeProvider.Now()
	return nil
}

// Release transitions the slot back to available. Idempotent.
func (s *Slot) Release(timeProvider coreport.TimeProvider) {
	if s.Status == StatusAvailable {
		return
	}

	s.Status = StatusAvailable
	s.UpdatedAt = timeProvider.Now()
}

// DistanceFrom returns the great-circle distance in kilometers between the
// slot and the given point
func (s *Slot) DistanceFrom(latitude, longitude float64) float64 {
	return geo.Distance(s.Latitude, s.Longitude, latitude, longitude)
}
