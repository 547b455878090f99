package repositories

import (
	"fmt"

	"dpizza_backend/internal/models"
	"dpizza_backend/internal/store"
)

// ProfileRepository owns the single customer profile record and the
// last-order-id pointer, both written on every successful checkout.
type ProfileRepository interface {
	GetProfile() (*models.CustomerProfile, error)
	SaveProfile(p *models.CustomerProfile) error
	GetLastOrderID() (string, error)
	SetLastOrderID(id string) error
}

type profileRepository struct {
	store *store.Store
}

// NewProfileRepository creates a new instance of ProfileRepository.
func NewProfileRepository(st *store.Store) ProfileRepository {
	return &profileRepository{store: st}
}

func (r *profileRepository) GetProfile() (*models.CustomerProfile, error) {
	var p models.CustomerProfile
	if !r.store.Read(store.KeyProfile, &p) {
		return nil, fmt.Errorf("customer profile: %w", ErrNotFound)
	}
	return &p, nil
}

// SaveProfile overwrites the profile wholesale; there is exactly one local
// customer and the latest checkout wins.
func (r *profileRepository) SaveProfile(p *models.CustomerProfile) error {
	return r.store.Write(store.KeyProfile, p)
}

func (r *profileRepository) GetLastOrderID() (string, error) {
	var id string
	if !r.store.Read(store.KeyLastOrderID, &id) || id == "" {
		return "", fmt.Errorf("last order pointer: %w", ErrNotFound)
	}
	return id, nil
}

func (r *profileRepository) SetLastOrderID(id string) error {
	return r.store.Write(store.KeyLastOrderID, id)
}
