package booking

import (
	"context"

	"gorm.io/gorm"

	"github.com/quantumapps-dev/pspacademy/internal/models"
)

// Store is the engine's only persistence collaborator: load the full
// reservation collection, or replace it wholesale. Keeping the surface this
// narrow lets tests run the engine against an in-memory fake.
type Store interface {
	Load(ctx context.Context) ([]models.Reservation, error)
	Save(ctx context.Context, reservations []models.Reservation) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.db.WithContext(ctx).Order("created_at asc").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *GormStore) Save(ctx context.Context, reservations []models.Reservation) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Reservation{}).Error; err != nil {
			return err
		}
		if len(reservations) == 0 {
			return nil
		}
		return tx.Create(&reservations).Error
	})
}
