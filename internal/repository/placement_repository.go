package repository

import (
	"Packed/internal/models"
	"time"

	"gorm.io/gorm"
)

type PlacementRepository interface {
	GenericRepository[models.Placement]
	PurgeDeletedBefore(cutoff time.Time) error
}

type PlacementRepositoryImpl[T models.Placement] struct {
	GenericRepository[models.Placement]
	db *gorm.DB
}

func NewPlacementRepository(db *gorm.DB) PlacementRepository {
	return &PlacementRepositoryImpl[models.Placement]{
		GenericRepository: NewGenericRepository[models.Placement](db),
		db:                db,
	}
}

// PurgeDeletedBefore permanently removes placements soft-deleted before the cutoff.
func (r *PlacementRepositoryImpl[T]) PurgeDeletedBefore(cutoff time.Time) error {
	return r.db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&models.Placement{}).Error
}
