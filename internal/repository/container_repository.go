package repository

import (
	"Packed/internal/models"
	"time"

	"gorm.io/gorm"
)

type ContainerRepository interface {
	GenericRepository[models.Container]
	PurgeDeletedBefore(cutoff time.Time) error
}

type ContainerRepositoryImpl[T models.Container] struct {
	GenericRepository[models.Container]
	db *gorm.DB
}

func NewContainerRepository(db *gorm.DB) ContainerRepository {
	return &ContainerRepositoryImpl[models.Container]{
		GenericRepository: NewGenericRepository[models.Container](db),
		db:                db,
	}
}

// PurgeDeletedBefore permanently removes containers soft-deleted before the
// cutoff, together with any placements that still reference them.
func (r *ContainerRepositoryImpl[T]) PurgeDeletedBefore(cutoff time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("container_id IN (SELECT id FROM containers WHERE deleted_at IS NOT NULL AND deleted_at < ?)", cutoff).
			Delete(&models.Placement{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
			Delete(&models.Container{}).Error
	})
}
