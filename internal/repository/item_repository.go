package repository

import (
	"Packed/internal/models"
	"time"

	"gorm.io/gorm"
)

type ItemRepository interface {
	GenericRepository[models.Item]
	PurgeDeletedBefore(cutoff time.Time) error
}

type ItemRepositoryImpl[T models.Item] struct {
	GenericRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl[models.Item]{
		GenericRepository: NewGenericRepository[models.Item](db),
		db:                db,
	}
}

// PurgeDeletedBefore permanently removes items soft-deleted before the
// cutoff, together with any placements that still reference them.
func (r *ItemRepositoryImpl[T]) PurgeDeletedBefore(cutoff time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("item_id IN (SELECT id FROM items WHERE deleted_at IS NOT NULL AND deleted_at < ?)", cutoff).
			Delete(&models.Placement{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
			Delete(&models.Item{}).Error
	})
}
