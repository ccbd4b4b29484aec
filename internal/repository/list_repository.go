package repository

import (
	"Packed/internal/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ListRepository interface {
	GenericRepository[models.List]
	FindGraphByID(id uint) (*models.List, error)
	FindAllGraph() ([]models.List, error)
	FindByDescription(description string) (*models.List, error)
	FindDeletedBefore(cutoff time.Time) ([]models.List, error)
	HardDelete(list *models.List) error
}

type ListRepositoryImpl[T models.List] struct {
	GenericRepository[models.List]
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) ListRepository {
	return &ListRepositoryImpl[models.List]{
		GenericRepository: NewGenericRepository[models.List](db),
		db:                db,
	}
}

// FindGraphByID loads the list together with its items, containers and all
// their placements in one query. Returns nil when no such list exists.
func (r *ListRepositoryImpl[T]) FindGraphByID(id uint) (*models.List, error) {
	var list models.List
	err := r.db.
		Preload("Items.Placements").
		Preload("Containers.Placements").
		First(&list, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

// FindAllGraph loads every list with its items, containers and placements.
func (r *ListRepositoryImpl[T]) FindAllGraph() ([]models.List, error) {
	var lists []models.List
	err := r.db.
		Preload("Items.Placements").
		Preload("Containers.Placements").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *ListRepositoryImpl[T]) FindByDescription(description string) (*models.List, error) {
	var list models.List
	err := r.db.Where("description = ?", description).First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

func (r *ListRepositoryImpl[T]) FindDeletedBefore(cutoff time.Time) ([]models.List, error) {
	var lists []models.List
	err := r.db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *ListRepositoryImpl[T]) HardDelete(list *models.List) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("item_id IN (SELECT id FROM items WHERE list_id = ?)", list.ID).
			Delete(&models.Placement{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("list_id = ?", list.ID).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("list_id = ?", list.ID).Delete(&models.Container{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(list).Error
	})
}
