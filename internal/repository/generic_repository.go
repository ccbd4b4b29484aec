package repository

import (
	"Packed/internal/apperrors"
	"errors"

	"gorm.io/gorm"
)

type GenericRepositoryImpl[T any] struct {
	db *gorm.DB
}

func NewGenericRepository[T any](db *gorm.DB) GenericRepository[T] {
	return &GenericRepositoryImpl[T]{db: db}
}

func (r *GenericRepositoryImpl[T]) Create(entity *T) error {
	return translateDuplicate(r.db.Create(entity).Error)
}

func (r *GenericRepositoryImpl[T]) FindByID(id uint) (*T, error) {
	var entity T
	err := r.db.First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *GenericRepositoryImpl[T]) FindAll() ([]T, error) {
	var entities []T
	err := r.db.Find(&entities).Error
	return entities, err
}

func (r *GenericRepositoryImpl[T]) Update(entity *T) error {
	return translateDuplicate(r.db.Save(entity).Error)
}

func (r *GenericRepositoryImpl[T]) Delete(id uint) error {
	var entity T
	return r.db.Delete(&entity, id).Error
}

// translateDuplicate reclassifies the dialect-specific duplicated-key error
// into the store-level signal the services are contracted to receive. All
// other store errors pass through unmodified.
func translateDuplicate(err error) error {
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrUniqueConstraint
	}
	return err
}
