package services

import (
	"Packed/internal/apperrors"
	"Packed/internal/models"
	"Packed/internal/repository"
	"errors"
)

type ItemService interface {
	GetItems(listID uint) ([]models.Item, error)
	GetItemByID(listID, itemID uint) (*models.Item, error)
	CreateItem(listID uint, name string, quantity int) (*models.Item, error)
	UpdateItem(listID, itemID uint, name string, quantity int) (*models.Item, error)
	DeleteItem(listID, itemID uint) error
}

type itemServiceImpl struct {
	listRepo repository.ListRepository
	itemRepo repository.ItemRepository
}

func NewItemService(listRepo repository.ListRepository, itemRepo repository.ItemRepository) ItemService {
	return &itemServiceImpl{listRepo: listRepo, itemRepo: itemRepo}
}

func (s *itemServiceImpl) GetItems(listID uint) ([]models.Item, error) {
	list, err := resolveList(s.listRepo, listID)
	if err != nil {
		return nil, err
	}
	if list.Items == nil {
		return []models.Item{}, nil
	}
	return list.Items, nil
}

func (s *itemServiceImpl) GetItemByID(listID, itemID uint) (*models.Item, error) {
	list, err := resolveList(s.listRepo, listID)
	if err != nil {
		return nil, err
	}
	return resolveItem(list, itemID)
}

func (s *itemServiceImpl) CreateItem(listID uint, name string, quantity int) (*models.Item, error) {
	list, err := resolveList(s.listRepo, listID)
	if err != nil {
		return nil, err
	}
	// The aggregate is already loaded, so duplicates fail fast here; the
	// unique index remains the race-condition safety net.
	for i := range list.Items {
		if list.Items[i].Name == name {
			return nil, apperrors.NewDuplicateItem(name)
		}
	}
	item := &models.Item{ListID: list.ID, Name: name, Quantity: quantity}
	if err := s.itemRepo.Create(item); err != nil {
		if errors.Is(err, apperrors.ErrUniqueConstraint) {
			return nil, apperrors.NewDuplicateItem(name)
		}
		return nil, err
	}
	return item, nil
}

func (s *itemServiceImpl) UpdateItem(listID, itemID uint, name string, quantity int) (*models.Item, error) {
	list, err := resolveList(s.listRepo, listID)
	if err != nil {
		return nil, err
	}
	item, err := resolveItem(list, itemID)
	if err != nil {
		return nil, err
	}
	// The quantity bound is checked before the name, so a request that is
	// wrong on both counts reports the consistency violation.
	if quantity < len(item.Placements) {
		return nil, apperrors.NewItemQuantityViolation(item.Name, quantity, len(item.Placements))
	}
	for i := range list.Items {
		if list.Items[i].ID != itemID && list.Items[i].Name == name {
			return nil, apperrors.NewDuplicateItem(name)
		}
	}
	item.Name = name
	item.Quantity = quantity
	if err := s.itemRepo.Update(item); err != nil {
		if errors.Is(err, apperrors.ErrUniqueConstraint) {
			return nil, apperrors.NewDuplicateItem(name)
		}
		return nil, err
	}
	return item, nil
}

func (s *itemServiceImpl) DeleteItem(listID, itemID uint) error {
	list, err := resolveList(s.listRepo, listID)
	if err != nil {
		return err
	}
	item, err := resolveItem(list, itemID)
	if err != nil {
		return err
	}
	return s.itemRepo.Delete(item.ID)
}
