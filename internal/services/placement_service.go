package services

import (
	"Packed/internal/apperrors"
	"Packed/internal/models"
	"Packed/internal/repository"
)

type PlacementService interface {
	GetPlacements(listID, itemID uint) ([]models.Placement, error)
	GetPlacementByID(listID, itemID, placementID uint) (*models.Placement, error)
	CreatePlacement(listID, itemID, containerID uint) (*models.Placement, error)
	DeletePlacement(listID, itemID, placementID uint) error
}

type placementServiceImpl struct {
	listRepo      repository.ListRepository
	placementRepo repository.PlacementRepository
}

func NewPlacementService(listRepo repository.ListRepository, placementRepo repository.PlacementRepository) PlacementService {
	return &placementServiceImpl{listRepo: listRepo, placementRepo: placementRepo}
}

func (s *placementServiceImpl) GetPlacements(listID, itemID uint) ([]models.Placement, error) {
	list, err := resolveList(s.listRepo, listID)
	if err != nil {
		return nil, err
	}
	item, err := resolveItem(list, itemID)
	if err != nil {
		return nil, err
	}
	if item.Placements == nil {
		return []models.Placement{}, nil
	}
	return item.Placements, nil
}

func (s *placementServiceImpl) GetPlacementByID(listID, itemID, placementID uint) (*models.Placement, error) {
	list, err := resolveList(s.listRepo, listID)
	if err != nil {
		return nil, err
	}
	item, err := resolveItem(list, itemID)
	if err != nil {
		return nil, err
	}
	return resolvePlacement(item, placementID)
}

func (s *placementServiceImpl) CreatePlacement(listID, itemID, containerID uint) (*models.Placement, error) {
	list, err := resolveList(s.listRepo, listID)
	if err != nil {
		return nil, err
	}
	item, err := resolveItem(list, itemID)
	if err != nil {
		return nil, err
	}
	// Resolving the container through the loaded list is what pins item and
	// container to the same list: a container id from another list is simply
	// not found here.
	container, err := resolveContainer(list, containerID)
	if err != nil {
		return nil, err
	}
	if len(item.Placements)+1 > item.Quantity {
		return nil, apperrors.NewItemQuantityViolation(item.Name, item.Quantity, len(item.Placements)+1)
	}
	placement := &models.Placement{ItemID: item.ID, ContainerID: container.ID}
	if err := s.placementRepo.Create(placement); err != nil {
		return nil, err
	}
	return placement, nil
}

func (s *placementServiceImpl) DeletePlacement(listID, itemID, placementID uint) error {
	list, err := resolveList(s.listRepo, listID)
	if err != nil {
		return err
	}
	item, err := resolveItem(list, itemID)
	if err != nil {
		return err
	}
	placement, err := resolvePlacement(item, placementID)
	if err != nil {
		return err
	}
	return s.placementRepo.Delete(placement.ID)
}
