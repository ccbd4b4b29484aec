package services

import (
	"Packed/internal/apperrors"
	"Packed/internal/models"
	"Packed/internal/repository"
)

// resolveList fetches the full list aggregate so that every child lookup
// below is a pure in-memory scan. Absent lists become domain errors here so
// all services report them identically.
func resolveList(listRepo repository.ListRepository, listID uint) (*models.List, error) {
	list, err := listRepo.FindGraphByID(listID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, apperrors.NewListNotFound(listID)
	}
	return list, nil
}

func resolveItem(list *models.List, itemID uint) (*models.Item, error) {
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			return &list.Items[i], nil
		}
	}
	return nil, apperrors.NewItemNotFound(itemID)
}

func resolveContainer(list *models.List, containerID uint) (*models.Container, error) {
	for i := range list.Containers {
		if list.Containers[i].ID == containerID {
			return &list.Containers[i], nil
		}
	}
	return nil, apperrors.NewContainerNotFound(containerID)
}

func resolvePlacement(item *models.Item, placementID uint) (*models.Placement, error) {
	for i := range item.Placements {
		if item.Placements[i].ID == placementID {
			return &item.Placements[i], nil
		}
	}
	return nil, apperrors.NewPlacementNotFound(placementID)
}
