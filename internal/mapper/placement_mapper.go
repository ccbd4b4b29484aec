package mapper

import (
	"Packed/internal/dto"
	"Packed/internal/models"
)

func ToPlacementGetDTO(placement *models.Placement) *dto.PlacementGetDTO {
	return &dto.PlacementGetDTO{
		PlacementID: placement.ID,
		ItemID:      placement.ItemID,
		ContainerID: placement.ContainerID,
	}
}

func ToPlacementGetDTOs(placements []models.Placement) []dto.PlacementGetDTO {
	placementDTOs := make([]dto.PlacementGetDTO, 0, len(placements))
	for i := range placements {
		placementDTOs = append(placementDTOs, *ToPlacementGetDTO(&placements[i]))
	}
	return placementDTOs
}
