package mapper

import (
	"Packed/internal/dto"
	"Packed/internal/models"
)

func ToItemGetDTO(item *models.Item) *dto.ItemGetDTO {
	return &dto.ItemGetDTO{
		ItemID:     item.ID,
		ListID:     item.ListID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		Placements: ToPlacementGetDTOs(item.Placements),
	}
}

func ToItemGetDTOs(items []models.Item) []dto.ItemGetDTO {
	itemDTOs := make([]dto.ItemGetDTO, 0, len(items))
	for i := range items {
		itemDTOs = append(itemDTOs, *ToItemGetDTO(&items[i]))
	}
	return itemDTOs
}
