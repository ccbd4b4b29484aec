package mapper

import (
	"Packed/internal/dto"
	"Packed/internal/models"
)

func ToListGetDTO(list *models.List) *dto.ListGetDTO {
	return &dto.ListGetDTO{
		ListID:      list.ID,
		Description: list.Description,
		Items:       ToItemGetDTOs(list.Items),
		Containers:  ToContainerGetDTOs(list.Containers),
	}
}

func ToListGetDTOs(lists []models.List) []dto.ListGetDTO {
	listDTOs := make([]dto.ListGetDTO, 0, len(lists))
	for i := range lists {
		listDTOs = append(listDTOs, *ToListGetDTO(&lists[i]))
	}
	return listDTOs
}
