package mapper

import (
	"Packed/internal/dto"
	"Packed/internal/models"
)

func ToContainerGetDTO(container *models.Container) *dto.ContainerGetDTO {
	return &dto.ContainerGetDTO{
		ContainerID: container.ID,
		ListID:      container.ListID,
		Name:        container.Name,
		Placements:  ToPlacementGetDTOs(container.Placements),
	}
}

func ToContainerGetDTOs(containers []models.Container) []dto.ContainerGetDTO {
	containerDTOs := make([]dto.ContainerGetDTO, 0, len(containers))
	for i := range containers {
		containerDTOs = append(containerDTOs, *ToContainerGetDTO(&containers[i]))
	}
	return containerDTOs
}
