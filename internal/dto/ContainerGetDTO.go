package dto

type ContainerGetDTO struct {
	ContainerID uint              `json:"containerId"`
	ListID      uint              `json:"listId"`
	Name        string            `json:"name"`
	Placements  []PlacementGetDTO `json:"placements"`
}
