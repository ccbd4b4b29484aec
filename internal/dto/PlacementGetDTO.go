package dto

type PlacementGetDTO struct {
	PlacementID uint `json:"placementId"`
	ItemID      uint `json:"itemId"`
	ContainerID uint `json:"containerId"`
}
