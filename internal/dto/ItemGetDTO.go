package dto

type ItemGetDTO struct {
	ItemID     uint              `json:"itemId"`
	ListID     uint              `json:"listId"`
	Name       string            `json:"name"`
	Quantity   int               `json:"quantity"`
	Placements []PlacementGetDTO `json:"placements"`
}
