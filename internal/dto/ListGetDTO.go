package dto

type ListGetDTO struct {
	ListID      uint              `json:"listId"`
	Description string            `json:"description"`
	Items       []ItemGetDTO      `json:"items"`
	Containers  []ContainerGetDTO `json:"containers"`
}
