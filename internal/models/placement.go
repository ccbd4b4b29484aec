package models

type Placement struct {
	BaseModel
	ItemID      uint `gorm:"index" json:"item_id"`
	ContainerID uint `gorm:"index" json:"container_id"`
}
