package models

type Item struct {
	BaseModel
	ListID     uint        `gorm:"index;uniqueIndex:idx_items_list_name" json:"list_id"`
	Name       string      `gorm:"type:varchar(255);not null;uniqueIndex:idx_items_list_name,where:deleted_at IS NULL" json:"name"`
	Quantity   int         `gorm:"not null;default:1" json:"quantity"`
	Placements []Placement `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"placements,omitempty"`
}
