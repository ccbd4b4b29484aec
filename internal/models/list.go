package models

type List struct {
	BaseModel
	// Partial index: soft-deleted lists release their description.
	Description string      `gorm:"type:varchar(255);not null;uniqueIndex:idx_lists_description,where:deleted_at IS NULL" json:"description"`
	Items       []Item      `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Containers  []Container `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"containers,omitempty"`
}
