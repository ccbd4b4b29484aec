package models

type Container struct {
	BaseModel
	ListID     uint        `gorm:"index;uniqueIndex:idx_containers_list_name" json:"list_id"`
	Name       string      `gorm:"type:varchar(255);not null;uniqueIndex:idx_containers_list_name,where:deleted_at IS NULL" json:"name"`
	Placements []Placement `gorm:"foreignKey:ContainerID;constraint:OnDelete:CASCADE" json:"placements,omitempty"`
}
