package domain

// Navigation is a menu entry in the admin navigation tree.
type Navigation struct {
	BaseModel
	Sequence   int         `json:"sequence,omitempty"`
	Route      string      `gorm:"size:255;not null" json:"route,omitempty" binding:"required"`
	Title      string      `gorm:"size:255;not null" json:"title,omitempty" binding:"required"`
	BreadCrumb string      `gorm:"size:255" json:"breadCrumb,omitempty"`
	ParentID   *string     `gorm:"size:36" json:"-"`
	Parent     *Navigation `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
}
