package domain

// Designation is a named staff rank with a sort name and grade.
type Designation struct {
	BaseModel
	Name     string `gorm:"size:255;not null" json:"name,omitempty" binding:"required"`
	SortName string `gorm:"size:255;not null" json:"sortName,omitempty" binding:"required"`
	Grade    int    `json:"grade,omitempty"`
}

// Employee is a staff member.
type Employee struct {
	BaseModel
	FullName         string       `gorm:"size:255;not null" json:"fullName,omitempty" binding:"required"`
	BnFullName       string       `gorm:"size:255;not null" json:"bnFullName,omitempty" binding:"required"`
	Mobile           string       `gorm:"size:50;not null" json:"mobile,omitempty" binding:"required"`
	Email            string       `gorm:"size:255;not null" json:"email,omitempty" binding:"required,email"`
	PhotoURL         string       `gorm:"size:500" json:"photoUrl,omitempty"`
	Photo            []byte       `json:"photo,omitempty"`
	PhotoContentType string       `gorm:"size:100" json:"photoContentType,omitempty"`
	DesignationID    *string      `gorm:"size:36" json:"-"`
	Designation      *Designation `gorm:"foreignKey:DesignationID" json:"designation,omitempty"`
}
