package domain

// DutyType classifies a center employee assignment.
type DutyType string

const (
	DutyTypeMain       DutyType = "MAIN"
	DutyTypeAdditional DutyType = "ADDITIONAL"
)

// Center is a training center located in a division/district/upazila.
type Center struct {
	BaseModel
	Name             string    `gorm:"size:255" json:"name,omitempty"`
	AddressLine      string    `gorm:"size:500" json:"addressLine,omitempty"`
	Image            []byte    `json:"image,omitempty"`
	ImageContentType string    `gorm:"size:100" json:"imageContentType,omitempty"`
	DivisionID       *string   `gorm:"size:36" json:"-"`
	Division         *Division `gorm:"foreignKey:DivisionID" json:"division,omitempty"`
	DistrictID       *string   `gorm:"size:36" json:"-"`
	District         *District `gorm:"foreignKey:DistrictID" json:"district,omitempty"`
	UpazilaID        *string   `gorm:"size:36" json:"-"`
	Upazila          *Upazila  `gorm:"foreignKey:UpazilaID" json:"upazila,omitempty"`
}

// CenterImage is a gallery image attached to a center. Show defaults to
// false for new instances rather than being tri-state.
type CenterImage struct {
	BaseModel
	ImageURL         string  `gorm:"size:500" json:"imageUrl,omitempty"`
	Image            []byte  `json:"image,omitempty"`
	ImageContentType string  `gorm:"size:100" json:"imageContentType,omitempty"`
	Title            string  `gorm:"size:255" json:"title,omitempty"`
	Description      string  `gorm:"size:2000" json:"description,omitempty"`
	Show             bool    `json:"show"`
	CenterID         *string `gorm:"size:36" json:"-"`
	Center           *Center `gorm:"foreignKey:CenterID" json:"center,omitempty"`
}

// CenterEmployee records an employee's duty assignment at a center.
type CenterEmployee struct {
	BaseModel
	DutyType      DutyType     `gorm:"size:20" json:"dutyType,omitempty"`
	JoiningDate   *LocalDate   `json:"joiningDate,omitempty"`
	ReleaseDate   *LocalDate   `json:"releaseDate,omitempty"`
	Message       string       `gorm:"size:2000" json:"message,omitempty"`
	DesignationID *string      `gorm:"size:36" json:"-"`
	Designation   *Designation `gorm:"foreignKey:DesignationID" json:"designation,omitempty"`
}
