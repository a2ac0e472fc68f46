package domain

// Division is a top-level administrative area.
type Division struct {
	BaseModel
	Name   string `gorm:"size:255" json:"name,omitempty"`
	BnName string `gorm:"size:255" json:"bnName,omitempty"`
	URL    string `gorm:"size:255" json:"url,omitempty"`
}

// District belongs to a Division.
type District struct {
	BaseModel
	Name       string    `gorm:"size:255" json:"name,omitempty"`
	BnName     string    `gorm:"size:255" json:"bnName,omitempty"`
	Lat        string    `gorm:"size:64" json:"lat,omitempty"`
	Lon        string    `gorm:"size:64" json:"lon,omitempty"`
	URL        string    `gorm:"size:255" json:"url,omitempty"`
	DivisionID *string   `gorm:"size:36" json:"-"`
	Division   *Division `gorm:"foreignKey:DivisionID" json:"division,omitempty"`
}

// Upazila belongs to a District.
type Upazila struct {
	BaseModel
	Name       string    `gorm:"size:255" json:"name,omitempty"`
	BnName     string    `gorm:"size:255" json:"bnName,omitempty"`
	URL        string    `gorm:"size:255" json:"url,omitempty"`
	DistrictID *string   `gorm:"size:36" json:"-"`
	District   *District `gorm:"foreignKey:DistrictID" json:"district,omitempty"`
}
