package center

import (
	"github.com/monjurmorshed793/banbeis-blog/internal/crud"
	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
)

// CenterPatch is the merge-patch document for centers. Like the other patch
// documents it carries scalar fields only; relations are changed through a
// full update.
type CenterPatch struct {
	crud.PatchBase
	Name             *string `json:"name"`
	AddressLine      *string `json:"addressLine"`
	Image            []byte  `json:"image"`
	ImageContentType *string `json:"imageContentType"`
}

func applyCenterPatch(c *domain.Center, p CenterPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.AddressLine != nil {
		c.AddressLine = *p.AddressLine
	}
	if p.Image != nil {
		c.Image = p.Image
	}
	if p.ImageContentType != nil {
		c.ImageContentType = *p.ImageContentType
	}
}

// CenterImagePatch is the merge-patch document for center images.
type CenterImagePatch struct {
	crud.PatchBase
	ImageURL         *string `json:"imageUrl"`
	Image            []byte  `json:"image"`
	ImageContentType *string `json:"imageContentType"`
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	Show             *bool   `json:"show"`
}

func applyCenterImagePatch(ci *domain.CenterImage, p CenterImagePatch) {
	if p.ImageURL != nil {
		ci.ImageURL = *p.ImageURL
	}
	if p.Image != nil {
		ci.Image = p.Image
	}
	if p.ImageContentType != nil {
		ci.ImageContentType = *p.ImageContentType
	}
	if p.Title != nil {
		ci.Title = *p.Title
	}
	if p.Description != nil {
		ci.Description = *p.Description
	}
	if p.Show != nil {
		ci.Show = *p.Show
	}
}

// CenterEmployeePatch is the merge-patch document for center employee
// assignments.
type CenterEmployeePatch struct {
	crud.PatchBase
	DutyType    *domain.DutyType  `json:"dutyType"`
	JoiningDate *domain.LocalDate `json:"joiningDate"`
	ReleaseDate *domain.LocalDate `json:"releaseDate"`
	Message     *string           `json:"message"`
}

func applyCenterEmployeePatch(ce *domain.CenterEmployee, p CenterEmployeePatch) {
	if p.DutyType != nil {
		ce.DutyType = *p.DutyType
	}
	if p.JoiningDate != nil {
		ce.JoiningDate = p.JoiningDate
	}
	if p.ReleaseDate != nil {
		ce.ReleaseDate = p.ReleaseDate
	}
	if p.Message != nil {
		ce.Message = *p.Message
	}
}
