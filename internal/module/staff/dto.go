package staff

import (
	"github.com/monjurmorshed793/banbeis-blog/internal/crud"
	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
)

// DesignationPatch is the merge-patch document for designations.
type DesignationPatch struct {
	crud.PatchBase
	Name     *string `json:"name"`
	SortName *string `json:"sortName"`
	Grade    *int    `json:"grade"`
}

func applyDesignationPatch(d *domain.Designation, p DesignationPatch) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.SortName != nil {
		d.SortName = *p.SortName
	}
	if p.Grade != nil {
		d.Grade = *p.Grade
	}
}

// EmployeePatch is the merge-patch document for employees.
type EmployeePatch struct {
	crud.PatchBase
	FullName         *string `json:"fullName"`
	BnFullName       *string `json:"bnFullName"`
	Mobile           *string `json:"mobile"`
	Email            *string `json:"email"`
	PhotoURL         *string `json:"photoUrl"`
	Photo            []byte  `json:"photo"`
	PhotoContentType *string `json:"photoContentType"`
}

func applyEmployeePatch(e *domain.Employee, p EmployeePatch) {
	if p.FullName != nil {
		e.FullName = *p.FullName
	}
	if p.BnFullName != nil {
		e.BnFullName = *p.BnFullName
	}
	if p.Mobile != nil {
		e.Mobile = *p.Mobile
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.PhotoURL != nil {
		e.PhotoURL = *p.PhotoURL
	}
	if p.Photo != nil {
		e.Photo = p.Photo
	}
	if p.PhotoContentType != nil {
		e.PhotoContentType = *p.PhotoContentType
	}
}
