package geo

import (
	"github.com/monjurmorshed793/banbeis-blog/internal/crud"
	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
)

// DivisionPatch is the merge-patch document for divisions. Absent fields
// leave the stored value unchanged.
type DivisionPatch struct {
	crud.PatchBase
	Name   *string `json:"name"`
	BnName *string `json:"bnName"`
	URL    *string `json:"url"`
}

func applyDivisionPatch(d *domain.Division, p DivisionPatch) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.BnName != nil {
		d.BnName = *p.BnName
	}
	if p.URL != nil {
		d.URL = *p.URL
	}
}

// DistrictPatch is the merge-patch document for districts.
type DistrictPatch struct {
	crud.PatchBase
	Name   *string `json:"name"`
	BnName *string `json:"bnName"`
	Lat    *string `json:"lat"`
	Lon    *string `json:"lon"`
	URL    *string `json:"url"`
}

func applyDistrictPatch(d *domain.District, p DistrictPatch) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.BnName != nil {
		d.BnName = *p.BnName
	}
	if p.Lat != nil {
		d.Lat = *p.Lat
	}
	if p.Lon != nil {
		d.Lon = *p.Lon
	}
	if p.URL != nil {
		d.URL = *p.URL
	}
}

// UpazilaPatch is the merge-patch document for upazilas.
type UpazilaPatch struct {
	crud.PatchBase
	Name   *string `json:"name"`
	BnName *string `json:"bnName"`
	URL    *string `json:"url"`
}

func applyUpazilaPatch(u *domain.Upazila, p UpazilaPatch) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.BnName != nil {
		u.BnName = *p.BnName
	}
	if p.URL != nil {
		u.URL = *p.URL
	}
}
