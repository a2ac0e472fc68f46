package nav

import (
	"github.com/monjurmorshed793/banbeis-blog/internal/crud"
	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
)

// NavigationPatch is the merge-patch document for navigation entries.
type NavigationPatch struct {
	crud.PatchBase
	Sequence   *int    `json:"sequence"`
	Route      *string `json:"route"`
	Title      *string `json:"title"`
	BreadCrumb *string `json:"breadCrumb"`
}

func applyNavigationPatch(n *domain.Navigation, p NavigationPatch) {
	if p.Sequence != nil {
		n.Sequence = *p.Sequence
	}
	if p.Route != nil {
		n.Route = *p.Route
	}
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.BreadCrumb != nil {
		n.BreadCrumb = *p.BreadCrumb
	}
}
