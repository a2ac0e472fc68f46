package nav

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/monjurmorshed793/banbeis-blog/internal/crud"
	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
)

// Allowed fields for sorting and filtering in List queries.
var (
	navigationSortFields   = []string{"id", "sequence", "route", "title", "created_at"}
	navigationFilterFields = []string{"route", "title", "parent_id"}
)

// Module serves the admin navigation tree.
type Module struct {
	navigations *crud.Handler[domain.Navigation, NavigationPatch]
}

// NewModule wires the navigation repository, service, and handler on the
// given database.
func NewModule(db *gorm.DB) *Module {
	navigationSvc := crud.NewService(
		crud.NewRepository[domain.Navigation](db, crud.Options{
			SortFields:   navigationSortFields,
			FilterFields: navigationFilterFields,
			Preloads:     []string{"Parent"},
		}),
		crud.WithBeforeSave(func(n *domain.Navigation) error {
			n.ParentID = domain.RefID(n.Parent)
			return nil
		}),
	)

	return &Module{
		navigations: crud.NewHandler("navigations", navigationSvc, applyNavigationPatch),
	}
}

// RegisterRoutes registers the navigation routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.navigations.Register(api)
}
