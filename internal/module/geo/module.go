package geo

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/monjurmorshed793/banbeis-blog/internal/crud"
	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
)

// Allowed fields for sorting and filtering in List queries.
var (
	divisionSortFields   = []string{"id", "name", "bn_name", "url", "created_at"}
	divisionFilterFields = []string{"name", "bn_name"}

	districtSortFields   = []string{"id", "name", "bn_name", "url", "created_at"}
	districtFilterFields = []string{"name", "bn_name", "division_id"}

	upazilaSortFields   = []string{"id", "name", "bn_name", "url", "created_at"}
	upazilaFilterFields = []string{"name", "bn_name", "district_id"}
)

// Module serves the geographic reference data: divisions, districts, and
// upazilas.
type Module struct {
	divisions *crud.Handler[domain.Division, DivisionPatch]
	districts *crud.Handler[domain.District, DistrictPatch]
	upazilas  *crud.Handler[domain.Upazila, UpazilaPatch]
}

// NewModule wires repositories, services, and handlers for the geographic
// entities on the given database.
func NewModule(db *gorm.DB) *Module {
	divisionSvc := crud.NewService(
		crud.NewRepository[domain.Division](db, crud.Options{
			SortFields:   divisionSortFields,
			FilterFields: divisionFilterFields,
		}),
	)

	districtSvc := crud.NewService(
		crud.NewRepository[domain.District](db, crud.Options{
			SortFields:   districtSortFields,
			FilterFields: districtFilterFields,
			Preloads:     []string{"Division"},
		}),
		crud.WithBeforeSave(func(d *domain.District) error {
			d.DivisionID = domain.RefID(d.Division)
			return nil
		}),
	)

	upazilaSvc := crud.NewService(
		crud.NewRepository[domain.Upazila](db, crud.Options{
			SortFields:   upazilaSortFields,
			FilterFields: upazilaFilterFields,
			Preloads:     []string{"District"},
		}),
		crud.WithBeforeSave(func(u *domain.Upazila) error {
			u.DistrictID = domain.RefID(u.District)
			return nil
		}),
	)

	return &Module{
		divisions: crud.NewHandler("divisions", divisionSvc, applyDivisionPatch),
		districts: crud.NewHandler("districts", districtSvc, applyDistrictPatch),
		upazilas:  crud.NewHandler("upazilas", upazilaSvc, applyUpazilaPatch),
	}
}

// RegisterRoutes registers the geographic entity routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.divisions.Register(api)
	m.districts.Register(api)
	m.upazilas.Register(api)
}
