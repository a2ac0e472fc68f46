package center

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/monjurmorshed793/banbeis-blog/internal/crud"
	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
)

// Allowed fields for sorting and filtering in List queries.
var (
	centerSortFields   = []string{"id", "name", "created_at"}
	centerFilterFields = []string{"name", "division_id", "district_id", "upazila_id"}

	centerImageSortFields   = []string{"id", "title", "created_at"}
	centerImageFilterFields = []string{"title", "show", "center_id"}

	centerEmployeeSortFields   = []string{"id", "duty_type", "joining_date", "release_date", "created_at"}
	centerEmployeeFilterFields = []string{"duty_type", "designation_id"}
)

// Module serves centers, their image galleries, and their employee duty
// assignments.
type Module struct {
	centers         *crud.Handler[domain.Center, CenterPatch]
	centerImages    *crud.Handler[domain.CenterImage, CenterImagePatch]
	centerEmployees *crud.Handler[domain.CenterEmployee, CenterEmployeePatch]
}

// NewModule wires repositories, services, and handlers for the center
// entities on the given database.
func NewModule(db *gorm.DB) *Module {
	centerSvc := crud.NewService(
		crud.NewRepository[domain.Center](db, crud.Options{
			SortFields:   centerSortFields,
			FilterFields: centerFilterFields,
			Preloads:     []string{"Division", "District", "Upazila"},
			Cascade: func(tx *gorm.DB, id string) error {
				return tx.Delete(&domain.CenterImage{}, "center_id = ?", id).Error
			},
		}),
		crud.WithBeforeSave(func(c *domain.Center) error {
			c.DivisionID = domain.RefID(c.Division)
			c.DistrictID = domain.RefID(c.District)
			c.UpazilaID = domain.RefID(c.Upazila)
			return nil
		}),
	)

	centerImageSvc := crud.NewService(
		crud.NewRepository[domain.CenterImage](db, crud.Options{
			SortFields:   centerImageSortFields,
			FilterFields: centerImageFilterFields,
			Preloads:     []string{"Center"},
		}),
		crud.WithBeforeSave(func(ci *domain.CenterImage) error {
			ci.CenterID = domain.RefID(ci.Center)
			return nil
		}),
	)

	centerEmployeeSvc := crud.NewService(
		crud.NewRepository[domain.CenterEmployee](db, crud.Options{
			SortFields:   centerEmployeeSortFields,
			FilterFields: centerEmployeeFilterFields,
			Preloads:     []string{"Designation"},
		}),
		crud.WithBeforeSave(func(ce *domain.CenterEmployee) error {
			ce.DesignationID = domain.RefID(ce.Designation)
			return nil
		}),
	)

	return &Module{
		centers:         crud.NewHandler("centers", centerSvc, applyCenterPatch),
		centerImages:    crud.NewHandler("center-images", centerImageSvc, applyCenterImagePatch),
		centerEmployees: crud.NewHandler("center-employees", centerEmployeeSvc, applyCenterEmployeePatch),
	}
}

// RegisterRoutes registers the center entity routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.centers.Register(api)
	m.centerImages.Register(api)
	m.centerEmployees.Register(api)
}
