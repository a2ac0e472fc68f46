package staff

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/monjurmorshed793/banbeis-blog/internal/crud"
	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
)

// Allowed fields for sorting and filtering in List queries.
var (
	designationSortFields   = []string{"id", "name", "sort_name", "grade", "created_at"}
	designationFilterFields = []string{"name", "sort_name", "grade"}

	employeeSortFields   = []string{"id", "full_name", "email", "mobile", "created_at"}
	employeeFilterFields = []string{"full_name", "email", "mobile", "designation_id"}
)

// Module serves designations and employees.
type Module struct {
	designations *crud.Handler[domain.Designation, DesignationPatch]
	employees    *crud.Handler[domain.Employee, EmployeePatch]
}

// NewModule wires repositories, services, and handlers for the staffing
// entities on the given database.
func NewModule(db *gorm.DB) *Module {
	designationSvc := crud.NewService(
		crud.NewRepository[domain.Designation](db, crud.Options{
			SortFields:   designationSortFields,
			FilterFields: designationFilterFields,
		}),
	)

	employeeSvc := crud.NewService(
		crud.NewRepository[domain.Employee](db, crud.Options{
			SortFields:   employeeSortFields,
			FilterFields: employeeFilterFields,
			Preloads:     []string{"Designation"},
		}),
		crud.WithBeforeSave(func(e *domain.Employee) error {
			e.DesignationID = domain.RefID(e.Designation)
			return nil
		}),
	)

	return &Module{
		designations: crud.NewHandler("designations", designationSvc, applyDesignationPatch),
		employees:    crud.NewHandler("employees", employeeSvc, applyEmployeePatch),
	}
}

// RegisterRoutes registers the staffing entity routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.designations.Register(api)
	m.employees.Register(api)
}
