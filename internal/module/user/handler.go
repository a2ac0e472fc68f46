package user

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
	"github.com/monjurmorshed793/banbeis-blog/internal/pkg"
)

// UserHandler handles REST API requests for the user resource.
type UserHandler struct {
	svc domain.UserService
}

// NewUserHandler creates a new UserHandler with the given service.
func NewUserHandler(svc domain.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	user, err := h.svc.CreateUser(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	user, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListUsers(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateUserRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	user, err := h.svc.UpdateUser(c.Request.Context(), id, req.Name, req.Email)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID extracts the non-empty string identifier from the route parameter.
func parseID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", domain.NewAppError(domain.CodeValidation, "id is required", nil)
	}
	return id, nil
}
