package crud

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
	"github.com/monjurmorshed793/banbeis-blog/internal/pkg"
)

// PatchBase carries the optional identifier every patch document may repeat.
// Patch DTOs embed it alongside their pointer-valued fields.
type PatchBase struct {
	ID string `json:"id,omitempty"`
}

// PatchID returns the identifier carried by the patch body, if any.
func (p PatchBase) PatchID() string {
	return p.ID
}

// Patch is the constraint for merge-patch documents: pointer-valued fields
// plus the optional repeated identifier.
type Patch interface {
	PatchID() string
}

// Handler serves the five REST operations for one entity type. Entity
// bodies are sent raw (no envelope) to match the wire contract consumed by
// the admin client; list responses carry the total in X-Total-Count.
type Handler[T Entity, P Patch] struct {
	resource   string
	svc        *Service[T]
	applyPatch func(*T, P)
}

// NewHandler creates a Handler for the given resource name (the plural path
// segment, e.g. "centers") and patch-merge function.
func NewHandler[T Entity, P Patch](resource string, svc *Service[T], applyPatch func(*T, P)) *Handler[T, P] {
	if svc == nil {
		panic("crud.NewHandler: service must not be nil")
	}
	if applyPatch == nil {
		panic("crud.NewHandler: applyPatch must not be nil")
	}
	return &Handler[T, P]{resource: resource, svc: svc, applyPatch: applyPatch}
}

// Register wires the REST routes for this resource on the given group.
func (h *Handler[T, P]) Register(api *gin.RouterGroup) {
	api.POST("/"+h.resource, h.Create)
	api.GET("/"+h.resource, h.List)
	api.GET("/"+h.resource+"/:id", h.Get)
	api.PUT("/"+h.resource+"/:id", h.Update)
	api.PATCH("/"+h.resource+"/:id", h.Patch)
	api.DELETE("/"+h.resource+"/:id", h.Delete)
}

// Create handles POST /<resource>.
func (h *Handler[T, P]) Create(c *gin.Context) {
	var entity T
	if !pkg.BindAndValidate(c, &entity) {
		return
	}
	if entity.GetID() != "" {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "a new "+h.resource+" entry cannot already have an id", nil))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &entity)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.Header("Location", c.Request.URL.Path+"/"+(*created).GetID())
	c.JSON(http.StatusCreated, created)
}

// Get handles GET /<resource>/:id. A missing entity yields a 404 with an
// empty body; the client resolver relies on the empty body, not the status.
func (h *Handler[T, P]) Get(c *gin.Context) {
	entity, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if domain.IsNotFound(err) {
			c.Status(http.StatusNotFound)
			return
		}
		pkg.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, entity)
}

// List handles GET /<resource>. The body is the raw item array; pagination
// metadata travels in the X-Total-Count header.
func (h *Handler[T, P]) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.FormatInt(result.Total, 10))
	c.JSON(http.StatusOK, result.Items)
}

// Update handles PUT /<resource>/:id with full replacement semantics.
func (h *Handler[T, P]) Update(c *gin.Context) {
	id := c.Param("id")

	var entity T
	if !pkg.BindAndValidate(c, &entity) {
		return
	}
	if entity.GetID() == "" {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid id: missing", nil))
		return
	}
	if entity.GetID() != id {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid id: body and path disagree", nil))
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), &entity)
	if err != nil {
		// An unknown id on a write is a bad request, not a missing
		// resource: the client only PUTs ids it has already resolved.
		if domain.IsNotFound(err) {
			pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid id: not found", err))
			return
		}
		pkg.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Patch handles PATCH /<resource>/:id with merge-patch semantics: only
// fields present in the body overwrite stored values.
func (h *Handler[T, P]) Patch(c *gin.Context) {
	id := c.Param("id")

	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}
	if patch.PatchID() != "" && patch.PatchID() != id {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid id: body and path disagree", nil))
		return
	}

	updated, err := h.svc.PartialUpdate(c.Request.Context(), id, func(entity *T) {
		h.applyPatch(entity, patch)
	})
	if err != nil {
		if domain.IsNotFound(err) {
			pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid id: not found", err))
			return
		}
		pkg.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /<resource>/:id. Success is a bare 204.
func (h *Handler[T, P]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if domain.IsNotFound(err) {
			c.Status(http.StatusNotFound)
			return
		}
		pkg.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
