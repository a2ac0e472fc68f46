package app

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/monjurmorshed793/banbeis-blog/internal/pkg"
)

// RouteDeps carries the dependencies route registration needs.
type RouteDeps struct {
	Modules        []Module
	DB             *gorm.DB
	AuthMiddleware gin.HandlerFunc
}

// RegisterRoutes wires the health endpoint, the API group, and every
// registered module's routes onto the engine.
func RegisterRoutes(engine *gin.Engine, deps *RouteDeps) error {
	if engine == nil {
		return errors.New("engine is nil")
	}
	if deps == nil {
		return errors.New("route deps are nil")
	}

	engine.GET("/health", healthHandler(deps.DB))

	api := engine.Group("/api")
	if deps.AuthMiddleware != nil {
		api.Use(deps.AuthMiddleware)
	}
	for _, m := range deps.Modules {
		if m == nil {
			return errors.New("nil module in route deps")
		}
		m.RegisterRoutes(api)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, pkg.Response{
			Code:    http.StatusNotFound,
			Message: "route not found",
		})
	})

	return nil
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		code := http.StatusOK

		if db != nil {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(c.Request.Context())
			}
			if err != nil {
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}

		c.JSON(code, gin.H{"status": status})
	}
}
