package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/monjurmorshed793/banbeis-blog/internal/pkg"
)

// ContextUserIDKey is the gin context key under which the authenticated
// user's identifier is stored.
const ContextUserIDKey = "user_id"

// Middleware returns a gin middleware that requires a valid Bearer token on
// every request except those whose path is listed in publicPaths.
func Middleware(tokens TokenService, publicPaths []string) gin.HandlerFunc {
	public := make(map[string]struct{}, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := public[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, pkg.Response{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
