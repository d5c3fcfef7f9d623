package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "smart-todo/pkg/errors"
	"smart-todo/pkg/response"
)

var errOriginNotAllowed = pkgErrors.NewHTTPError(http.StatusForbidden, "허용되지 않은 출처입니다.")

func (m Middleware) isAllowedOrigin(origin string) bool {
	if m.anyOrigin {
		return true
	}
	_, ok := m.origins[origin]
	return ok
}

// CORS answers preflight requests and sets the allow headers for permitted origins.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Vary", "Origin")
			if m.isAllowedOrigin(origin) {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, "+RequestIDHeader)
				c.Header("Access-Control-Expose-Headers", RequestIDHeader)
			}
		}

		if c.Request.Method == http.MethodOptions {
			if origin != "" && !m.isAllowedOrigin(origin) {
				response.AbortWithError(c, errOriginNotAllowed)
				return
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
