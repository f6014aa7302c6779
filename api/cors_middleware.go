package api

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

// handling CORS
func (s *Service) corsMiddleware() gin.HandlerFunc {
	allowAny := slices.Contains(s.config.AllowedOrigins, "*")

	return func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")

		switch {
		case allowAny:
			ctx.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(s.config.AllowedOrigins, origin):
			ctx.Header("Access-Control-Allow-Origin", origin)
			ctx.Header("Vary", "Origin")
		}

		ctx.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")

		allowedHeaders := []string{
			"Content-Type",
			"Authorization",
		}
		ctx.Header("Access-Control-Allow-Headers", strings.Join(allowedHeaders, ","))

		// If someone sends preflight (OPTIONS), respond 204 and return
		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
