package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Drolfothesgnir/minidom/token"
	"github.com/gin-gonic/gin"
)

const (
	authorizationHeaderKey  = "authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authorization_payload"
)

var (
	ErrMissingAuthorization       = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationFormat = errors.New("invalid authorization header format")
)

// authMiddleware requires a valid bearer token and stores its payload in the context.
func authMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorizationHeader := ctx.GetHeader(authorizationHeaderKey)
		if len(authorizationHeader) == 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(ErrMissingAuthorization))
			return
		}

		fields := strings.Fields(authorizationHeader)
		if len(fields) != 2 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(ErrInvalidAuthorizationFormat))
			return
		}

		authorizationType := strings.ToLower(fields[0])
		if authorizationType != authorizationTypeBearer {
			err := fmt.Errorf("unsupported authorization type %q", fields[0])
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(err))
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(err))
			return
		}

		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

// Helper function to get the token payload after the auth middleware check.
func extractAuthPayloadFromCtx(ctx *gin.Context) *token.Payload {
	return ctx.MustGet(authorizationPayloadKey).(*token.Payload)
}
