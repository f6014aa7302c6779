package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxDocumentIDKey = "provided_document_id"

// This middleware checks the mandatory document ID parameter in the URL.
func (s *Service) documentIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := ctx.Param("document_id")

		documentID, err := uuid.Parse(raw)
		if err != nil {
			field := ErrorField{"document_id", fmt.Sprintf("document id [%s] is invalid", raw)}
			ctx.AbortWithStatusJSON(
				http.StatusBadRequest,
				NewErrorResponse(ErrInvalidDocumentID, field),
			)
			return
		}

		ctx.Set(ctxDocumentIDKey, documentID)
		ctx.Next()
	}
}

// Helper function to get the document ID after middleware check.
func extractDocumentIDFromCtx(ctx *gin.Context) uuid.UUID {
	return ctx.MustGet(ctxDocumentIDKey).(uuid.UUID)
}
