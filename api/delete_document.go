package api

import (
	"errors"
	"fmt"
	"net/http"

	db "github.com/Drolfothesgnir/minidom/db/sqlc"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (s *Service) deleteDocument(ctx *gin.Context) {
	authPayload := extractAuthPayloadFromCtx(ctx)
	documentID := extractDocumentIDFromCtx(ctx)

	err := s.store.RemoveDocument(ctx, documentID)
	switch {
	case err == nil:
		log.Info().
			Str("document_id", documentID.String()).
			Str("subject", authPayload.Subject).
			Msg("document deleted")
		ctx.Status(http.StatusNoContent)

	case errors.Is(err, db.ErrDocumentNotFound):
		field := ErrorField{"document_id", fmt.Sprintf("document with id [%s] not found", documentID)}
		ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrDocumentNotFound, field))

	default:
		log.Error().Err(err).Str("document_id", documentID.String()).Msg("cannot delete document")
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrCannotDelete))
	}
}
