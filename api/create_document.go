package api

import (
	"net/http"
	"time"

	db "github.com/Drolfothesgnir/minidom/db/sqlc"
	"github.com/Drolfothesgnir/minidom/dom"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type CreateDocumentRequest struct {
	Content     *string `json:"content" binding:"required,utf8"`
	MaxWarnings *int    `json:"max_warnings" binding:"omitempty,gte=0,lte=1000"`
}

type CreateDocumentResponse struct {
	ID        uuid.UUID                 `json:"id"`
	NodeCount int32                     `json:"node_count"`
	Truncated bool                      `json:"truncated"`
	CreatedAt time.Time                 `json:"created_at"`
	Warnings  []dom.SerializableWarning `json:"warnings"`
}

func (s *Service) createDocument(ctx *gin.Context) {
	authPayload := extractAuthPayloadFromCtx(ctx)

	var req CreateDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	content := *req.Content
	if !s.checkContentSize(ctx, content) {
		return
	}

	res, err := s.parse(content, s.warningsCap(req.MaxWarnings))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrInvalidWarningsConf))
		return
	}

	saved, err := s.store.SaveDocumentTx(ctx, db.SaveDocumentTxParams{
		Source:    content,
		Document:  res.out.Document,
		Truncated: res.out.Truncated,
	})
	if err != nil {
		log.Error().Err(err).Str("subject", authPayload.Subject).Msg("cannot save document")
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrCannotSave))
		return
	}

	log.Info().
		Str("document_id", saved.ID.String()).
		Str("subject", authPayload.Subject).
		Int32("nodes", saved.NodeCount).
		Msg("document saved")

	ctx.JSON(http.StatusCreated, CreateDocumentResponse{
		ID:        saved.ID,
		NodeCount: saved.NodeCount,
		Truncated: saved.Truncated,
		CreatedAt: saved.CreatedAt.Time,
		Warnings:  res.warns.Serialize(),
	})
}
