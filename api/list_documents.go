package api

import (
	"net/http"
	"time"

	db "github.com/Drolfothesgnir/minidom/db/sqlc"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ListDocumentsQuery struct {
	PageID   int32 `form:"page_id" json:"page_id" binding:"min=1"`
	PageSize int32 `form:"page_size" json:"page_size" binding:"min=1,max=100"`
}

type DocumentSummary struct {
	ID        uuid.UUID `json:"id"`
	NodeCount int32     `json:"node_count"`
	Truncated bool      `json:"truncated"`
	CreatedAt time.Time `json:"created_at"`
}

type ListDocumentsResponse struct {
	Documents []DocumentSummary `json:"documents"`
}

// listDocuments returns stored documents, newest first, without their nodes.
func (s *Service) listDocuments(ctx *gin.Context) {
	// pre-filled with default values
	req := ListDocumentsQuery{
		PageID:   1,
		PageSize: 10,
	}

	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	docs, err := s.store.ListDocuments(ctx, db.ListDocumentsParams{
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		log.Error().Err(err).Msg("cannot list documents")
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrCannotLoad))
		return
	}

	resp := ListDocumentsResponse{Documents: make([]DocumentSummary, 0, len(docs))}
	for _, d := range docs {
		resp.Documents = append(resp.Documents, DocumentSummary{
			ID:        d.ID,
			NodeCount: d.NodeCount,
			Truncated: d.Truncated,
			CreatedAt: d.CreatedAt.Time,
		})
	}

	ctx.JSON(http.StatusOK, resp)
}
