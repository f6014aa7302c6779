package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	db "github.com/Drolfothesgnir/minidom/db/sqlc"
	"github.com/Drolfothesgnir/minidom/dom"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type DocumentResponse struct {
	ID        uuid.UUID      `json:"id"`
	Source    string         `json:"source"`
	Truncated bool           `json:"truncated"`
	CreatedAt time.Time      `json:"created_at"`
	Nodes     []dom.Node     `json:"nodes"`
	Tree      []dom.TreeNode `json:"tree"`
}

func (s *Service) getDocument(ctx *gin.Context) {
	documentID := extractDocumentIDFromCtx(ctx)

	loaded, err := s.store.LoadDocument(ctx, documentID)
	if err != nil {
		if errors.Is(err, db.ErrDocumentNotFound) {
			err := fmt.Errorf("document with id [%s] not found", documentID)
			ctx.JSON(http.StatusNotFound, NewErrorResponse(err))
			return
		}

		log.Error().Err(err).Str("document_id", documentID.String()).Msg("cannot load document")
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrCannotLoad))
		return
	}

	nodes := loaded.Nodes
	if nodes == nil {
		nodes = dom.NewDocument(0)
	}

	ctx.JSON(http.StatusOK, DocumentResponse{
		ID:        loaded.ID,
		Source:    loaded.Source,
		Truncated: loaded.Truncated,
		CreatedAt: loaded.CreatedAt.Time,
		Nodes:     nodes.Nodes(),
		Tree:      nodes.Tree(),
	})
}
