package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// helper to create router with middleware wired same way as in setupRouter
func setupDocumentIDTestRouter(s *Service, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()

	group := r.Group("/documents").Use(s.documentIDMiddleware())
	group.GET("/:document_id", handler)

	return r
}

func TestDocumentIDMiddleware_ValidID(t *testing.T) {
	s := &Service{} // we don't need any fields for this middleware
	id := uuid.New()

	called := false

	router := setupDocumentIDTestRouter(s, func(ctx *gin.Context) {
		called = true
		require.Equal(t, id, extractDocumentIDFromCtx(ctx))
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/documents/"+id.String(), nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	require.True(t, called, "handler should be called for valid document_id")
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestDocumentIDMiddleware_InvalidID(t *testing.T) {
	s := &Service{}

	called := false

	router := setupDocumentIDTestRouter(s, func(ctx *gin.Context) {
		called = true // should NOT be reached
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/documents/abc", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	require.False(t, called, "handler should NOT be called for invalid document_id")
	require.Equal(t, http.StatusBadRequest, resp.Code)

	errResp, err := extractErrorFromBuffer(resp.Body)
	require.NoError(t, err)
	require.Equal(t, ErrInvalidDocumentID.Error(), errResp.Error)
	require.Len(t, errResp.Fields, 1)
	require.Equal(t, "document_id", errResp.Fields[0].FieldName)
	require.Contains(t, errResp.Fields[0].ErrorMessage, "document id [abc] is invalid")
}
