package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// api routes
	ParseURL     = "/parse"
	DocumentsURL = "/documents"
	MetricsURL   = "/metrics"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.Default()

	router.Use(service.corsMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	router.GET(MetricsURL, gin.WrapH(service.metrics.Handler()))

	router.POST(ParseURL, service.parseDocument)
	router.GET(DocumentsURL, service.listDocuments)

	// public routes where document id is checked
	publicDocumentGroup := router.Group(DocumentsURL).Use(service.documentIDMiddleware())
	publicDocumentGroup.GET("/:document_id", service.getDocument)

	// protected routes
	authGroup := router.Group(DocumentsURL).Use(authMiddleware(service.tokenMaker))
	authGroup.POST("", service.createDocument)

	privateDocumentGroup := authGroup.Use(service.documentIDMiddleware())
	privateDocumentGroup.DELETE("/:document_id", service.deleteDocument)

	server.Handler = router
	service.router = router
}
