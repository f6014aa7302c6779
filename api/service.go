package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	db "github.com/Drolfothesgnir/minidom/db/sqlc"
	"github.com/Drolfothesgnir/minidom/dom"
	"github.com/Drolfothesgnir/minidom/metrics"
	"github.com/Drolfothesgnir/minidom/tmpstore"
	"github.com/Drolfothesgnir/minidom/token"
	"github.com/Drolfothesgnir/minidom/util"
	"github.com/gin-gonic/gin"
)

type Service struct {
	config     util.Config
	store      db.Store
	tokenMaker token.Maker
	cache      tmpstore.Store
	metrics    *metrics.Metrics
	server     *http.Server
	router     *gin.Engine

	warnPolicy dom.WarningOverflowPolicy
}

// NewService returns a new service instance. cache may be nil, in which case every request is parsed.
func NewService(
	config util.Config,
	store db.Store,
	tokenMaker token.Maker,
	cache tmpstore.Store,
	m *metrics.Metrics,
) (*Service, error) {
	policy, err := dom.ParseOverflowPolicy(config.WarningsPolicy)
	if err != nil {
		return nil, fmt.Errorf("cannot create service: %w", err)
	}

	if config.MaxWarnings < 0 {
		return nil, fmt.Errorf("cannot create service: negative MAX_WARNINGS %d", config.MaxWarnings)
	}

	if m == nil {
		m = metrics.New()
	}

	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("cannot create service: %w", err)
	}

	service := &Service{
		config:     config,
		store:      store,
		tokenMaker: tokenMaker,
		cache:      cache,
		metrics:    m,
		warnPolicy: policy,
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
