package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Drolfothesgnir/minidom/dom"
	"github.com/Drolfothesgnir/minidom/tmpstore"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const maxRequestWarnings = 1000

type ParseDocumentRequest struct {
	Content     *string `json:"content" binding:"required,utf8"`
	MaxWarnings *int    `json:"max_warnings" binding:"omitempty,gte=0,lte=1000"`
}

// parseResult is a single parse with the diagnostics collected on the way.
type parseResult struct {
	out   dom.Output
	warns *dom.Warnings
}

// checkContentSize aborts with 400 if the content exceeds the configured limit.
func (s *Service) checkContentSize(ctx *gin.Context, content string) bool {
	if s.config.MaxInputBytes > 0 && len(content) > s.config.MaxInputBytes {
		field := ErrorField{
			"content",
			fmt.Sprintf("content has %d bytes, the limit is %d", len(content), s.config.MaxInputBytes),
		}
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInputTooLarge, field))
		return false
	}
	return true
}

// warningsCap returns the requested cap or the configured default.
func (s *Service) warningsCap(requested *int) int {
	if requested != nil {
		return *requested
	}
	return min(s.config.MaxWarnings, maxRequestWarnings)
}

// parse runs a single pass over the content and records it in the metrics.
func (s *Service) parse(content string, maxWarnings int) (parseResult, error) {
	warns, err := dom.NewWarnings(s.warnPolicy, maxWarnings)
	if err != nil {
		return parseResult{}, err
	}

	start := time.Now()
	out := dom.Parse(content, nil, warns)
	s.metrics.ObserveParse("http", len(content), out, warns, time.Since(start))

	return parseResult{out: out, warns: warns}, nil
}

func (s *Service) parseDocument(ctx *gin.Context) {
	var req ParseDocumentRequest
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

	maxWarnings := s.warningsCap(req.MaxWarnings)
	key := tmpstore.ParseResultKey(content, s.warnPolicy, maxWarnings)

	if s.cache != nil {
		cached, err := s.cache.GetParseResult(ctx, key)
		switch {
		case err == nil:
			s.metrics.ObserveCache("hit")
			ctx.JSON(http.StatusOK, cached)
			return
		case errors.Is(err, tmpstore.ErrCacheMiss):
			s.metrics.ObserveCache("miss")
		default:
			s.metrics.ObserveCache("error")
			log.Warn().Err(err).Str("key", key).Msg("cannot read parse result from cache")
		}
	}

	res, err := s.parse(content, maxWarnings)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(ErrInvalidWarningsConf))
		return
	}

	result := dom.Serialize(res.out, res.warns)

	if s.cache != nil {
		if err := s.cache.SaveParseResult(ctx, key, result, s.config.ParseCacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cannot save parse result to cache")
		}
	}

	ctx.JSON(http.StatusOK, result)
}
