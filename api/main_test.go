package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	db "github.com/Drolfothesgnir/minidom/db/sqlc"
	"github.com/Drolfothesgnir/minidom/tmpstore"
	"github.com/Drolfothesgnir/minidom/token"
	"github.com/Drolfothesgnir/minidom/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := registerValidators(); err != nil {
		log.Fatal().Err(err).Msg("cannot register validators")
	}

	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testConfig = util.Config{
	TokenSymmetricKey:   util.RandomString(32),
	AccessTokenDuration: time.Minute,
	ParseCacheTTL:       time.Minute,
	AllowedOrigins:      []string{"*"},
	MaxInputBytes:       1024,
	MaxWarnings:         16,
	WarningsPolicy:      "trunc",
}

func newTestService(
	t *testing.T,
	store db.Store,
	tokenMaker token.Maker,
	cache tmpstore.Store,
) *Service {
	service, err := NewService(testConfig, store, tokenMaker, cache, nil)
	require.NoError(t, err)
	return service
}

func newTestTokenMaker(t *testing.T) token.Maker {
	tokenMaker, err := token.NewJWTMaker(testConfig.TokenSymmetricKey)
	require.NoError(t, err)
	return tokenMaker
}

func setAuthorizationHeader(t *testing.T, tokenMaker token.Maker, authorizationType string, subject string, duration time.Duration, request *http.Request) {
	accessToken, payload, err := tokenMaker.CreateToken(subject, duration)
	require.NoError(t, err)
	require.NotEmpty(t, payload)
	authorizationToken := fmt.Sprintf("%s %s", authorizationType, accessToken)
	request.Header.Set(authorizationHeaderKey, authorizationToken)
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}
