package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExtractHostPort(t *testing.T) {
	type tc struct {
		name      string
		addr      string
		wantHost  string
		wantPort  string
		wantError bool
	}

	tests := []tc{
		{
			name:     "with_scheme_host_and_port",
			addr:     "http://localhost:8080",
			wantHost: "localhost",
			wantPort: "8080",
		},
		{
			name:     "with_scheme_only_host",
			addr:     "http://localhost",
			wantHost: "localhost",
			wantPort: "",
		},
		{
			name:     "ipv4_with_scheme",
			addr:     "http://0.0.0.0:8080",
			wantHost: "0.0.0.0",
			wantPort: "8080",
		},
		{
			name:     "domain_with_scheme",
			addr:     "http://example.com:443",
			wantHost: "example.com",
			wantPort: "443",
		},
		{
			name:     "ipv6_with_scheme_host_and_port",
			addr:     "http://[::1]:9090",
			wantHost: "::1",
			wantPort: "9090",
		},
		{
			name:     "ipv6_with_scheme_only_host",
			addr:     "http://[::1]",
			wantHost: "::1",
			wantPort: "",
		},
		{
			name:     "no_scheme_host_and_port",
			addr:     "localhost:8080",
			wantHost: "localhost",
			wantPort: "8080",
		},
		{
			name:     "no_scheme_ipv6",
			addr:     "[::1]:9090",
			wantHost: "::1",
			wantPort: "9090",
		},
		{
			name:      "invalid_url_missing_host",
			addr:      "http://:8080",
			wantError: true,
		},
		{
			name:      "garbage_string",
			addr:      "not a url",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{HTTPServerAddress: tt.addr}
			host, port, err := cfg.ExtractHostPort()

			if tt.wantError {
				require.Error(t, err, "expected error for addr=%q", tt.addr)
				return
			}

			require.NoError(t, err, "unexpected error for addr=%q", tt.addr)
			require.Equal(t, tt.wantHost, host, "wrong host for addr=%q", tt.addr)
			require.Equal(t, tt.wantPort, port, "wrong port for addr=%q", tt.addr)
		})
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600)
	require.NoError(t, err)

	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeEnvFile(t, `ENVIRONMENT=production
HTTP_SERVER_ADDRESS=0.0.0.0:9090
TOKEN_SYMMETRIC_KEY=12345678901234567890123456789012
ACCESS_TOKEN_DURATION=30m
ALLOWED_ORIGINS=http://a.example,http://b.example
MAX_WARNINGS=8
`)

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	require.Equal(t, "production", config.Environment)
	require.Equal(t, "0.0.0.0:9090", config.HTTPServerAddress)
	require.Equal(t, 30*time.Minute, config.AccessTokenDuration)
	require.Equal(t, []string{"http://a.example", "http://b.example"}, config.AllowedOrigins)
	require.Equal(t, 8, config.MaxWarnings)

	// defaults
	require.Equal(t, 10*time.Minute, config.ParseCacheTTL)
	require.Equal(t, 1<<20, config.MaxInputBytes)
	require.Equal(t, "trunc", config.WarningsPolicy)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := writeEnvFile(t, "MAX_WARNINGS=8\nWARNINGS_POLICY=drop\n")

	t.Setenv("MAX_WARNINGS", "3")

	config, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, 3, config.MaxWarnings)
	require.Equal(t, "drop", config.WarningsPolicy)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Setenv("DB_SOURCE", "postgresql://root:secret@db:5432/minidom")
	t.Setenv("TOKEN_SYMMETRIC_KEY", "12345678901234567890123456789012")
	t.Setenv("MAX_WARNINGS", "5")
	for _, key := range []string{"ENVIRONMENT", "HTTP_SERVER_ADDRESS", "WARNINGS_POLICY", "REDIS_ADDRESS"} {
		t.Setenv(key, "")
	}

	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, "postgresql://root:secret@db:5432/minidom", config.DBSource)
	require.Equal(t, "12345678901234567890123456789012", config.TokenSymmetricKey)
	require.Equal(t, 5, config.MaxWarnings)

	// defaults
	require.Equal(t, "development", config.Environment)
	require.Equal(t, "0.0.0.0:8080", config.HTTPServerAddress)
	require.Equal(t, "trunc", config.WarningsPolicy)
	require.Empty(t, config.RedisAddress)
}

func TestRandomString(t *testing.T) {
	s := RandomString(32)
	require.Len(t, s, 32)
	require.Equal(t, strings.ToLower(s), s)

	for range 100 {
		n := RandomInt(5, 10)
		require.GreaterOrEqual(t, n, int64(5))
		require.LessOrEqual(t, n, int64(10))
	}
}
