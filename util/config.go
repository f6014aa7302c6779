package util

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment         string        `mapstructure:"ENVIRONMENT"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	MigrationURL        string        `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress   string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress        string        `mapstructure:"REDIS_ADDRESS"`
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	ParseCacheTTL       time.Duration `mapstructure:"PARSE_CACHE_TTL"`
	AllowedOrigins      []string      `mapstructure:"ALLOWED_ORIGINS"`

	// MaxInputBytes caps the size of the markup accepted over HTTP.
	MaxInputBytes int `mapstructure:"MAX_INPUT_BYTES"`

	// MaxWarnings and WarningsPolicy configure the diagnostics collector
	// of every parse. See dom.ParseOverflowPolicy for the policy names.
	MaxWarnings    int    `mapstructure:"MAX_WARNINGS"`
	WarningsPolicy string `mapstructure:"WARNINGS_POLICY"`
}

// configKeys are bound to the environment so that Unmarshal sees them even
// when app.env does not mention them.
var configKeys = []string{
	"ENVIRONMENT",
	"DB_SOURCE",
	"MIGRATION_URL",
	"HTTP_SERVER_ADDRESS",
	"REDIS_ADDRESS",
	"TOKEN_SYMMETRIC_KEY",
	"ACCESS_TOKEN_DURATION",
	"PARSE_CACHE_TTL",
	"ALLOWED_ORIGINS",
	"MAX_INPUT_BYTES",
	"MAX_WARNINGS",
	"WARNINGS_POLICY",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("ACCESS_TOKEN_DURATION", 15*time.Minute)
	v.SetDefault("PARSE_CACHE_TTL", 10*time.Minute)
	v.SetDefault("MAX_INPUT_BYTES", 1<<20)
	v.SetDefault("MAX_WARNINGS", 64)
	v.SetDefault("WARNINGS_POLICY", "trunc")
	v.SetDefault("ALLOWED_ORIGINS", []string{"*"})
}

// LoadConfig reads app.env from path, if present. Environment variables take precedence over the file.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()
	for _, key := range configKeys {
		if err = v.BindEnv(key); err != nil {
			return
		}
	}
	setDefaults(v)

	// without app.env the environment and the defaults are used
	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
	}

	err = v.Unmarshal(&config)
	return
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// If no port is specified in the URL, port will be an empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	addr := config.HTTPServerAddress

	urlStr, err := url.Parse(addr)
	if err != nil || urlStr.Host == "" {
		// "host:port" without a scheme
		urlStr, err = url.Parse("http://" + addr)
	}
	if err != nil {
		err = fmt.Errorf("error parsing http server url: %w", err)
		return
	}

	host, port, err = net.SplitHostPort(urlStr.Host)
	if err != nil {
		// If there's no port, SplitHostPort returns an error,
		// in which case the host itself is the hostname.
		host = urlStr.Hostname()
		err = nil
	}

	if host == "" {
		err = fmt.Errorf("error parsing http server url: no host in %q", addr)
	}

	return
}
