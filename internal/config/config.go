package config

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/jub0bs/cors"
)

// Config holds the dashboard server configuration, loaded from environment variables.
// The dashboard talks to the platform API at APIBaseURL and has no storage of its own.
type Config struct {
	Environment       string        `env:"ENVIRONMENT,default=dev"`
	Host              string        `env:"HOST,default=0.0.0.0"`
	Port              int           `env:"PORT,default=3000"`
	LogLevel          string        `env:"LOG_LEVEL,default=debug"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT,default=15s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT,default=60s"`
	APIBaseURL        string        `env:"API_BASE_URL,default=http://localhost:8080"`
	APITimeout        time.Duration `env:"API_TIMEOUT,default=30s"`
	AllowedOrigins    []string      `env:"ALLOWED_ORIGINS,separator=|"`
	MaxUploadSize     int64         `env:"MAX_UPLOAD_SIZE,default=10485760"` // 10MB - covers avatar images and exam PDFs
	MaxAPIRequestSize int64         `env:"MAX_API_REQUEST_SIZE,default=65536"`
	RateLimitRPS      int32         `env:"RATE_LIMIT_RPS,default=100"`
	RateLimitBurst    int32         `env:"RATE_LIMIT_BURST,default=20"`
}

// CORSConfigs holds the CORS middleware instances for the dashboard's endpoint types
type CORSConfigs struct {
	Public    *cors.Middleware
	Protected *cors.Middleware
}

const (
	// Cookie names used to persist the session between dashboard requests
	AccessTokenDetailsCookieName = "access_token_details"
	RefreshTokenCookieName       = "refresh_token"

	// Operational timeouts
	ServerShutdownTimeout = 10 * time.Second

	CORSMaxAgeInSeconds = 86400 // 24 hours
)

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"prod":    true,
	"staging": true,
}

// ValidRoles covers the platform's account roles as reported by the API
var ValidRoles = map[string]bool{
	"institution":  true,
	"professional": true,
	"beginner":     true,
}

// NewConfig loads environment variables and returns the Config plus CORS middleware instances
func NewConfig() (*Config, *CORSConfigs, error) {
	var cfg Config

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	corsConfigs, err := createCORSConfigs(&cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("CORS configuration failed: %w", err)
	}

	return &cfg, corsConfigs, nil
}

func validateConfig(cfg *Config) error {
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid environment '%s'. Valid environments: dev, test, staging, prod", cfg.Environment)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}

	if cfg.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive, got %v", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive, got %v", cfg.WriteTimeout)
	}
	if cfg.IdleTimeout <= 0 {
		return fmt.Errorf("idle timeout must be positive, got %v", cfg.IdleTimeout)
	}
	if cfg.APITimeout <= 0 {
		return fmt.Errorf("API timeout must be positive, got %v", cfg.APITimeout)
	}

	if cfg.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL cannot be empty")
	}

	u, err := url.ParseRequestURI(cfg.APIBaseURL)
	if err != nil {
		return fmt.Errorf("API_BASE_URL is not a valid URL: %s", cfg.APIBaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("API_BASE_URL must use http or https: %s", cfg.APIBaseURL)
	}
	if cfg.Environment == "prod" && u.Scheme != "https" {
		return fmt.Errorf("API_BASE_URL must use https in production: %s", cfg.APIBaseURL)
	}

	if cfg.Environment == "prod" || cfg.Environment == "staging" {
		if len(cfg.AllowedOrigins) == 0 {
			return fmt.Errorf("ALLOWED_ORIGINS must be set in %v", cfg.Environment)
		}
		if cfg.AllowedOrigins[0] == "*" {
			return fmt.Errorf("ALLOWED_ORIGINS must not be set to '*' in %v", cfg.Environment)
		}
	}

	// default to all origins when not in prod/staging
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	return nil
}

// createCORSConfigs creates the CORS configurations based on the server config
func createCORSConfigs(cfg *Config) (*CORSConfigs, error) {
	origins := make([]string, len(cfg.AllowedOrigins))
	for i, origin := range cfg.AllowedOrigins {
		origins[i] = strings.TrimSpace(origin)
	}

	publicConfig := cors.Config{
		Origins: []string{"*"},
		Methods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		RequestHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Requested-With",
		},
		MaxAgeInSeconds: CORSMaxAgeInSeconds,
	}

	publicMiddleware, err := cors.NewMiddleware(publicConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create public CORS middleware: %w", err)
	}

	protectedConfig := cors.Config{
		Origins: origins,
		Methods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		RequestHeaders: []string{
			"Content-Type",
			"Authorization",
			"X-Requested-With",
		},
		Credentialed:    true,
		MaxAgeInSeconds: CORSMaxAgeInSeconds,
	}

	protectedMiddleware, err := cors.NewMiddleware(protectedConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create protected CORS middleware: %w", err)
	}

	return &CORSConfigs{
		Public:    publicMiddleware,
		Protected: protectedMiddleware,
	}, nil
}
