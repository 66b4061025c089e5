package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	ServiceName     string
	CORSAllowOrigin []string
	LogLevel        string
	Gemini          GeminiConfig
	Tracing         TracingConfig
}

// GeminiConfig configures the generative-model gateway.
type GeminiConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	Transport      string
	TimeoutSeconds int
}

// TracingConfig configures OpenTelemetry export.
type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	SampleRatio float64
	Insecure    bool
}

// fileConfig mirrors the optional YAML overlay. Empty fields leave defaults in place.
type fileConfig struct {
	Port        string   `yaml:"port"`
	Env         string   `yaml:"env"`
	ServiceName string   `yaml:"service_name"`
	CORSOrigins []string `yaml:"cors_allow_origins"`
	LogLevel    string   `yaml:"log_level"`
	Gemini      struct {
		APIKey         string `yaml:"api_key"`
		BaseURL        string `yaml:"base_url"`
		Model          string `yaml:"model"`
		Transport      string `yaml:"transport"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"gemini"`
	Tracing struct {
		Enabled     *bool    `yaml:"enabled"`
		Endpoint    string   `yaml:"endpoint"`
		SampleRatio *float64 `yaml:"sample_ratio"`
		Insecure    *bool    `yaml:"insecure"`
	} `yaml:"tracing"`
}

const (
	TransportREST = "rest"
	TransportSDK  = "sdk"
)

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:            "8080",
		Env:             "dev",
		ServiceName:     "interview-backend",
		CORSAllowOrigin: []string{"http://localhost:5173", "http://localhost:3000"},
		LogLevel:        "info",
		Gemini: GeminiConfig{
			BaseURL:        "https://generativelanguage.googleapis.com",
			Model:          "gemini-2.5-flash",
			Transport:      TransportREST,
			TimeoutSeconds: 60,
		},
		Tracing: TracingConfig{
			SampleRatio: 1,
			Insecure:    true,
		},
	}
}

// Load reads configuration from .env files, the optional YAML file named by
// CONFIG_FILE, and environment variables. Environment variables win.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	for _, path := range []string{".env", "cmd/.env"} {
		_ = godotenv.Load(path)
	}

	cfg := Defaults()
	if err := applyFile(&cfg, getEnv("CONFIG_FILE", "config.yaml")); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)

	cfg.Env = normalizeEnv(cfg.Env)
	cfg.Gemini.Transport = normalizeTransport(cfg.Gemini.Transport)
	if cfg.Gemini.TimeoutSeconds <= 0 {
		cfg.Gemini.TimeoutSeconds = Defaults().Gemini.TimeoutSeconds
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		return Config{}, fmt.Errorf("OTEL_SAMPLER_RATIO must be within [0,1], got %v", cfg.Tracing.SampleRatio)
	}
	return cfg, nil
}

// IsProduction reports whether the service runs with production semantics.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func applyFile(cfg *Config, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.Port, fc.Port)
	setString(&cfg.Env, fc.Env)
	setString(&cfg.ServiceName, fc.ServiceName)
	setString(&cfg.LogLevel, fc.LogLevel)
	if len(fc.CORSOrigins) > 0 {
		cfg.CORSAllowOrigin = splitAndTrim(strings.Join(fc.CORSOrigins, ","))
	}
	setString(&cfg.Gemini.APIKey, fc.Gemini.APIKey)
	setString(&cfg.Gemini.BaseURL, fc.Gemini.BaseURL)
	setString(&cfg.Gemini.Model, fc.Gemini.Model)
	setString(&cfg.Gemini.Transport, fc.Gemini.Transport)
	if fc.Gemini.TimeoutSeconds > 0 {
		cfg.Gemini.TimeoutSeconds = fc.Gemini.TimeoutSeconds
	}
	if fc.Tracing.Enabled != nil {
		cfg.Tracing.Enabled = *fc.Tracing.Enabled
	}
	setString(&cfg.Tracing.Endpoint, fc.Tracing.Endpoint)
	if fc.Tracing.SampleRatio != nil {
		cfg.Tracing.SampleRatio = *fc.Tracing.SampleRatio
	}
	if fc.Tracing.Insecure != nil {
		cfg.Tracing.Insecure = *fc.Tracing.Insecure
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.ServiceName = getEnv("SERVICE_NAME", cfg.ServiceName)
	if raw := os.Getenv("CORS_ALLOW_ORIGINS"); raw != "" {
		cfg.CORSAllowOrigin = splitAndTrim(raw)
	}
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	cfg.Gemini.APIKey = getEnv("GEMINI_API_KEY", cfg.Gemini.APIKey)
	cfg.Gemini.BaseURL = getEnv("GEMINI_BASE_URL", cfg.Gemini.BaseURL)
	cfg.Gemini.Model = getEnv("GEMINI_MODEL", cfg.Gemini.Model)
	cfg.Gemini.Transport = getEnv("GEMINI_TRANSPORT", cfg.Gemini.Transport)
	cfg.Gemini.TimeoutSeconds = getEnvInt("GEMINI_TIMEOUT_SECONDS", cfg.Gemini.TimeoutSeconds)

	cfg.Tracing.Enabled = getEnvBool("OTEL_ENABLED", cfg.Tracing.Enabled)
	cfg.Tracing.Endpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Tracing.Endpoint)
	cfg.Tracing.SampleRatio = getEnvFloat("OTEL_SAMPLER_RATIO", cfg.Tracing.SampleRatio)
	cfg.Tracing.Insecure = getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", cfg.Tracing.Insecure)
}

func setString(dst *string, val string) {
	if v := strings.TrimSpace(val); v != "" {
		*dst = v
	}
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	if n, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return n
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if f, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return f
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return b
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeTransport(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case TransportSDK, "genai":
		return TransportSDK
	default:
		return TransportREST
	}
}
