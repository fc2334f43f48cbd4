package common

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labelcheck/labelcheck/constants"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Vision   VisionConfig
	LLM      LLMConfig
	Verify   VerifyConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// VisionConfig holds OCR collaborator configuration
type VisionConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// LLMConfig holds classifier collaborator configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
	Lenient     bool
}

// VerifyConfig holds the settings-collaborator values the verification engine
// reads: comparison behavior, deadlines gating, batch limits.
type VerifyConfig struct {
	// PipelineTimeout bounds the whole external-call chain (OCR +
	// classification) for one label.
	PipelineTimeout time.Duration
	// BatchConcurrency caps simultaneous labels in flight.
	BatchConcurrency int
	// AutoApprove lets a clean verdict go straight to approved; when off,
	// clean labels land in pending_review for a human.
	AutoApprove bool
	// AutoApproveThreshold is the minimum per-field classifier confidence
	// (0..100) required for auto-approval.
	AutoApproveThreshold int
	// MinorFields overrides the default minor-discrepancy set.
	MinorFields map[constants.FieldName]struct{}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Vision: VisionConfig{
			Endpoint: getEnv("VISION_ENDPOINT", ""),
			APIKey:   getEnv("VISION_API_KEY", ""),
			Timeout:  getEnvAsDuration("VISION_TIMEOUT", 30*time.Second),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
			Lenient:     getEnvAsBool("OPENAI_LENIENT", true),
		},
		Verify: VerifyConfig{
			PipelineTimeout:      getEnvAsDuration("VERIFY_TIMEOUT", 2*time.Minute),
			BatchConcurrency:     getEnvAsInt("VERIFY_CONCURRENCY", 4),
			AutoApprove:          getEnvAsBool("VERIFY_AUTO_APPROVE", false),
			AutoApproveThreshold: getEnvAsInt("VERIFY_AUTO_APPROVE_THRESHOLD", 85),
			MinorFields:          parseMinorFields(getEnv("VERIFY_MINOR_FIELDS", "")),
		},
	}
}

// parseMinorFields turns a comma-separated field list into a set; empty input
// means the built-in defaults apply.
func parseMinorFields(s string) map[constants.FieldName]struct{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	out := make(map[constants.FieldName]struct{})
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			out[constants.FieldName(name)] = struct{}{}
		}
	}
	return out
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
