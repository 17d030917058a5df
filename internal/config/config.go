package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds runtime configuration, read from environment variables.
type Config struct {
	// Server
	Port          int    `env:"PORT" envDefault:"8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	MaxUploadSize int64  `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"` // 10MB in bytes

	// LLM. The base URL points at any OpenAI-compatible chat completions
	// endpoint; Groq is the default provider.
	LLMAPIKey      string  `env:"LLM_API_KEY"`
	LLMBaseURL     string  `env:"LLM_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	LLMModel       string  `env:"LLM_MODEL" envDefault:"llama-3.3-70b-versatile"`
	LLMTemperature float64 `env:"LLM_TEMPERATURE" envDefault:"0.5" validate:"gte=0,lte=2"`
	LLMMaxTokens   int64   `env:"LLM_MAX_TOKENS" envDefault:"1500" validate:"gt=0"`

	// Pipeline input budgets, in characters. Prompts built from the raw
	// transcript use TranscriptCharLimit; prompts built from the summary
	// use SummaryCharLimit. These bound cost and latency, not correctness.
	TranscriptCharLimit int `env:"TRANSCRIPT_CHAR_LIMIT" envDefault:"3000" validate:"gt=0"`
	SummaryCharLimit    int `env:"SUMMARY_CHAR_LIMIT" envDefault:"2000" validate:"gt=0"`
	QuestionCount       int `env:"QUESTION_COUNT" envDefault:"10" validate:"gt=0"`

	// Completion cache
	CacheProvider string        `env:"CACHE_PROVIDER" envDefault:"none" validate:"oneof=none redis"` // "none" or "redis"
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"1h"`

	// In-memory session store
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"2h" validate:"gt=0"`
}

// Load reads configuration from environment variables and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
