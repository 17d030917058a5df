package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"studygen/internal/cache"
	"studygen/internal/config"
	"studygen/internal/llm"
	"studygen/internal/logger"
	"studygen/internal/pipeline"
	"studygen/internal/session"
)

// Deps bundles the runtime dependencies the server needs.
type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	Cache    cache.Cache
	LLM      llm.Client
	Pipeline *pipeline.Pipeline
	Sessions *session.Store
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	// A .env file is a development convenience, not a requirement.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return Deps{}, fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.New(cfg.LogLevel)

	completionCache, err := buildCache(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize cache: %w", err)
	}
	llmClient, err := buildLLM(cfg, completionCache, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}

	pipe := pipeline.New(llmClient, pipeline.Config{
		TranscriptCharLimit: cfg.TranscriptCharLimit,
		SummaryCharLimit:    cfg.SummaryCharLimit,
		QuestionCount:       cfg.QuestionCount,
	}, log)

	return Deps{
		Config:   cfg,
		Log:      log,
		Cache:    completionCache,
		LLM:      llmClient,
		Pipeline: pipe,
		Sessions: session.NewStore(cfg.SessionTTL),
	}, nil
}

func buildCache(cfg config.Config, log *slog.Logger) (cache.Cache, error) {
	switch cfg.CacheProvider {
	case "redis":
		c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		log.Info("using Redis completion cache", "addr", cfg.RedisAddr)
		return c, nil
	case "none":
		return cache.NewNoopCache(), nil
	default:
		return nil, fmt.Errorf("invalid CACHE_PROVIDER: %s (valid options: none, redis)", cfg.CacheProvider)
	}
}

func buildLLM(cfg config.Config, completionCache cache.Cache, log *slog.Logger) (llm.Client, error) {
	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is required")
	}
	client, err := llm.NewOpenAIClient(cfg.LLMAPIKey, cfg.LLMBaseURL, openai.ChatModel(cfg.LLMModel), cfg.LLMTemperature, cfg.LLMMaxTokens, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	log.Info("using OpenAI-compatible LLM client", "model", cfg.LLMModel, "base_url", cfg.LLMBaseURL)

	if cfg.CacheProvider == "none" {
		return client, nil
	}
	return llm.NewCachedClient(client, completionCache, cfg.LLMModel, cfg.CacheTTL, log), nil
}
