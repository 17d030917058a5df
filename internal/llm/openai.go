package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIClient calls a Chat Completions API. It works against any
// OpenAI-compatible endpoint; the default deployment points it at Groq.
type OpenAIClient struct {
	model       openai.ChatModel
	temperature float64
	maxTokens   int64
	client      *openai.Client
	log         *slog.Logger
}

// NewOpenAIClient builds a client for the given endpoint and model.
// An empty baseURL targets api.openai.com.
func NewOpenAIClient(apiKey, baseURL string, model openai.ChatModel, temperature float64, maxTokens int64, log *slog.Logger) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		return nil, fmt.Errorf("model required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	cli := openai.NewClient(opts...)
	return &OpenAIClient{
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		client:      &cli,
		log:         log,
	}, nil
}

// Complete sends one system/user prompt pair and returns the response text.
// The user prompt is truncated to userLimit characters first; truncation is
// logged but not reported to the caller. No explicit timeout is set here;
// cancellation comes from ctx and the transport's defaults.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string, userLimit int) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil llm client")
	}

	truncated := Truncate(userPrompt, userLimit)
	if len(truncated) < len(userPrompt) {
		c.log.Debug("user prompt truncated", "limit", userLimit, "original_len", len(userPrompt))
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    buildMessages(systemPrompt, truncated),
		Temperature: openai.Float(c.temperature),
		MaxTokens:   openai.Int(c.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}
