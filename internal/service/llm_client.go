package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Studynest/config"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

// LLMClient sends a single user message to a chat model and returns the
// text of the first choice.
type LLMClient interface {
	Chat(ctx context.Context, prompt string, temperature float32) (string, error)
	Available() bool
}

// NewLLMClient picks the backend from AI_PROVIDER. Without credentials it
// returns a client that always fails with ErrAIUnavailable, so the server
// still starts and objective grading keeps working.
func NewLLMClient(lc fx.Lifecycle, cfg *config.Config) (LLMClient, error) {
	var client LLMClient
	switch {
	case !cfg.AIConfigured():
		log.Warn().Str("provider", cfg.AI.Provider).Msg("No API key configured. AI features will be unavailable.")
		return disabledClient{}, nil
	case cfg.AI.Provider == "gemini":
		gc, err := newGeminiClient(context.Background(), cfg.AI)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{OnStop: func(context.Context) error { return gc.client.Close() }})
		client = gc
	default:
		client = newOpenAIClient(cfg.AI)
	}

	if cfg.AI.RateLimit > 0 {
		client = newRateLimitedClient(client, cfg.AI.RateLimit)
	}
	log.Info().Str("provider", cfg.AI.Provider).Float64("rateLimit", cfg.AI.RateLimit).Msg("LLM client initialised")
	return client, nil
}

type disabledClient struct{}

func (disabledClient) Chat(context.Context, string, float32) (string, error) {
	return "", ErrAIUnavailable
}

func (disabledClient) Available() bool { return false }

// openAIClient talks to any OpenAI-compatible endpoint; DashScope serves
// Qwen models this way.
type openAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func newOpenAIClient(cfg config.AI) *openAIClient {
	clientCfg := openai.DefaultConfig(cfg.QwenAPIKey)
	if cfg.QwenBaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.QwenBaseURL, "/")
	}
	return &openAIClient{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.QwenModel,
		timeout: cfg.Timeout,
	}
}

func (c *openAIClient) Chat(ctx context.Context, prompt string, temperature float32) (string, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *openAIClient) Available() bool { return true }

type geminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func newGeminiClient(ctx context.Context, cfg config.AI) (*geminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiClient{client: client, model: cfg.GeminiModel, timeout: cfg.Timeout}, nil
}

func (c *geminiClient) Chat(ctx context.Context, prompt string, temperature float32) (string, error) {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()

	// GenerativeModel carries the temperature, so each call gets its own.
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(temperature)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned no content")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}

func (c *geminiClient) Available() bool { return true }

// rateLimitedClient holds every call until the shared token bucket allows
// it, or the context ends.
type rateLimitedClient struct {
	next    LLMClient
	limiter *rate.Limiter
}

func newRateLimitedClient(next LLMClient, perSecond float64) *rateLimitedClient {
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return &rateLimitedClient{next: next, limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

func (c *rateLimitedClient) Chat(ctx context.Context, prompt string, temperature float32) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}
	return c.next.Chat(ctx, prompt, temperature)
}

func (c *rateLimitedClient) Available() bool { return c.next.Available() }

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
