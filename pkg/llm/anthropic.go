package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/liushuangls/go-anthropic/v2"
	"go.uber.org/zap"

	"github.com/tarihce/tarihce-engine/pkg/config"
)

// maxCompletionTokens bounds a single synthesis response across backends.
const maxCompletionTokens = 1000

// AnthropicClient generates text through the Anthropic Messages API.
// Used as the alternate backend when no OpenAI credential is configured.
type AnthropicClient struct {
	client  *anthropic.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewAnthropicClient creates a client for the Anthropic backend.
func NewAnthropicClient(cfg *config.AIConfig, logger *zap.Logger) (*AnthropicClient, error) {
	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required")
	}
	if cfg.AnthropicModel == "" {
		return nil, fmt.Errorf("Anthropic model is required")
	}

	return &AnthropicClient{
		client:  anthropic.NewClient(cfg.AnthropicAPIKey),
		model:   cfg.AnthropicModel,
		timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		logger:  logger.Named("llm-anthropic"),
	}, nil
}

var _ Client = (*AnthropicClient)(nil)

// GenerateResponse implements Client.
func (c *AnthropicClient) GenerateResponse(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.logger.Debug("LLM request",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)),
		zap.Float64("temperature", temperature))

	start := time.Now()
	temp := float32(temperature)

	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:  anthropic.Model(c.model),
		System: systemMessage,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
		MaxTokens:   maxCompletionTokens,
		Temperature: &temp,
	})
	if err != nil {
		c.logger.Error("LLM request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", fmt.Errorf("anthropic create messages: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	c.logger.Info("LLM request completed",
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
		zap.Duration("elapsed", time.Since(start)))

	return resp.Content[0].GetText(), nil
}

// GetModel implements Client.
func (c *AnthropicClient) GetModel() string {
	return c.model
}

// GetProvider implements Client.
func (c *AnthropicClient) GetProvider() string {
	return config.ProviderAnthropic
}
