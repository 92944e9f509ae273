package llm

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tarihce/tarihce-engine/pkg/config"
)

// NewFromConfig creates the Client for the configured provider.
// config.Load has already validated that the provider has a credential.
func NewFromConfig(cfg *config.AIConfig, logger *zap.Logger) (Client, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg, logger)
	case config.ProviderAnthropic:
		return NewAnthropicClient(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
