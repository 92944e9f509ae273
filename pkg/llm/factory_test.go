package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tarihce/tarihce-engine/pkg/config"
)

func TestNewFromConfig_OpenAI(t *testing.T) {
	cfg := &config.AIConfig{
		Provider:     config.ProviderOpenAI,
		OpenAIAPIKey: "sk-test",
		OpenAIModel:  "gpt-4",
	}

	client, err := NewFromConfig(cfg, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "openai", client.GetProvider())
	assert.Equal(t, "gpt-4", client.GetModel())
}

func TestNewFromConfig_Anthropic(t *testing.T) {
	cfg := &config.AIConfig{
		Provider:        config.ProviderAnthropic,
		AnthropicAPIKey: "sk-ant-test",
		AnthropicModel:  "claude-sonnet-4-20250514",
	}

	client, err := NewFromConfig(cfg, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "anthropic", client.GetProvider())
	assert.Equal(t, "claude-sonnet-4-20250514", client.GetModel())
}

func TestNewFromConfig_UnknownProvider(t *testing.T) {
	cfg := &config.AIConfig{Provider: "gemini"}

	_, err := NewFromConfig(cfg, zap.NewNop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown AI provider")
}
