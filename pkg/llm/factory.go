package llm

import (
	"fmt"

	"go.uber.org/zap"
)

// Provider names accepted in configuration.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// NewGenerator constructs the generation capability for the configured
// provider. An empty provider name yields the Disabled generator: the
// chatbot runs fine without generation, it just answers from the
// knowledge base and default messages.
func NewGenerator(provider string, cfg *Config, logger *zap.Logger) (Generator, error) {
	switch provider {
	case "":
		logger.Info("no generation provider configured, running with knowledge base only")
		return Disabled{}, nil
	case ProviderOpenAI:
		return NewOpenAIClient(cfg, logger)
	case ProviderAnthropic:
		return NewAnthropicClient(cfg, logger)
	}
	return nil, fmt.Errorf("unknown generation provider %q", provider)
}
