package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the chatbot engine.
// Values come from config.yaml with environment variable overrides;
// secrets (AI_API_KEY, SESSION_SECRET, DATABASE_URL) must only come
// from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// KnowledgePath points at the knowledge base file.
	KnowledgePath string `yaml:"knowledge_path" env:"KNOWLEDGE_PATH" env-default:"knowledge.yaml"`

	Chat     ChatConfig     `yaml:"chat"`
	AI       AIConfig       `yaml:"ai"`
	Session  SessionConfig  `yaml:"session"`
	Database DatabaseConfig `yaml:"database"`
	MCP      MCPConfig      `yaml:"mcp"`
}

// ChatConfig tunes the response selection engine.
type ChatConfig struct {
	// MatchThreshold is the minimum normalized overlap score required
	// to accept a direct knowledge base match.
	MatchThreshold float64 `yaml:"match_threshold" env:"CHAT_MATCH_THRESHOLD" env-default:"0.2"`

	// GenerationTimeout bounds the generative fallback call; on
	// timeout the engine falls through to the default message.
	GenerationTimeout time.Duration `yaml:"generation_timeout" env:"CHAT_GENERATION_TIMEOUT" env-default:"10s"`
}

// AIConfig selects and configures the generation provider. Leaving
// Provider empty disables generation; the engine then answers from the
// knowledge base and default messages only.
type AIConfig struct {
	Provider    string  `yaml:"provider" env:"AI_PROVIDER" env-default:""`
	BaseURL     string  `yaml:"base_url" env:"AI_BASE_URL" env-default:""`
	Model       string  `yaml:"model" env:"AI_MODEL" env-default:""`
	APIKey      string  `yaml:"-" env:"AI_API_KEY"` // Secret - not in YAML
	Temperature float64 `yaml:"temperature" env:"AI_TEMPERATURE" env-default:"0.7"`
}

// SessionConfig configures the web session cookie store.
type SessionConfig struct {
	// Secret signs session cookies. Any passphrase; hashed to a
	// 32-byte key. Must be stable across restarts.
	Secret string `yaml:"-" env:"SESSION_SECRET" env-default:"chatbot-dev-secret"`
}

// DatabaseConfig configures the optional chat transcript store.
type DatabaseConfig struct {
	Enabled        bool   `yaml:"enabled" env:"DATABASE_ENABLED" env-default:"false"`
	URL            string `yaml:"-" env:"DATABASE_URL"` // Secret - not in YAML
	MaxConnections int32  `yaml:"max_connections" env:"DATABASE_MAX_CONNECTIONS" env-default:"10"`
	MigrationsPath string `yaml:"migrations_path" env:"DATABASE_MIGRATIONS_PATH" env-default:"migrations"`
}

// MCPConfig controls the optional MCP tool surface.
type MCPConfig struct {
	Enabled bool `yaml:"enabled" env:"MCP_ENABLED" env-default:"false"`
}

// Load reads configuration from the given YAML file with environment
// variable overrides, then validates it. The version parameter is
// injected at build time.
func Load(path, version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Chat.MatchThreshold < 0 || c.Chat.MatchThreshold > 1 {
		return fmt.Errorf("chat.match_threshold must be in [0,1], got %v", c.Chat.MatchThreshold)
	}
	if c.Chat.GenerationTimeout <= 0 {
		return fmt.Errorf("chat.generation_timeout must be positive, got %v", c.Chat.GenerationTimeout)
	}
	if c.KnowledgePath == "" {
		return fmt.Errorf("knowledge_path is required")
	}
	if c.Database.Enabled && c.Database.URL == "" {
		return fmt.Errorf("database.enabled is set but DATABASE_URL is empty")
	}
	switch c.AI.Provider {
	case "", "openai", "anthropic":
	default:
		return fmt.Errorf("ai.provider must be \"openai\", \"anthropic\", or empty, got %q", c.AI.Provider)
	}
	return nil
}
