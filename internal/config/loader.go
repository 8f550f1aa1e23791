package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if GOLBOT_CONFIG is set
//  3. env (prefix GOLBOT_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("GOLBOT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: GOLBOT_ADDR, GOLBOT_DATABASE_DSN, ...
	// Map env keys like GOLBOT_RETRIEVAL_TOP_K -> retrieval_top_k; underscores
	// are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("GOLBOT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "golbot_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DatabaseDSN == "":
		return fmt.Errorf("%w: database_dsn must not be empty", ErrInvalidConfig)
	case c.OllamaURL == "":
		return fmt.Errorf("%w: ollama_url must not be empty", ErrInvalidConfig)
	case c.EmbedModel == "":
		return fmt.Errorf("%w: embed_model must not be empty", ErrInvalidConfig)
	case c.RetrievalTopK <= 0:
		return fmt.Errorf("%w: retrieval_top_k must be positive", ErrInvalidConfig)
	case c.RetrievalThreshold < -1 || c.RetrievalThreshold > 1:
		return fmt.Errorf("%w: retrieval_threshold must be within [-1, 1]", ErrInvalidConfig)
	}
	return nil
}
