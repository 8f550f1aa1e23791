// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load() layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// AllowedOrigin is the origin allowed by the CORS middleware.
	AllowedOrigin string `koanf:"allowed_origin"`

	// DatabaseDSN is the Postgres connection string for the stats database.
	DatabaseDSN string `koanf:"database_dsn"`

	// OllamaURL is the base URL of the Ollama API used for embeddings.
	OllamaURL string `koanf:"ollama_url"`

	// EmbedModel names the embedding model served by Ollama.
	EmbedModel string `koanf:"embed_model"`

	// RetrievalTopK caps how many chunks a retrieval pass returns.
	RetrievalTopK int `koanf:"retrieval_top_k"`

	// RetrievalThreshold is the minimum cosine similarity for a chunk.
	RetrievalThreshold float64 `koanf:"retrieval_threshold"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":8000",
		AllowedOrigin:      "http://localhost:5173",
		OllamaURL:          "http://localhost:11434",
		EmbedModel:         "all-minilm",
		RetrievalTopK:      5,
		RetrievalThreshold: 0.7,
	}
}
