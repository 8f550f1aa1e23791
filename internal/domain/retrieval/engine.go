// Package retrieval ranks the pre-embedded corpus against a question by
// cosine similarity. The scan is brute force over every stored vector,
// which is fine at the current corpus size (hundreds to low thousands of
// rows) but is the first thing to replace with an index if that grows.
package retrieval

import (
	"context"
	"fmt"
	"sort"

	"github.com/aferrando/golbot/internal/domain/model"
	"github.com/aferrando/golbot/pkg/logger"
	"github.com/aferrando/golbot/pkg/metrics"
)

// Default retrieval parameters.
const (
	DefaultTopK      = 5
	DefaultThreshold = 0.7
)

// Embedder turns text into a fixed-dimension vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Corpus exposes the stored document embeddings.
type Corpus interface {
	DocumentEmbeddings(ctx context.Context) ([]model.DocumentEmbedding, error)
}

// Engine scores the corpus against a question and keeps the best chunks.
type Engine struct {
	embedder  Embedder
	corpus    Corpus
	topK      int
	threshold float64
	log       logger.Logger
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithTopK caps how many chunks a retrieval pass returns.
func WithTopK(k int) Option {
	return func(e *Engine) {
		if k > 0 {
			e.topK = k
		}
	}
}

// WithThreshold sets the minimum similarity score for a chunk to be kept.
func WithThreshold(threshold float64) Option {
	return func(e *Engine) {
		e.threshold = threshold
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEngine creates an Engine over the given embedder and corpus.
func NewEngine(embedder Embedder, corpus Corpus, opts ...Option) *Engine {
	e := &Engine{
		embedder:  embedder,
		corpus:    corpus,
		topK:      DefaultTopK,
		threshold: DefaultThreshold,
		log:       logger.Get(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Retrieve embeds question, scores every well-formed corpus row, drops rows
// below the threshold and returns at most topK chunks ordered by descending
// score. Rows whose vector is missing, empty or of a different dimension
// than the query vector are skipped, never fatal.
func (e *Engine) Retrieve(ctx context.Context, question string) ([]model.ScoredChunk, error) {
	qvec, err := e.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}
	if len(qvec) == 0 {
		return nil, fmt.Errorf("embed question: %w", ErrEmptyQueryVector)
	}

	rows, err := e.corpus.DocumentEmbeddings(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch corpus: %w", err)
	}

	scored := make([]model.ScoredChunk, 0, e.topK)
	for _, row := range rows {
		if len(row.Embedding) != len(qvec) {
			metrics.RecordMalformedRow()
			e.log.Debug(ctx, "skipping malformed embedding row",
				logger.Any("id", row.ID),
				logger.Int("dims", len(row.Embedding)),
				logger.Int("want", len(qvec)))
			continue
		}
		sim := Cosine(qvec, row.Embedding)
		if sim >= e.threshold {
			scored = append(scored, model.ScoredChunk{DocumentEmbedding: row, Score: sim})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > e.topK {
		scored = scored[:e.topK]
	}
	return scored, nil
}
