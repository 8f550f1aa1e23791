// Package app composes the answer-resolution pipeline: superlative lookup,
// scripted dialogue, the fact matcher family, then semantic retrieval, in
// that fixed order, short-circuiting on the first stage that produces an
// answer. The pipeline always responds; stage failures degrade to no-match.
package app

import (
	"context"
	"math"
	"time"

	"github.com/aferrando/golbot/internal/domain/answer"
	"github.com/aferrando/golbot/internal/domain/dialogue"
	"github.com/aferrando/golbot/internal/domain/facts"
	"github.com/aferrando/golbot/internal/domain/model"
	"github.com/aferrando/golbot/pkg/logger"
	"github.com/aferrando/golbot/pkg/metrics"
)

// Stage labels used in logs and metrics.
const (
	stageSuperlative = "superlative"
	stageDialogue    = "dialogue"
	stageFacts       = "facts"
	stageRetrieval   = "retrieval"
	stageFallback    = "fallback"
)

// Superlative resolves "most X" questions against the statistic vocabulary.
type Superlative interface {
	Resolve(ctx context.Context, question string) (string, error)
}

// Retriever runs the semantic retrieval pass.
type Retriever interface {
	Retrieve(ctx context.Context, question string) ([]model.ScoredChunk, error)
}

// Service runs the resolution chain for one question at a time. It holds no
// per-request state, so a single Service serves concurrent requests.
type Service struct {
	superlative Superlative
	matchers    []facts.Matcher
	retriever   Retriever
	dialogue    func(string) string
	log         logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithDialogue overrides the scripted dialogue table lookup.
func WithDialogue(match func(string) string) Option {
	return func(s *Service) {
		if match != nil {
			s.dialogue = match
		}
	}
}

// New creates the pipeline service from its stages.
func New(superlative Superlative, matchers []facts.Matcher, retriever Retriever, opts ...Option) *Service {
	s := &Service{
		superlative: superlative,
		matchers:    matchers,
		retriever:   retriever,
		dialogue:    dialogue.Match,
		log:         logger.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Answer resolves question through the fixed stage order and always returns
// a non-empty response. No stage error escapes: a failing store or embedder
// downgrades its stage to no-match and the chain moves on.
func (s *Service) Answer(ctx context.Context, question string) model.Response {
	metrics.RecordQuestion()

	// 1. Superlative lookup.
	if ans := s.runSuperlative(ctx, question); ans != "" {
		metrics.RecordAnswer(stageSuperlative)
		return model.Response{Answer: ans, Sources: []model.SourceRef{}}
	}

	// 2. Scripted dialogue; no store involved.
	start := time.Now()
	if ans := s.dialogue(question); ans != "" {
		metrics.RecordStageLatency(stageDialogue, msSince(start))
		metrics.RecordAnswer(stageDialogue)
		return model.Response{Answer: ans, Sources: []model.SourceRef{}}
	}
	metrics.RecordStageLatency(stageDialogue, msSince(start))

	// 3. Fact matchers, in their declared order.
	if ans := s.runFacts(ctx, question); ans != "" {
		metrics.RecordAnswer(stageFacts)
		return model.Response{Answer: ans, Sources: []model.SourceRef{}}
	}

	// 4. Semantic retrieval plus extractive synthesis.
	if resp, ok := s.runRetrieval(ctx, question); ok {
		metrics.RecordAnswer(stageRetrieval)
		return resp
	}

	// 5. Terminal fallback; never empty.
	metrics.RecordAnswer(stageFallback)
	return model.Response{Answer: answer.MsgFallback, Sources: []model.SourceRef{}}
}

func (s *Service) runSuperlative(ctx context.Context, question string) string {
	if s.superlative == nil {
		return ""
	}
	start := time.Now()
	ans, err := s.superlative.Resolve(ctx, question)
	metrics.RecordStageLatency(stageSuperlative, msSince(start))
	if err != nil {
		metrics.RecordStageError(stageSuperlative)
		s.log.Warn(ctx, "superlative stage degraded to no-match", logger.Error(err))
		return ""
	}
	return ans
}

func (s *Service) runFacts(ctx context.Context, question string) string {
	start := time.Now()
	defer func() { metrics.RecordStageLatency(stageFacts, msSince(start)) }()

	for _, m := range s.matchers {
		ans, err := m.Try(ctx, question)
		if err != nil {
			// One broken matcher must not silence the rest of the family.
			metrics.RecordStageError(stageFacts)
			s.log.Warn(ctx, "fact matcher degraded to no-match",
				logger.String("matcher", m.Name()), logger.Error(err))
			continue
		}
		if ans != "" {
			s.log.Debug(ctx, "fact matcher answered", logger.String("matcher", m.Name()))
			return ans
		}
	}
	return ""
}

func (s *Service) runRetrieval(ctx context.Context, question string) (model.Response, bool) {
	if s.retriever == nil {
		return model.Response{}, false
	}
	start := time.Now()
	chunks, err := s.retriever.Retrieve(ctx, question)
	metrics.RecordStageLatency(stageRetrieval, msSince(start))
	if err != nil {
		metrics.RecordStageError(stageRetrieval)
		s.log.Warn(ctx, "retrieval stage degraded to no-match", logger.Error(err))
		return model.Response{}, false
	}
	metrics.RecordRetrievalChunks(len(chunks))
	if len(chunks) == 0 {
		return model.Response{}, false
	}

	sources := make([]model.SourceRef, 0, len(chunks))
	for _, c := range chunks {
		sources = append(sources, model.SourceRef{
			Table: c.SourceTable,
			ID:    c.SourceID,
			Score: roundScore(c.Score),
		})
	}
	return model.Response{Answer: answer.Synthesize(chunks), Sources: sources}, true
}

// roundScore trims a similarity score to 4 decimal places for the wire.
func roundScore(s float64) float64 {
	return math.Round(s*10000) / 10000
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000
}
