package retrieval_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aferrando/golbot/internal/domain/model"
	"github.com/aferrando/golbot/internal/domain/retrieval"
	"github.com/aferrando/golbot/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

type stubEmbedder struct {
	vec []float64
	err error
}

func (s *stubEmbedder) Embed(_ context.Context, _ string) ([]float64, error) {
	return s.vec, s.err
}

type stubCorpus struct {
	rows []model.DocumentEmbedding
	err  error
}

func (s *stubCorpus) DocumentEmbeddings(_ context.Context) ([]model.DocumentEmbedding, error) {
	return s.rows, s.err
}

func row(id int64, content string, vec []float64) model.DocumentEmbedding {
	return model.DocumentEmbedding{
		ID:          id,
		SourceTable: "players",
		SourceID:    id,
		Content:     content,
		Embedding:   vec,
	}
}

func TestEngineRetrieve(t *testing.T) {
	Convey("Given a retrieval engine over a small corpus", t, func() {
		ctx := context.Background()
		embedder := &stubEmbedder{vec: []float64{1, 0, 0}}
		corpus := &stubCorpus{rows: []model.DocumentEmbedding{
			row(1, "perfect match", []float64{1, 0, 0}),
			row(2, "close match", []float64{0.9, 0.1, 0}),
			row(3, "below threshold", []float64{0, 1, 0}),
			row(4, "wrong dimension", []float64{1, 0}),
			row(5, "empty vector", nil),
		}}
		engine := retrieval.NewEngine(embedder, corpus)

		Convey("When retrieving", func() {
			chunks, err := engine.Retrieve(ctx, "pregunta")

			Convey("Then only rows above the threshold survive, best first", func() {
				So(err, ShouldBeNil)
				So(chunks, ShouldHaveLength, 2)
				So(chunks[0].ID, ShouldEqual, 1)
				So(chunks[1].ID, ShouldEqual, 2)
				So(chunks[0].Score, ShouldBeGreaterThan, chunks[1].Score)
				So(chunks[0].Score, ShouldAlmostEqual, 1.0, 1e-9)
			})

			Convey("And malformed rows are skipped without error", func() {
				So(err, ShouldBeNil)
				for _, c := range chunks {
					So(c.ID, ShouldNotEqual, 4)
					So(c.ID, ShouldNotEqual, 5)
				}
			})
		})

		Convey("When the corpus outgrows topK", func() {
			var rows []model.DocumentEmbedding
			for i := int64(1); i <= 10; i++ {
				rows = append(rows, row(i, "match", []float64{1, 0, 0}))
			}
			corpus.rows = rows
			small := retrieval.NewEngine(embedder, corpus, retrieval.WithTopK(3))

			chunks, err := small.Retrieve(ctx, "pregunta")
			So(err, ShouldBeNil)
			So(chunks, ShouldHaveLength, 3)
		})

		Convey("When the threshold is lowered", func() {
			loose := retrieval.NewEngine(embedder, corpus, retrieval.WithThreshold(-1))

			chunks, err := loose.Retrieve(ctx, "pregunta")

			Convey("Then the orthogonal row is kept too", func() {
				So(err, ShouldBeNil)
				So(chunks, ShouldHaveLength, 3)
				So(chunks[2].ID, ShouldEqual, 3)
			})
		})

		Convey("When the embedder fails", func() {
			embedder.err = errors.New("ollama down")

			_, err := engine.Retrieve(ctx, "pregunta")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "embed question")
		})

		Convey("When the embedder returns an empty vector", func() {
			embedder.vec = nil

			_, err := engine.Retrieve(ctx, "pregunta")
			So(errors.Is(err, retrieval.ErrEmptyQueryVector), ShouldBeTrue)
		})

		Convey("When the corpus fails", func() {
			corpus.err = errors.New("db gone")

			_, err := engine.Retrieve(ctx, "pregunta")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "fetch corpus")
		})

		Convey("When the corpus is empty", func() {
			corpus.rows = nil

			chunks, err := engine.Retrieve(ctx, "pregunta")
			So(err, ShouldBeNil)
			So(chunks, ShouldBeEmpty)
		})
	})
}
