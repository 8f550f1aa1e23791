package answer_test

import (
	"strings"
	"testing"

	"github.com/aferrando/golbot/internal/domain/answer"
	"github.com/aferrando/golbot/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func chunk(content string) model.ScoredChunk {
	return model.ScoredChunk{
		DocumentEmbedding: model.DocumentEmbedding{Content: content},
		Score:             0.9,
	}
}

func TestSynthesize(t *testing.T) {
	Convey("Given the extractive synthesizer", t, func() {
		Convey("When there are no chunks", func() {
			So(answer.Synthesize(nil), ShouldEqual, answer.MsgInsufficientData)
			So(answer.Synthesize([]model.ScoredChunk{}), ShouldEqual, answer.MsgInsufficientData)
		})

		Convey("When every chunk is blank", func() {
			chunks := []model.ScoredChunk{chunk(""), chunk("   \n  ")}
			So(answer.Synthesize(chunks), ShouldEqual, answer.MsgNotFound)
		})

		Convey("When the top chunk has a multi-sentence first line", func() {
			chunks := []model.ScoredChunk{
				chunk("Messi ganó el Balón de Oro. Fue un año histórico."),
			}
			So(answer.Synthesize(chunks), ShouldEqual, "Messi ganó el Balón de Oro.")
		})

		Convey("When the top chunk has several lines", func() {
			chunks := []model.ScoredChunk{
				chunk("El Real Madrid ganó la liga en 2024.\nOtros datos irrelevantes."),
			}
			So(answer.Synthesize(chunks), ShouldEqual, "El Real Madrid ganó la liga en 2024.")
		})

		Convey("When the first line is too short to stand alone", func() {
			long := "Ok. " + strings.Repeat("dato ", 60)
			chunks := []model.ScoredChunk{chunk(long)}
			got := answer.Synthesize(chunks)

			Convey("Then a 200-rune prefix with ellipsis is returned", func() {
				So(strings.HasSuffix(got, "..."), ShouldBeTrue)
				So(len([]rune(got)), ShouldEqual, 203)
				So(strings.HasPrefix(got, "Ok. dato"), ShouldBeTrue)
			})
		})

		Convey("When the first line is short and the whole text fits", func() {
			chunks := []model.ScoredChunk{chunk("Sí. Ganó dos títulos seguidos")}
			So(answer.Synthesize(chunks), ShouldEqual, "Sí. Ganó dos títulos seguidos")
		})

		Convey("When the top chunk is blank but a later one has text", func() {
			chunks := []model.ScoredChunk{
				chunk("   "),
				chunk("El estadio fue renovado en 2019."),
			}
			So(answer.Synthesize(chunks), ShouldEqual, "El estadio fue renovado en 2019.")
		})
	})
}
