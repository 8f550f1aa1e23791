package dialogue_test

import (
	"testing"

	"github.com/aferrando/golbot/internal/domain/dialogue"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMatch(t *testing.T) {
	Convey("Given the scripted dialogue table", t, func() {
		Convey("When the question is a greeting", func() {
			So(dialogue.Match("Hola, ¿qué tal?"), ShouldEqual, "¡Hola! ¿Qué quieres consultar sobre fútbol?")
		})

		Convey("When the question carries diacritics and odd casing", func() {
			So(dialogue.Match("  ADIÓS amigo  "), ShouldEqual, "¡Hasta pronto! Disfruta del fútbol.")
		})

		Convey("When the question thanks the bot", func() {
			So(dialogue.Match("muchas gracias por todo"), ShouldEqual, "¡De nada! Encantado de ayudarte con tus consultas.")
		})

		Convey("When triggers overlap, the earlier rule wins", func() {
			// "como te llamas" sits above the generic greeting even though
			// neither shares a substring; a question carrying both phrases
			// resolves to the first.
			So(dialogue.Match("hola, como te llamas"),
				ShouldEqual, "Aún no tengo nombre, mi creador no supo que ponerme, ayudale con alguna idea chula")
		})

		Convey("When a rule requires every trigger to appear", func() {
			Convey("And both are present in either order", func() {
				got := dialogue.Match("¿hay puntuaciones del clásico en fantasy?")
				So(got, ShouldEqual, "En LALIGA Fantasy puedes vivir El Clásico con puntuaciones especiales y retos únicos.")
			})

			Convey("And only one is present, the rule stays quiet", func() {
				So(dialogue.Match("me encanta el derbi sevillano"), ShouldEqual, "")
			})
		})

		Convey("When nothing matches", func() {
			So(dialogue.Match("¿cuántos goles lleva Lewandowski?"), ShouldEqual, "")
			So(dialogue.Match(""), ShouldEqual, "")
		})

		Convey("Then the table is non-trivial", func() {
			So(dialogue.Size(), ShouldBeGreaterThan, 100)
		})
	})
}
