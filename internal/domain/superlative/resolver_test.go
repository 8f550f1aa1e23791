package superlative_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aferrando/golbot/internal/domain/model"
	"github.com/aferrando/golbot/internal/domain/superlative"
	. "github.com/smartystreets/goconvey/convey"
)

type stubStore struct {
	gotTable  string
	gotColumn string
	top       model.Superlative
	err       error
}

func (s *stubStore) Top(_ context.Context, table, column string) (model.Superlative, error) {
	s.gotTable = table
	s.gotColumn = column
	return s.top, s.err
}

func TestResolve(t *testing.T) {
	Convey("Given a superlative resolver over a stub store", t, func() {
		ctx := context.Background()
		store := &stubStore{top: model.Superlative{Name: "Lewandowski", Value: 27}}
		resolver := superlative.NewResolver(store)

		Convey("When asking who has the most goals", func() {
			got, err := resolver.Resolve(ctx, "¿Quién tiene más goles?")

			So(err, ShouldBeNil)
			So(got, ShouldEqual, "El jugador con más goles es Lewandowski, con 27 goles.")
			So(store.gotTable, ShouldEqual, "stats")
			So(store.gotColumn, ShouldEqual, "goals")
		})

		Convey("When the phrase names a referee statistic", func() {
			store.top = model.Superlative{Name: "Gil Manzano", Value: 112}

			got, err := resolver.Resolve(ctx, "¿Qué árbitro ha mostrado más tarjetas amarillas árbitro?")

			Convey("Then the referee table wins over the player one", func() {
				So(err, ShouldBeNil)
				So(store.gotTable, ShouldEqual, "referee_stats")
				So(store.gotColumn, ShouldEqual, "yellow_cards")
				So(got, ShouldEqual, "El árbitro con más tarjetas amarillas mostradas es Gil Manzano, con 112 tarjetas amarillas mostradas.")
			})
		})

		Convey("When the phrase is a qualified penalty statistic", func() {
			got, err := resolver.Resolve(ctx, "¿Quién ha fallado más penaltis fallados?")

			So(err, ShouldBeNil)
			So(store.gotColumn, ShouldEqual, "penalties_missed")
			So(got, ShouldContainSubstring, "penaltis fallados")
		})

		Convey("When the phrase targets stadiums", func() {
			store.top = model.Superlative{Name: "Camp Nou", Value: 99354}

			got, err := resolver.Resolve(ctx, "¿Cuál es la mayor capacidad estadio?")

			So(err, ShouldBeNil)
			So(store.gotTable, ShouldEqual, "stadiums")
			So(store.gotColumn, ShouldEqual, "capacity")
			So(got, ShouldStartWith, "El estadio con más capacidad del estadio es Camp Nou")
		})

		Convey("When no vocabulary phrase appears", func() {
			got, err := resolver.Resolve(ctx, "háblame del Real Madrid")

			So(err, ShouldBeNil)
			So(got, ShouldEqual, "")
			So(store.gotTable, ShouldEqual, "")
		})

		Convey("When the table holds no rows", func() {
			store.err = superlative.ErrNoRows

			got, err := resolver.Resolve(ctx, "¿Quién tiene más asistencias?")

			So(err, ShouldBeNil)
			So(got, ShouldEqual, "No se encuentra información sobre asistencias.")
		})

		Convey("When the store fails", func() {
			store.err = errors.New("connection refused")

			got, err := resolver.Resolve(ctx, "¿Quién tiene más goles?")

			So(err, ShouldNotBeNil)
			So(got, ShouldEqual, "")
		})
	})
}
