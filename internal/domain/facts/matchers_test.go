package facts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aferrando/golbot/internal/domain/facts"
	"github.com/aferrando/golbot/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeStore serves the matcher family from in-memory slices. Point lookups
// resolve against the same slices; a missing id returns facts.ErrNotFound.
type fakeStore struct {
	competitions []model.Competition
	profiles     []model.TeamProfile
	players      []model.Player
	referees     []model.Referee
	refereeStats []model.RefereeStats
	stadiums     []model.Stadium
	teams        []model.Team
	playerStats  []model.PlayerStats

	err error
}

func (f *fakeStore) Competitions(_ context.Context) ([]model.Competition, error) {
	return f.competitions, f.err
}

func (f *fakeStore) TeamProfiles(_ context.Context) ([]model.TeamProfile, error) {
	return f.profiles, f.err
}

func (f *fakeStore) Players(_ context.Context) ([]model.Player, error) {
	return f.players, f.err
}

func (f *fakeStore) Referees(_ context.Context) ([]model.Referee, error) {
	return f.referees, f.err
}

func (f *fakeStore) RefereeStats(_ context.Context) ([]model.RefereeStats, error) {
	return f.refereeStats, f.err
}

func (f *fakeStore) Stadiums(_ context.Context) ([]model.Stadium, error) {
	return f.stadiums, f.err
}

func (f *fakeStore) Teams(_ context.Context) ([]model.Team, error) {
	return f.teams, f.err
}

func (f *fakeStore) PlayerStats(_ context.Context) ([]model.PlayerStats, error) {
	return f.playerStats, f.err
}

func (f *fakeStore) PlayerName(_ context.Context, id int64) (string, error) {
	for _, p := range f.players {
		if p.ID == id {
			return p.Name, nil
		}
	}
	return "", facts.ErrNotFound
}

func (f *fakeStore) TeamName(_ context.Context, id int64) (string, error) {
	for _, t := range f.teams {
		if t.ID == id {
			return t.Name, nil
		}
	}
	return "", facts.ErrNotFound
}

func (f *fakeStore) RefereeName(_ context.Context, id int64) (string, error) {
	for _, r := range f.referees {
		if r.ID == id {
			return r.Name, nil
		}
	}
	return "", facts.ErrNotFound
}

func (f *fakeStore) StadiumName(_ context.Context, id int64) (string, error) {
	for _, s := range f.stadiums {
		if s.ID == id {
			return s.Name, nil
		}
	}
	return "", facts.ErrNotFound
}

func (f *fakeStore) TeamNameByStadium(_ context.Context, stadiumID int64) (string, error) {
	for _, t := range f.teams {
		if t.StadiumID == stadiumID {
			return t.Name, nil
		}
	}
	return "", facts.ErrNotFound
}

func seededStore() *fakeStore {
	return &fakeStore{
		competitions: []model.Competition{
			{ID: 1, Name: "LaLiga", Season: "2025/26", Type: "liga", Gender: "masculino", Active: true},
		},
		profiles: []model.TeamProfile{
			{ID: 1, Name: "Real Betis", City: "Sevilla", Province: "Sevilla", President: "Ángel Haro", FoundedYear: 1907, Stadium: "Benito Villamarín"},
		},
		players: []model.Player{
			{ID: 1, Name: "Isco", Nationality: "España", Position: "centrocampista", JerseyNumber: 22, Height: 1.76, Weight: 74, TeamID: 1},
			{ID: 2, Name: "Vinicius", Nationality: "Brasil", Position: "delantero", JerseyNumber: 7, Height: 1.76, Weight: 73, TeamID: 2},
		},
		referees: []model.Referee{
			{ID: 1, Name: "Gil Manzano", Nationality: "España", Debut: "2014"},
		},
		refereeStats: []model.RefereeStats{
			{RefereeID: 1, Wins: 40, Draws: 20, Defeats: 30, YellowCards: 300, RedCards: 12},
		},
		stadiums: []model.Stadium{
			{ID: 1, Name: "Benito Villamarín", City: "Sevilla", Capacity: 60721, YearConstruction: 1929},
			{ID: 2, Name: "Santiago Bernabéu", City: "Madrid", Capacity: 81044, YearConstruction: 1947},
		},
		teams: []model.Team{
			{ID: 1, Name: "Real Betis", City: "Sevilla", Province: "Sevilla", FoundedYear: 1907, StadiumID: 1},
			{ID: 2, Name: "Real Madrid", City: "Madrid", Province: "Madrid", FoundedYear: 1902, StadiumID: 2},
		},
		playerStats: []model.PlayerStats{
			{PlayerID: 2, Goals: 18, Assists: 9, GamesPlayed: 33, YellowCards: 6, RedCards: 1},
		},
	}
}

// try runs the named matcher from the chain against question.
func try(store facts.Store, name, question string) (string, error) {
	for _, m := range facts.Chain(store) {
		if m.Name() == name {
			return m.Try(context.Background(), question)
		}
	}
	return "", errors.New("no such matcher: " + name)
}

func TestMatcherFamily(t *testing.T) {
	Convey("Given the matcher family over a seeded store", t, func() {
		ctx := context.Background()
		store := seededStore()

		Convey("Then the chain keeps its fixed resolution order", func() {
			var names []string
			for _, m := range facts.Chain(store) {
				names = append(names, m.Name())
			}
			So(names, ShouldResemble, []string{
				"competition", "team_profile", "player", "referee",
				"referee_stats", "stadium", "team_by_stadium",
				"player_stats", "team", "team_city",
			})
		})

		Convey("When asking about a competition", func() {
			got, err := try(store, "competition", "¿Qué sabes de LaLiga?")

			So(err, ShouldBeNil)
			So(got, ShouldEqual, "La competición LaLiga (temporada 2025/26), tipo liga, género masculino, activa: sí.")
		})

		Convey("When asking about a team profile", func() {
			got, err := try(store, "team_profile", "cuéntame del Real Betis")

			So(err, ShouldBeNil)
			So(got, ShouldEqual, "El equipo Real Betis está en Sevilla (Sevilla), presidente Ángel Haro, fundado en 1907, estadio Benito Villamarín.")
		})

		Convey("When asking about a player", func() {
			got, err := try(store, "player", "¿quién es Isco?")

			So(err, ShouldBeNil)
			So(got, ShouldEqual, "Isco juega como centrocampista, dorsal 22, nacionalidad España, altura 1.76m, peso 74kg, equipo Real Betis.")
		})

		Convey("When the player's team lookup misses", func() {
			store.players[0].TeamID = 99

			got, err := try(store, "player", "¿quién es Isco?")

			So(err, ShouldBeNil)
			So(got, ShouldEndWith, "equipo desconocido.")
		})

		Convey("When asking about a referee", func() {
			got, err := try(store, "referee", "háblame de Gil Manzano")

			So(err, ShouldBeNil)
			So(got, ShouldEqual, "Árbitro Gil Manzano, nacionalidad España, debut 2014.")
		})

		Convey("When asking for referee statistics", func() {
			got, err := try(store, "referee_stats", "estadísticas de Gil Manzano")

			So(err, ShouldBeNil)
			So(got, ShouldEqual, "Estadísticas de Gil Manzano: amarillas 300, rojas 12, victorias 40, empates 20, derrotas 30.")
		})

		Convey("When asking about a stadium", func() {
			got, err := try(store, "stadium", "¿dónde está el Benito Villamarín?")

			So(err, ShouldBeNil)
			So(got, ShouldEqual, "El estadio Benito Villamarín está en Sevilla, capacidad 60721, construido en 1929.")
		})

		Convey("When asking which team plays in a stadium", func() {
			got, err := try(store, "team_by_stadium", "¿quién juega en el Santiago Bernabéu?")

			So(err, ShouldBeNil)
			So(got, ShouldEqual, "El equipo que juega en Santiago Bernabéu es Real Madrid.")
		})

		Convey("When the stadium has no team", func() {
			store.teams = store.teams[:1]

			got, err := try(store, "team_by_stadium", "¿quién juega en el Santiago Bernabéu?")

			So(err, ShouldBeNil)
			So(got, ShouldEqual, "No se encuentra equipo asociado al estadio Santiago Bernabéu.")
		})

		Convey("When asking for player statistics", func() {
			got, err := try(store, "player_stats", "estadísticas de Vinicius esta temporada")

			So(err, ShouldBeNil)
			So(got, ShouldEqual, "Estadísticas de Vinicius: goles 18, asistencias 9, partidos 33, amarillas 6, rojas 1.")
		})

		Convey("When asking about a team", func() {
			got, err := try(store, "team", "información del Real Madrid")

			So(err, ShouldBeNil)
			So(got, ShouldEqual, "Equipo Real Madrid de Madrid (Madrid), fundado en 1902, estadio Santiago Bernabéu.")
		})

		Convey("When asking for a team's city", func() {
			got, err := try(store, "team_city", "¿en qué ciudad está el Real Betis?")

			So(err, ShouldBeNil)
			So(got, ShouldEqual, "El Real Betis está en la ciudad de Sevilla.")
		})

		Convey("When asking about a team without the city word", func() {
			got, err := try(store, "team_city", "¿dónde juega el Real Betis?")

			So(err, ShouldBeNil)
			So(got, ShouldEqual, "")
		})

		Convey("When two names overlap, the longest wins", func() {
			store.teams = append(store.teams, model.Team{
				ID: 3, Name: "Madrid", City: "Madrid", Province: "Madrid", FoundedYear: 1950, StadiumID: 2,
			})

			got, err := try(store, "team", "información del Real Madrid")

			So(err, ShouldBeNil)
			So(got, ShouldStartWith, "Equipo Real Madrid")
		})

		Convey("When no entity is named", func() {
			for _, m := range facts.Chain(store) {
				got, err := m.Try(ctx, "¿lloverá mañana?")
				So(err, ShouldBeNil)
				So(got, ShouldEqual, "")
			}
		})

		Convey("When the store fails", func() {
			store.err = errors.New("db down")

			for _, m := range facts.Chain(store) {
				_, err := m.Try(ctx, "información del Real Madrid ciudad")
				So(err, ShouldNotBeNil)
			}
		})
	})
}
