package facts

import (
	"context"
	"fmt"
	"strings"

	"github.com/aferrando/golbot/internal/domain/model"
	"github.com/aferrando/golbot/internal/domain/text"
)

type competitionMatcher struct {
	store Store
}

func (m *competitionMatcher) Name() string { return "competition" }

func (m *competitionMatcher) Try(ctx context.Context, question string) (string, error) {
	q := text.Normalize(question)
	comps, err := m.store.Competitions(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch competitions: %w", err)
	}
	comp, ok := bestMatch(q, comps, func(c model.Competition) string { return c.Name })
	if !ok {
		return "", nil
	}
	active := "no"
	if comp.Active {
		active = "sí"
	}
	return fmt.Sprintf("La competición %s (temporada %s), tipo %s, género %s, activa: %s.",
		comp.Name, comp.Season, comp.Type, comp.Gender, active), nil
}

type teamProfileMatcher struct {
	store Store
}

func (m *teamProfileMatcher) Name() string { return "team_profile" }

func (m *teamProfileMatcher) Try(ctx context.Context, question string) (string, error) {
	q := text.Normalize(question)
	teams, err := m.store.TeamProfiles(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch team profiles: %w", err)
	}
	team, ok := bestMatch(q, teams, func(t model.TeamProfile) string { return t.Name })
	if !ok {
		return "", nil
	}
	return fmt.Sprintf("El equipo %s está en %s (%s), presidente %s, fundado en %d, estadio %s.",
		team.Name, team.City, team.Province, team.President, team.FoundedYear, team.Stadium), nil
}

type playerMatcher struct {
	store Store
}

func (m *playerMatcher) Name() string { return "player" }

func (m *playerMatcher) Try(ctx context.Context, question string) (string, error) {
	q := text.Normalize(question)
	players, err := m.store.Players(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch players: %w", err)
	}
	player, ok := bestMatch(q, players, func(p model.Player) string { return p.Name })
	if !ok {
		return "", nil
	}
	teamName, err := m.store.TeamName(ctx, player.TeamID)
	team := lookupName(err, teamName)
	return fmt.Sprintf("%s juega como %s, dorsal %d, nacionalidad %s, altura %.2fm, peso %.0fkg, equipo %s.",
		player.Name, player.Position, player.JerseyNumber, player.Nationality, player.Height, player.Weight, team), nil
}

type refereeMatcher struct {
	store Store
}

func (m *refereeMatcher) Name() string { return "referee" }

func (m *refereeMatcher) Try(ctx context.Context, question string) (string, error) {
	q := text.Normalize(question)
	referees, err := m.store.Referees(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch referees: %w", err)
	}
	ref, ok := bestMatch(q, referees, func(r model.Referee) string { return r.Name })
	if !ok {
		return "", nil
	}
	return fmt.Sprintf("Árbitro %s, nacionalidad %s, debut %s.", ref.Name, ref.Nationality, ref.Debut), nil
}

type refereeStatsMatcher struct {
	store Store
}

func (m *refereeStatsMatcher) Name() string { return "referee_stats" }

func (m *refereeStatsMatcher) Try(ctx context.Context, question string) (string, error) {
	q := text.Normalize(question)
	stats, err := m.store.RefereeStats(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch referee stats: %w", err)
	}

	// The stats table carries no names, so every row needs a point lookup
	// before it can be matched against the question.
	type named struct {
		stat model.RefereeStats
		name string
	}
	rows := make([]named, 0, len(stats))
	for _, st := range stats {
		name, err := m.store.RefereeName(ctx, st.RefereeID)
		if err != nil || strings.TrimSpace(name) == "" {
			continue
		}
		rows = append(rows, named{stat: st, name: name})
	}
	row, ok := bestMatch(q, rows, func(n named) string { return n.name })
	if !ok {
		return "", nil
	}
	return fmt.Sprintf("Estadísticas de %s: amarillas %d, rojas %d, victorias %d, empates %d, derrotas %d.",
		row.name, row.stat.YellowCards, row.stat.RedCards, row.stat.Wins, row.stat.Draws, row.stat.Defeats), nil
}

type stadiumMatcher struct {
	store Store
}

func (m *stadiumMatcher) Name() string { return "stadium" }

func (m *stadiumMatcher) Try(ctx context.Context, question string) (string, error) {
	q := text.Normalize(question)
	stadiums, err := m.store.Stadiums(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch stadiums: %w", err)
	}
	st, ok := bestMatch(q, stadiums, func(s model.Stadium) string { return s.Name })
	if !ok {
		return "", nil
	}
	return fmt.Sprintf("El estadio %s está en %s, capacidad %d, construido en %d.",
		st.Name, st.City, st.Capacity, st.YearConstruction), nil
}

type teamByStadiumMatcher struct {
	store Store
}

func (m *teamByStadiumMatcher) Name() string { return "team_by_stadium" }

func (m *teamByStadiumMatcher) Try(ctx context.Context, question string) (string, error) {
	q := text.Normalize(question)
	stadiums, err := m.store.Stadiums(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch stadiums: %w", err)
	}
	st, ok := bestMatch(q, stadiums, func(s model.Stadium) string { return s.Name })
	if !ok {
		return "", nil
	}
	team, err := m.store.TeamNameByStadium(ctx, st.ID)
	if err != nil || strings.TrimSpace(team) == "" {
		return fmt.Sprintf("No se encuentra equipo asociado al estadio %s.", st.Name), nil
	}
	return fmt.Sprintf("El equipo que juega en %s es %s.", st.Name, team), nil
}

type playerStatsMatcher struct {
	store Store
}

func (m *playerStatsMatcher) Name() string { return "player_stats" }

func (m *playerStatsMatcher) Try(ctx context.Context, question string) (string, error) {
	q := text.Normalize(question)
	stats, err := m.store.PlayerStats(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch player stats: %w", err)
	}
	type named struct {
		stat model.PlayerStats
		name string
	}
	rows := make([]named, 0, len(stats))
	for _, st := range stats {
		name, err := m.store.PlayerName(ctx, st.PlayerID)
		if err != nil || strings.TrimSpace(name) == "" {
			continue
		}
		rows = append(rows, named{stat: st, name: name})
	}
	row, ok := bestMatch(q, rows, func(n named) string { return n.name })
	if !ok {
		return "", nil
	}
	return fmt.Sprintf("Estadísticas de %s: goles %d, asistencias %d, partidos %d, amarillas %d, rojas %d.",
		row.name, row.stat.Goals, row.stat.Assists, row.stat.GamesPlayed, row.stat.YellowCards, row.stat.RedCards), nil
}

type teamMatcher struct {
	store Store
}

func (m *teamMatcher) Name() string { return "team" }

func (m *teamMatcher) Try(ctx context.Context, question string) (string, error) {
	q := text.Normalize(question)
	teams, err := m.store.Teams(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch teams: %w", err)
	}
	team, ok := bestMatch(q, teams, func(t model.Team) string { return t.Name })
	if !ok {
		return "", nil
	}
	stadiumName, err := m.store.StadiumName(ctx, team.StadiumID)
	stadium := lookupName(err, stadiumName)
	return fmt.Sprintf("Equipo %s de %s (%s), fundado en %d, estadio %s.",
		team.Name, team.City, team.Province, team.FoundedYear, stadium), nil
}

type teamCityMatcher struct {
	store Store
}

func (m *teamCityMatcher) Name() string { return "team_city" }

func (m *teamCityMatcher) Try(ctx context.Context, question string) (string, error) {
	q := text.Normalize(question)
	if !strings.Contains(q, "ciudad") {
		return "", nil
	}
	teams, err := m.store.Teams(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch teams: %w", err)
	}
	team, ok := bestMatch(q, teams, func(t model.Team) string { return t.Name })
	if !ok {
		return "", nil
	}
	return fmt.Sprintf("El %s está en la ciudad de %s.", team.Name, team.City), nil
}
