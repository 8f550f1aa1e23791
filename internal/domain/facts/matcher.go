// Package facts answers questions that name a concrete entity (a player, a
// team, a referee, a stadium, a competition) by scanning the relevant table
// for a name contained in the question and formatting its fields.
package facts

import (
	"context"
	"errors"
	"strings"

	"github.com/aferrando/golbot/internal/domain/model"
	"github.com/aferrando/golbot/internal/domain/text"
)

// unknown is the display name used when an enrichment lookup finds nothing.
const unknown = "desconocido"

// ErrNotFound is returned by stores for point lookups with no row.
var ErrNotFound = errors.New("entity not found")

// Store bundles the read operations the matcher family needs. Matching is
// client-side against full table scans; the point lookups enrich an answer
// after a name has matched.
type Store interface {
	Competitions(ctx context.Context) ([]model.Competition, error)
	TeamProfiles(ctx context.Context) ([]model.TeamProfile, error)
	Players(ctx context.Context) ([]model.Player, error)
	Referees(ctx context.Context) ([]model.Referee, error)
	RefereeStats(ctx context.Context) ([]model.RefereeStats, error)
	Stadiums(ctx context.Context) ([]model.Stadium, error)
	Teams(ctx context.Context) ([]model.Team, error)
	PlayerStats(ctx context.Context) ([]model.PlayerStats, error)

	PlayerName(ctx context.Context, id int64) (string, error)
	TeamName(ctx context.Context, id int64) (string, error)
	RefereeName(ctx context.Context, id int64) (string, error)
	StadiumName(ctx context.Context, id int64) (string, error)
	TeamNameByStadium(ctx context.Context, stadiumID int64) (string, error)
}

// Matcher is one entity lookup strategy. Try returns the formatted answer,
// or "" when no entity in its table is named by the question. A non-nil
// error means the attempt could not run at all; the caller decides whether
// that degrades to no-match.
type Matcher interface {
	Name() string
	Try(ctx context.Context, question string) (string, error)
}

// Chain returns the matcher family in its fixed resolution order.
func Chain(store Store) []Matcher {
	return []Matcher{
		&competitionMatcher{store: store},
		&teamProfileMatcher{store: store},
		&playerMatcher{store: store},
		&refereeMatcher{store: store},
		&refereeStatsMatcher{store: store},
		&stadiumMatcher{store: store},
		&teamByStadiumMatcher{store: store},
		&playerStatsMatcher{store: store},
		&teamMatcher{store: store},
		&teamCityMatcher{store: store},
	}
}

// bestMatch returns the item whose normalized name is the longest substring
// of the normalized question. Longest wins so "real madrid" beats "madrid"
// when both tables rows match; ties keep the first row, which mirrors the
// store's iteration order.
func bestMatch[T any](q string, items []T, name func(T) string) (T, bool) {
	var best T
	bestLen := -1
	for _, it := range items {
		n := text.Normalize(name(it))
		if n == "" || !strings.Contains(q, n) {
			continue
		}
		if len(n) > bestLen {
			best = it
			bestLen = len(n)
		}
	}
	return best, bestLen >= 0
}

// lookupName resolves an enrichment name, degrading a missing row to the
// fixed unknown label instead of failing the whole match.
func lookupName(err error, name string) string {
	if err != nil || strings.TrimSpace(name) == "" {
		return unknown
	}
	return name
}
