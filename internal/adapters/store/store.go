// Package store is the gorm-backed read adapter over the stats database.
// It satisfies every domain port: full-table scans for the fact matchers,
// point lookups for answer enrichment, top-row queries for the superlative
// resolver and the raw corpus for retrieval. The pipeline never writes.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/aferrando/golbot/internal/domain/facts"
	"github.com/aferrando/golbot/internal/domain/model"
	"github.com/aferrando/golbot/internal/domain/superlative"
	"github.com/aferrando/golbot/pkg/metrics"
)

// nameKeys maps a stats table to the foreign key and name table used to
// resolve its display name. Stadiums carry their own name.
var nameKeys = map[string]struct {
	key       string
	nameTable string
}{
	"stats":         {key: "player_id", nameTable: "players"},
	"referee_stats": {key: "referee_id", nameTable: "referees"},
}

// Store reads the stats database through gorm.
type Store struct {
	db *gorm.DB
}

// Open connects to Postgres with dsn and returns a Store over it.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return New(db), nil
}

// New wraps an existing gorm handle; tests use this with SQLite.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func scan[R any](ctx context.Context, db *gorm.DB) ([]R, error) {
	var rows []R
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		metrics.RecordStoreError()
		return nil, fmt.Errorf("scan: %w", err)
	}
	return rows, nil
}

// Competitions returns every row of the competitions table.
func (s *Store) Competitions(ctx context.Context) ([]model.Competition, error) {
	rows, err := scan[competitionRow](ctx, s.db)
	if err != nil {
		return nil, err
	}
	out := make([]model.Competition, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// TeamProfiles returns every row of the information_team table.
func (s *Store) TeamProfiles(ctx context.Context) ([]model.TeamProfile, error) {
	rows, err := scan[teamProfileRow](ctx, s.db)
	if err != nil {
		return nil, err
	}
	out := make([]model.TeamProfile, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// Players returns every row of the players table.
func (s *Store) Players(ctx context.Context) ([]model.Player, error) {
	rows, err := scan[playerRow](ctx, s.db)
	if err != nil {
		return nil, err
	}
	out := make([]model.Player, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// Referees returns every row of the referees table.
func (s *Store) Referees(ctx context.Context) ([]model.Referee, error) {
	rows, err := scan[refereeRow](ctx, s.db)
	if err != nil {
		return nil, err
	}
	out := make([]model.Referee, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// RefereeStats returns every row of the referee_stats table.
func (s *Store) RefereeStats(ctx context.Context) ([]model.RefereeStats, error) {
	rows, err := scan[refereeStatsRow](ctx, s.db)
	if err != nil {
		return nil, err
	}
	out := make([]model.RefereeStats, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// Stadiums returns every row of the stadiums table.
func (s *Store) Stadiums(ctx context.Context) ([]model.Stadium, error) {
	rows, err := scan[stadiumRow](ctx, s.db)
	if err != nil {
		return nil, err
	}
	out := make([]model.Stadium, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// Teams returns every row of the teams table.
func (s *Store) Teams(ctx context.Context) ([]model.Team, error) {
	rows, err := scan[teamRow](ctx, s.db)
	if err != nil {
		return nil, err
	}
	out := make([]model.Team, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// PlayerStats returns every row of the stats table.
func (s *Store) PlayerStats(ctx context.Context) ([]model.PlayerStats, error) {
	rows, err := scan[playerStatsRow](ctx, s.db)
	if err != nil {
		return nil, err
	}
	out := make([]model.PlayerStats, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// DocumentEmbeddings returns the whole retrieval corpus.
func (s *Store) DocumentEmbeddings(ctx context.Context) ([]model.DocumentEmbedding, error) {
	rows, err := scan[documentEmbeddingRow](ctx, s.db)
	if err != nil {
		return nil, err
	}
	out := make([]model.DocumentEmbedding, len(rows))
	for i, r := range rows {
		out[i] = r.toModel()
	}
	return out, nil
}

// PlayerName resolves a player's display name by id.
func (s *Store) PlayerName(ctx context.Context, id int64) (string, error) {
	return s.nameByID(ctx, "players", id)
}

// TeamName resolves a team's display name by id.
func (s *Store) TeamName(ctx context.Context, id int64) (string, error) {
	return s.nameByID(ctx, "teams", id)
}

// RefereeName resolves a referee's display name by id.
func (s *Store) RefereeName(ctx context.Context, id int64) (string, error) {
	return s.nameByID(ctx, "referees", id)
}

// StadiumName resolves a stadium's display name by id.
func (s *Store) StadiumName(ctx context.Context, id int64) (string, error) {
	return s.nameByID(ctx, "stadiums", id)
}

// TeamNameByStadium resolves the team playing in the given stadium.
func (s *Store) TeamNameByStadium(ctx context.Context, stadiumID int64) (string, error) {
	var row teamRow
	err := s.db.WithContext(ctx).Where("stadium_id = ?", stadiumID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", facts.ErrNotFound
	}
	if err != nil {
		metrics.RecordStoreError()
		return "", fmt.Errorf("team by stadium %d: %w", stadiumID, err)
	}
	return row.Name, nil
}

func (s *Store) nameByID(ctx context.Context, table string, id int64) (string, error) {
	var name string
	res := s.db.WithContext(ctx).Table(table).Select("name").Where("id = ?", id).Limit(1).Scan(&name)
	if res.Error != nil {
		metrics.RecordStoreError()
		return "", fmt.Errorf("name from %s id %d: %w", table, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return "", facts.ErrNotFound
	}
	return name, nil
}

// Top returns the highest-valued row of table ordered by column, with its
// display name resolved through the table's name key. The table and column
// always come from the compiled-in superlative vocabulary.
func (s *Store) Top(ctx context.Context, table, column string) (model.Superlative, error) {
	keys, joined := nameKeys[table]
	sel := column + ", name"
	if joined {
		sel = column + ", " + keys.key
	}

	var rows []map[string]any
	err := s.db.WithContext(ctx).
		Table(table).
		Select(sel).
		Order(column + " DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		metrics.RecordStoreError()
		return model.Superlative{}, fmt.Errorf("top of %s.%s: %w", table, column, err)
	}
	if len(rows) == 0 {
		return model.Superlative{}, superlative.ErrNoRows
	}
	row := rows[0]

	top := model.Superlative{Value: asInt64(row[column])}
	if !joined {
		top.Name, _ = row["name"].(string)
		return top, nil
	}

	name, err := s.nameByID(ctx, keys.nameTable, asInt64(row[keys.key]))
	if errors.Is(err, facts.ErrNotFound) {
		top.Name = "desconocido"
		return top, nil
	}
	if err != nil {
		return model.Superlative{}, err
	}
	top.Name = name
	return top, nil
}

// asInt64 flattens the numeric types drivers hand back for map scans.
func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case []byte:
		var out int64
		_, _ = fmt.Sscan(string(n), &out)
		return out
	default:
		return 0
	}
}
