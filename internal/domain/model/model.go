// Package model contains the entities the pipeline reads from the stats
// database, plus the transient types produced while answering a question.
// All table-backed entities are owned by the external store and are
// read-only to this system.
package model

// Player is one row of the players table.
type Player struct {
	ID           int64
	Name         string
	Nationality  string
	Position     string
	JerseyNumber int
	Height       float64
	Weight       float64
	TeamID       int64
}

// Team is one row of the teams table.
type Team struct {
	ID          int64
	Name        string
	City        string
	Province    string
	FoundedYear int
	StadiumID   int64
}

// TeamProfile is one row of the information_team table. It overlaps with
// Team but is a distinct lookup source with its own fields; the two are
// deliberately not merged.
type TeamProfile struct {
	ID          int64
	Name        string
	City        string
	Province    string
	President   string
	FoundedYear int
	Stadium     string
}

// Stadium is one row of the stadiums table.
type Stadium struct {
	ID               int64
	Name             string
	City             string
	Capacity         int
	YearConstruction int
}

// Referee is one row of the referees table.
type Referee struct {
	ID          int64
	Name        string
	Nationality string
	Debut       string
}

// RefereeStats is one row of the referee_stats table.
type RefereeStats struct {
	RefereeID         int64
	Wins              int
	Draws             int
	Defeats           int
	YellowCards       int
	SecondYellowCards int
	RedCards          int
	Penalties         int
	PenaltiesAgainst  int
}

// PlayerStats carries the per-player counters the fact matcher reports.
// The stats table holds many more columns; superlative queries reach them
// by column name through the store, so only the reported ones live here.
type PlayerStats struct {
	PlayerID    int64
	Goals       int
	Assists     int
	GamesPlayed int
	YellowCards int
	RedCards    int
}

// Competition is one row of the competitions table.
type Competition struct {
	ID     int64
	Name   string
	Season string
	Type   string
	Gender string
	Active bool
}

// DocumentEmbedding is one row of the pre-embedded retrieval corpus.
// A nil or empty Embedding marks the row malformed; retrieval skips it.
type DocumentEmbedding struct {
	ID          int64
	SourceTable string
	SourceID    int64
	Content     string
	Embedding   []float64
}

// ScoredChunk is a corpus row annotated with a per-query similarity score.
// The score is transient and never persisted.
type ScoredChunk struct {
	DocumentEmbedding
	Score float64
}

// Superlative is the top row of a statistic column with its display name
// already resolved.
type Superlative struct {
	Name  string
	Value int64
}

// SourceRef points at the corpus row backing part of an answer.
type SourceRef struct {
	Table string  `json:"table"`
	ID    int64   `json:"id"`
	Score float64 `json:"score"`
}

// Response is the answer returned for a question. Sources is empty for
// every stage except semantic retrieval.
type Response struct {
	Answer  string      `json:"answer"`
	Sources []SourceRef `json:"sources"`
}
