package store

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/aferrando/golbot/internal/domain/model"
)

// Row types mirror the database tables. They stay private to the adapter;
// everything leaves this package as a domain model value.

type playerRow struct {
	ID           int64   `gorm:"column:id;primaryKey"`
	Name         string  `gorm:"column:name"`
	Nationality  string  `gorm:"column:nationality"`
	Position     string  `gorm:"column:position"`
	JerseyNumber int     `gorm:"column:jersey_number"`
	Height       float64 `gorm:"column:height"`
	Weight       float64 `gorm:"column:weight"`
	TeamID       int64   `gorm:"column:team_id"`
}

func (playerRow) TableName() string { return "players" }

func (r playerRow) toModel() model.Player {
	return model.Player{
		ID:           r.ID,
		Name:         r.Name,
		Nationality:  r.Nationality,
		Position:     r.Position,
		JerseyNumber: r.JerseyNumber,
		Height:       r.Height,
		Weight:       r.Weight,
		TeamID:       r.TeamID,
	}
}

type teamRow struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name"`
	City        string `gorm:"column:city"`
	Province    string `gorm:"column:province"`
	FoundedYear int    `gorm:"column:founded_year"`
	StadiumID   int64  `gorm:"column:stadium_id"`
}

func (teamRow) TableName() string { return "teams" }

func (r teamRow) toModel() model.Team {
	return model.Team{
		ID:          r.ID,
		Name:        r.Name,
		City:        r.City,
		Province:    r.Province,
		FoundedYear: r.FoundedYear,
		StadiumID:   r.StadiumID,
	}
}

type teamProfileRow struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name"`
	City        string `gorm:"column:city"`
	Province    string `gorm:"column:province"`
	President   string `gorm:"column:president"`
	FoundedYear int    `gorm:"column:founded_year"`
	Stadium     string `gorm:"column:stadium"`
}

func (teamProfileRow) TableName() string { return "information_team" }

func (r teamProfileRow) toModel() model.TeamProfile {
	return model.TeamProfile{
		ID:          r.ID,
		Name:        r.Name,
		City:        r.City,
		Province:    r.Province,
		President:   r.President,
		FoundedYear: r.FoundedYear,
		Stadium:     r.Stadium,
	}
}

type stadiumRow struct {
	ID               int64  `gorm:"column:id;primaryKey"`
	Name             string `gorm:"column:name"`
	City             string `gorm:"column:city"`
	Capacity         int    `gorm:"column:capacity"`
	YearConstruction int    `gorm:"column:year_construction"`
}

func (stadiumRow) TableName() string { return "stadiums" }

func (r stadiumRow) toModel() model.Stadium {
	return model.Stadium{
		ID:               r.ID,
		Name:             r.Name,
		City:             r.City,
		Capacity:         r.Capacity,
		YearConstruction: r.YearConstruction,
	}
}

type refereeRow struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name"`
	Nationality string `gorm:"column:nationality"`
	Debut       string `gorm:"column:debut"`
}

func (refereeRow) TableName() string { return "referees" }

func (r refereeRow) toModel() model.Referee {
	return model.Referee{ID: r.ID, Name: r.Name, Nationality: r.Nationality, Debut: r.Debut}
}

type refereeStatsRow struct {
	RefereeID         int64 `gorm:"column:referee_id"`
	Wins              int   `gorm:"column:wins"`
	Draws             int   `gorm:"column:draws"`
	Defeats           int   `gorm:"column:defeats"`
	YellowCards       int   `gorm:"column:yellow_cards"`
	SecondYellowCards int   `gorm:"column:second_yellow_cards"`
	RedCards          int   `gorm:"column:red_cards"`
	Penalties         int   `gorm:"column:penalties"`
	PenaltiesAgainst  int   `gorm:"column:penalties_against"`
}

func (refereeStatsRow) TableName() string { return "referee_stats" }

func (r refereeStatsRow) toModel() model.RefereeStats {
	return model.RefereeStats{
		RefereeID:         r.RefereeID,
		Wins:              r.Wins,
		Draws:             r.Draws,
		Defeats:           r.Defeats,
		YellowCards:       r.YellowCards,
		SecondYellowCards: r.SecondYellowCards,
		RedCards:          r.RedCards,
		Penalties:         r.Penalties,
		PenaltiesAgainst:  r.PenaltiesAgainst,
	}
}

type playerStatsRow struct {
	PlayerID    int64 `gorm:"column:player_id"`
	Goals       int   `gorm:"column:goals"`
	Assists     int   `gorm:"column:assists"`
	GamesPlayed int   `gorm:"column:games_played"`
	YellowCards int   `gorm:"column:yellow_card"`
	RedCards    int   `gorm:"column:red_card"`
}

func (playerStatsRow) TableName() string { return "stats" }

func (r playerStatsRow) toModel() model.PlayerStats {
	return model.PlayerStats{
		PlayerID:    r.PlayerID,
		Goals:       r.Goals,
		Assists:     r.Assists,
		GamesPlayed: r.GamesPlayed,
		YellowCards: r.YellowCards,
		RedCards:    r.RedCards,
	}
}

type competitionRow struct {
	ID     int64  `gorm:"column:id;primaryKey"`
	Name   string `gorm:"column:name"`
	Season string `gorm:"column:season"`
	Type   string `gorm:"column:type"`
	Gender string `gorm:"column:gender"`
	Active bool   `gorm:"column:active"`
}

func (competitionRow) TableName() string { return "competitions" }

func (r competitionRow) toModel() model.Competition {
	return model.Competition{
		ID:     r.ID,
		Name:   r.Name,
		Season: r.Season,
		Type:   r.Type,
		Gender: r.Gender,
		Active: r.Active,
	}
}

type documentEmbeddingRow struct {
	ID          int64          `gorm:"column:id;primaryKey"`
	SourceTable string         `gorm:"column:source_table"`
	SourceID    int64          `gorm:"column:source_id"`
	Content     string         `gorm:"column:content"`
	Embedding   datatypes.JSON `gorm:"column:embedding"`
}

func (documentEmbeddingRow) TableName() string { return "document_embeddings" }

// toModel decodes the JSON vector. On decode failure the vector is left
// nil, which marks the row malformed; the retrieval engine skips it.
func (r documentEmbeddingRow) toModel() model.DocumentEmbedding {
	var vec []float64
	if len(r.Embedding) > 0 {
		if err := json.Unmarshal(r.Embedding, &vec); err != nil {
			vec = nil
		}
	}
	return model.DocumentEmbedding{
		ID:          r.ID,
		SourceTable: r.SourceTable,
		SourceID:    r.SourceID,
		Content:     r.Content,
		Embedding:   vec,
	}
}
