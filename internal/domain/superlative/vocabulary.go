package superlative

// Tables the vocabulary can target.
const (
	tableStats        = "stats"
	tableRefereeStats = "referee_stats"
	tableStadiums     = "stadiums"
)

// Subject words for the answer sentence, per target table.
const (
	subjectPlayer  = "jugador"
	subjectReferee = "árbitro"
	subjectStadium = "estadio"
)

// Rule maps a statistic phrase to the table and column holding it. Phrase
// is stored pre-normalized (lowercase, no diacritics); Label is the display
// form used in the answer.
type Rule struct {
	Phrase  string
	Table   string
	Column  string
	Label   string
	Subject string
}

// vocabulary is scanned in order and the first phrase contained in the
// question wins, so qualified phrases must stay above the bare ones they
// contain: every "... arbitro" entry precedes its player counterpart, and
// the qualified "penaltis ..." entries precede plain "penaltis". Keep that
// ordering when adding entries.
var vocabulary = []Rule{
	// Árbitros (referee_stats)
	{Phrase: "victorias arbitro", Table: tableRefereeStats, Column: "wins", Label: "victorias arbitradas", Subject: subjectReferee},
	{Phrase: "empates arbitro", Table: tableRefereeStats, Column: "draws", Label: "empates arbitrados", Subject: subjectReferee},
	{Phrase: "derrotas arbitro", Table: tableRefereeStats, Column: "defeats", Label: "derrotas arbitradas", Subject: subjectReferee},
	{Phrase: "tarjetas amarillas arbitro", Table: tableRefereeStats, Column: "yellow_cards", Label: "tarjetas amarillas mostradas", Subject: subjectReferee},
	{Phrase: "segundas amarillas arbitro", Table: tableRefereeStats, Column: "second_yellow_cards", Label: "segundas amarillas mostradas", Subject: subjectReferee},
	{Phrase: "tarjetas rojas arbitro", Table: tableRefereeStats, Column: "red_cards", Label: "tarjetas rojas mostradas", Subject: subjectReferee},
	{Phrase: "penaltis en contra arbitro", Table: tableRefereeStats, Column: "penalties_against", Label: "penaltis en contra señalados", Subject: subjectReferee},
	{Phrase: "penaltis arbitro", Table: tableRefereeStats, Column: "penalties", Label: "penaltis señalados", Subject: subjectReferee},

	// Estadios (stadiums)
	{Phrase: "capacidad estadio", Table: tableStadiums, Column: "capacity", Label: "capacidad del estadio", Subject: subjectStadium},
	{Phrase: "ano construccion estadio", Table: tableStadiums, Column: "year_construction", Label: "año de construcción del estadio", Subject: subjectStadium},

	// Jugadores (stats); qualified penalty phrases above the plain one.
	{Phrase: "penaltis fallados", Table: tableStats, Column: "penalties_missed", Label: "penaltis fallados", Subject: subjectPlayer},
	{Phrase: "penaltis parados", Table: tableStats, Column: "penalties_saved", Label: "penaltis parados", Subject: subjectPlayer},
	{Phrase: "penaltis cometidos", Table: tableStats, Column: "penalties_commited", Label: "penaltis cometidos", Subject: subjectPlayer},
	{Phrase: "penaltis sufridos", Table: tableStats, Column: "penalties_suffered", Label: "penaltis sufridos", Subject: subjectPlayer},
	{Phrase: "penaltis", Table: tableStats, Column: "penalties", Label: "penaltis", Subject: subjectPlayer},
	{Phrase: "partidos", Table: tableStats, Column: "games_played", Label: "partidos jugados", Subject: subjectPlayer},
	{Phrase: "goles", Table: tableStats, Column: "goals", Label: "goles", Subject: subjectPlayer},
	{Phrase: "asistencias", Table: tableStats, Column: "assists", Label: "asistencias", Subject: subjectPlayer},
	{Phrase: "segundas amarillas", Table: tableStats, Column: "second_yellow_card", Label: "segundas tarjetas amarillas", Subject: subjectPlayer},
	{Phrase: "tarjetas amarillas", Table: tableStats, Column: "yellow_card", Label: "tarjetas amarillas", Subject: subjectPlayer},
	{Phrase: "tarjetas rojas", Table: tableStats, Column: "red_card", Label: "tarjetas rojas", Subject: subjectPlayer},
	{Phrase: "minutos", Table: tableStats, Column: "minutes_played", Label: "minutos jugados", Subject: subjectPlayer},
	{Phrase: "porterias a cero", Table: tableStats, Column: "clean_sheet", Label: "porterías a cero", Subject: subjectPlayer},
	{Phrase: "paradas", Table: tableStats, Column: "saves", Label: "paradas", Subject: subjectPlayer},
	{Phrase: "faltas cometidas", Table: tableStats, Column: "fouls_commited", Label: "faltas cometidas", Subject: subjectPlayer},
	{Phrase: "faltas recibidas", Table: tableStats, Column: "fouls_suffered", Label: "faltas recibidas", Subject: subjectPlayer},
	{Phrase: "fuera de juego", Table: tableStats, Column: "offsides", Label: "fueras de juego", Subject: subjectPlayer},
	{Phrase: "tiros bloqueados", Table: tableStats, Column: "blocked_shots", Label: "tiros bloqueados", Subject: subjectPlayer},
	{Phrase: "tiros", Table: tableStats, Column: "shots", Label: "tiros", Subject: subjectPlayer},
	{Phrase: "pases", Table: tableStats, Column: "passes", Label: "pases", Subject: subjectPlayer},
	{Phrase: "balones largos", Table: tableStats, Column: "long_balls", Label: "balones largos", Subject: subjectPlayer},
	{Phrase: "duelos", Table: tableStats, Column: "duels", Label: "duelos", Subject: subjectPlayer},
	{Phrase: "intercepciones", Table: tableStats, Column: "interceptions", Label: "intercepciones", Subject: subjectPlayer},
	{Phrase: "ultimo hombre", Table: tableStats, Column: "last_man", Label: "último hombre", Subject: subjectPlayer},
	{Phrase: "entradas", Table: tableStats, Column: "tackles", Label: "entradas", Subject: subjectPlayer},
	{Phrase: "recuperaciones", Table: tableStats, Column: "recoveries", Label: "recuperaciones", Subject: subjectPlayer},
	{Phrase: "despejes", Table: tableStats, Column: "clearances", Label: "despejes", Subject: subjectPlayer},
}
