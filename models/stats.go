package models

// PlayerStats is derived from completed matches and recomputed from scratch
// on every report request. SetsWon/SetsLost accumulate team scores generically
// ("points" in simple scoring mode); GamesWon/GamesLost only accumulate when
// per-set game data exists.
type PlayerStats struct {
	Player        *Player `json:"player"`
	MatchesPlayed int     `json:"matches_played"`
	MatchesWon    int     `json:"matches_won"`
	MatchesLost   int     `json:"matches_lost"`
	SetsWon       int     `json:"sets_won"`
	SetsLost      int     `json:"sets_lost"`
	GamesWon      int     `json:"games_won"`
	GamesLost     int     `json:"games_lost"`
	WinRate       float64 `json:"win_rate"` // percent, 0 when MatchesPlayed is 0
}

// FunStats are the report highlights. Each is nil until a completed match
// qualifies a player (or match) for it.
type FunStats struct {
	MostWins        *PlayerStats `json:"most_wins"`
	HighestWinRate  *PlayerStats `json:"highest_win_rate"`
	MostGamesPlayed *PlayerStats `json:"most_games_played"`
	BiggestWin      *Match       `json:"biggest_win"`
}

// TournamentReport is the composed leaderboard plus highlights.
type TournamentReport struct {
	TournamentName   string         `json:"tournament_name"`
	TotalMatches     int            `json:"total_matches"`
	CompletedMatches int            `json:"completed_matches"`
	PlayerStats      []*PlayerStats `json:"player_stats"` // ranked by matches won, descending
	FunStats         FunStats       `json:"fun_stats"`
}
