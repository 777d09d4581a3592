package models

// Match is one meeting between two teams. The generator creates it
// unscheduled (empty court and time), the assigner fills in court/time, and
// score entry mutates it in place. Matches are never deleted automatically.
type Match struct {
	ID        string      `json:"id"`
	Court     string      `json:"court"`
	Time      string      `json:"time"` // HH:MM, empty until assigned
	Team1     []*Player   `json:"team1"`
	Team2     []*Player   `json:"team2"`
	Score     *MatchScore `json:"score,omitempty"`
	Completed bool        `json:"completed"`
}

// MatchScore holds the result of a match. In sets mode Team1Score/Team2Score
// are sets won (derived from Sets); in simple mode they are the raw entered
// numbers and Sets stays empty.
type MatchScore struct {
	Team1Score int        `json:"team1_score"`
	Team2Score int        `json:"team2_score"`
	Sets       []SetScore `json:"sets,omitempty"`
}

// SetScore is the games tally of a single set.
type SetScore struct {
	Team1Games int `json:"team1_games"`
	Team2Games int `json:"team2_games"`
}

// PlayerIDs returns the ids of every player on either side, team 1 first.
func (m *Match) PlayerIDs() []string {
	ids := make([]string, 0, len(m.Team1)+len(m.Team2))
	for _, p := range m.Team1 {
		ids = append(ids, p.ID)
	}
	for _, p := range m.Team2 {
		ids = append(ids, p.ID)
	}
	return ids
}
