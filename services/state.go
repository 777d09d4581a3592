package services

import (
	"encoding/json"

	"github.com/dron3flyv3r/tennis-tournament/models"
)

// tournamentState is the config/players/matches/warnings tuple persisted
// verbatim on the Tournament row. The engine operates on the decoded form;
// the blobs themselves are opaque to the database.
type tournamentState struct {
	Config   models.TournamentConfig `json:"config"`
	Players  []*models.Player        `json:"players"`
	Matches  []*models.Match         `json:"matches"`
	Warnings []string                `json:"warnings"`
}

func encodeState(t *models.Tournament, st *tournamentState) error {
	configJSON, err := json.Marshal(st.Config)
	if err != nil {
		return err
	}
	playersJSON, err := json.Marshal(st.Players)
	if err != nil {
		return err
	}
	matchesJSON, err := json.Marshal(st.Matches)
	if err != nil {
		return err
	}
	warningsJSON, err := json.Marshal(st.Warnings)
	if err != nil {
		return err
	}
	t.ConfigJSON = string(configJSON)
	t.PlayersJSON = string(playersJSON)
	t.MatchesJSON = string(matchesJSON)
	t.WarningsJSON = string(warningsJSON)
	return nil
}

// decodeState rebuilds the in-memory tuple from the stored blobs and re-links
// match teams to the canonical roster entries, restoring the shared-pointer
// ownership the JSON round trip breaks.
func decodeState(t *models.Tournament) (*tournamentState, error) {
	st := &tournamentState{}
	if t.ConfigJSON != "" {
		if err := json.Unmarshal([]byte(t.ConfigJSON), &st.Config); err != nil {
			return nil, err
		}
	}
	if t.PlayersJSON != "" {
		if err := json.Unmarshal([]byte(t.PlayersJSON), &st.Players); err != nil {
			return nil, err
		}
	}
	if t.MatchesJSON != "" {
		if err := json.Unmarshal([]byte(t.MatchesJSON), &st.Matches); err != nil {
			return nil, err
		}
	}
	if t.WarningsJSON != "" {
		if err := json.Unmarshal([]byte(t.WarningsJSON), &st.Warnings); err != nil {
			return nil, err
		}
	}
	RelinkPlayers(st.Matches, st.Players)
	return st, nil
}

// RelinkPlayers replaces every team member with the roster entry carrying the
// same id, so a roster edit shows up in every match referencing the player.
// Members whose id no longer exists on the roster keep their decoded snapshot.
func RelinkPlayers(matches []*models.Match, players []*models.Player) {
	byID := make(map[string]*models.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	for _, m := range matches {
		for i, p := range m.Team1 {
			if canonical, ok := byID[p.ID]; ok {
				m.Team1[i] = canonical
			}
		}
		for i, p := range m.Team2 {
			if canonical, ok := byID[p.ID]; ok {
				m.Team2[i] = canonical
			}
		}
	}
}

func findMatch(st *tournamentState, matchID string) *models.Match {
	for _, m := range st.Matches {
		if m.ID == matchID {
			return m
		}
	}
	return nil
}
