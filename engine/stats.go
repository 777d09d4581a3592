package engine

import (
	"github.com/dron3flyv3r/tennis-tournament/models"
)

// CalculatePlayerStats walks the completed matches and tallies per-player
// counts. Pure function: one entry per roster player in roster order, zeroed
// when the player has no completed matches.
func CalculatePlayerStats(matches []*models.Match, players []*models.Player) []*models.PlayerStats {
	statsByID := make(map[string]*models.PlayerStats, len(players))
	ordered := make([]*models.PlayerStats, 0, len(players))
	for _, p := range players {
		s := &models.PlayerStats{Player: p}
		statsByID[p.ID] = s
		ordered = append(ordered, s)
	}

	for _, m := range matches {
		if !m.Completed || m.Score == nil {
			continue
		}
		score := m.Score
		team1Won := score.Team1Score > score.Team2Score

		tallySide(statsByID, m.Team1, team1Won, score.Team1Score, score.Team2Score, score.Sets, false)
		tallySide(statsByID, m.Team2, !team1Won, score.Team2Score, score.Team1Score, score.Sets, true)
	}

	for _, s := range ordered {
		if s.MatchesPlayed > 0 {
			s.WinRate = float64(s.MatchesWon) / float64(s.MatchesPlayed) * 100
		}
	}

	return ordered
}

// tallySide credits one team's players with the match outcome. Sets/points
// accumulate the side's team score regardless of scoring mode; games only
// accumulate when per-set data exists. flipped selects the team-2 column of
// each set.
func tallySide(statsByID map[string]*models.PlayerStats, team []*models.Player, won bool, scoreFor, scoreAgainst int, sets []models.SetScore, flipped bool) {
	for _, p := range team {
		s, ok := statsByID[p.ID]
		if !ok {
			// Match references a player no longer on the roster; skip.
			continue
		}
		s.MatchesPlayed++
		if won {
			s.MatchesWon++
		} else {
			s.MatchesLost++
		}
		s.SetsWon += scoreFor
		s.SetsLost += scoreAgainst
		for _, set := range sets {
			if flipped {
				s.GamesWon += set.Team2Games
				s.GamesLost += set.Team1Games
			} else {
				s.GamesWon += set.Team1Games
				s.GamesLost += set.Team2Games
			}
		}
	}
}
