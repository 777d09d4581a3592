package engine

import (
	"sort"

	"github.com/dron3flyv3r/tennis-tournament/models"
)

// GenerateReport composes the aggregated stats into a ranked leaderboard plus
// highlight facts. Players rank by matches won, descending; ties keep roster
// order (stable sort). Every highlight is nil until a completed match
// qualifies someone for it.
func GenerateReport(matches []*models.Match, players []*models.Player, tournamentName string) *models.TournamentReport {
	stats := CalculatePlayerStats(matches, players)

	completed := 0
	for _, m := range matches {
		if m.Completed {
			completed++
		}
	}

	var mostWins, highestWinRate, mostGamesPlayed *models.PlayerStats
	for _, s := range stats {
		if s.MatchesPlayed == 0 {
			continue
		}
		if mostWins == nil || s.MatchesWon > mostWins.MatchesWon {
			mostWins = s
		}
		if highestWinRate == nil || s.WinRate > highestWinRate.WinRate {
			highestWinRate = s
		}
		if mostGamesPlayed == nil || s.MatchesPlayed > mostGamesPlayed.MatchesPlayed {
			mostGamesPlayed = s
		}
	}

	ranked := make([]*models.PlayerStats, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchesWon > ranked[j].MatchesWon
	})

	return &models.TournamentReport{
		TournamentName:   tournamentName,
		TotalMatches:     len(matches),
		CompletedMatches: completed,
		PlayerStats:      ranked,
		FunStats: models.FunStats{
			MostWins:        mostWins,
			HighestWinRate:  highestWinRate,
			MostGamesPlayed: mostGamesPlayed,
			BiggestWin:      biggestWin(matches),
		},
	}
}

// biggestWin picks the completed match with the largest score differential;
// ties break on the largest summed per-set game differential. A drawn score
// never qualifies.
func biggestWin(matches []*models.Match) *models.Match {
	var best *models.Match
	bestDiff, bestGameDiff := 0, 0
	for _, m := range matches {
		if !m.Completed || m.Score == nil {
			continue
		}
		diff := absInt(m.Score.Team1Score - m.Score.Team2Score)
		if diff == 0 {
			continue
		}
		gameDiff := 0
		for _, set := range m.Score.Sets {
			gameDiff += absInt(set.Team1Games - set.Team2Games)
		}
		if best == nil || diff > bestDiff || (diff == bestDiff && gameDiff > bestGameDiff) {
			best = m
			bestDiff = diff
			bestGameDiff = gameDiff
		}
	}
	return best
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
