package engine

import (
	"testing"

	"github.com/dron3flyv3r/tennis-tournament/models"
)

func completedMatch(id string, t1, t2 []*models.Player, score *models.MatchScore) *models.Match {
	return &models.Match{
		ID:        id,
		Team1:     t1,
		Team2:     t2,
		Score:     score,
		Completed: true,
	}
}

func TestCalculatePlayerStats(t *testing.T) {
	players := testPlayers(4)
	matches := []*models.Match{
		completedMatch("match-0",
			[]*models.Player{players[0]}, []*models.Player{players[1]},
			&models.MatchScore{
				Team1Score: 2, Team2Score: 1,
				Sets: []models.SetScore{
					{Team1Games: 6, Team2Games: 4},
					{Team1Games: 3, Team2Games: 6},
					{Team1Games: 6, Team2Games: 2},
				},
			}),
		completedMatch("match-1",
			[]*models.Player{players[0]}, []*models.Player{players[2]},
			&models.MatchScore{Team1Score: 0, Team2Score: 2,
				Sets: []models.SetScore{
					{Team1Games: 4, Team2Games: 6},
					{Team1Games: 2, Team2Games: 6},
				},
			}),
		// incomplete match must not count
		{ID: "match-2", Team1: []*models.Player{players[0]}, Team2: []*models.Player{players[3]}},
	}

	stats := CalculatePlayerStats(matches, players)
	if len(stats) != 4 {
		t.Fatalf("stats entries = %d; want 4", len(stats))
	}

	byID := make(map[string]*models.PlayerStats)
	for _, s := range stats {
		byID[s.Player.ID] = s
	}

	p1 := byID["p1"]
	if p1.MatchesPlayed != 2 || p1.MatchesWon != 1 || p1.MatchesLost != 1 {
		t.Errorf("p1 record = %d/%d/%d; want 2/1/1", p1.MatchesPlayed, p1.MatchesWon, p1.MatchesLost)
	}
	if p1.SetsWon != 2 || p1.SetsLost != 3 {
		t.Errorf("p1 sets = %d/%d; want 2/3", p1.SetsWon, p1.SetsLost)
	}
	if p1.GamesWon != 21 || p1.GamesLost != 24 {
		t.Errorf("p1 games = %d/%d; want 21/24", p1.GamesWon, p1.GamesLost)
	}
	if p1.WinRate != 50 {
		t.Errorf("p1 win rate = %v; want 50", p1.WinRate)
	}

	p2 := byID["p2"]
	if p2.MatchesPlayed != 1 || p2.MatchesWon != 0 || p2.MatchesLost != 1 {
		t.Errorf("p2 record = %d/%d/%d; want 1/0/1", p2.MatchesPlayed, p2.MatchesWon, p2.MatchesLost)
	}
	if p2.GamesWon != 12 || p2.GamesLost != 15 {
		t.Errorf("p2 games = %d/%d; want 12/15", p2.GamesWon, p2.GamesLost)
	}

	p4 := byID["p4"]
	if p4.MatchesPlayed != 0 || p4.WinRate != 0 {
		t.Errorf("idle player p4 has played=%d rate=%v; want zeros", p4.MatchesPlayed, p4.WinRate)
	}
}

func TestStatsSimpleScoringMode(t *testing.T) {
	players := testPlayers(2)
	matches := []*models.Match{
		completedMatch("match-0",
			[]*models.Player{players[0]}, []*models.Player{players[1]},
			&models.MatchScore{Team1Score: 21, Team2Score: 15}),
	}
	stats := CalculatePlayerStats(matches, players)

	if stats[0].SetsWon != 21 || stats[0].SetsLost != 15 {
		t.Errorf("p1 points = %d/%d; want 21/15", stats[0].SetsWon, stats[0].SetsLost)
	}
	if stats[0].GamesWon != 0 || stats[1].GamesWon != 0 {
		t.Errorf("games accumulated without per-set data")
	}
}

func TestStatsInvariants(t *testing.T) {
	players := testPlayers(6)
	cfg := singlesConfig()
	res := GenerateMatches(players, cfg)

	// complete every other match
	for i, m := range res.Matches {
		if i%2 == 0 {
			m.Score = &models.MatchScore{Team1Score: 2, Team2Score: i % 3}
			m.Completed = true
		}
	}

	for _, s := range CalculatePlayerStats(res.Matches, players) {
		if s.MatchesWon+s.MatchesLost != s.MatchesPlayed {
			t.Errorf("player %s: won %d + lost %d != played %d",
				s.Player.ID, s.MatchesWon, s.MatchesLost, s.MatchesPlayed)
		}
		if s.WinRate < 0 || s.WinRate > 100 {
			t.Errorf("player %s: win rate %v out of range", s.Player.ID, s.WinRate)
		}
		if (s.WinRate == 0 && s.MatchesWon > 0) || (s.MatchesPlayed == 0 && s.WinRate != 0) {
			t.Errorf("player %s: win rate %v inconsistent with %d/%d",
				s.Player.ID, s.WinRate, s.MatchesWon, s.MatchesPlayed)
		}
	}
}

func TestStatsSkipsUnknownPlayers(t *testing.T) {
	players := testPlayers(2)
	ghost := &models.Player{ID: "ghost", Name: "Ghost"}
	matches := []*models.Match{
		completedMatch("match-0",
			[]*models.Player{players[0]}, []*models.Player{ghost},
			&models.MatchScore{Team1Score: 2, Team2Score: 0}),
	}
	stats := CalculatePlayerStats(matches, players)
	if len(stats) != 2 {
		t.Fatalf("stats entries = %d; want 2 (roster only)", len(stats))
	}
	if stats[0].MatchesWon != 1 {
		t.Errorf("p1 wins = %d; want 1", stats[0].MatchesWon)
	}
}
