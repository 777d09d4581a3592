package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/dron3flyv3r/tennis-tournament/models"
)

// randomDoublesAttempts bounds the rejection-sampling loop for
// random-non-repeating doubles. An attempt ceiling, not wall-clock time.
const randomDoublesAttempts = 1000

// GenerateResult is the outcome of match generation. Infeasibility is
// reported through Warnings, never through an error: the match list degrades
// to best-effort output (possibly empty).
type GenerateResult struct {
	Matches  []*models.Match `json:"matches"`
	Warnings []string        `json:"warnings"`
}

// GenerateMatches enumerates the tournament's matches for the given roster
// and config, then assigns courts and times. Singles and fixed doubles are
// deterministic in roster order; random doubles draws from a time-seeded
// source.
func GenerateMatches(players []*models.Player, cfg models.TournamentConfig) GenerateResult {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return GenerateMatchesWithSource(players, cfg, rng)
}

// GenerateMatchesWithSource is GenerateMatches with an injectable random
// source, so callers (and tests) can pin the random-doubles draw to a seed.
func GenerateMatchesWithSource(players []*models.Player, cfg models.TournamentConfig, rng *rand.Rand) GenerateResult {
	if cfg.GameType == models.GameTypeDoubles {
		return generateDoubles(players, cfg, rng)
	}
	return generateSingles(players, cfg)
}

// generateSingles emits the full round-robin: every unordered pair exactly
// once, outer index i, inner index j > i. A round-robin has no repeats and
// gives every player n-1 matches, so EnforceNonRepeatingMatches has no
// additional effect here; it only matters for doubles.
func generateSingles(players []*models.Player, cfg models.TournamentConfig) GenerateResult {
	var matches []*models.Match
	matchCount := make(map[string]int, len(players))
	for _, p := range players {
		matchCount[p.ID] = 0
	}

	idx := 0
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			matches = append(matches, newMatch(idx,
				[]*models.Player{players[i]},
				[]*models.Player{players[j]}))
			matchCount[players[i].ID]++
			matchCount[players[j].ID]++
			idx++
		}
	}

	AssignCourtsAndTimes(matches, cfg)

	var warnings []string
	if cfg.EnforceFairMatches && len(matchCount) > 0 {
		lo, hi := countSpread(matchCount)
		if hi-lo > 0 {
			warnings = append(warnings, fairnessWarning(lo, hi))
		}
	}

	return GenerateResult{Matches: matches, Warnings: warnings}
}

func generateDoubles(players []*models.Player, cfg models.TournamentConfig, rng *rand.Rand) GenerateResult {
	if len(players) < 4 {
		return GenerateResult{
			Warnings: []string{"Need at least 4 players for doubles matches."},
		}
	}
	if cfg.DoublesPartnerMode == models.PartnerModeFixed {
		return generateFixedDoubles(players, cfg)
	}
	return generateRandomDoubles(players, cfg, rng)
}

// generateFixedDoubles pairs the roster sequentially into standing teams
// (0&1, 2&3, ...) and plays every team against every other. With an odd
// roster the last player is left out of all teams.
func generateFixedDoubles(players []*models.Player, cfg models.TournamentConfig) GenerateResult {
	var warnings []string
	if len(players)%2 != 0 {
		warnings = append(warnings, "Odd number of players. One player will sit out each round.")
	}

	var teams [][2]*models.Player
	for i := 0; i+1 < len(players); i += 2 {
		teams = append(teams, [2]*models.Player{players[i], players[i+1]})
	}

	var matches []*models.Match
	idx := 0
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			matches = append(matches, newMatch(idx,
				[]*models.Player{teams[i][0], teams[i][1]},
				[]*models.Player{teams[j][0], teams[j][1]}))
			idx++
		}
	}

	AssignCourtsAndTimes(matches, cfg)

	return GenerateResult{Matches: matches, Warnings: warnings}
}

// generateRandomDoubles is a stochastic constraint-satisfaction search:
// exhaustively enumerating non-repeating doubles pairings is combinatorially
// explosive and fairness is a soft objective, so it draws shuffled candidate
// teams under a bounded attempt budget and rejects draws that repeat a
// partnership or an opponent pair. Output is best-effort, never guaranteed
// optimal.
func generateRandomDoubles(players []*models.Player, cfg models.TournamentConfig, rng *rand.Rand) GenerateResult {
	partnerPairs := make(map[string]bool)
	opponentPairs := make(map[string]bool)
	matchCount := make(map[string]int, len(players))
	for _, p := range players {
		matchCount[p.ID] = 0
	}

	var matches []*models.Match
	idx := 0

	for attempt := 0; attempt < randomDoublesAttempts; attempt++ {
		shuffled := make([]*models.Player, len(players))
		copy(shuffled, players)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		team1 := shuffled[:2]
		team2 := shuffled[2:4]

		if cfg.EnforceNonRepeatingMatches {
			partner1 := pairKey(team1[0].ID, team1[1].ID)
			partner2 := pairKey(team2[0].ID, team2[1].ID)
			if partnerPairs[partner1] || partnerPairs[partner2] {
				continue
			}
			opponents := []string{
				pairKey(team1[0].ID, team2[0].ID),
				pairKey(team1[0].ID, team2[1].ID),
				pairKey(team1[1].ID, team2[0].ID),
				pairKey(team1[1].ID, team2[1].ID),
			}
			repeat := false
			for _, key := range opponents {
				if opponentPairs[key] {
					repeat = true
					break
				}
			}
			if repeat {
				continue
			}
			partnerPairs[partner1] = true
			partnerPairs[partner2] = true
			for _, key := range opponents {
				opponentPairs[key] = true
			}
		}

		matches = append(matches, newMatch(idx,
			[]*models.Player{team1[0], team1[1]},
			[]*models.Player{team2[0], team2[1]}))
		idx++
		for _, p := range team1 {
			matchCount[p.ID]++
		}
		for _, p := range team2 {
			matchCount[p.ID]++
		}

		if cfg.EnforceFairMatches {
			lo, hi := countSpread(matchCount)
			if lo >= len(players)/2 && hi-lo <= 1 {
				break
			}
		}
	}

	AssignCourtsAndTimes(matches, cfg)

	var warnings []string
	if cfg.EnforceFairMatches {
		lo, hi := countSpread(matchCount)
		if hi-lo > 1 {
			warnings = append(warnings, fairnessWarning(lo, hi))
		}
	}

	return GenerateResult{Matches: matches, Warnings: warnings}
}

func newMatch(idx int, team1, team2 []*models.Player) *models.Match {
	return &models.Match{
		ID:    fmt.Sprintf("match-%d", idx),
		Team1: team1,
		Team2: team2,
	}
}

// pairKey builds an order-independent key for a pair of player ids.
func pairKey(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, "-")
}

func countSpread(counts map[string]int) (lo, hi int) {
	first := true
	for _, n := range counts {
		if first {
			lo, hi = n, n
			first = false
			continue
		}
		if n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	return lo, hi
}

func fairnessWarning(lo, hi int) string {
	return fmt.Sprintf("Unable to create perfectly fair matches. Match count varies from %d to %d.", lo, hi)
}
