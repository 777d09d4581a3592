package engine

import (
	"fmt"
	"testing"

	"github.com/dron3flyv3r/tennis-tournament/models"
)

// disjointMatches builds n singles matches over 2n distinct players.
func disjointMatches(n int) []*models.Match {
	matches := make([]*models.Match, n)
	for i := 0; i < n; i++ {
		matches[i] = &models.Match{
			ID:    fmt.Sprintf("match-%d", i),
			Team1: []*models.Player{{ID: fmt.Sprintf("a%d", i), Name: fmt.Sprintf("A%d", i)}},
			Team2: []*models.Player{{ID: fmt.Sprintf("b%d", i), Name: fmt.Sprintf("B%d", i)}},
		}
	}
	return matches
}

func TestAssignSequentialOnSingleCourt(t *testing.T) {
	matches := disjointMatches(4)
	cfg := models.TournamentConfig{
		Courts:        []string{"C1"},
		StartTime:     "09:00",
		MatchDuration: 60,
		BreakDuration: 0,
	}
	AssignCourtsAndTimes(matches, cfg)

	wantTimes := []string{"09:00", "10:00", "11:00", "12:00"}
	for i, m := range matches {
		if m.Court != "C1" {
			t.Errorf("match %d court = %q; want C1", i, m.Court)
		}
		if m.Time != wantTimes[i] {
			t.Errorf("match %d time = %q; want %q", i, m.Time, wantTimes[i])
		}
	}
}

func TestAssignSkipsScheduledBreak(t *testing.T) {
	matches := disjointMatches(4)
	cfg := models.TournamentConfig{
		Courts:        []string{"C1"},
		StartTime:     "09:00",
		MatchDuration: 60,
		BreakDuration: 0,
		ScheduledBreaks: []models.ScheduledBreak{
			{ID: "lunch", Time: "12:00", Duration: 60},
		},
	}
	AssignCourtsAndTimes(matches, cfg)

	wantTimes := []string{"09:00", "10:00", "11:00", "13:00"}
	for i, m := range matches {
		if m.Time != wantTimes[i] {
			t.Errorf("match %d time = %q; want %q", i, m.Time, wantTimes[i])
		}
		if m.Court != "C1" {
			t.Errorf("match %d court = %q; want C1", i, m.Court)
		}
	}
}

func TestAssignStartInsideBreakIsPushedOut(t *testing.T) {
	matches := disjointMatches(1)
	cfg := models.TournamentConfig{
		Courts:        []string{"C1"},
		StartTime:     "09:30",
		MatchDuration: 30,
		ScheduledBreaks: []models.ScheduledBreak{
			{ID: "warmup", Time: "09:00", Duration: 60},
		},
	}
	AssignCourtsAndTimes(matches, cfg)
	if matches[0].Time != "10:00" {
		t.Errorf("time = %q; want 10:00", matches[0].Time)
	}
}

func TestAssignNoCourtsFallback(t *testing.T) {
	matches := disjointMatches(3)
	cfg := models.TournamentConfig{
		Courts:        []string{"", "   "},
		StartTime:     "10:00",
		MatchDuration: 45,
		BreakDuration: 15,
	}
	AssignCourtsAndTimes(matches, cfg)

	wantTimes := []string{"10:00", "11:00", "12:00"}
	for i, m := range matches {
		if m.Court != "" {
			t.Errorf("match %d court = %q; want blank", i, m.Court)
		}
		if m.Time != wantTimes[i] {
			t.Errorf("match %d time = %q; want %q", i, m.Time, wantTimes[i])
		}
	}
}

func TestAssignRespectsPlayerAvailability(t *testing.T) {
	// 3-player round robin: every pair of matches shares a player, so only
	// one match fits per slot even with spare courts.
	players := testPlayers(3)
	cfg := singlesConfig()
	cfg.Courts = []string{"C1", "C2", "C3"}
	res := GenerateMatches(players, cfg)

	times := make(map[string]int)
	for _, m := range res.Matches {
		times[m.Time]++
	}
	for tm, count := range times {
		if count > 1 {
			t.Errorf("%d matches share slot %s despite shared players", count, tm)
		}
	}
}

func TestAssignInvariants(t *testing.T) {
	players := testPlayers(6)
	cfg := singlesConfig()
	cfg.Courts = []string{"C1", "C2"}
	cfg.BreakDuration = 10
	cfg.ScheduledBreaks = []models.ScheduledBreak{
		{ID: "lunch", Time: "12:00", Duration: 45},
	}
	res := GenerateMatches(players, cfg)

	if len(res.Matches) != 15 {
		t.Fatalf("match count = %d; want 15", len(res.Matches))
	}

	courtSlot := make(map[string]bool)
	playerSlot := make(map[string]bool)
	for _, m := range res.Matches {
		if m.Court == "" || m.Time == "" {
			t.Fatalf("match %s left unscheduled", m.ID)
		}
		key := m.Court + "@" + m.Time
		if courtSlot[key] {
			t.Errorf("court conflict at %s", key)
		}
		courtSlot[key] = true

		for _, id := range m.PlayerIDs() {
			pk := id + "@" + m.Time
			if playerSlot[pk] {
				t.Errorf("player %s double-booked at %s", id, m.Time)
			}
			playerSlot[pk] = true
		}

		start := ParseClock(m.Time)
		if start >= ParseClock("12:00") && start < ParseClock("12:45") {
			t.Errorf("match %s starts at %s, inside the scheduled break", m.ID, m.Time)
		}
	}
}

func TestAssignEmptyMatchListIsNoop(t *testing.T) {
	AssignCourtsAndTimes(nil, singlesConfig())
}
