package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/dron3flyv3r/tennis-tournament/engine"
	"github.com/dron3flyv3r/tennis-tournament/models"
)

// MatchService exposes per-match operations on a tournament's schedule:
// score entry, manual court/time edits and reassignment.
type MatchService struct {
	DB          *gorm.DB
	Tournaments *TournamentService
}

func NewMatchService(db *gorm.DB, ts *TournamentService) *MatchService {
	return &MatchService{DB: db, Tournaments: ts}
}

func (s *MatchService) ListMatches(c *fiber.Ctx) error {
	_, st, err := s.Tournaments.loadTournament(c.Params("id"))
	if err != nil {
		return respondLoadError(c, err)
	}
	return c.JSON(fiber.Map{"matches": st.Matches, "total": len(st.Matches)})
}

// ScoreRequest is the entered result for one match. In sets mode, providing
// sets derives the team scores (sets won per side); in simple mode the team
// scores are taken as given.
type ScoreRequest struct {
	Team1Score int               `json:"team1_score"`
	Team2Score int               `json:"team2_score"`
	Sets       []models.SetScore `json:"sets,omitempty"`
}

func (s *MatchService) RecordScore(c *fiber.Ctx) error {
	tournament, st, err := s.Tournaments.loadTournament(c.Params("id"))
	if err != nil {
		return respondLoadError(c, err)
	}

	match := findMatch(st, c.Params("match_id"))
	if match == nil {
		return c.Status(404).JSON(fiber.Map{"error": "match not found"})
	}

	var req ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}

	score := &models.MatchScore{
		Team1Score: req.Team1Score,
		Team2Score: req.Team2Score,
	}
	if st.Config.ScoringMode == models.ScoringModeSets && len(req.Sets) > 0 {
		score.Sets = req.Sets
		score.Team1Score, score.Team2Score = setsWon(req.Sets)
	}
	if score.Team1Score < 0 || score.Team2Score < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "scores must not be negative"})
	}

	match.Score = score
	match.Completed = true

	if err := s.Tournaments.saveState(tournament, st); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to save score"})
	}
	return c.JSON(match)
}

func (s *MatchService) ClearScore(c *fiber.Ctx) error {
	tournament, st, err := s.Tournaments.loadTournament(c.Params("id"))
	if err != nil {
		return respondLoadError(c, err)
	}

	match := findMatch(st, c.Params("match_id"))
	if match == nil {
		return c.Status(404).JSON(fiber.Map{"error": "match not found"})
	}

	match.Score = nil
	match.Completed = false

	if err := s.Tournaments.saveState(tournament, st); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to clear score"})
	}
	return c.JSON(match)
}

// UpdateMatchRequest moves a match to a different court and/or start time, or
// swaps its lineup. Team ids must reference current roster entries.
type UpdateMatchRequest struct {
	Court    *string  `json:"court,omitempty"`
	Time     *string  `json:"time,omitempty"` // HH:MM
	Team1IDs []string `json:"team1_ids,omitempty"`
	Team2IDs []string `json:"team2_ids,omitempty"`
}

func (s *MatchService) UpdateMatch(c *fiber.Ctx) error {
	tournament, st, err := s.Tournaments.loadTournament(c.Params("id"))
	if err != nil {
		return respondLoadError(c, err)
	}

	match := findMatch(st, c.Params("match_id"))
	if match == nil {
		return c.Status(404).JSON(fiber.Map{"error": "match not found"})
	}

	var req UpdateMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}

	if req.Court != nil {
		match.Court = strings.TrimSpace(*req.Court)
	}
	if req.Time != nil {
		t := strings.TrimSpace(*req.Time)
		if t != "" && !validClock(t) {
			return c.Status(400).JSON(fiber.Map{"error": "time must be HH:MM"})
		}
		match.Time = t
	}
	if req.Team1IDs != nil {
		team, err := resolveTeam(st, req.Team1IDs)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		match.Team1 = team
	}
	if req.Team2IDs != nil {
		team, err := resolveTeam(st, req.Team2IDs)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		match.Team2 = team
	}

	if err := s.Tournaments.saveState(tournament, st); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to save match"})
	}
	return c.JSON(match)
}

func (s *MatchService) DeleteMatch(c *fiber.Ctx) error {
	tournament, st, err := s.Tournaments.loadTournament(c.Params("id"))
	if err != nil {
		return respondLoadError(c, err)
	}

	matchID := c.Params("match_id")
	kept := st.Matches[:0]
	found := false
	for _, m := range st.Matches {
		if m.ID == matchID {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return c.Status(404).JSON(fiber.Map{"error": "match not found"})
	}
	st.Matches = kept

	if err := s.Tournaments.saveState(tournament, st); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete match"})
	}
	return c.JSON(fiber.Map{"message": "match deleted"})
}

// RescheduleMatches reruns court and time assignment over the whole schedule
// using the current config. Scores and pairings are untouched; only court and
// time change.
func (s *MatchService) RescheduleMatches(c *fiber.Ctx) error {
	tournament, st, err := s.Tournaments.loadTournament(c.Params("id"))
	if err != nil {
		return respondLoadError(c, err)
	}
	if tournament.Status == "completed" || tournament.Status == "cancelled" {
		return c.Status(409).JSON(fiber.Map{"error": "tournament is " + tournament.Status + " and can no longer be rescheduled"})
	}

	engine.AssignCourtsAndTimes(st.Matches, st.Config)

	if err := s.Tournaments.saveState(tournament, st); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to save schedule"})
	}
	log.Printf("Rescheduled %d matches for tournament %s", len(st.Matches), tournament.ID)
	return c.JSON(fiber.Map{"matches": st.Matches})
}

// resolveTeam maps roster player ids to their canonical entries.
func resolveTeam(st *tournamentState, ids []string) ([]*models.Player, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("a team needs at least one player")
	}
	byID := make(map[string]*models.Player, len(st.Players))
	for _, p := range st.Players {
		byID[p.ID] = p
	}
	team := make([]*models.Player, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("player %s is not on the roster", id)
		}
		team = append(team, p)
	}
	return team, nil
}

// setsWon counts sets taken by each side. A drawn set counts for neither.
func setsWon(sets []models.SetScore) (team1, team2 int) {
	for _, set := range sets {
		switch {
		case set.Team1Games > set.Team2Games:
			team1++
		case set.Team2Games > set.Team1Games:
			team2++
		}
	}
	return team1, team2
}

func validClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	hours, err := strconv.Atoi(s[:2])
	if err != nil {
		return false
	}
	minutes, err := strconv.Atoi(s[3:])
	if err != nil {
		return false
	}
	return hours >= 0 && hours < 24 && minutes >= 0 && minutes < 60
}
