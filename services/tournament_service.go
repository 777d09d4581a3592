package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/dron3flyv3r/tennis-tournament/engine"
	"github.com/dron3flyv3r/tennis-tournament/models"
	"github.com/dron3flyv3r/tennis-tournament/utils"
)

type TournamentService struct {
	DB *gorm.DB
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{DB: db}
}

// PlayerInput is one roster row as submitted by the organizer.
type PlayerInput struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	SkillLevel int    `json:"skill_level,omitempty"`
}

// CreateTournamentRequest carries the full setup for a new event.
type CreateTournamentRequest struct {
	Name         string                  `json:"name"`
	ScheduledFor string                  `json:"scheduled_for,omitempty"` // RFC3339
	Config       models.TournamentConfig `json:"config"`
	Players      []PlayerInput           `json:"players"`
}

// TournamentResponse is the tournament row plus its decoded state.
type TournamentResponse struct {
	Tournament *models.Tournament      `json:"tournament"`
	Config     models.TournamentConfig `json:"config"`
	Players    []*models.Player        `json:"players"`
	Matches    []*models.Match         `json:"matches"`
	Warnings   []string                `json:"warnings"`
}

func (s *TournamentService) CreateTournament(c *fiber.Ctx) error {
	var req CreateTournamentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSpace(req.Config.TournamentName)
	}
	if name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}
	req.Config.TournamentName = name

	players, err := buildRoster(req.Players, req.Config)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validateConfig(&req.Config); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var scheduledFor *time.Time
	if req.ScheduledFor != "" {
		t, err := time.Parse(time.RFC3339, req.ScheduledFor)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid scheduled_for (use RFC3339)"})
		}
		scheduledFor = &t
	}

	result := engine.GenerateMatches(players, req.Config)

	tournament := &models.Tournament{
		ID:           uuid.New().String(),
		Name:         name,
		Slug:         s.uniqueSlug(name),
		Status:       "draft",
		ScheduledFor: scheduledFor,
	}
	st := &tournamentState{
		Config:   req.Config,
		Players:  players,
		Matches:  result.Matches,
		Warnings: result.Warnings,
	}
	if err := encodeState(tournament, st); err != nil {
		log.Printf("Failed to encode tournament state: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to encode tournament state"})
	}

	if err := s.DB.Create(tournament).Error; err != nil {
		log.Printf("DB Error creating tournament: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to create tournament"})
	}

	attachCounts(tournament, st)
	return c.Status(201).JSON(stateResponse(tournament, st))
}

func (s *TournamentService) GetAllTournaments(c *fiber.Ctx) error {
	var tournaments []models.Tournament
	if err := s.DB.Order("created_at DESC").Find(&tournaments).Error; err != nil {
		log.Printf("DB Error listing tournaments: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to list tournaments"})
	}

	for i := range tournaments {
		st, err := decodeState(&tournaments[i])
		if err != nil {
			log.Printf("Corrupt state blob on tournament %s: %v", tournaments[i].ID, err)
			continue
		}
		attachCounts(&tournaments[i], st)
	}
	return c.JSON(tournaments)
}

func (s *TournamentService) GetTournament(c *fiber.Ctx) error {
	tournament, st, err := s.loadTournament(c.Params("id"))
	if err != nil {
		return respondLoadError(c, err)
	}
	attachCounts(tournament, st)
	return c.JSON(stateResponse(tournament, st))
}

// UpdateSetupRequest edits the roster and/or config of an existing event.
// Regenerate discards the current schedule and rebuilds it from scratch;
// without it, roster edits flow into the existing matches by player id.
type UpdateSetupRequest struct {
	Config     *models.TournamentConfig `json:"config,omitempty"`
	Players    []PlayerInput            `json:"players,omitempty"`
	Regenerate bool                     `json:"regenerate"`
}

func (s *TournamentService) UpdateSetup(c *fiber.Ctx) error {
	tournament, st, err := s.loadTournament(c.Params("id"))
	if err != nil {
		return respondLoadError(c, err)
	}
	if tournament.Status == "completed" || tournament.Status == "cancelled" {
		return c.Status(409).JSON(fiber.Map{"error": "tournament is " + tournament.Status + " and can no longer be edited"})
	}

	var req UpdateSetupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON", "details": err.Error()})
	}

	if req.Config != nil {
		if req.Config.TournamentName == "" {
			req.Config.TournamentName = st.Config.TournamentName
		}
		if err := validateConfig(req.Config); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		st.Config = *req.Config
	}

	if req.Players != nil {
		players, err := buildRoster(req.Players, st.Config)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		st.Players = players
	}

	if req.Regenerate {
		result := engine.GenerateMatches(st.Players, st.Config)
		st.Matches = result.Matches
		st.Warnings = result.Warnings
	} else {
		// Carry roster edits (renames, skill changes) into the standing
		// schedule without disturbing recorded scores.
		RelinkPlayers(st.Matches, st.Players)
	}

	if err := s.saveState(tournament, st); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to save tournament"})
	}

	attachCounts(tournament, st)
	return c.JSON(stateResponse(tournament, st))
}

func (s *TournamentService) UpdateTournamentStatus(c *fiber.Ctx) error {
	type Req struct {
		Status string `json:"status" validate:"oneof=draft active completed cancelled activate"`
	}
	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	tournament, _, err := s.loadTournament(c.Params("id"))
	if err != nil {
		return respondLoadError(c, err)
	}

	now := time.Now()
	var updates map[string]interface{}
	target := req.Status
	if target == "activate" {
		target = "active"
	}
	switch target {
	case "active":
		if tournament.Status != "draft" {
			return c.Status(409).JSON(fiber.Map{"error": "only a draft tournament can be activated"})
		}
		updates = map[string]interface{}{"status": "active", "activated_at": now}
	case "completed":
		if tournament.Status != "active" {
			return c.Status(409).JSON(fiber.Map{"error": "only an active tournament can be completed"})
		}
		updates = map[string]interface{}{"status": "completed", "completed_at": now}
	case "cancelled":
		if tournament.Status == "completed" {
			return c.Status(409).JSON(fiber.Map{"error": "a completed tournament cannot be cancelled"})
		}
		updates = map[string]interface{}{"status": "cancelled"}
	case "draft":
		if tournament.Status != "cancelled" {
			return c.Status(409).JSON(fiber.Map{"error": "only a cancelled tournament can return to draft"})
		}
		updates = map[string]interface{}{"status": "draft", "activated_at": nil, "completed_at": nil}
	default:
		return c.Status(400).JSON(fiber.Map{"error": "invalid status"})
	}

	result := s.DB.Model(&models.Tournament{}).Where("id = ?", tournament.ID).Updates(updates)
	if result.Error != nil {
		log.Printf("DB Error updating tournament %s status: %v", tournament.ID, result.Error)
		return c.Status(500).JSON(fiber.Map{"error": "DB update failed"})
	}

	var updated models.Tournament
	s.DB.First(&updated, "id = ?", tournament.ID)
	return c.JSON(updated)
}

func (s *TournamentService) DeleteTournament(c *fiber.Ctx) error {
	id := c.Params("id")
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tournament_id = ?", id).Delete(&models.ReportExport{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Tournament{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fiber.NewError(404, "tournament not found")
		}
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}
		log.Printf("DB Error deleting tournament %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete tournament"})
	}
	return c.JSON(fiber.Map{"message": "tournament deleted"})
}

// loadTournament fetches a tournament by id or slug and decodes its state.
func (s *TournamentService) loadTournament(idOrSlug string) (*models.Tournament, *tournamentState, error) {
	var tournament models.Tournament
	if err := s.DB.First(&tournament, "id = ? OR slug = ?", idOrSlug, idOrSlug).Error; err != nil {
		return nil, nil, err
	}
	st, err := decodeState(&tournament)
	if err != nil {
		log.Printf("Corrupt state blob on tournament %s: %v", tournament.ID, err)
		return nil, nil, fmt.Errorf("corrupt tournament state: %w", err)
	}
	return &tournament, st, nil
}

func (s *TournamentService) saveState(tournament *models.Tournament, st *tournamentState) error {
	if err := encodeState(tournament, st); err != nil {
		log.Printf("Failed to encode tournament state: %v", err)
		return err
	}
	if err := s.DB.Model(tournament).Updates(map[string]interface{}{
		"config_json":   tournament.ConfigJSON,
		"players_json":  tournament.PlayersJSON,
		"matches_json":  tournament.MatchesJSON,
		"warnings_json": tournament.WarningsJSON,
	}).Error; err != nil {
		log.Printf("DB Error saving tournament %s: %v", tournament.ID, err)
		return err
	}
	return nil
}

// uniqueSlug derives a URL slug from the name, suffixing on collision.
func (s *TournamentService) uniqueSlug(name string) string {
	base := slug.Make(name)
	if base == "" {
		base = "tournament"
	}
	candidate := base
	for i := 2; ; i++ {
		var count int64
		s.DB.Model(&models.Tournament{}).Where("slug = ?", candidate).Count(&count)
		if count == 0 {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// buildRoster normalizes names, mints ids for new players and rejects rosters
// the engine cannot schedule.
func buildRoster(inputs []PlayerInput, cfg models.TournamentConfig) ([]*models.Player, error) {
	if len(inputs) < 2 {
		return nil, errors.New("at least 2 players are required")
	}
	players := make([]*models.Player, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		name := utils.NormalizeDisplayName(in.Name)
		if name == "" {
			return nil, errors.New("player names must not be empty")
		}
		if seen[strings.ToLower(name)] && !cfg.AllowBypass {
			return nil, fmt.Errorf("duplicate player name: %s", name)
		}
		seen[strings.ToLower(name)] = true
		id := in.ID
		if id == "" {
			id = uuid.New().String()
		}
		players = append(players, &models.Player{ID: id, Name: name, SkillLevel: in.SkillLevel})
	}
	return players, nil
}

func validateConfig(cfg *models.TournamentConfig) error {
	switch cfg.GameType {
	case models.GameTypeSingles, models.GameTypeDoubles:
	default:
		return fmt.Errorf("invalid game_type: %q", cfg.GameType)
	}
	if cfg.GameType == models.GameTypeDoubles {
		switch cfg.DoublesPartnerMode {
		case models.PartnerModeFixed, models.PartnerModeRandom:
		default:
			return fmt.Errorf("invalid doubles_partner_mode: %q", cfg.DoublesPartnerMode)
		}
	}
	switch cfg.ScoringMode {
	case models.ScoringModeSets, models.ScoringModeSimple, "":
	default:
		return fmt.Errorf("invalid scoring_mode: %q", cfg.ScoringMode)
	}
	if cfg.MatchDuration <= 0 {
		return errors.New("match_duration must be a positive number of minutes")
	}
	if cfg.BreakDuration < 0 {
		return errors.New("break_duration must not be negative")
	}
	return nil
}

func attachCounts(t *models.Tournament, st *tournamentState) {
	t.PlayerCount = len(st.Players)
	t.TotalMatches = len(st.Matches)
	completed := 0
	for _, m := range st.Matches {
		if m.Completed {
			completed++
		}
	}
	t.CompletedMatches = completed
}

func stateResponse(t *models.Tournament, st *tournamentState) TournamentResponse {
	return TournamentResponse{
		Tournament: t,
		Config:     st.Config,
		Players:    st.Players,
		Matches:    st.Matches,
		Warnings:   st.Warnings,
	}
}

func respondLoadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "tournament not found"})
	}
	return c.Status(500).JSON(fiber.Map{"error": "failed to load tournament"})
}
