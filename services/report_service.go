package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dron3flyv3r/tennis-tournament/engine"
	"github.com/dron3flyv3r/tennis-tournament/models"
	"github.com/dron3flyv3r/tennis-tournament/utils"
)

// ReportService serves derived views over a tournament's recorded results:
// raw per-player stats, the composed report, and report snapshots exported
// to object storage.
type ReportService struct {
	DB          *gorm.DB
	Tournaments *TournamentService
}

func NewReportService(db *gorm.DB, ts *TournamentService) *ReportService {
	return &ReportService{DB: db, Tournaments: ts}
}

func (s *ReportService) GetStats(c *fiber.Ctx) error {
	_, st, err := s.Tournaments.loadTournament(c.Params("id"))
	if err != nil {
		return respondLoadError(c, err)
	}
	stats := engine.CalculatePlayerStats(st.Matches, st.Players)
	return c.JSON(fiber.Map{"player_stats": stats})
}

func (s *ReportService) GetReport(c *fiber.Ctx) error {
	tournament, st, err := s.Tournaments.loadTournament(c.Params("id"))
	if err != nil {
		return respondLoadError(c, err)
	}
	report := engine.GenerateReport(st.Matches, st.Players, tournament.Name)
	return c.JSON(report)
}

// GetStandings returns only the ranked leaderboard of the report, for callers
// that poll the table without needing the highlight blocks.
func (s *ReportService) GetStandings(c *fiber.Ctx) error {
	tournament, st, err := s.Tournaments.loadTournament(c.Params("id"))
	if err != nil {
		return respondLoadError(c, err)
	}
	report := engine.GenerateReport(st.Matches, st.Players, tournament.Name)
	return c.JSON(fiber.Map{
		"tournament_name":   report.TournamentName,
		"completed_matches": report.CompletedMatches,
		"total_matches":     report.TotalMatches,
		"standings":         report.PlayerStats,
	})
}

// ExportReport uploads a JSON snapshot of the current report to R2 and records
// the resulting URL.
func (s *ReportService) ExportReport(c *fiber.Ctx) error {
	if !utils.R2Enabled() {
		return c.Status(503).JSON(fiber.Map{"error": "report export storage is not configured"})
	}

	tournament, st, err := s.Tournaments.loadTournament(c.Params("id"))
	if err != nil {
		return respondLoadError(c, err)
	}

	report := engine.GenerateReport(st.Matches, st.Players, tournament.Name)
	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Printf("Failed to marshal report for tournament %s: %v", tournament.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to build report"})
	}

	key := fmt.Sprintf("reports/%s/%s.json", tournament.Slug, time.Now().UTC().Format("20060102-150405"))
	url, err := utils.UploadBytesToR2(payload, key, "application/json")
	if err != nil {
		log.Printf("R2 upload failed for tournament %s: %v", tournament.ID, err)
		return c.Status(502).JSON(fiber.Map{"error": "failed to upload report"})
	}

	export := &models.ReportExport{
		ID:           uuid.New().String(),
		TournamentID: tournament.ID,
		URL:          url,
		Format:       "json",
	}
	if err := s.DB.Create(export).Error; err != nil {
		log.Printf("DB Error recording report export for %s: %v", tournament.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to record export"})
	}

	return c.Status(201).JSON(export)
}

func (s *ReportService) ListExports(c *fiber.Ctx) error {
	tournament, _, err := s.Tournaments.loadTournament(c.Params("id"))
	if err != nil {
		return respondLoadError(c, err)
	}
	var exports []models.ReportExport
	if err := s.DB.Where("tournament_id = ?", tournament.ID).Order("created_at DESC").Find(&exports).Error; err != nil {
		log.Printf("DB Error listing exports for %s: %v", tournament.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to list exports"})
	}
	return c.JSON(fiber.Map{"exports": exports, "total": len(exports)})
}
