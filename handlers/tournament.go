package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dron3flyv3r/tennis-tournament/middleware"
	"github.com/dron3flyv3r/tennis-tournament/services"
)

func SetupTournamentRoutes(app *fiber.App, tournamentService *services.TournamentService, matchService *services.MatchService, reportService *services.ReportService) {
	// 🔓 Public read-only routes (scoreboards, standings displays)
	app.Get("/tournaments", tournamentService.GetAllTournaments)
	app.Get("/tournaments/:id", tournamentService.GetTournament)
	app.Get("/tournaments/:id/matches", matchService.ListMatches)
	app.Get("/tournaments/:id/stats", reportService.GetStats)
	app.Get("/tournaments/:id/report", reportService.GetReport)
	app.Get("/tournaments/:id/standings", reportService.GetStandings)
	app.Get("/tournaments/:id/report/exports", reportService.ListExports)

	// 🔐 Organizer routes — require gateway user context
	secured := app.Group("/s", middleware.UserContextMiddleware())

	// Tournament lifecycle
	secured.Post("/tournaments", tournamentService.CreateTournament)
	secured.Put("/tournaments/:id/setup", tournamentService.UpdateSetup)
	secured.Patch("/tournaments/:id/status", tournamentService.UpdateTournamentStatus)
	secured.Delete("/tournaments/:id", tournamentService.DeleteTournament)

	// Match management
	secured.Put("/tournaments/:id/matches/:match_id", matchService.UpdateMatch)
	secured.Put("/tournaments/:id/matches/:match_id/score", matchService.RecordScore)
	secured.Delete("/tournaments/:id/matches/:match_id/score", matchService.ClearScore)
	secured.Delete("/tournaments/:id/matches/:match_id", matchService.DeleteMatch)
	secured.Post("/tournaments/:id/reschedule", matchService.RescheduleMatches)

	// Reports
	secured.Post("/tournaments/:id/report/export", reportService.ExportReport)
}
