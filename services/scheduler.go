// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/dron3flyv3r/tennis-tournament/models"
)

// StartTournamentScheduler runs two background sweeps every minute: drafts
// whose scheduled_for has passed go active, and active tournaments with every
// match completed get closed out.
func (s *TournamentService) StartTournamentScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Every minute: activate scheduled tournaments
	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			var tournaments []models.Tournament
			now := time.Now()
			err := s.DB.Where("status = ? AND scheduled_for IS NOT NULL AND scheduled_for <= ?", "draft", now).
				Find(&tournaments).Error
			if err != nil {
				log.Printf("[Scheduler] DB error: %v", err)
				return
			}

			for _, t := range tournaments {
				t.Status = "active"
				activatedAt := now
				t.ActivatedAt = &activatedAt
				if err := s.DB.Save(&t).Error; err != nil {
					log.Printf("[Scheduler] Failed to activate tournament %s: %v", t.ID, err)
				} else {
					log.Printf("✅ Auto-activated tournament: %s", t.Name)
				}
			}
		}),
	)

	// Every minute: complete active tournaments with no matches left to play
	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			var tournaments []models.Tournament
			err := s.DB.Where("status = ?", "active").Find(&tournaments).Error
			if err != nil {
				log.Printf("[Scheduler] DB error: %v", err)
				return
			}

			for _, t := range tournaments {
				st, err := decodeState(&t)
				if err != nil {
					log.Printf("[Scheduler] Corrupt state on tournament %s: %v", t.ID, err)
					continue
				}
				if len(st.Matches) == 0 || !allCompleted(st.Matches) {
					continue
				}
				completedAt := time.Now()
				t.Status = "completed"
				t.CompletedAt = &completedAt
				if err := s.DB.Save(&t).Error; err != nil {
					log.Printf("[Scheduler] Failed to complete tournament %s: %v", t.ID, err)
				} else {
					log.Printf("🏁 Auto-completed tournament: %s", t.Name)
				}
			}
		}),
	)
}

func allCompleted(matches []*models.Match) bool {
	for _, m := range matches {
		if !m.Completed {
			return false
		}
	}
	return true
}
