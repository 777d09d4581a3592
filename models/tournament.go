package models

import (
	"time"

	"gorm.io/gorm"
)

// Tournament is the persisted record of one event. The roster, generated
// schedule, config and generation warnings are stored verbatim as JSON text
// columns; the service layer decodes them, runs the engine, and writes the
// blob back. The engine itself never touches the database.
type Tournament struct {
	ID     string `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"not null"`
	Slug   string `json:"slug" gorm:"uniqueIndex"`
	Status string `json:"status" gorm:"default:'draft'"` // draft, active, completed, cancelled

	// Opaque state blobs, persisted exactly as generated/edited.
	ConfigJSON   string `json:"-" gorm:"type:text"`
	PlayersJSON  string `json:"-" gorm:"type:text"`
	MatchesJSON  string `json:"-" gorm:"type:text"`
	WarningsJSON string `json:"-" gorm:"type:text"`

	// Optional absolute activation time; the background scheduler flips the
	// tournament to active once this passes.
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	ActivatedAt  *time.Time `json:"activated_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`

	Timestamps

	// Calculated fields (not stored in DB)
	TotalMatches     int `json:"total_matches,omitempty" gorm:"-"`
	CompletedMatches int `json:"completed_matches,omitempty" gorm:"-"`
	PlayerCount      int `json:"player_count,omitempty" gorm:"-"`
}

// ReportExport records a report snapshot uploaded to object storage.
type ReportExport struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	TournamentID string    `json:"tournament_id" gorm:"not null;index"`
	URL          string    `json:"url"`
	Format       string    `json:"format" gorm:"default:'json'"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
