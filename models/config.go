package models

// GameType selects singles or doubles play.
type GameType string

const (
	GameTypeSingles GameType = "singles"
	GameTypeDoubles GameType = "doubles"
)

// PartnerMode controls how doubles partnerships are formed.
type PartnerMode string

const (
	PartnerModeFixed  PartnerMode = "fixed"
	PartnerModeRandom PartnerMode = "random-non-repeating"
)

// ScoringMode selects set-based or single-number scoring.
type ScoringMode string

const (
	ScoringModeSets   ScoringMode = "sets"
	ScoringModeSimple ScoringMode = "simple"
)

// ScheduledBreak is a fixed time window during which no match may start.
type ScheduledBreak struct {
	ID       string `json:"id"`
	Time     string `json:"time"`     // HH:MM start of the break
	Duration int    `json:"duration"` // minutes
}

// TournamentConfig is the validated configuration supplied by the caller.
// Roster and config validation (player counts, duration floors, duplicate
// names) happens upstream; the engine takes these values as given.
type TournamentConfig struct {
	TournamentName             string           `json:"tournament_name"`
	GameType                   GameType         `json:"game_type"`
	DoublesPartnerMode         PartnerMode      `json:"doubles_partner_mode"`
	ScoringMode                ScoringMode      `json:"scoring_mode"`
	Courts                     []string         `json:"courts"` // order = assignment preference
	StartTime                  string           `json:"start_time"` // HH:MM
	MatchDuration              int              `json:"match_duration"` // minutes
	BreakDuration              int              `json:"break_duration"` // minutes between matches
	ScheduledBreaks            []ScheduledBreak `json:"scheduled_breaks,omitempty"`
	EnforceNonRepeatingMatches bool             `json:"enforce_non_repeating_matches"`
	EnforceFairMatches         bool             `json:"enforce_fair_matches"`
	AllowBypass                bool             `json:"allow_bypass"` // consumed by the caller, not the engine
}
