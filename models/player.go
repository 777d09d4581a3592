package models

// Player is a roster entry. The roster is the single source of truth for
// player identity: matches hold pointers into the roster, so a name or skill
// edit is visible everywhere the player is referenced.
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SkillLevel int    `json:"skill_level,omitempty"` // optional 1-10, display only
}
