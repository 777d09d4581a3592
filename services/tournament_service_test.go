package services

import (
	"testing"

	"github.com/dron3flyv3r/tennis-tournament/models"
)

func TestBuildRosterNormalizesAndMintsIDs(t *testing.T) {
	players, err := buildRoster([]PlayerInput{
		{Name: "  anna   karlsson "},
		{ID: "existing", Name: "BEN OKAFOR", SkillLevel: 3},
	}, models.TournamentConfig{})
	if err != nil {
		t.Fatalf("buildRoster: %v", err)
	}
	if players[0].Name != "Anna Karlsson" {
		t.Errorf("name = %q, want %q", players[0].Name, "Anna Karlsson")
	}
	if players[0].ID == "" {
		t.Error("expected a minted id for a new player")
	}
	if players[1].ID != "existing" {
		t.Errorf("existing id not preserved: %q", players[1].ID)
	}
	if players[1].Name != "Ben Okafor" {
		t.Errorf("name = %q, want %q", players[1].Name, "Ben Okafor")
	}
	if players[1].SkillLevel != 3 {
		t.Errorf("skill level = %d, want 3", players[1].SkillLevel)
	}
}

func TestBuildRosterRejectsBadInput(t *testing.T) {
	cases := []struct {
		name   string
		inputs []PlayerInput
		cfg    models.TournamentConfig
		wantOK bool
	}{
		{"too few players", []PlayerInput{{Name: "Anna"}}, models.TournamentConfig{}, false},
		{"blank name", []PlayerInput{{Name: "Anna"}, {Name: "   "}}, models.TournamentConfig{}, false},
		{"duplicate name", []PlayerInput{{Name: "Anna"}, {Name: "anna"}}, models.TournamentConfig{}, false},
		{"duplicate with bypass", []PlayerInput{{Name: "Anna"}, {Name: "anna"}}, models.TournamentConfig{AllowBypass: true}, true},
		{"valid pair", []PlayerInput{{Name: "Anna"}, {Name: "Ben"}}, models.TournamentConfig{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := buildRoster(tc.inputs, tc.cfg)
			if ok := err == nil; ok != tc.wantOK {
				t.Errorf("got err=%v, wantOK=%v", err, tc.wantOK)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	valid := models.TournamentConfig{
		GameType:           models.GameTypeDoubles,
		DoublesPartnerMode: models.PartnerModeRandom,
		ScoringMode:        models.ScoringModeSets,
		MatchDuration:      45,
	}
	if err := validateConfig(&valid); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := valid
	bad.GameType = "triples"
	if err := validateConfig(&bad); err == nil {
		t.Error("expected error for unknown game_type")
	}

	bad = valid
	bad.DoublesPartnerMode = "rotating"
	if err := validateConfig(&bad); err == nil {
		t.Error("expected error for unknown doubles_partner_mode")
	}

	bad = valid
	bad.MatchDuration = 0
	if err := validateConfig(&bad); err == nil {
		t.Error("expected error for zero match_duration")
	}

	// singles never checks the partner mode
	singles := models.TournamentConfig{GameType: models.GameTypeSingles, MatchDuration: 30}
	if err := validateConfig(&singles); err != nil {
		t.Errorf("singles config rejected: %v", err)
	}
}
