package services

import (
	"testing"

	"github.com/dron3flyv3r/tennis-tournament/models"
)

func TestSetsWon(t *testing.T) {
	sets := []models.SetScore{
		{Team1Games: 6, Team2Games: 4},
		{Team1Games: 3, Team2Games: 6},
		{Team1Games: 7, Team2Games: 5},
		{Team1Games: 6, Team2Games: 6}, // drawn set counts for neither
	}
	t1, t2 := setsWon(sets)
	if t1 != 2 || t2 != 1 {
		t.Errorf("setsWon = (%d, %d), want (2, 1)", t1, t2)
	}
}

func TestValidClock(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"09:00", true},
		{"23:59", true},
		{"00:00", true},
		{"24:00", false},
		{"12:60", false},
		{"9:00", false},
		{"ab:cd", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := validClock(tc.in); got != tc.ok {
			t.Errorf("validClock(%q) = %v, want %v", tc.in, got, tc.ok)
		}
	}
}

func TestAllCompleted(t *testing.T) {
	done := []*models.Match{{ID: "a", Completed: true}, {ID: "b", Completed: true}}
	if !allCompleted(done) {
		t.Error("expected all completed")
	}
	done[1].Completed = false
	if allCompleted(done) {
		t.Error("expected not all completed")
	}
}
