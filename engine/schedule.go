package engine

import (
	"sort"
	"strings"

	"github.com/dron3flyv3r/tennis-tournament/models"
)

type breakWindow struct {
	start int
	end   int
}

// AssignCourtsAndTimes packs the generated matches onto the configured courts
// slot by slot, mutating each match's Court and Time in place. First-fit
// greedy: matches are taken in generation order, up to one per court per
// slot, a player never plays twice in one slot, and no match starts inside a
// scheduled break. The result is feasible and conflict-free, not minimal in
// total duration.
//
// Meant to be called once per unscheduled batch; it does not reschedule
// matches incrementally.
func AssignCourtsAndTimes(matches []*models.Match, cfg models.TournamentConfig) {
	if len(matches) == 0 {
		return
	}

	courts := activeCourts(cfg.Courts)
	matchDuration := max(1, cfg.MatchDuration)
	slotGap := max(0, cfg.BreakDuration)
	start := ParseClock(cfg.StartTime)

	if len(courts) == 0 {
		// No courts configured: hand out sequential times with a blank court
		// so downstream consumers still get a usable schedule.
		for i, m := range matches {
			m.Court = ""
			m.Time = FormatClock(start + i*(matchDuration+slotGap))
		}
		return
	}

	remaining := make([]*models.Match, len(matches))
	copy(remaining, matches)

	playerNextAvailable := make(map[string]int)
	breaks := breakWindows(cfg.ScheduledBreaks)

	// skipBreaks pushes a candidate start past every break window containing
	// it. Breaks are fixed external windows, never overridable.
	skipBreaks := func(t int) int {
		for {
			moved := false
			for _, b := range breaks {
				if t >= b.start && t < b.end {
					t = b.end
					moved = true
				}
			}
			if !moved {
				return t
			}
		}
	}

	currentTime := skipBreaks(start)

	for len(remaining) > 0 {
		slotPlayers := make(map[string]bool)
		courtsUsed := 0
		assignedThisSlot := false

		for idx := 0; idx < len(remaining) && courtsUsed < len(courts); {
			m := remaining[idx]
			conflict := false
			for _, id := range m.PlayerIDs() {
				nextAvailable, ok := playerNextAvailable[id]
				if !ok {
					nextAvailable = start
				}
				if nextAvailable > currentTime || slotPlayers[id] {
					conflict = true
					break
				}
			}
			if conflict {
				idx++
				continue
			}

			m.Court = courts[courtsUsed]
			m.Time = FormatClock(currentTime)
			for _, id := range m.PlayerIDs() {
				slotPlayers[id] = true
				playerNextAvailable[id] = currentTime + matchDuration + slotGap
			}

			remaining = append(remaining[:idx], remaining[idx+1:]...)
			courtsUsed++
			assignedThisSlot = true
		}

		next := currentTime + matchDuration + slotGap
		if !assignedThisSlot {
			// Everyone eligible is still busy; jump to the earliest moment a
			// busy player frees up rather than idling a full slot.
			if t, ok := minFutureAvailability(playerNextAvailable, currentTime); ok && t < next {
				next = t
			}
		}
		currentTime = skipBreaks(next)
	}
}

func activeCourts(courts []string) []string {
	var out []string
	for _, c := range courts {
		if strings.TrimSpace(c) != "" {
			out = append(out, c)
		}
	}
	return out
}

func breakWindows(breaks []models.ScheduledBreak) []breakWindow {
	var out []breakWindow
	for _, b := range breaks {
		start := ParseClock(b.Time)
		end := start + max(0, b.Duration)
		if end > start {
			out = append(out, breakWindow{start: start, end: end})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].start < out[j].start })
	return out
}

func minFutureAvailability(availability map[string]int, now int) (int, bool) {
	best, found := 0, false
	for _, t := range availability {
		if t <= now {
			continue
		}
		if !found || t < best {
			best = t
			found = true
		}
	}
	return best, found
}
