package engine

import (
	"fmt"
	"sort"

	"github.com/tysonmb/sportfolio/internal/models"
)

// LadderUpdate is one team's revised season record, supplied by the
// administrator after results come in.
type LadderUpdate struct {
	Team       string  `json:"name"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	Draws      int     `json:"draws"`
	Percentage float64 `json:"pct"`
}

// ApplyLadderResults validates the updates, snapshots the previous ladder,
// applies the new records, recomputes competition points and re-sorts the
// ladder by points then percentage, reassigning contiguous 1..N positions.
// This is the only path that mutates ranks. Malformed updates are rejected
// in full before any mutation.
func ApplyLadderResults(gs *models.GameState, updates []LadderUpdate) error {
	for _, u := range updates {
		if models.FindTeam(gs.Ladder, u.Team) == nil {
			return fmt.Errorf("%w: %q", ErrUnknownTeam, u.Team)
		}
		if u.Wins < 0 || u.Losses < 0 || u.Draws < 0 {
			return fmt.Errorf("%w: negative record for %q", ErrInvalidResults, u.Team)
		}
		if u.Percentage <= 0 {
			return fmt.Errorf("%w: non-positive percentage for %q", ErrInvalidResults, u.Team)
		}
	}

	gs.PrevLadder = models.CloneLadder(gs.Ladder)

	for _, u := range updates {
		team := models.FindTeam(gs.Ladder, u.Team)
		team.Wins = u.Wins
		team.Losses = u.Losses
		team.Draws = u.Draws
		team.Percentage = u.Percentage
		team.Points = models.CalculatePoints(u.Wins, u.Draws)
	}

	sort.SliceStable(gs.Ladder, func(i, j int) bool {
		if gs.Ladder[i].Points != gs.Ladder[j].Points {
			return gs.Ladder[i].Points > gs.Ladder[j].Points
		}
		return gs.Ladder[i].Percentage > gs.Ladder[j].Percentage
	})
	for i := range gs.Ladder {
		gs.Ladder[i].Position = i + 1
	}
	return nil
}
