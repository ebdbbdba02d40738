// Package models defines the game state aggregate and the entities it is
// built from: ladder entries, players, holdings and the trade log.
package models

// LadderEntry is one team's row on the competition ladder.
type LadderEntry struct {
	Name       string  `json:"name"`
	Emoji      string  `json:"emoji"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	Draws      int     `json:"draws"`
	Points     int     `json:"pts"`
	Percentage float64 `json:"pct"`
	Position   int     `json:"pos"` // 1-based rank, 1 = top of the ladder
}

// CalculatePoints returns competition points for a win/draw record
// (4 per win, 2 per draw).
func CalculatePoints(wins, draws int) int {
	return wins*4 + draws*2
}

// FindTeam returns the ladder entry with the given name, or nil.
func FindTeam(ladder []LadderEntry, name string) *LadderEntry {
	for i := range ladder {
		if ladder[i].Name == name {
			return &ladder[i]
		}
	}
	return nil
}

// TeamRank returns the 1-based ladder position of the named team, derived
// from ladder order rather than the stored Position field so that callers
// holding a freshly sorted ladder always see consistent ranks. Returns 0 if
// the team is not on the ladder.
func TeamRank(ladder []LadderEntry, name string) int {
	for i := range ladder {
		if ladder[i].Name == name {
			return i + 1
		}
	}
	return 0
}

// CloneLadder returns a deep copy of the ladder, used to snapshot the
// pre-update ordering for diff display.
func CloneLadder(ladder []LadderEntry) []LadderEntry {
	if ladder == nil {
		return nil
	}
	out := make([]LadderEntry, len(ladder))
	copy(out, ladder)
	return out
}
