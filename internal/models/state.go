package models

import "time"

// Season status values.
const (
	// StatusTrading means the trade window for the upcoming round is open.
	StatusTrading = "trading"
	// StatusLockout means trading is closed until the next round advance.
	StatusLockout = "lockout"
)

// Fixture is one scheduled match, home team first.
type Fixture [2]string

// GameState is the aggregate root for one season's economy. It is read in
// full, mutated by exactly one operation, and written back in full; no
// operation partially persists it.
type GameState struct {
	Round         int                       `json:"round"` // 0 = pre-season
	Ladder        []LadderEntry             `json:"ladder"`
	PrevLadder    []LadderEntry             `json:"prevLadder"`
	Players       map[string]*Player        `json:"players"`
	Fixtures      map[string][]Fixture      `json:"fixtures"`
	TradeDeadline *time.Time                `json:"tradeDeadline,omitempty"`
	Status        string                    `json:"status,omitempty"`
	Snapshot      map[string]PlayerSnapshot `json:"snapshot,omitempty"`
	LastUpdated   time.Time                 `json:"lastUpdated"`
}

// PlayerSeed describes one participant when a fresh season is created.
type PlayerSeed struct {
	Name     string
	IsHuman  bool
	Strategy string // automated players only
}

// NewGameState creates a fresh season: round 0, the default ladder in seed
// order, every participant at startingCash with no holdings, and the default
// fixture list.
func NewGameState(seeds []PlayerSeed, startingCash float64) *GameState {
	ladder := make([]LadderEntry, len(DefaultTeams))
	for i, t := range DefaultTeams {
		ladder[i] = LadderEntry{
			Name:       t.Name,
			Emoji:      t.Emoji,
			Percentage: 100,
			Position:   i + 1,
		}
	}

	players := make(map[string]*Player, len(seeds))
	for _, s := range seeds {
		players[s.Name] = NewPlayer(s.Name, s.IsHuman, s.Strategy, startingCash)
	}

	return &GameState{
		Round:    0,
		Ladder:   ladder,
		Players:  players,
		Fixtures: DefaultFixtures(),
		Status:   StatusTrading,
	}
}

// Player returns the named participant, or nil.
func (g *GameState) Player(name string) *Player {
	return g.Players[name]
}

// TradeWindowClosed reports whether a configured deadline has passed at the
// given instant. A nil deadline leaves the window open.
func (g *GameState) TradeWindowClosed(now time.Time) bool {
	return g.TradeDeadline != nil && now.After(*g.TradeDeadline)
}
