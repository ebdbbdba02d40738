package models

// Player is one market participant, human or automated.
type Player struct {
	Name            string         `json:"name"`
	IsHuman         bool           `json:"isHuman"`
	Strategy        string         `json:"strategy,omitempty"` // automated players only
	Cash            float64        `json:"cash"`
	Holdings        []Holding      `json:"holdings"`
	TradeLog        []TradeRecord  `json:"tradeLog"`
	TradesThisRound int            `json:"tradesThisRound"`
	ConsecutiveTop4 map[string]int `json:"consecutiveTop4"`
}

// NewPlayer creates a participant with the starting cash balance and no
// holdings.
func NewPlayer(name string, isHuman bool, strategy string, startingCash float64) *Player {
	return &Player{
		Name:            name,
		IsHuman:         isHuman,
		Strategy:        strategy,
		Cash:            startingCash,
		Holdings:        make([]Holding, 0),
		TradeLog:        make([]TradeRecord, 0),
		ConsecutiveTop4: make(map[string]int),
	}
}

// Holding returns the player's open position in team, or nil.
func (p *Player) Holding(team string) *Holding {
	for i := range p.Holdings {
		if p.Holdings[i].Team == team {
			return &p.Holdings[i]
		}
	}
	return nil
}

// RemoveHolding deletes the player's position in team, preserving the order
// of the remaining holdings.
func (p *Player) RemoveHolding(team string) {
	kept := p.Holdings[:0]
	for _, h := range p.Holdings {
		if h.Team != team {
			kept = append(kept, h)
		}
	}
	p.Holdings = kept
}

// FindTrade returns the index of the logged trade with the given ID, or -1.
func (p *Player) FindTrade(id string) int {
	for i := range p.TradeLog {
		if p.TradeLog[i].ID == id {
			return i
		}
	}
	return -1
}

// RemoveTrade deletes the log entry at index i.
func (p *Player) RemoveTrade(i int) {
	p.TradeLog = append(p.TradeLog[:i], p.TradeLog[i+1:]...)
}

// PlayerSnapshot is a player's valuation captured at a round open.
type PlayerSnapshot struct {
	Cash     float64   `json:"cash"`
	Holdings []Holding `json:"holdings"`
	Total    float64   `json:"total"`
}
