package engine

import (
	"github.com/tysonmb/sportfolio/internal/market"
	"github.com/tysonmb/sportfolio/internal/models"
)

// ApplyInterestAndTax compounds end-of-round interest and tax into every
// holding of every participant. Top-4 teams earn rank interest on share
// count and extend the per-team consecutive-top-4 streak; any other rank
// resets the streak. The last-placed team pays the bottom tax. With one
// ranking the two branches are mutually exclusive; both are evaluated
// independently, matching the documented behavior.
func ApplyInterestAndTax(gs *models.GameState) {
	for _, p := range gs.Players {
		for i := range p.Holdings {
			h := &p.Holdings[i]
			rank := models.TeamRank(gs.Ladder, h.Team)
			if rank >= 1 && rank <= 4 {
				p.ConsecutiveTop4[h.Team]++
				h.Shares *= 1 + market.InterestRate(rank)
			} else {
				p.ConsecutiveTop4[h.Team] = 0
			}
			if rank == market.BottomRank() {
				h.Shares *= 1 - market.BottomTax
			}
		}
	}
}

// ResetTradeCounters zeroes every participant's per-round trade counter,
// returning brokerage fees to the base rate for the new round.
func ResetTradeCounters(gs *models.GameState) {
	for _, p := range gs.Players {
		p.TradesThisRound = 0
	}
}

// CaptureSnapshot records every participant's cash, holdings and total
// valuation at the round open, for later reporting.
func CaptureSnapshot(gs *models.GameState) {
	snap := make(map[string]models.PlayerSnapshot, len(gs.Players))
	for name, p := range gs.Players {
		holdings := make([]models.Holding, len(p.Holdings))
		copy(holdings, p.Holdings)
		snap[name] = models.PlayerSnapshot{
			Cash:     p.Cash,
			Holdings: holdings,
			Total:    market.TotalValue(p, gs.Ladder),
		}
	}
	gs.Snapshot = snap
}
