// Package market holds the economy's fixed parameters and the pure pricing,
// valuation and fee calculations built on them.
package market

import (
	"math"

	"github.com/tysonmb/sportfolio/internal/models"
)

// Economy parameters.
const (
	// FeeRate is the base brokerage fee as a fraction of total valuation.
	FeeRate = 0.005
	// PortfolioCap is the maximum fraction of total valuation any single
	// team may represent after a buy.
	PortfolioCap = 0.25
	// BottomTax is the per-round share tax on holding the last-placed team.
	BottomTax = 0.01
	// MinHold is the minimum rounds a holding must be kept before selling.
	MinHold = 2
	// PreseasonHold applies instead of MinHold to round-0 entries.
	PreseasonHold = 3
	// MinAutoNotional is the smallest buy an automated participant makes.
	MinAutoNotional = 50.0
)

// priceScale maps ladder rank (1-based) to share price. Rank 1 commands the
// highest price; teams ranked beyond the table trade at the last slot.
var priceScale = [...]float64{
	6.12, 5.56, 5.05, 4.59, 4.18,
	3.80, 3.45, 3.14, 2.85, 2.59,
	2.36, 2.14, 1.95, 1.77, 1.61,
	1.46, 1.33, 1.00,
}

// interestRates maps top-4 ladder rank to per-round share interest.
var interestRates = map[int]float64{
	1: 0.02,
	2: 0.015,
	3: 0.01,
	4: 0.005,
}

// PriceForRank returns the share price for a 1-based ladder rank, flooring
// at the last slot for ranks beyond the table.
func PriceForRank(rank int) float64 {
	if rank < 1 || rank > len(priceScale) {
		return priceScale[len(priceScale)-1]
	}
	return priceScale[rank-1]
}

// Price returns the share price of the named team given the current ladder.
func Price(team string, ladder []models.LadderEntry) float64 {
	return PriceForRank(models.TeamRank(ladder, team))
}

// InterestRate returns the per-round interest rate for a ladder rank, or 0
// for ranks outside the top 4.
func InterestRate(rank int) float64 {
	return interestRates[rank]
}

// BottomRank is the rank that incurs the bottom tax.
func BottomRank() int {
	return len(priceScale)
}

// TotalValue is a player's mark-to-market valuation: cash plus every holding
// at the current ladder price.
func TotalValue(p *models.Player, ladder []models.LadderEntry) float64 {
	total := p.Cash
	for _, h := range p.Holdings {
		total += h.Shares * Price(h.Team, ladder)
	}
	return total
}

// BrokerageFee is the fee for the player's next trade this round: total
// valuation × FeeRate, doubling with every trade already executed this
// round.
func BrokerageFee(p *models.Player, ladder []models.LadderEntry) float64 {
	return TotalValue(p, ladder) * FeeRate * math.Pow(2, float64(p.TradesThisRound))
}

// CanSell reports whether the holding has been kept for its minimum hold
// period at the given round. Pre-season entries (BuyRound 0) hold for
// PreseasonHold rounds, all others for MinHold.
func CanSell(h *models.Holding, round int) bool {
	return RoundsUntilSellable(h, round) <= 0
}

// RoundsUntilSellable returns how many more rounds must pass before the
// holding may be sold (0 or negative when already sellable).
func RoundsUntilSellable(h *models.Holding, round int) int {
	minHold := MinHold
	if h.BuyRound == 0 {
		minHold = PreseasonHold
	}
	return minHold - (round - h.BuyRound)
}
