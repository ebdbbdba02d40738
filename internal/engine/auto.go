package engine

import (
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tysonmb/sportfolio/internal/market"
	"github.com/tysonmb/sportfolio/internal/models"
	"github.com/tysonmb/sportfolio/internal/strategy"
)

// MaxAutoTradesPerRound caps how many proposals an automated participant may
// execute in one round; proposals beyond the cap are dropped, not retried.
const MaxAutoTradesPerRound = 3

// RunAutoTrades executes strategy proposals for the automated participants,
// in the given order, for the upcoming round. Proposals that fail validation
// (minimum notional, cash, concentration cap, hold period) are skipped
// silently with no side effects.
func RunAutoTrades(gs *models.GameState, order []string, strategies map[string]strategy.Strategy, round int, log logrus.FieldLogger) {
	for _, name := range order {
		p := gs.Player(name)
		strat := strategies[name]
		if p == nil || strat == nil {
			continue
		}
		p.TradesThisRound = 0

		for _, prop := range strat.Propose(p, gs.Ladder, round) {
			if p.TradesThisRound >= MaxAutoTradesPerRound {
				continue
			}
			var ok bool
			switch prop.Type {
			case models.TradeBuy:
				ok = applyAutoBuy(gs, p, prop.Team, prop.Amount, round)
			case models.TradeSell:
				ok = applyAutoSell(gs, p, prop.Team, round)
			}
			if ok && log != nil {
				log.WithFields(logrus.Fields{
					"player":   name,
					"strategy": strat.Name(),
					"type":     prop.Type,
					"team":     prop.Team,
					"round":    round,
				}).Debug("automated trade executed")
			}
		}
	}
}

// applyAutoBuy spends a clamped notional on team: the proposal amount capped
// by available cash after the fee and by the room left under the
// concentration cap. Automated buys take fractional shares. Returns false if
// the clamped amount falls under the minimum notional.
func applyAutoBuy(gs *models.GameState, p *models.Player, team string, amount float64, round int) bool {
	if models.TeamRank(gs.Ladder, team) == 0 {
		return false
	}
	fee := market.BrokerageFee(p, gs.Ladder)
	price := market.Price(team, gs.Ladder)
	maxInvest := market.TotalValue(p, gs.Ladder) * market.PortfolioCap

	existing := p.Holding(team)
	existingVal := 0.0
	if existing != nil {
		existingVal = existing.Shares * price
	}
	available := math.Min(amount, math.Min(p.Cash-fee, maxInvest-existingVal))
	if available < market.MinAutoNotional || p.Cash < fee+available {
		return false
	}

	shares := available / price
	p.Cash -= available + fee
	if existing != nil {
		existing.Merge(shares, price)
	} else {
		p.Holdings = append(p.Holdings, models.Holding{
			Team:     team,
			Shares:   shares,
			BuyPrice: price,
			BuyRound: round,
		})
	}
	p.TradesThisRound++
	p.TradeLog = append(p.TradeLog, models.TradeRecord{
		ID:     uuid.New().String(),
		Type:   models.TradeBuy,
		Team:   team,
		Value:  shares * price,
		Fee:    fee,
		Round:  round,
		Shares: shares,
		Price:  price,
	})
	return true
}

// applyAutoSell closes the participant's full holding in team, subject to
// the same hold-period rule as human sells.
func applyAutoSell(gs *models.GameState, p *models.Player, team string, round int) bool {
	h := p.Holding(team)
	if h == nil || !market.CanSell(h, round) {
		return false
	}
	price := market.Price(team, gs.Ladder)
	fee := market.BrokerageFee(p, gs.Ladder)
	shares := h.Shares
	value := shares * price

	p.Cash += value - fee
	p.RemoveHolding(team)
	p.TradesThisRound++
	p.TradeLog = append(p.TradeLog, models.TradeRecord{
		ID:     uuid.New().String(),
		Type:   models.TradeSell,
		Team:   team,
		Value:  value,
		Fee:    fee,
		Round:  round,
		Shares: shares,
		Price:  price,
	})
	return true
}
