// Package engine implements the trading and round-economy core: trade
// validation and execution, undo, end-of-round interest and tax, automated
// trading, and ladder ranking. All transitions are pure functions of the
// GameState aggregate; the Service type wires them to persistence.
package engine

import (
	"math"

	"github.com/google/uuid"

	"github.com/tysonmb/sportfolio/internal/market"
	"github.com/tysonmb/sportfolio/internal/models"
)

// BuyResult reports an executed buy.
type BuyResult struct {
	Shares float64 `json:"shares"`
	Cost   float64 `json:"cost"`
	Fee    float64 `json:"fee"`
}

// SellResult reports an executed sell.
type SellResult struct {
	Net float64 `json:"net"`
	Fee float64 `json:"fee"`
}

// ExecuteBuy validates and applies a buy of up to amount dollars of team for
// the player. Human buys floor to whole shares. Validation precedes every
// mutation: on error the player is unchanged.
func ExecuteBuy(gs *models.GameState, p *models.Player, team string, amount float64) (*BuyResult, error) {
	if models.TeamRank(gs.Ladder, team) == 0 {
		return nil, ErrUnknownTeam
	}

	price := market.Price(team, gs.Ladder)
	fee := market.BrokerageFee(p, gs.Ladder)
	shares := math.Floor(amount / price)
	cost := shares * price

	if shares <= 0 {
		return nil, ErrInvalidAmount
	}
	if cost+fee > p.Cash {
		return nil, ErrInsufficientFunds
	}

	maxInvest := market.TotalValue(p, gs.Ladder) * market.PortfolioCap
	existing := p.Holding(team)
	existingVal := 0.0
	if existing != nil {
		existingVal = existing.Shares * price
	}
	if existingVal+cost > maxInvest {
		return nil, &CapExceededError{Headroom: math.Floor(maxInvest - existingVal)}
	}

	wasNew := existing == nil
	p.Cash -= cost + fee
	p.TradesThisRound++
	if existing != nil {
		existing.Merge(shares, price)
	} else {
		p.Holdings = append(p.Holdings, models.Holding{
			Team:     team,
			Shares:   shares,
			BuyPrice: price,
			BuyRound: gs.Round,
		})
	}
	p.TradeLog = append(p.TradeLog, models.TradeRecord{
		ID:            uuid.New().String(),
		Type:          models.TradeBuy,
		Team:          team,
		Value:         cost,
		Fee:           fee,
		Round:         gs.Round,
		Shares:        shares,
		Price:         price,
		WasNewHolding: wasNew,
	})

	return &BuyResult{Shares: shares, Cost: cost, Fee: fee}, nil
}

// ExecuteSell validates and applies a sale of up to shares of team for the
// player. Requests beyond the held quantity are clamped to the full holding.
func ExecuteSell(gs *models.GameState, p *models.Player, team string, shares float64) (*SellResult, error) {
	if shares <= 0 {
		return nil, ErrInvalidAmount
	}
	h := p.Holding(team)
	if h == nil {
		return nil, ErrNoHolding
	}
	if !market.CanSell(h, gs.Round) {
		return nil, &HoldPeriodError{RoundsRemaining: market.RoundsUntilSellable(h, gs.Round)}
	}

	sellShares := math.Min(shares, h.Shares)
	price := market.Price(team, gs.Ladder)
	fee := market.BrokerageFee(p, gs.Ladder)
	net := sellShares*price - fee
	prevBuyPrice := h.BuyPrice
	prevBuyRound := h.BuyRound

	p.Cash += net
	p.TradesThisRound++
	if sellShares >= h.Shares {
		p.RemoveHolding(team)
	} else {
		h.Shares -= sellShares
	}
	p.TradeLog = append(p.TradeLog, models.TradeRecord{
		ID:           uuid.New().String(),
		Type:         models.TradeSell,
		Team:         team,
		Value:        sellShares * price,
		Fee:          fee,
		Round:        gs.Round,
		Shares:       sellShares,
		Price:        price,
		PrevBuyPrice: prevBuyPrice,
		PrevBuyRound: prevBuyRound,
	})

	return &SellResult{Net: net, Fee: fee}, nil
}

// UndoTrade reverses a trade the player logged in the current round,
// restoring cash and holdings to their exact pre-trade values and removing
// the log entry. Trades from prior rounds are not reversible.
func UndoTrade(gs *models.GameState, p *models.Player, tradeID string) error {
	idx := p.FindTrade(tradeID)
	if idx == -1 {
		return ErrTradeNotFound
	}
	rec := p.TradeLog[idx]
	if rec.Round != gs.Round {
		return ErrNotCurrentRound
	}

	switch rec.Type {
	case models.TradeBuy:
		h := p.Holding(rec.Team)
		if h == nil {
			return ErrNoHolding
		}
		if rec.WasNewHolding {
			p.RemoveHolding(rec.Team)
		} else {
			h.Shares -= rec.Shares
			if h.Shares <= 0 {
				p.RemoveHolding(rec.Team)
			}
		}
		p.Cash += rec.Value + rec.Fee
	case models.TradeSell:
		p.Cash -= rec.Value + rec.Fee
		if h := p.Holding(rec.Team); h != nil {
			// Re-merge at the pre-trade average so a later full undo still
			// reconstructs the original holding exactly.
			total := h.Shares + rec.Shares
			h.BuyPrice = (h.Shares*h.BuyPrice + rec.Shares*rec.PrevBuyPrice) / total
			h.Shares = total
		} else {
			p.Holdings = append(p.Holdings, models.Holding{
				Team:     rec.Team,
				Shares:   rec.Shares,
				BuyPrice: rec.PrevBuyPrice,
				BuyRound: rec.PrevBuyRound,
			})
		}
	}

	if p.TradesThisRound > 0 {
		p.TradesThisRound--
	}
	p.RemoveTrade(idx)
	return nil
}
