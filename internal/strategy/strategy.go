// Package strategy implements the fixed decision policies that drive the
// automated participants. Each strategy is a pure function of the player,
// the ladder and the upcoming round: it proposes trades and never mutates
// state. The engine applies proposals through the same validation as human
// trades.
package strategy

import (
	"fmt"

	"github.com/tysonmb/sportfolio/internal/market"
	"github.com/tysonmb/sportfolio/internal/models"
)

// Strategy names accepted by ForName.
const (
	NameBlueChip   = "blueChip"
	NamePassive    = "passive"
	NameMomentum   = "momentum"
	NameContrarian = "contrarian"
	NameBalanced   = "balanced"
)

// Proposal is one trade a strategy would like executed. Amount is the buy
// notional in dollars; sells always close the full holding.
type Proposal struct {
	Type   models.TradeType
	Team   string
	Amount float64
}

// Strategy produces trade proposals for an automated participant.
type Strategy interface {
	Name() string
	Propose(p *models.Player, ladder []models.LadderEntry, round int) []Proposal
}

// ForName returns the strategy implementation for a configured name. The
// selection happens once per participant at setup, never per trade.
func ForName(name string) (Strategy, error) {
	switch name {
	case NameBlueChip, NamePassive:
		return &blueChip{name: name}, nil
	case NameMomentum:
		return &momentum{}, nil
	case NameContrarian:
		return &contrarian{}, nil
	case NameBalanced:
		return &balanced{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// ValidNames lists every accepted strategy name, for config validation.
func ValidNames() []string {
	return []string{NameBlueChip, NamePassive, NameMomentum, NameContrarian, NameBalanced}
}

// blueChip buys equal stakes in the top four teams on round 1 and then sits
// on them for the season. "passive" is the same policy under another name.
type blueChip struct {
	name string
}

func (s *blueChip) Name() string { return s.name }

func (s *blueChip) Propose(p *models.Player, ladder []models.LadderEntry, round int) []Proposal {
	if round != 1 || len(p.Holdings) > 0 {
		return nil
	}
	proposals := make([]Proposal, 0, 4)
	for i := 0; i < 4 && i < len(ladder); i++ {
		proposals = append(proposals, Proposal{Type: models.TradeBuy, Team: ladder[i].Name, Amount: 2000})
	}
	return proposals
}

// momentum chases the best-ranked team it does not yet hold and dumps
// holdings that have slid down the ladder.
type momentum struct{}

func (s *momentum) Name() string { return NameMomentum }

func (s *momentum) Propose(p *models.Player, ladder []models.LadderEntry, round int) []Proposal {
	if round <= 1 {
		return nil
	}
	var proposals []Proposal

	total := market.TotalValue(p, ladder)
	for i, t := range ladder {
		if i >= 9 {
			break
		}
		if p.Holding(t.Name) == nil {
			if p.Cash > 1000 {
				amount := min(p.Cash*0.6, total*market.PortfolioCap)
				proposals = append(proposals, Proposal{Type: models.TradeBuy, Team: t.Name, Amount: amount})
			}
			break
		}
	}

	for i := range p.Holdings {
		h := &p.Holdings[i]
		if market.CanSell(h, round) && models.TeamRank(ladder, h.Team) > 12 {
			proposals = append(proposals, Proposal{Type: models.TradeSell, Team: h.Team})
		}
	}
	return proposals
}

// contrarian buys one cheap team from the bottom half of the ladder.
type contrarian struct{}

func (s *contrarian) Name() string { return NameContrarian }

func (s *contrarian) Propose(p *models.Player, ladder []models.LadderEntry, round int) []Proposal {
	if round <= 1 || p.Cash <= 1000 {
		return nil
	}
	total := market.TotalValue(p, ladder)
	for i := 9; i < len(ladder); i++ {
		if p.Holding(ladder[i].Name) == nil {
			amount := min(p.Cash*0.5, total*market.PortfolioCap)
			return []Proposal{{Type: models.TradeBuy, Team: ladder[i].Name, Amount: amount}}
		}
	}
	return nil
}

// balanced rebalances every third round: sell laggards, then top up from the
// top six if cash allows.
type balanced struct{}

func (s *balanced) Name() string { return NameBalanced }

func (s *balanced) Propose(p *models.Player, ladder []models.LadderEntry, round int) []Proposal {
	if round == 0 || round%3 != 0 {
		return nil
	}
	var proposals []Proposal

	for i := range p.Holdings {
		h := &p.Holdings[i]
		if market.CanSell(h, round) && models.TeamRank(ladder, h.Team) > 14 {
			proposals = append(proposals, Proposal{Type: models.TradeSell, Team: h.Team})
		}
	}

	if p.Cash > 1500 {
		total := market.TotalValue(p, ladder)
		for i := 0; i < 6 && i < len(ladder); i++ {
			if p.Holding(ladder[i].Name) == nil {
				amount := min(p.Cash*0.7, total*market.PortfolioCap)
				proposals = append(proposals, Proposal{Type: models.TradeBuy, Team: ladder[i].Name, Amount: amount})
				break
			}
		}
	}
	return proposals
}
