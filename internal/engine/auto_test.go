package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tysonmb/sportfolio/internal/models"
	"github.com/tysonmb/sportfolio/internal/strategy"
)

func mustStrategy(t *testing.T, name string) strategy.Strategy {
	t.Helper()
	s, err := strategy.ForName(name)
	require.NoError(t, err)
	return s
}

func autoState(t *testing.T, botName, stratName string) (*models.GameState, map[string]strategy.Strategy) {
	t.Helper()
	gs := models.NewGameState([]models.PlayerSeed{
		{Name: "Tyson", IsHuman: true},
		{Name: botName, Strategy: stratName},
	}, 10000)
	return gs, map[string]strategy.Strategy{botName: mustStrategy(t, stratName)}
}

// A blue-chip player proposes four round-1 buys but the per-round cap stops
// the fourth.
func TestRunAutoTrades_BlueChipCappedAtThree(t *testing.T) {
	gs, strategies := autoState(t, "Jordan", strategy.NameBlueChip)

	RunAutoTrades(gs, []string{"Jordan"}, strategies, 1, nil)

	p := gs.Player("Jordan")
	require.Len(t, p.Holdings, 3, "trade cap stops the fourth buy")
	assert.Equal(t, MaxAutoTradesPerRound, p.TradesThisRound)
	for i, h := range p.Holdings {
		assert.Equal(t, gs.Ladder[i].Name, h.Team)
		assert.Equal(t, 1, h.BuyRound, "automated buys open at the upcoming round")
		assert.Greater(t, h.Shares, 0.0)
	}
	assert.Len(t, p.TradeLog, 3)
}

func TestRunAutoTrades_SkipsBelowMinimumNotional(t *testing.T) {
	gs, strategies := autoState(t, "Jordan", strategy.NameBlueChip)
	p := gs.Player("Jordan")
	p.Cash = 60 // fee eats most of it; clamped notional lands under $50

	RunAutoTrades(gs, []string{"Jordan"}, strategies, 1, nil)

	assert.Empty(t, p.Holdings, "proposal dropped without side effects")
	assert.Empty(t, p.TradeLog)
}

func TestRunAutoTrades_BuyClampedToCapRoom(t *testing.T) {
	gs, strategies := autoState(t, "Casey", strategy.NameContrarian)
	p := gs.Player("Casey")

	RunAutoTrades(gs, []string{"Casey"}, strategies, 2, nil)

	require.Len(t, p.Holdings, 1)
	h := p.Holdings[0]
	assert.Equal(t, gs.Ladder[9].Name, h.Team, "first bottom-half team not yet held")

	// The clamp keeps the position at or under 25% of the pre-trade
	// valuation ($10,000), even though the strategy asked for 50% of cash.
	assert.InDelta(t, 2500, h.Shares*h.BuyPrice, 1e-6)
}

func TestRunAutoTrades_MomentumSellsLaggards(t *testing.T) {
	gs, strategies := autoState(t, "Alex", strategy.NameMomentum)
	p := gs.Player("Alex")
	laggard := gs.Ladder[14].Name // rank 15, past its hold period
	p.Holdings = []models.Holding{{Team: laggard, Shares: 100, BuyPrice: 2.0, BuyRound: 1}}
	gs.Round = 3

	RunAutoTrades(gs, []string{"Alex"}, strategies, 4, nil)

	assert.Nil(t, p.Holding(laggard), "laggard sold")
	require.NotEmpty(t, p.TradeLog)
	var sold bool
	for _, rec := range p.TradeLog {
		if rec.Type == models.TradeSell && rec.Team == laggard {
			sold = true
		}
	}
	assert.True(t, sold)
}

func TestRunAutoTrades_HoldPeriodBlocksAutomatedSell(t *testing.T) {
	gs, strategies := autoState(t, "Alex", strategy.NameMomentum)
	p := gs.Player("Alex")
	p.Cash = 500 // below the buy gate so only the sell proposal remains
	laggard := gs.Ladder[14].Name
	p.Holdings = []models.Holding{{Team: laggard, Shares: 100, BuyPrice: 2.0, BuyRound: 3}}

	RunAutoTrades(gs, []string{"Alex"}, strategies, 4, nil)

	assert.NotNil(t, p.Holding(laggard), "hold period not met, sell skipped")
}

func TestRunAutoTrades_ResetsCounterBeforeTrading(t *testing.T) {
	gs, strategies := autoState(t, "Jordan", strategy.NameBlueChip)
	p := gs.Player("Jordan")
	p.TradesThisRound = 3 // stale from the previous round

	RunAutoTrades(gs, []string{"Jordan"}, strategies, 1, nil)

	assert.NotEmpty(t, p.Holdings, "stale counter must not block the new round")
}
