package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tysonmb/sportfolio/internal/models"
)

func TestApplyInterestAndTax(t *testing.T) {
	gs := freshState()
	p := gs.Player("Tyson")
	p.Holdings = []models.Holding{
		{Team: gs.Ladder[0].Name, Shares: 100, BuyRound: 0},  // rank 1: +2%
		{Team: gs.Ladder[3].Name, Shares: 100, BuyRound: 0},  // rank 4: +0.5%
		{Team: gs.Ladder[9].Name, Shares: 100, BuyRound: 0},  // rank 10: untouched
		{Team: gs.Ladder[17].Name, Shares: 100, BuyRound: 0}, // rank 18: -1%
	}

	ApplyInterestAndTax(gs)

	assert.InDelta(t, 102, p.Holdings[0].Shares, 1e-9)
	assert.InDelta(t, 100.5, p.Holdings[1].Shares, 1e-9)
	assert.InDelta(t, 100, p.Holdings[2].Shares, 1e-9)
	assert.InDelta(t, 99, p.Holdings[3].Shares, 1e-9)

	assert.Equal(t, 1, p.ConsecutiveTop4[gs.Ladder[0].Name])
	assert.Equal(t, 1, p.ConsecutiveTop4[gs.Ladder[3].Name])
	assert.Equal(t, 0, p.ConsecutiveTop4[gs.Ladder[9].Name])

	// Interest compounds round over round while the team stays top 4.
	ApplyInterestAndTax(gs)
	assert.InDelta(t, 102*1.02, p.Holdings[0].Shares, 1e-9)
	assert.Equal(t, 2, p.ConsecutiveTop4[gs.Ladder[0].Name])
}

func TestApplyInterestAndTax_StreakResetsOutsideTop4(t *testing.T) {
	gs := freshState()
	p := gs.Player("Tyson")
	team := gs.Ladder[0].Name
	p.Holdings = []models.Holding{{Team: team, Shares: 100, BuyRound: 0}}

	ApplyInterestAndTax(gs)
	require.Equal(t, 1, p.ConsecutiveTop4[team])

	// Drop the team out of the top 4 and the streak resets.
	gs.Ladder[0], gs.Ladder[9] = gs.Ladder[9], gs.Ladder[0]
	ApplyInterestAndTax(gs)
	assert.Equal(t, 0, p.ConsecutiveTop4[team])
}

func TestResetTradeCounters(t *testing.T) {
	gs := freshState()
	gs.Player("Tyson").TradesThisRound = 3
	gs.Player("Alex").TradesThisRound = 2

	ResetTradeCounters(gs)

	for name, p := range gs.Players {
		assert.Zero(t, p.TradesThisRound, "counter for %s", name)
	}
}

func TestCaptureSnapshot(t *testing.T) {
	gs := freshState()
	p := gs.Player("Tyson")
	p.Cash = 8000
	p.Holdings = []models.Holding{{Team: gs.Ladder[0].Name, Shares: 100, BuyPrice: 6.12, BuyRound: 0}}

	CaptureSnapshot(gs)

	require.Contains(t, gs.Snapshot, "Tyson")
	snap := gs.Snapshot["Tyson"]
	assert.Equal(t, 8000.0, snap.Cash)
	assert.InDelta(t, 8000+100*6.12, snap.Total, 1e-9)
	require.Len(t, snap.Holdings, 1)

	// The snapshot is a copy, not an alias.
	p.Holdings[0].Shares = 1
	assert.Equal(t, 100.0, gs.Snapshot["Tyson"].Holdings[0].Shares)
}
