package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tysonmb/sportfolio/internal/models"
)

func TestApplyLadderResults_RanksAndPoints(t *testing.T) {
	gs := freshState()

	updates := []LadderUpdate{
		{Team: "West Coast", Wins: 3, Losses: 0, Draws: 0, Percentage: 140},       // 12 pts
		{Team: "Richmond", Wins: 2, Losses: 1, Draws: 1, Percentage: 120},         // 10 pts
		{Team: "Brisbane Lions", Wins: 2, Losses: 1, Draws: 1, Percentage: 130},   // 10 pts, better pct
		{Team: "North Melbourne", Wins: 0, Losses: 3, Draws: 0, Percentage: 60.5}, // 0 pts
	}
	require.NoError(t, ApplyLadderResults(gs, updates))

	assert.Equal(t, "West Coast", gs.Ladder[0].Name)
	assert.Equal(t, 12, gs.Ladder[0].Points)
	assert.Equal(t, "Brisbane Lions", gs.Ladder[1].Name, "percentage breaks the points tie")
	assert.Equal(t, "Richmond", gs.Ladder[2].Name)

	// Rank permutation: positions are exactly 1..N, no duplicates or gaps.
	seen := make(map[int]bool)
	for i, entry := range gs.Ladder {
		assert.Equal(t, i+1, entry.Position)
		assert.False(t, seen[entry.Position], "duplicate position %d", entry.Position)
		seen[entry.Position] = true
	}
	assert.Len(t, seen, 18)

	require.NotNil(t, gs.PrevLadder, "previous ladder snapshotted for diffing")
	assert.Equal(t, "Brisbane Lions", gs.PrevLadder[0].Name, "snapshot keeps the pre-update order")
}

func TestApplyLadderResults_RejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		update  LadderUpdate
		wantErr error
	}{
		{"unknown team", LadderUpdate{Team: "Fitzroy", Percentage: 100}, ErrUnknownTeam},
		{"negative wins", LadderUpdate{Team: "Richmond", Wins: -1, Percentage: 100}, ErrInvalidResults},
		{"negative draws", LadderUpdate{Team: "Richmond", Draws: -2, Percentage: 100}, ErrInvalidResults},
		{"zero percentage", LadderUpdate{Team: "Richmond", Wins: 1, Percentage: 0}, ErrInvalidResults},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := freshState()
			err := ApplyLadderResults(gs, []LadderUpdate{tt.update})
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, gs.PrevLadder, "rejected update must not mutate state")
			assert.Equal(t, "Brisbane Lions", gs.Ladder[0].Name)
		})
	}
}

func TestApplyLadderResults_RejectsBatchWithOneBadEntry(t *testing.T) {
	gs := freshState()
	err := ApplyLadderResults(gs, []LadderUpdate{
		{Team: "Richmond", Wins: 2, Percentage: 110},
		{Team: "Fitzroy", Wins: 1, Percentage: 100},
	})
	require.ErrorIs(t, err, ErrUnknownTeam)
	assert.Zero(t, gs.Ladder[models.TeamRank(gs.Ladder, "Richmond")-1].Points,
		"valid entries in a rejected batch are not applied")
}
