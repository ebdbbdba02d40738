package engine

import (
	"errors"
	"fmt"
)

// Domain errors. All are expected and recoverable: validation happens before
// any mutation, so a returned error means the state was left untouched.
var (
	// ErrForbidden is returned when a caller lacks the capability for an
	// operation: a non-administrator invoking an admin operation, or a
	// non-human participant attempting a trade.
	ErrForbidden = errors.New("forbidden")
	// ErrSeasonComplete is returned once the round counter reaches the
	// season's total rounds.
	ErrSeasonComplete = errors.New("season complete")
	// ErrTradeWindowClosed is returned when the round's trade deadline has
	// passed.
	ErrTradeWindowClosed = errors.New("trade window closed: round has started")
	// ErrInvalidAmount is returned when a buy resolves to zero shares or a
	// sell requests a non-positive share count.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds is returned when cost plus fee exceeds cash.
	ErrInsufficientFunds = errors.New("insufficient cash")
	// ErrNoHolding is returned when selling or undoing against a team the
	// participant does not hold.
	ErrNoHolding = errors.New("no holding found")
	// ErrTradeNotFound is returned when an undo names an unknown trade ID.
	ErrTradeNotFound = errors.New("trade not found")
	// ErrNotCurrentRound is returned when an undo targets a trade logged in
	// a prior round.
	ErrNotCurrentRound = errors.New("can only undo trades from the current round")
	// ErrUnknownPlayer is returned when an operation names a participant
	// that is not part of the season.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrUnknownTeam is returned when an operation names a team that is not
	// on the ladder.
	ErrUnknownTeam = errors.New("unknown team")
	// ErrInvalidResults is returned when admin ladder updates carry
	// out-of-range figures.
	ErrInvalidResults = errors.New("invalid ladder results")
	// ErrInvalidDeadline is returned when a trade deadline does not parse
	// as an RFC 3339 timestamp.
	ErrInvalidDeadline = errors.New("invalid trade deadline")
	// ErrInvalidFixtures is returned when an admin fixture upload is
	// malformed.
	ErrInvalidFixtures = errors.New("invalid fixtures")
)

// CapExceededError is returned when a buy would push a single team past the
// portfolio concentration cap. Headroom is the remaining notional the
// participant may still invest in that team.
type CapExceededError struct {
	Headroom float64
}

func (e *CapExceededError) Error() string {
	return fmt.Sprintf("25%% cap exceeded: max %.0f more in this team", e.Headroom)
}

// HoldPeriodError is returned when a sell is attempted before the holding's
// minimum hold period has elapsed.
type HoldPeriodError struct {
	RoundsRemaining int
}

func (e *HoldPeriodError) Error() string {
	return fmt.Sprintf("hold period not met: %d more round(s) required", e.RoundsRemaining)
}
