package engine

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tysonmb/sportfolio/internal/config"
	"github.com/tysonmb/sportfolio/internal/models"
	"github.com/tysonmb/sportfolio/internal/storage"
	"github.com/tysonmb/sportfolio/internal/strategy"
)

// ResetConfirmToken must accompany a season reset.
const ResetConfirmToken = "RESET"

// Service wires the pure state transitions to persistence and capability
// checks. Every mutating operation is one read-snapshot, mutate-in-memory,
// write-snapshot cycle; the caller guarantees at most one mutation in
// flight at a time.
type Service struct {
	storage    storage.Interface
	cfg        *config.Config
	logger     *logrus.Logger
	strategies map[string]strategy.Strategy
	botOrder   []string
	now        func() time.Time
}

// NewService builds a Service, resolving each automated participant's
// strategy once up front.
func NewService(st storage.Interface, cfg *config.Config, logger *logrus.Logger) (*Service, error) {
	strategies := make(map[string]strategy.Strategy, len(cfg.League.Bots))
	for _, bot := range cfg.League.Bots {
		strat, err := strategy.ForName(bot.Strategy)
		if err != nil {
			return nil, fmt.Errorf("bot %s: %w", bot.Name, err)
		}
		strategies[bot.Name] = strat
	}
	return &Service{
		storage:    st,
		cfg:        cfg,
		logger:     logger,
		strategies: strategies,
		botOrder:   cfg.BotOrder(),
		now:        time.Now,
	}, nil
}

// loadState reads the snapshot, degrading to a freshly initialized season
// when none exists or the file is corrupt. Persistence faults are logged,
// never surfaced as request failures.
func (s *Service) loadState() *models.GameState {
	gs, err := s.storage.Load()
	switch {
	case err == nil:
		return gs
	case errors.Is(err, storage.ErrNoSnapshot):
		s.logger.Info("no snapshot found, starting a fresh season")
	default:
		s.logger.WithError(err).Warn("snapshot unreadable, starting a fresh season")
	}
	return models.NewGameState(s.cfg.Seeds(), s.cfg.League.StartingCash)
}

func (s *Service) saveState(gs *models.GameState) error {
	if err := s.storage.Save(gs); err != nil {
		s.logger.WithError(err).Error("saving snapshot failed")
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// State returns the current game state (read-only).
func (s *Service) State() *models.GameState {
	return s.loadState()
}

// tradingPlayer resolves a trade caller: the participant must exist and be
// human. Automated participants trade only through the round advancer.
func (s *Service) tradingPlayer(gs *models.GameState, name string) (*models.Player, error) {
	p := gs.Player(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	if !p.IsHuman {
		return nil, fmt.Errorf("%w: %s is not a human player", ErrForbidden, name)
	}
	return p, nil
}

// checkTradeWindow short-circuits trade entry points once the season is over
// or the round's deadline has passed.
func (s *Service) checkTradeWindow(gs *models.GameState) error {
	if gs.Round >= s.cfg.League.TotalRounds {
		return ErrSeasonComplete
	}
	if gs.TradeWindowClosed(s.now()) {
		return ErrTradeWindowClosed
	}
	return nil
}

// Buy executes a buy of up to amount dollars of team for the named human
// participant.
func (s *Service) Buy(playerName, team string, amount float64) (*BuyResult, *models.GameState, error) {
	gs := s.loadState()
	p, err := s.tradingPlayer(gs, playerName)
	if err != nil {
		return nil, nil, err
	}
	if err := s.checkTradeWindow(gs); err != nil {
		return nil, nil, err
	}
	res, err := ExecuteBuy(gs, p, team, amount)
	if err != nil {
		return nil, nil, err
	}
	if err := s.saveState(gs); err != nil {
		return nil, nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"player": playerName, "team": team,
		"shares": res.Shares, "cost": res.Cost, "fee": res.Fee,
	}).Info("buy executed")
	return res, gs, nil
}

// Sell executes a sale of up to shares of team for the named human
// participant.
func (s *Service) Sell(playerName, team string, shares float64) (*SellResult, *models.GameState, error) {
	gs := s.loadState()
	p, err := s.tradingPlayer(gs, playerName)
	if err != nil {
		return nil, nil, err
	}
	if err := s.checkTradeWindow(gs); err != nil {
		return nil, nil, err
	}
	res, err := ExecuteSell(gs, p, team, shares)
	if err != nil {
		return nil, nil, err
	}
	if err := s.saveState(gs); err != nil {
		return nil, nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"player": playerName, "team": team, "net": res.Net, "fee": res.Fee,
	}).Info("sell executed")
	return res, gs, nil
}

// Undo reverses one of the caller's current-round trades.
func (s *Service) Undo(playerName, tradeID string) (*models.GameState, error) {
	gs := s.loadState()
	p, err := s.tradingPlayer(gs, playerName)
	if err != nil {
		return nil, err
	}
	if err := UndoTrade(gs, p, tradeID); err != nil {
		return nil, err
	}
	if err := s.saveState(gs); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"player": playerName, "trade": tradeID}).Info("trade undone")
	return gs, nil
}

// requireAdmin checks the caller holds the administrator capability.
func (s *Service) requireAdmin(caller string) error {
	if caller != s.cfg.League.Admin {
		return fmt.Errorf("%w: admin only", ErrForbidden)
	}
	return nil
}

// AdvanceRound applies end-of-round interest and tax, runs the automated
// participants against the upcoming round, resets trade counters, snapshots
// the ladder and every participant's valuation, and opens the next round's
// trade window.
func (s *Service) AdvanceRound(caller string) (*models.GameState, error) {
	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}
	gs := s.loadState()
	if gs.Round >= s.cfg.League.TotalRounds {
		return nil, ErrSeasonComplete
	}

	ApplyInterestAndTax(gs)
	// Automated players trade against the upcoming round number so their
	// decisions and hold periods line up with the round being opened.
	RunAutoTrades(gs, s.botOrder, s.strategies, gs.Round+1, s.logger)
	ResetTradeCounters(gs)
	gs.PrevLadder = models.CloneLadder(gs.Ladder)
	gs.Round++
	CaptureSnapshot(gs)
	gs.TradeDeadline = nil
	gs.Status = models.StatusTrading

	if err := s.saveState(gs); err != nil {
		return nil, err
	}
	s.logger.WithField("round", gs.Round).Info("round advanced")
	return gs, nil
}

// UpdateLadderResults applies admin-supplied results and re-ranks the
// ladder.
func (s *Service) UpdateLadderResults(caller string, updates []LadderUpdate) (*models.GameState, error) {
	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}
	gs := s.loadState()
	if err := ApplyLadderResults(gs, updates); err != nil {
		return nil, err
	}
	if err := s.saveState(gs); err != nil {
		return nil, err
	}
	s.logger.WithField("teams", len(updates)).Info("ladder updated")
	return gs, nil
}

// SetTradeDeadline sets the instant the current trade window closes. The
// deadline must be a valid RFC 3339 timestamp.
func (s *Service) SetTradeDeadline(caller, deadline string) (*models.GameState, error) {
	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}
	when, err := time.Parse(time.RFC3339, deadline)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDeadline, deadline)
	}
	gs := s.loadState()
	gs.TradeDeadline = &when
	gs.Status = models.StatusTrading
	if err := s.saveState(gs); err != nil {
		return nil, err
	}
	s.logger.WithField("deadline", when).Info("trade deadline set")
	return gs, nil
}

// SetFixtures replaces the season's fixture schedule. Keys must be positive
// round numbers and every match needs both team names.
func (s *Service) SetFixtures(caller string, fixtures map[string][]models.Fixture) (*models.GameState, error) {
	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}
	for round, matches := range fixtures {
		n, err := strconv.Atoi(round)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: round key %q", ErrInvalidFixtures, round)
		}
		for _, m := range matches {
			if m[0] == "" || m[1] == "" {
				return nil, fmt.Errorf("%w: round %s has an incomplete match", ErrInvalidFixtures, round)
			}
		}
	}
	gs := s.loadState()
	gs.Fixtures = fixtures
	if err := s.saveState(gs); err != nil {
		return nil, err
	}
	s.logger.Info("fixtures replaced")
	return gs, nil
}

// ResetSeason discards the snapshot and starts a fresh season. Destructive:
// requires the confirmation token.
func (s *Service) ResetSeason(caller, confirm string) (*models.GameState, error) {
	if caller != s.cfg.League.Admin || confirm != ResetConfirmToken {
		return nil, fmt.Errorf("%w: reset requires admin and confirmation", ErrForbidden)
	}
	gs := models.NewGameState(s.cfg.Seeds(), s.cfg.League.StartingCash)
	if err := s.saveState(gs); err != nil {
		return nil, err
	}
	s.logger.Warn("season reset")
	return gs, nil
}
