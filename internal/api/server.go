// Package api is the thin HTTP transport over the engine: request parsing,
// capability-token middleware and typed-error to status-code mapping. All
// game semantics live in the engine.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/tysonmb/sportfolio/internal/engine"
	"github.com/tysonmb/sportfolio/internal/models"
)

// Config holds HTTP server settings.
type Config struct {
	Port      int
	AuthToken string
}

// Server serves the exchange API.
type Server struct {
	router    *chi.Mux
	server    *http.Server
	svc       *engine.Service
	logger    *logrus.Logger
	port      int
	authToken string
}

// NewServer builds the router around an engine service.
func NewServer(cfg Config, svc *engine.Service, logger *logrus.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		svc:       svc,
		logger:    logger,
		port:      cfg.Port,
		authToken: cfg.AuthToken,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	if s.authToken != "" {
		s.router.Use(s.authMiddleware)
	}

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/api/state", s.handleState)
	s.router.Post("/api/buy", s.handleBuy)
	s.router.Post("/api/sell", s.handleSell)
	s.router.Post("/api/undo", s.handleUndo)
	s.router.Post("/api/admin/ladder", s.handleLadder)
	s.router.Post("/api/admin/advance", s.handleAdvance)
	s.router.Post("/api/admin/deadline", s.handleDeadline)
	s.router.Post("/api/admin/fixtures", s.handleFixtures)
	s.router.Post("/api/admin/reset", s.handleReset)
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("X-Auth-Token") != s.authToken {
			s.writeError(w, http.StatusUnauthorized, errors.New("invalid auth token"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Start runs the HTTP server until the context is canceled.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("port", s.port).Info("api server listening")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Request bodies. Field names follow the persisted JSON vocabulary.

type buyRequest struct {
	PlayerName string  `json:"playerName"`
	TeamName   string  `json:"teamName"`
	Amount     float64 `json:"amount"`
}

type sellRequest struct {
	PlayerName string  `json:"playerName"`
	TeamName   string  `json:"teamName"`
	Shares     float64 `json:"shares"`
}

type undoRequest struct {
	PlayerName string `json:"playerName"`
	TradeID    string `json:"tradeId"`
}

type ladderRequest struct {
	PlayerName string                `json:"playerName"`
	Updates    []engine.LadderUpdate `json:"updates"`
}

type adminRequest struct {
	PlayerName string `json:"playerName"`
}

type deadlineRequest struct {
	PlayerName string `json:"playerName"`
	Deadline   string `json:"deadline"`
}

type fixturesRequest struct {
	PlayerName string                      `json:"playerName"`
	Fixtures   map[string][]models.Fixture `json:"fixtures"`
}

type resetRequest struct {
	PlayerName string `json:"playerName"`
	Confirm    string `json:"confirm"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.svc.State())
}

func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	var req buyRequest
	if !s.decode(w, r, &req) {
		return
	}
	res, gs, err := s.svc.Buy(req.PlayerName, req.TeamName, req.Amount)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"shares":  res.Shares,
		"cost":    res.Cost,
		"fee":     res.Fee,
		"state":   gs,
	})
}

func (s *Server) handleSell(w http.ResponseWriter, r *http.Request) {
	var req sellRequest
	if !s.decode(w, r, &req) {
		return
	}
	res, gs, err := s.svc.Sell(req.PlayerName, req.TeamName, req.Shares)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"net":     res.Net,
		"fee":     res.Fee,
		"state":   gs,
	})
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	var req undoRequest
	if !s.decode(w, r, &req) {
		return
	}
	gs, err := s.svc.Undo(req.PlayerName, req.TradeID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeState(w, gs)
}

func (s *Server) handleLadder(w http.ResponseWriter, r *http.Request) {
	var req ladderRequest
	if !s.decode(w, r, &req) {
		return
	}
	gs, err := s.svc.UpdateLadderResults(req.PlayerName, req.Updates)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeState(w, gs)
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	var req adminRequest
	if !s.decode(w, r, &req) {
		return
	}
	gs, err := s.svc.AdvanceRound(req.PlayerName)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeState(w, gs)
}

func (s *Server) handleDeadline(w http.ResponseWriter, r *http.Request) {
	var req deadlineRequest
	if !s.decode(w, r, &req) {
		return
	}
	gs, err := s.svc.SetTradeDeadline(req.PlayerName, req.Deadline)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeState(w, gs)
}

func (s *Server) handleFixtures(w http.ResponseWriter, r *http.Request) {
	var req fixturesRequest
	if !s.decode(w, r, &req) {
		return
	}
	gs, err := s.svc.SetFixtures(req.PlayerName, req.Fixtures)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeState(w, gs)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if !s.decode(w, r, &req) {
		return
	}
	gs, err := s.svc.ResetSeason(req.PlayerName, req.Confirm)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeState(w, gs)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return false
	}
	return true
}

func (s *Server) writeState(w http.ResponseWriter, gs *models.GameState) {
	s.writeJSON(w, http.StatusOK, map[string]any{"success": true, "state": gs})
}

// writeDomainError maps engine errors onto HTTP statuses: capability
// failures are 403, validation failures 400, anything else (persistence)
// 500.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	var capErr *engine.CapExceededError
	var holdErr *engine.HoldPeriodError
	switch {
	case errors.Is(err, engine.ErrForbidden), errors.Is(err, engine.ErrUnknownPlayer):
		s.writeError(w, http.StatusForbidden, err)
	case errors.Is(err, engine.ErrSeasonComplete),
		errors.Is(err, engine.ErrTradeWindowClosed),
		errors.Is(err, engine.ErrInvalidAmount),
		errors.Is(err, engine.ErrInsufficientFunds),
		errors.Is(err, engine.ErrNoHolding),
		errors.Is(err, engine.ErrTradeNotFound),
		errors.Is(err, engine.ErrNotCurrentRound),
		errors.Is(err, engine.ErrUnknownTeam),
		errors.Is(err, engine.ErrInvalidResults),
		errors.Is(err, engine.ErrInvalidDeadline),
		errors.Is(err, engine.ErrInvalidFixtures),
		errors.As(err, &capErr),
		errors.As(err, &holdErr):
		s.writeError(w, http.StatusBadRequest, err)
	default:
		s.logger.WithError(err).Error("request failed")
		s.writeError(w, http.StatusInternalServerError, err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("encoding response failed")
	}
}
