package server

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"

	"github.com/matryer/way"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/game"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*hostedGame, bool) {
	id := way.Param(r.Context(), "id")
	h, ok := s.games.get(id)
	if !ok {
		s.fail(w, fmt.Errorf("%w: %q", errNotFound, id))
		return nil, false
	}
	return h, true
}

// sessionFor builds a session from the configuration overlaid with dto.
func (s *Server) sessionFor(ctx context.Context, dto NewGameDTO) (*game.Session, error) {
	src := s.cfg.RandomSource()
	if dto.Rows != nil {
		src.Rows = *dto.Rows
	}
	if dto.Cols != nil {
		src.Cols = *dto.Cols
	}
	if dto.ObstacleProbability != nil {
		src.ObstacleProbability = *dto.ObstacleProbability
	}
	if dto.SlowProbability != nil {
		src.SlowProbability = *dto.SlowProbability
	}
	switch {
	case dto.Seed != nil:
		src.Rand = rand.New(rand.NewPCG(*dto.Seed, *dto.Seed^0x9e3779b97f4a7c15))
	case src.Rand == nil:
		src.Rand = s.childRand()
	}
	if src.Rows > MaxDimension || src.Cols > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d, max %d", errTooLarge, src.Rows, src.Cols, MaxDimension)
	}
	if src.Rows <= 0 || src.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", gridgraph.ErrEmptyGrid, src.Rows, src.Cols)
	}
	if err := gridgraph.ValidateProbabilities(src.ObstacleProbability, src.SlowProbability); err != nil {
		return nil, err
	}

	params := s.cfg.GameParams()
	if dto.MoveLimit != nil {
		params.MoveLimit = *dto.MoveLimit
	}
	if dto.MaxAttempts != nil {
		if *dto.MaxAttempts > MaxAttempts {
			return nil, fmt.Errorf("%w: max_attempts %d, max %d", errTooLarge, *dto.MaxAttempts, MaxAttempts)
		}
		params.MaxAttempts = *dto.MaxAttempts
	}

	return game.NewContext(ctx, src, params,
		game.WithPathOptions(s.cfg.PathOptions()...),
		game.WithLogger(s.log),
	)
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		s.fail(w, err)
		return
	}

	session, err := s.sessionFor(r.Context(), dto)
	if err != nil {
		s.fail(w, err)
		return
	}

	h := s.games.add(session)
	s.log.WithFields(logrus.Fields{
		"id":       h.id.String(),
		"rows":     session.Grid().Rows(),
		"cols":     session.Grid().Cols(),
		"attempts": session.Attempts(),
	}).Debug("created session")

	h.mu.Lock()
	defer h.mu.Unlock()
	s.sendJSON(w, http.StatusCreated, NewSessionDTO(h))
}

func (s *Server) handleFetchGame(w http.ResponseWriter, r *http.Request) {
	h, ok := s.lookup(w, r)
	if !ok {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	s.sendJSON(w, http.StatusOK, NewSessionDTO(h))
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		s.fail(w, err)
		return
	}
	d, err := gridgraph.ParseDirection(dto.Direction)
	if err != nil {
		s.fail(w, err)
		return
	}

	h, ok := s.lookup(w, r)
	if !ok {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	res, err := h.session.ProcessMove(d)
	if err != nil {
		s.fail(w, err)
		return
	}
	h.markEnded()
	s.sendJSON(w, http.StatusOK, MoveResultDTO{MoveResult: res, Session: NewSessionDTO(h)})
}

func (s *Server) handleForfeit(w http.ResponseWriter, r *http.Request) {
	h, ok := s.lookup(w, r)
	if !ok {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.session.Forfeit(); err != nil {
		s.fail(w, err)
		return
	}
	h.markEnded()
	s.sendJSON(w, http.StatusOK, NewSessionDTO(h))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	h, ok := s.lookup(w, r)
	if !ok {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	rep, err := h.session.Report()
	if err != nil {
		s.fail(w, err)
		return
	}
	s.sendJSON(w, http.StatusOK, NewReportDTO(rep, h.session.Grid()))
}

// handleSolve solves the grid text in the request body.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseSolveDTO(r.URL.Query())
	if err != nil {
		s.fail(w, err)
		return
	}
	strategy, err := dijkstra.ParseStrategy(dto.Strategy)
	if err != nil {
		s.fail(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	opts := []dijkstra.Option{dijkstra.WithStrategy(strategy)}
	if dto.Symmetric {
		opts = append(opts, dijkstra.WithCostFunc(dijkstra.TerrainCost))
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.fail(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	g, err := gridgraph.Parse(string(body))
	if err != nil {
		s.fail(w, err)
		return
	}
	if g.Rows() > MaxDimension || g.Cols() > MaxDimension {
		s.fail(w, fmt.Errorf("%w: %dx%d", errTooLarge, g.Rows(), g.Cols()))
		return
	}

	res, err := dijkstra.SolveGrid(g, opts...)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.sendJSON(w, http.StatusOK, NewPathDTO(res, g))
}
