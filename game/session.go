package game

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// PlayerGlyph draws the player in Render.
const PlayerGlyph = '@'

// Session is one play-through on a grid known to be solvable when the
// session starts. It is not safe for concurrent use.
type Session struct {
	grid     *gridgraph.Grid
	params   Params
	pathOpts []dijkstra.Option
	log      logrus.FieldLogger

	player   gridgraph.Coordinate
	moves    int
	outcome  Outcome
	reason   FailureReason
	attempts int
}

// Option configures a Session.
type Option func(*Session)

// WithPathOptions forwards options to every solver call of the session,
// both during grid validation and in Report.
func WithPathOptions(opts ...dijkstra.Option) Option {
	return func(s *Session) {
		s.pathOpts = append(s.pathOpts, opts...)
	}
}

// WithLogger sends the session's log entries to l instead of Log.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// MoveResult describes the effect of one ProcessMove call.
type MoveResult struct {
	Accepted  bool                 `json:"accepted"`
	Position  gridgraph.Coordinate `json:"position"`
	Moves     int                  `json:"moves"`
	MovesLeft int                  `json:"moves_left"`
	Outcome   Outcome              `json:"outcome"`
	Reason    FailureReason        `json:"reason,omitempty"`
}

// New draws grids from src until one has a reachable Destination, then
// places the player on its Start. It is NewContext without cancellation.
func New(src GridSource, params Params, opts ...Option) (*Session, error) {
	return NewContext(context.Background(), src, params, opts...)
}

// NewContext is New bounded by ctx.
//
// Validation protocol:
//  1. params must be valid (ErrBadMoveLimit, ErrBadAttempts).
//  2. Up to params.MaxAttempts grids are drawn; source errors are returned,
//     a nil grid fails with dijkstra.ErrNilGrid.
//  3. ctx is checked before every draw; its error is returned once done.
//  4. Each grid is solved; a grid without Start or Destination fails with
//     dijkstra.ErrMissingEndpoint, an unreachable one is discarded.
//  5. Exhausting the cap returns ErrGenerationFailed. An unsolvable grid is
//     never exposed.
func NewContext(ctx context.Context, src GridSource, params Params, opts ...Option) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	s := &Session{params: params, log: Log}
	for _, opt := range opts {
		opt(s)
	}

	for attempt := 1; attempt <= params.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("game: stopped before grid %d: %w", attempt, err)
		}
		g, err := src.Next()
		if err != nil {
			return nil, fmt.Errorf("game: drawing grid %d: %w", attempt, err)
		}
		if g == nil {
			return nil, fmt.Errorf("game: drawing grid %d: %w", attempt, dijkstra.ErrNilGrid)
		}
		// A flood fill rejects disconnected grids before the solver runs.
		start, okStart := g.FindStart()
		dest, okDest := g.FindDestination()
		if okStart && okDest && !g.Connected(start, dest) {
			s.log.WithFields(logrus.Fields{
				"attempt": attempt,
			}).Debug("discarding disconnected grid")
			continue
		}

		res, err := dijkstra.SolveGrid(g, s.pathOpts...)
		if err != nil {
			return nil, err
		}
		if !res.Reachable() {
			s.log.WithFields(logrus.Fields{
				"attempt": attempt,
				"rows":    g.Rows(),
				"cols":    g.Cols(),
			}).Debug("discarding unsolvable grid")
			continue
		}

		s.grid = g
		s.player = start
		s.attempts = attempt
		return s, nil
	}

	s.log.WithFields(logrus.Fields{
		"attempts": params.MaxAttempts,
	}).Info("grid generation failed")

	return nil, fmt.Errorf("%w: %d attempts", ErrGenerationFailed, params.MaxAttempts)
}

// Grid returns the session grid. Callers must not mutate it.
func (s *Session) Grid() *gridgraph.Grid { return s.grid }

// Player returns the player position.
func (s *Session) Player() gridgraph.Coordinate { return s.player }

// Moves returns the number of accepted moves.
func (s *Session) Moves() int { return s.moves }

// MoveLimit returns the move budget.
func (s *Session) MoveLimit() int { return s.params.MoveLimit }

// MovesLeft returns the remaining move budget.
func (s *Session) MovesLeft() int { return s.params.MoveLimit - s.moves }

// Outcome returns the session outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// Reason returns why a failed session failed.
func (s *Session) Reason() FailureReason { return s.reason }

// Over reports whether the session has ended.
func (s *Session) Over() bool { return s.outcome != Unresolved }

// Attempts returns how many grids were drawn before one was accepted.
func (s *Session) Attempts() int { return s.attempts }

// ProcessMove tries to move the player one step in d.
//
// A target off the grid or on a Wall is rejected (Accepted false) and the
// state is unchanged. An accepted move counts toward the limit; entering the
// Destination wins, otherwise using the last move loses.
func (s *Session) ProcessMove(d gridgraph.Direction) (MoveResult, error) {
	if s.Over() {
		return s.result(false), ErrSessionOver
	}
	if !d.Valid() {
		return s.result(false), fmt.Errorf("%w: %d", ErrBadDirection, int(d))
	}

	target := s.player.Step(d)
	if !s.grid.Passable(target) {
		return s.result(false), nil
	}

	s.player = target
	s.moves++
	cell, _ := s.grid.Get(target)
	switch {
	case cell == gridgraph.Destination:
		s.outcome = Success
	case s.moves >= s.params.MoveLimit:
		s.outcome = Failure
		s.reason = MoveLimitReached
	}

	if s.Over() {
		s.log.WithFields(logrus.Fields{
			"outcome": s.outcome.String(),
			"reason":  s.reason.String(),
			"moves":   s.moves,
		}).Debug("session over")
	}

	return s.result(true), nil
}

// Forfeit ends an unresolved session as a Failure.
func (s *Session) Forfeit() error {
	if s.Over() {
		return ErrSessionOver
	}
	s.outcome = Failure
	s.reason = Forfeited
	return nil
}

func (s *Session) result(accepted bool) MoveResult {
	return MoveResult{
		Accepted:  accepted,
		Position:  s.player,
		Moves:     s.moves,
		MovesLeft: s.MovesLeft(),
		Outcome:   s.outcome,
		Reason:    s.reason,
	}
}

// Render draws the grid with the player as PlayerGlyph.
func (s *Session) Render() string {
	return s.grid.RenderMarker(s.player, PlayerGlyph)
}
