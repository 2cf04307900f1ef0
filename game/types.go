// Package game defines the session types for the move-limited warehouse
// game: outcomes, failure reasons, parameters and sentinel errors.
package game

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Log is the package logger; binaries may replace its output and level.
var Log = logrus.New()

// Sentinel errors returned by the game package.
var (
	// ErrGenerationFailed indicates that no solvable grid was found within
	// the attempt cap.
	ErrGenerationFailed = errors.New("game: no solvable grid within attempt limit")

	// ErrSessionOver indicates a move on a session that already ended.
	ErrSessionOver = errors.New("game: session is over")

	// ErrSessionActive indicates a report requested before the session ended.
	ErrSessionActive = errors.New("game: session is still unresolved")

	// ErrBadMoveLimit indicates a non-positive move limit.
	ErrBadMoveLimit = errors.New("game: move limit must be positive")

	// ErrBadAttempts indicates a non-positive generation attempt cap.
	ErrBadAttempts = errors.New("game: max attempts must be positive")

	// ErrBadDirection indicates a direction outside North/South/West/East.
	ErrBadDirection = errors.New("game: invalid direction")

	// ErrSourceExhausted indicates a FixedSource with no grids left.
	ErrSourceExhausted = errors.New("game: grid source exhausted")
)

// Outcome is the state of a session.
type Outcome int

const (
	// Unresolved sessions still accept moves.
	Unresolved Outcome = iota
	// Success means the player reached the Destination.
	Success
	// Failure means the session ended without reaching it.
	Failure
)

func (o Outcome) String() string {
	switch o {
	case Unresolved:
		return "unresolved"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// FailureReason explains a Failure outcome.
type FailureReason int

const (
	// NoFailure is the reason of unresolved and successful sessions.
	NoFailure FailureReason = iota
	// MoveLimitReached means the move budget ran out.
	MoveLimitReached
	// Forfeited means the player quit.
	Forfeited
)

func (r FailureReason) String() string {
	switch r {
	case NoFailure:
		return ""
	case MoveLimitReached:
		return "move_limit_reached"
	case Forfeited:
		return "forfeited"
	default:
		return fmt.Sprintf("FailureReason(%d)", int(r))
	}
}

// MarshalText encodes the reason by name.
func (r FailureReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Default session parameters.
const (
	DefaultMoveLimit   = 30
	DefaultMaxAttempts = 100
)

// Params bounds a session.
type Params struct {
	MoveLimit   int // moves before the session fails
	MaxAttempts int // grids drawn before generation fails
}

// DefaultParams returns the parameters of the classic game.
func DefaultParams() Params {
	return Params{
		MoveLimit:   DefaultMoveLimit,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Validate reports ErrBadMoveLimit or ErrBadAttempts.
func (p Params) Validate() error {
	if p.MoveLimit <= 0 {
		return fmt.Errorf("%w: %d", ErrBadMoveLimit, p.MoveLimit)
	}
	if p.MaxAttempts <= 0 {
		return fmt.Errorf("%w: %d", ErrBadAttempts, p.MaxAttempts)
	}
	return nil
}
