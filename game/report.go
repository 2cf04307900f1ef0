package game

import (
	"github.com/katalvlaran/gridpath/dijkstra"
)

// Report summarises a finished session alongside the optimal route of its
// grid.
type Report struct {
	Outcome Outcome
	Reason  FailureReason
	Moves   int
	Optimal dijkstra.PathResult
	Overlay string // grid text with the optimal path drawn
}

// Report recomputes the optimal Start→Destination path on the session grid.
// It never changes the outcome. Returns ErrSessionActive while the session
// is unresolved.
func (s *Session) Report() (Report, error) {
	if !s.Over() {
		return Report{}, ErrSessionActive
	}
	res, err := dijkstra.SolveGrid(s.grid, s.pathOpts...)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Outcome: s.outcome,
		Reason:  s.reason,
		Moves:   s.moves,
		Optimal: res,
		Overlay: res.Render(s.grid),
	}, nil
}
