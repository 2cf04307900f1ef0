package game

import (
	"math/rand/v2"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// GridSource supplies candidate grids to a session. Each call returns a
// fresh grid the session may own.
type GridSource interface {
	Next() (*gridgraph.Grid, error)
}

// Default generator parameters.
const (
	DefaultRows                = 10
	DefaultCols                = 10
	DefaultObstacleProbability = 0.2
	DefaultSlowProbability     = 0.1
)

// RandomSource draws grids from gridgraph.GenerateRandom. A nil Rand is
// replaced by a randomly seeded one on first use.
type RandomSource struct {
	Rows                int
	Cols                int
	ObstacleProbability float64
	SlowProbability     float64
	Rand                *rand.Rand
}

// NewRandomSource returns a RandomSource with the default 10×10 layout
// driven by seed.
func NewRandomSource(seed uint64) *RandomSource {
	return &RandomSource{
		Rows:                DefaultRows,
		Cols:                DefaultCols,
		ObstacleProbability: DefaultObstacleProbability,
		SlowProbability:     DefaultSlowProbability,
		Rand:                rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Next generates one grid.
func (s *RandomSource) Next() (*gridgraph.Grid, error) {
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return gridgraph.GenerateRandom(s.Rows, s.Cols, s.ObstacleProbability, s.SlowProbability, s.Rand)
}

// FixedSource replays caller-supplied grids in order, then fails with
// ErrSourceExhausted.
type FixedSource struct {
	queue []*gridgraph.Grid
}

// NewFixedSource queues clones of grids.
func NewFixedSource(grids ...*gridgraph.Grid) *FixedSource {
	q := make([]*gridgraph.Grid, 0, len(grids))
	for _, g := range grids {
		q = append(q, g.Clone())
	}
	return &FixedSource{queue: q}
}

// Next pops the next grid.
func (s *FixedSource) Next() (*gridgraph.Grid, error) {
	if len(s.queue) == 0 {
		return nil, ErrSourceExhausted
	}
	g := s.queue[0]
	s.queue = s.queue[1:]
	return g, nil
}

// Remaining returns the number of queued grids.
func (s *FixedSource) Remaining() int { return len(s.queue) }
