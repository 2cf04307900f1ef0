package dijkstra_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// RandomGridSuite checks solver properties over seeded random grids.
type RandomGridSuite struct {
	suite.Suite
	grids []*gridgraph.Grid
}

func (s *RandomGridSuite) SetupSuite() {
	for seed := uint64(1); seed <= 40; seed++ {
		r := rand.New(rand.NewPCG(seed, seed*31+7))
		g, err := gridgraph.GenerateRandom(8, 9, 0.25, 0.15, r)
		s.Require().NoError(err)
		s.grids = append(s.grids, g)
	}
}

// Heap and scan settle cells in the same order, so they agree exactly.
func (s *RandomGridSuite) TestStrategiesAgree() {
	for i, g := range s.grids {
		heapRes, err := dijkstra.SolveGrid(g, dijkstra.WithStrategy(dijkstra.StrategyHeap))
		s.Require().NoError(err)
		scanRes, err := dijkstra.SolveGrid(g, dijkstra.WithStrategy(dijkstra.StrategyScan))
		s.Require().NoError(err)

		s.Equal(heapRes.Reachable(), scanRes.Reachable(), "grid %d", i)
		if heapRes.Reachable() {
			s.Equal(heapRes.Cost, scanRes.Cost, "grid %d", i)
			s.Equal(heapRes.Path, scanRes.Path, "grid %d", i)
		}
	}
}

// A reachable result is a contiguous walk over non-Wall cells from Start to
// Destination whose recomputed cost equals the reported one.
func (s *RandomGridSuite) TestPathValidity() {
	for i, g := range s.grids {
		res, err := dijkstra.SolveGrid(g)
		s.Require().NoError(err)
		if !res.Reachable() {
			s.Empty(res.Path)
			s.True(math.IsInf(res.Cost, 1))
			continue
		}
		start, _ := g.FindStart()
		dest, _ := g.FindDestination()
		s.Equal(start, res.Path[0], "grid %d", i)
		s.Equal(dest, res.Path[len(res.Path)-1], "grid %d", i)

		sum, err := dijkstra.PathCost(g, res.Path, nil)
		s.Require().NoError(err, "grid %d", i)
		s.InDelta(res.Cost, sum, 1e-9, "grid %d", i)
		s.Len(res.Steps(), len(res.Path)-1)
	}
}

// Walling a cell on the optimal path never lowers the optimum and forces a
// detour around it. Walling a cell off the path leaves the optimum as is.
func (s *RandomGridSuite) TestWallInsertionIsMonotone() {
	r := rand.New(rand.NewPCG(17, 29))
	for i, g := range s.grids {
		before, err := dijkstra.SolveGrid(g)
		s.Require().NoError(err)
		if !before.Reachable() {
			continue
		}

		onPath := make(map[gridgraph.Coordinate]bool, len(before.Path))
		for _, c := range before.Path {
			onPath[c] = true
		}
		for _, c := range before.Path[1 : len(before.Path)-1] {
			blocked := g.Clone()
			s.Require().NoError(blocked.Set(c, gridgraph.Wall))
			after, err := dijkstra.SolveGrid(blocked)
			s.Require().NoError(err)
			s.GreaterOrEqual(after.Cost, before.Cost, "grid %d wall %s", i, c)
			s.NotContains(after.Path, c, "grid %d wall %s", i, c)
		}

		var offPath []gridgraph.Coordinate
		for idx := 0; idx < g.Len(); idx++ {
			c := g.Coordinate(idx)
			if t := g.At(idx); (t == gridgraph.Open || t == gridgraph.SlowZone) && !onPath[c] {
				offPath = append(offPath, c)
			}
		}
		if len(offPath) == 0 {
			continue
		}
		c := offPath[r.IntN(len(offPath))]
		blocked := g.Clone()
		s.Require().NoError(blocked.Set(c, gridgraph.Wall))
		after, err := dijkstra.SolveGrid(blocked)
		s.Require().NoError(err)
		s.Equal(before.Cost, after.Cost, "grid %d wall %s", i, c)
	}
}

// Under the directional model no step costs more than 1, so the optimum is
// bounded by the number of steps. A shortest path never re-enters Start,
// so every step also costs at least 0.5.
func (s *RandomGridSuite) TestCostBounds() {
	for _, g := range s.grids {
		res, err := dijkstra.SolveGrid(g)
		s.Require().NoError(err)
		if !res.Reachable() {
			continue
		}
		steps := float64(len(res.Path) - 1)
		s.LessOrEqual(res.Cost, steps)
		s.GreaterOrEqual(res.Cost, 0.5*steps)
	}
}

func TestRandomGridSuite(t *testing.T) {
	suite.Run(t, new(RandomGridSuite))
}
