package gridgraph

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// GenerateRandom fills a rows×cols grid probabilistically. Every cell except
// (0,0) and (rows-1,cols-1) draws one uniform u in [0,1):
//
//	u < obstacleProb              → Wall
//	u < obstacleProb + slowProb   → SlowZone
//	otherwise                     → Open
//
// (0,0) becomes Start and (rows-1,cols-1) becomes Destination
// unconditionally. On a 1×1 grid both corners coincide and the single cell
// ends up as Destination.
//
// Returns ErrEmptyGrid for non-positive dimensions and ErrBadProbability
// when a probability lies outside [0,1] or their sum exceeds 1.
// Complexity: O(rows×cols).
func GenerateRandom(rows, cols int, obstacleProb, slowProb float64, r *rand.Rand) (*Grid, error) {
	if err := ValidateProbabilities(obstacleProb, slowProb); err != nil {
		return nil, err
	}
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	first, last := 0, rows*cols-1
	for i := range g.cells {
		if i == first || i == last {
			continue
		}
		u := r.Float64()
		switch {
		case u < obstacleProb:
			g.cells[i] = Wall
		case u < obstacleProb+slowProb:
			g.cells[i] = SlowZone
		}
	}

	// Neither corner can hold an endpoint yet, so Set cannot fail here.
	_ = g.Set(g.Coordinate(first), Start)
	_ = g.Set(g.Coordinate(last), Destination)

	return g, nil
}

// ValidateProbabilities checks the generator's probability contract.
func ValidateProbabilities(obstacleProb, slowProb float64) error {
	switch {
	case math.IsNaN(obstacleProb):
		return fmt.Errorf("%w: obstacle probability is NaN", ErrBadProbability)
	case math.IsNaN(slowProb):
		return fmt.Errorf("%w: slow probability is NaN", ErrBadProbability)
	case obstacleProb < 0 || obstacleProb > 1:
		return fmt.Errorf("%w: obstacle probability %v", ErrBadProbability, obstacleProb)
	case slowProb < 0 || slowProb > 1:
		return fmt.Errorf("%w: slow probability %v", ErrBadProbability, slowProb)
	case obstacleProb+slowProb > 1:
		return fmt.Errorf("%w: sum %v", ErrBadProbability, obstacleProb+slowProb)
	}
	return nil
}
