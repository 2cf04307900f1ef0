package dijkstra

import "github.com/katalvlaran/gridpath/gridgraph"

// EdgeCostFunc returns the cost of stepping in direction d onto a cell of
// type dst. Implementations must never return a negative value.
type EdgeCostFunc func(d gridgraph.Direction, dst gridgraph.CellType) float64

// PrivilegedCost is the flat cost of every North or West step.
const PrivilegedCost = 0.5

// BaseCost is the terrain cost of entering a cell, before any directional
// override. Unrecognised cell types cost 1.
func BaseCost(t gridgraph.CellType) float64 {
	switch t {
	case gridgraph.Open:
		return 1
	case gridgraph.SlowZone:
		return 0.5
	case gridgraph.Start:
		return 0
	case gridgraph.Destination:
		return 1
	default:
		return 1
	}
}

// DirectionalCost is the default edge-cost model: North and West steps
// always cost PrivilegedCost; South and East steps cost BaseCost of the
// destination cell. The directional override wins over terrain.
func DirectionalCost(d gridgraph.Direction, dst gridgraph.CellType) float64 {
	if d == gridgraph.North || d == gridgraph.West {
		return PrivilegedCost
	}
	return BaseCost(dst)
}

// TerrainCost ignores the direction and charges BaseCost of the
// destination cell. Costs are symmetric under this model.
func TerrainCost(_ gridgraph.Direction, dst gridgraph.CellType) float64 {
	return BaseCost(dst)
}
