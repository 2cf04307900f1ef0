package gridgraph

// Regions finds all contiguous areas of passable (non-Wall) cells under
// 4-connectivity. Regions are ordered by their first cell in row-major
// order; cells inside a region are in BFS order from that cell.
//
// Time:   O(rows·cols·4).
// Memory: O(rows·cols) for visited flags and output.
func (g *Grid) Regions() [][]Coordinate {
	seen := make([]bool, len(g.cells))
	var regions [][]Coordinate

	for i0, cell := range g.cells {
		if cell == Wall || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		var region []Coordinate

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			from := g.Coordinate(u)
			region = append(region, from)
			for _, d := range directions {
				to := from.Step(d)
				if !g.Passable(to) {
					continue
				}
				vi := g.Index(to)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// Connected reports whether a and b are passable and lie in the same region.
// Under any finite non-negative edge cost this is exactly "b is reachable
// from a". Time: O(rows·cols) worst case, stopping as soon as b is found.
func (g *Grid) Connected(a, b Coordinate) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	if a == b {
		return true
	}

	seen := make([]bool, len(g.cells))
	target := g.Index(b)
	queue := []int{g.Index(a)}
	seen[queue[0]] = true

	for qi := 0; qi < len(queue); qi++ {
		from := g.Coordinate(queue[qi])
		for _, d := range directions {
			to := from.Step(d)
			if !g.Passable(to) {
				continue
			}
			vi := g.Index(to)
			if vi == target {
				return true
			}
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return false
}
