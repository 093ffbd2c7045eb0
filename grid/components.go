package grid

// InvadedComponents finds all 4-connected regions of invaded cells.
// Each component lists its coordinates in BFS discovery order; components
// are ordered by their first cell in row-major order.
//
// A well-formed invasion cluster always yields exactly one component.
//
// Time:   O(size²).
// Memory: O(size²) for visited flags and output.
func (g *Grid) InvadedComponents() [][]Coord {
	seen := make([]bool, len(g.invaded))
	var comps [][]Coord

	for i0, inv := range g.invaded {
		if !inv || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Coord

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			comp = append(comp, u)
			for _, d := range neighborOffsets {
				v := Coord{Row: u.Row + d[0], Col: u.Col + d[1]}
				if !g.InBounds(v) {
					continue
				}
				vi := g.index(v)
				if g.invaded[vi] && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
