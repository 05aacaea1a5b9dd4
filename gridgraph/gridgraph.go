// SPDX-License-Identifier: MIT

package gridgraph

import "golang.org/x/exp/slices"

// board is the shared 4×4 king-adjacency grid; it is never mutated.
var board = mustGridGraph(Size, Size, Conn8)

// Board returns the fixed 4×4 Conn8 grid used for word search.
// The returned value is shared and must be treated as read-only.
func Board() *GridGraph {
	return board
}

// NewGridGraph constructs a width×height GridGraph with the given connectivity
// and precomputes every neighbor list.
// Returns ErrEmptyGrid if width or height is below one.
// Algorithmic complexity: O(W×H×d) time and memory.
func NewGridGraph(width, height int, conn Connectivity) (*GridGraph, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           width,
		Height:          height,
		Conn:            conn,
		neighborOffsets: offsets,
	}

	gg.adjacency = make([][]Position, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nbs := make([]Position, 0, len(offsets))
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				nbs = append(nbs, gg.Index(nx, ny))
			}
			slices.Sort(nbs)
			gg.adjacency[gg.Index(x, y)] = nbs
		}
	}

	return gg, nil
}

func mustGridGraph(width, height int, conn Connectivity) *GridGraph {
	gg, err := NewGridGraph(width, height, conn)
	if err != nil {
		panic(err)
	}
	return gg
}

// Len returns the number of positions in the grid.
func (gg *GridGraph) Len() int {
	return gg.Width * gg.Height
}

// Valid reports whether p names a cell of the grid.
// Complexity: O(1).
func (gg *GridGraph) Valid(p Position) bool {
	return p >= 0 && int(p) < gg.Len()
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Neighbors returns the neighbors of p in ascending order, or nil when p is
// outside the grid. The slice is shared; callers must not modify it.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(p Position) []Position {
	if !gg.Valid(p) {
		return nil
	}
	return gg.adjacency[p]
}

// Degree returns the number of neighbors of p (0 when p is outside the grid).
func (gg *GridGraph) Degree(p Position) int {
	return len(gg.Neighbors(p))
}

// Adjacent reports whether a and b are neighbors.
func (gg *GridGraph) Adjacent(a, b Position) bool {
	for _, n := range gg.Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}

// Index maps (x,y) to a row‑major Position: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) Position {
	return Position(y*gg.Width + x)
}

// Coordinate converts a row‑major Position back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(p Position) (x, y int) {
	return int(p) % gg.Width, int(p) / gg.Width
}
