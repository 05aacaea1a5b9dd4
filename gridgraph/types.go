// SPDX-License-Identifier: MIT

package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Size is the side length of the solver board.
const Size = 4

// Cells is the number of positions on the solver board.
const Cells = Size * Size

// Position identifies one cell of a grid in row-major order (y*Width + x).
type Position int

// GridGraph is an immutable rectangular grid viewed as a graph.
// Width and Height define dimensions; Conn is fixed at construction.
// adjacency[p] holds the neighbors of p in ascending order.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	neighborOffsets [][2]int
	adjacency       [][]Position
}
