/*
Package maze generates perfect mazes over a rectangular grid.

A maze is carved with an iterative, randomized depth-first traversal driven by an
explicit stack. The result is a spanning tree of the grid graph: exactly one simple
path joins any two cells.

The grid has one row per maze row plus a trailing all-wall row, and one column per
maze column plus a trailing wall column. Interior positions start open; carving clears
the position between two cells and records the connection as a Passage.
*/
package maze

import (
	"errors"
	"math/rand"
	"strings"
)

// MaxDimension bounds the width and height accepted by New.
const MaxDimension = 512

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)

// Source is the random source used to order neighbours while carving.
// *rand.Rand satisfies it.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

// globalSource draws from the process-wide math/rand source.
type globalSource struct{}

func (globalSource) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// NewSeededSource returns a source that yields the same mazes for the same seed.
func NewSeededSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Maze is a generated maze together with the passages carved into it.
type Maze struct {
	Width    int       // Width of the maze (number of cell columns)
	Height   int       // Height of the maze (number of cell rows)
	Grid     [][]int   // Grid of Open/Wall markers, (Height+1) x (Width+1)
	Passages []Passage // Passages in the order they were carved
}

// New validates the dimensions and generates a maze.
func New(width, height int, src Source) (*Maze, error) {
	if min(width, height) <= 0 || max(width, height) > MaxDimension {
		return nil, ErrInvalidDimensions
	}
	return Generate(width, height, src), nil
}

// Generate carves a perfect maze of the given dimensions.
// Dimensions are not validated. A nil src uses the process-wide random source.
func Generate(width, height int, src Source) *Maze {
	if src == nil {
		src = globalSource{}
	}

	grid := make([][]int, 0, height+1)
	for y := 0; y < height; y++ {
		row := make([]int, width+1)
		row[width] = Wall
		grid = append(grid, row)
	}
	bottom := make([]int, width+1)
	for x := range bottom {
		bottom[x] = Wall
	}
	grid = append(grid, bottom)

	m := &Maze{
		Width:  width,
		Height: height,
		Grid:   grid,
	}
	m.carve(src)
	return m
}

// frontier is a stack entry: a cell waiting to be visited and the cell that pushed it.
type frontier struct {
	cell   CellPosition
	parent CellPosition
	root   bool
}

// carve runs the depth-first traversal from (0, 0).
// A cell may be pushed several times; only its first pop carves the passage to it.
func (m *Maze) carve(src Source) {
	visited := make(map[CellPosition]struct{})
	stack := []frontier{{cell: CellPosition{X: 0, Y: 0}, root: true}}

	for len(stack) > 0 {
		next := pop(&stack)
		if _, seen := visited[next.cell]; seen {
			continue
		}
		visited[next.cell] = struct{}{}
		if !next.root {
			m.openWall(Passage{From: next.parent, To: next.cell})
		}

		neighbors := m.neighbors(next.cell)
		src.Shuffle(len(neighbors), func(i, j int) {
			neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
		})

		for _, nbr := range neighbors {
			if !m.InBound(nbr) {
				continue
			}
			if _, seen := visited[nbr]; seen {
				continue
			}
			stack = append(stack, frontier{cell: nbr, parent: next.cell})
		}
	}
}

// neighbors lists the four axis-aligned neighbours of pos: right, left, down, up.
// Positions outside the maze are included.
func (m *Maze) neighbors(pos CellPosition) []CellPosition {
	return []CellPosition{
		{X: pos.X + 1, Y: pos.Y},
		{X: pos.X - 1, Y: pos.Y},
		{X: pos.X, Y: pos.Y + 1},
		{X: pos.X, Y: pos.Y - 1},
	}
}

// openWall clears the grid position between the two cells and records the passage.
func (m *Maze) openWall(p Passage) {
	row, col := p.wallPosition()
	m.Grid[row][col] = Open
	m.Passages = append(m.Passages, p)
}

// pop removes and returns the last element of the stack.
func pop(s *[]frontier) frontier {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}

// InBound reports whether pos is a cell of the maze.
func (m *Maze) InBound(pos CellPosition) bool {
	return pos.X >= 0 && pos.X < m.Width && pos.Y >= 0 && pos.Y < m.Height
}

// Reachable returns every cell reachable from start by following carved passages.
func (m *Maze) Reachable(start CellPosition) map[CellPosition]struct{} {
	adjacent := make(map[CellPosition][]CellPosition, len(m.Passages)*2)
	for _, p := range m.Passages {
		adjacent[p.From] = append(adjacent[p.From], p.To)
		adjacent[p.To] = append(adjacent[p.To], p.From)
	}

	reached := map[CellPosition]struct{}{}
	if !m.InBound(start) {
		return reached
	}
	reached[start] = struct{}{}
	queue := []CellPosition{start}
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		for _, next := range adjacent[cell] {
			if _, ok := reached[next]; ok {
				continue
			}
			reached[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return reached
}

// String renders the grid one row per line, X for walls and a space for open positions.
func (m *Maze) String() string {
	var output strings.Builder
	for _, row := range m.Grid {
		for _, cell := range row {
			if cell == Wall {
				output.WriteByte('X')
			} else {
				output.WriteByte(' ')
			}
		}
		output.WriteByte('\n')
	}
	return output.String()
}
