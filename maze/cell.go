package maze

// Cell values stored in a Grid.
const (
	Open = 0 // Open marks a passable grid position.
	Wall = 1 // Wall marks a blocked grid position.
)

// CellPosition identifies a logical maze cell.
// It is distinct from a grid array position.
type CellPosition struct {
	X int `json:"x"` // X is the column of the cell.
	Y int `json:"y"` // Y is the row of the cell.
}

// Passage represents a carved connection between two adjacent cells.
type Passage struct {
	From CellPosition `json:"from"` // Cell the carving step started from.
	To   CellPosition `json:"to"`   // Neighbour the wall was cleared towards.
}

// wallPosition returns the grid row and column that separates the two cells of the passage.
func (p Passage) wallPosition() (row, col int) {
	if p.From.X == p.To.X {
		return max(p.From.Y, p.To.Y), p.From.X
	}
	return p.From.Y, max(p.From.X, p.To.X)
}
