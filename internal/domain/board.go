package domain

import "strings"

// BoardSize is the width and height of the grid
const BoardSize = 3

// Mark represents the content of a board cell
type Mark byte

const (
	// MarkEmpty - cell not yet played
	MarkEmpty Mark = ' '
	// MarkX - mark of player1
	MarkX Mark = 'X'
	// MarkO - mark of player2
	MarkO Mark = 'O'
)

// String returns the single character shown in rendered boards
func (m Mark) String() string {
	return string(m)
}

// lines lists every three-in-a-row as cell coordinates, rows first,
// then columns, then the two diagonals.
var lines = [][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Board is the 3x3 grid with turn tracking and outcome evaluation.
// The zero value is not usable; create boards with NewBoard.
type Board struct {
	cells       [BoardSize][BoardSize]Mark
	activeIsX   bool
	filledCount int
	winner      Mark
	terminal    bool
}

// NewBoard creates an empty board with X to move
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset clears every cell and gives the turn back to X
func (b *Board) Reset() {
	for i := range b.cells {
		for j := range b.cells[i] {
			b.cells[i][j] = MarkEmpty
		}
	}
	b.activeIsX = true
	b.filledCount = 0
	b.winner = MarkEmpty
	b.terminal = false
}

// ActiveMark returns the mark of the player whose turn it is
func (b *Board) ActiveMark() Mark {
	if b.activeIsX {
		return MarkX
	}
	return MarkO
}

// IsXTurn reports whether X is to move
func (b *Board) IsXTurn() bool {
	return b.activeIsX
}

// PassTurn hands the move to the other mark
func (b *Board) PassTurn() {
	b.activeIsX = !b.activeIsX
}

// FilledCount returns the number of non-empty cells
func (b *Board) FilledCount() int {
	return b.filledCount
}

// IsTerminal reports whether the board holds a line or is full
func (b *Board) IsTerminal() bool {
	return b.terminal
}

// Winner returns the mark that completed a line. ok is false while the
// game is running and on a draw.
func (b *Board) Winner() (mark Mark, ok bool) {
	if b.winner == MarkEmpty {
		return MarkEmpty, false
	}
	return b.winner, true
}

// Cell returns the mark at row, col
func (b *Board) Cell(row, col int) Mark {
	return b.cells[row][col]
}

// PlaceMark writes mark at row, col and re-evaluates the outcome.
// The board is left untouched when an error is returned.
func (b *Board) PlaceMark(mark Mark, row, col int) error {
	if b.terminal {
		return ErrGameOver
	}
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return ErrInvalidMove
	}
	if mark != MarkX && mark != MarkO {
		return ErrInvalidMove
	}
	if b.cells[row][col] != MarkEmpty {
		return ErrCellTaken
	}
	b.cells[row][col] = mark
	b.filledCount++
	b.Evaluate()
	return nil
}

// Evaluate marks the board terminal when a line is complete or the grid is full.
// It is a no-op once the board is terminal.
func (b *Board) Evaluate() {
	if b.terminal {
		return
	}
	for _, line := range lines {
		first := b.cells[line[0][0]][line[0][1]]
		if first == MarkEmpty {
			continue
		}
		if first == b.cells[line[1][0]][line[1][1]] && first == b.cells[line[2][0]][line[2][1]] {
			b.winner = first
			b.terminal = true
			return
		}
	}
	if b.filledCount == BoardSize*BoardSize {
		b.terminal = true
	}
}

// Render returns the fixed-width text grid:
//
//	+-+-+-+
//	|X| |O|
//	+-+-+-+
//	...
func (b *Board) Render() string {
	var sb strings.Builder
	for i := 0; i < BoardSize; i++ {
		sb.WriteString("+-+-+-+\n")
		sb.WriteString("|")
		for j := 0; j < BoardSize; j++ {
			sb.WriteString(b.cells[i][j].String())
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("+-+-+-+\n")
	return sb.String()
}
