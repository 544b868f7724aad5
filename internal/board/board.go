// Package board implements a fixed-size 2-D grid with bounds-checked
// coordinate access. Cells hold an optional piece; empty cells are
// distinct from any piece value.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// Piece is a marker stored in a board cell.
type Piece int

// Sentinel errors for board operations.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrOutOfBounds  = errors.New("out of bounds")
)

// OutOfBoundsError reports a coordinate outside the grid extents.
type OutOfBoundsError struct {
	Row, Col      int
	Height, Width int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("out of bounds: (%d, %d) not in %dx%d grid", e.Row, e.Col, e.Height, e.Width)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// Board is a height x width grid. Cells are row-major; a nil cell is
// empty.
type Board struct {
	height int
	width  int
	cells  []*Piece
}

// New returns a Board with every cell empty. Both dimensions must be
// positive.
func New(height, width int) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: board dimensions must be positive, got %dx%d", ErrInvalidInput, height, width)
	}
	return &Board{
		height: height,
		width:  width,
		cells:  make([]*Piece, height*width),
	}, nil
}

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Get returns the piece at (row, col) and whether the cell is occupied.
func (b *Board) Get(row, col int) (Piece, bool, error) {
	if err := b.check(row, col); err != nil {
		return 0, false, err
	}
	cell := b.cells[row*b.width+col]
	if cell == nil {
		return 0, false, nil
	}
	return *cell, true, nil
}

// Set places piece at (row, col), overwriting any existing piece.
func (b *Board) Set(row, col int, piece Piece) error {
	if err := b.check(row, col); err != nil {
		return err
	}
	p := piece
	b.cells[row*b.width+col] = &p
	return nil
}

// Clear empties the cell at (row, col).
func (b *Board) Clear(row, col int) error {
	if err := b.check(row, col); err != nil {
		return err
	}
	b.cells[row*b.width+col] = nil
	return nil
}

func (b *Board) check(row, col int) error {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return &OutOfBoundsError{Row: row, Col: col, Height: b.height, Width: b.width}
	}
	return nil
}

// String renders the grid one row per line, "." for empty cells and the
// piece value for occupied ones.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if cell := b.cells[row*b.width+col]; cell != nil {
				fmt.Fprintf(&sb, "%d", *cell)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
