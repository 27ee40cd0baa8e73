// Package board implements the N-Queens board model: a square board
// holding at most one queen per column, together with the validity and
// conflict-counting machinery the solvers are built on.
package board

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/segmentio/fasthash/fnv1a"
	"go.uber.org/multierr"
)

// ErrOutOfRange signals a column or row index beyond the board's bound.
var ErrOutOfRange = errors.New("board index out of range")

// ErrUnoccupied signals a non-optional read of an empty column.
var ErrUnoccupied = errors.New("column has no queen")

// noQueen marks an empty column slot.
const noQueen = -1

// Board is a square N×N chess board holding at most one queen per
// column. "One queen per column" is structural: a column stores either
// a row index in [0, N) or nothing at all. Row and diagonal uniqueness
// are validity properties checked by IsValid and CountConflicts, not
// invariants of the representation.
//
// A Board's size is fixed at creation. Boards are mutated in place;
// use Clone before handing a Board to code that must not observe later
// mutations.
type Board struct {
	rows []int
}

// NewEmpty returns a size×size board with every column empty.
func NewEmpty(size int) Board {
	rows := make([]int, size)
	for i := range rows {
		rows[i] = noQueen
	}
	return Board{rows: rows}
}

// NewRandom returns a size×size board with every column assigned a row
// drawn uniformly from [0, size) using the given generator.
func NewRandom(size int, rng *rand.Rand) Board {
	rows := make([]int, size)
	for i := range rows {
		rows[i] = rng.Intn(size)
	}
	return Board{rows: rows}
}

// FromRows builds a board whose size is len(rows), with column i
// holding rows[i]. Every value must be in [0, len(rows)); otherwise
// FromRows reports ErrOutOfRange for each offending column, combined
// into a single error.
func FromRows(rows []int) (Board, error) {
	var err error
	for column, row := range rows {
		if row < 0 || row >= len(rows) {
			err = multierr.Append(err, fmt.Errorf("%w: row %d in column %d, size %d",
				ErrOutOfRange, row, column, len(rows)))
		}
	}
	if err != nil {
		return Board{}, err
	}
	b := Board{rows: make([]int, len(rows))}
	copy(b.rows, rows)
	return b, nil
}

// Size returns the board's width and height, which are equal.
func (b Board) Size() int {
	return len(b.rows)
}

func (b Board) checkColumn(column int) {
	if column < 0 || column >= len(b.rows) {
		panic(fmt.Errorf("%w: column %d, size %d", ErrOutOfRange, column, len(b.rows)))
	}
}

// IsOccupied reports whether the given column holds a queen. Panics
// with an error wrapping ErrOutOfRange if the column is out of bounds.
func (b Board) IsOccupied(column int) bool {
	b.checkColumn(column)
	return b.rows[column] != noQueen
}

// Get returns the row of the queen in the given column. The column
// must be occupied; reading an empty column is a contract violation
// and panics with an error wrapping ErrUnoccupied.
func (b Board) Get(column int) int {
	b.checkColumn(column)
	if b.rows[column] == noQueen {
		panic(fmt.Errorf("%w: column %d", ErrUnoccupied, column))
	}
	return b.rows[column]
}

// GetOptional returns the row of the queen in the given column and
// whether the column is occupied at all.
func (b Board) GetOptional(column int) (row int, ok bool) {
	b.checkColumn(column)
	if b.rows[column] == noQueen {
		return 0, false
	}
	return b.rows[column], true
}

// Set places the queen in the given column at the given row.
func (b *Board) Set(column, row int) error {
	if column < 0 || column >= len(b.rows) {
		return fmt.Errorf("%w: column %d, size %d", ErrOutOfRange, column, len(b.rows))
	}
	if row < 0 || row >= len(b.rows) {
		return fmt.Errorf("%w: row %d, size %d", ErrOutOfRange, row, len(b.rows))
	}
	b.rows[column] = row
	return nil
}

// Clear removes the queen, if any, from the given column.
func (b *Board) Clear(column int) {
	b.checkColumn(column)
	b.rows[column] = noQueen
}

// SetRandom places the queen in the given column at a row drawn
// uniformly from [0, size) using the given generator.
func (b *Board) SetRandom(column int, rng *rand.Rand) {
	b.checkColumn(column)
	b.rows[column] = rng.Intn(len(b.rows))
}

// Clone returns a deep copy of the board. Mutating the clone never
// affects the original.
func (b Board) Clone() Board {
	rows := make([]int, len(b.rows))
	copy(rows, b.rows)
	return Board{rows: rows}
}

// setFrom copies one column's slot, occupied or not, from another
// board of the same size.
func (b *Board) setFrom(other Board, column int) {
	b.rows[column] = other.rows[column]
}

// IsValid reports whether the board is a solution: every column
// occupied, and no two queens sharing a row or a diagonal. The three
// stages short-circuit in that order.
func (b Board) IsValid() bool {
	// occupancy first, so the later stages can read unconditionally
	for _, row := range b.rows {
		if row == noQueen {
			return false
		}
	}

	// one queen per column holds by construction; rows next
	for i, row := range b.rows {
		for _, row2 := range b.rows[i+1:] {
			if row == row2 {
				return false
			}
		}
	}

	// Diagonals: cells on a rising diagonal share column+row, cells on
	// a falling diagonal share column-row, so two queens attack
	// diagonally exactly when either quantity ties. Each unordered
	// pair is checked once.
	for i, row := range b.rows {
		for j := i + 1; j < len(b.rows); j++ {
			row2 := b.rows[j]
			if i+row == j+row2 || i-row == j-row2 {
				return false
			}
		}
	}

	return true
}

// CountConflicts returns the number of unordered pairs of occupied
// columns whose queens attack each other by row or diagonal. Empty
// columns contribute nothing, so partially filled boards are fine; a
// board with fewer than two queens counts zero. A full board counts
// zero exactly when IsValid reports true.
func (b Board) CountConflicts() int {
	conflicts := 0
	for i, row := range b.rows {
		if row == noQueen {
			continue
		}
		for j := i + 1; j < len(b.rows); j++ {
			row2 := b.rows[j]
			if row2 == noQueen {
				continue
			}
			if row == row2 || i+row == j+row2 || i-row == j-row2 {
				conflicts++
			}
		}
	}
	return conflicts
}

// Hash returns a position hash suitable for hash-addressed board sets.
// Equal boards hash alike; empty and occupied slots never collide
// within a column.
func (b Board) Hash() uint32 {
	h := fnv1a.Init32
	for _, row := range b.rows {
		h = fnv1a.AddUint32(h, uint32(row+1))
	}
	return h
}

// Equal reports whether both boards have the same size and the same
// queen placement, including which columns are empty.
func (b Board) Equal(other Board) bool {
	if len(b.rows) != len(other.rows) {
		return false
	}
	for i, row := range b.rows {
		if row != other.rows[i] {
			return false
		}
	}
	return true
}

var _ fmt.Stringer = Board{}

// String renders the board as a grid, one line per row with row 0 on
// top, Q for a queen and . for an empty cell.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < len(b.rows); row++ {
		for column := 0; column < len(b.rows); column++ {
			if column > 0 {
				sb.WriteByte(' ')
			}
			if b.rows[column] == row {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Hasher adapts Board for use as an immutable.Map key.
type Hasher struct{}

var _ immutable.Hasher[Board] = Hasher{}

func (Hasher) Hash(key Board) uint32 {
	return key.Hash()
}

func (Hasher) Equal(a, b Board) bool {
	return a.Equal(b)
}
