package board

// SuccessorIterator lazily enumerates the successors of a board: every
// board obtained by moving the queen of exactly one occupied column to
// a different row. Columns that are empty in the original are never
// populated; this moves queens, it does not place them.
//
// Successors come out grouped by column in ascending order, and within
// a column in ascending row order with the original row skipped, so a
// board with k occupied columns yields exactly k×(size−1) successors.
//
// The iterator is an explicit state machine over {original snapshot,
// working clone, column cursor}. Only the cursor's column of the
// working clone ever differs from the original; the column is restored
// before the cursor advances. Once exhausted it stays exhausted; build
// a fresh iterator from the original to restart.
type SuccessorIterator struct {
	original Board
	working  Board
	column   int
}

// Successors returns an iterator over all one-queen-moved neighbors of
// the board. The board must not be mutated while the iterator is live.
func (b Board) Successors() *SuccessorIterator {
	it := &SuccessorIterator{
		original: b,
		working:  b.Clone(),
	}
	// an empty slot in the cursor's column marks it "not yet started"
	if b.Size() != 0 {
		it.working.Clear(it.column)
	}
	return it
}

// Next returns the next successor and true, or a zero Board and false
// once the sequence is exhausted.
func (it *SuccessorIterator) Next() (Board, bool) {
	// A 1×1 board has no successor either way: a lone queen has
	// nowhere else to go, and we never add queens. 0 is trivial.
	if it.original.Size() <= 1 {
		return Board{}, false
	}

	for it.column < it.original.Size() {
		cur, started := it.working.GetOptional(it.column)
		orig, occupied := it.original.GetOptional(it.column)

		if next, ok := nextRow(cur, started, orig, occupied, it.original.Size()); ok {
			it.working.rows[it.column] = next
			return it.working.Clone(), true
		}

		// Either the column's candidates ran out or the original had
		// no queen here: restore the column and move the cursor on.
		it.working.setFrom(it.original, it.column)
		it.column++
		if it.column < it.original.Size() {
			it.working.Clear(it.column)
		}
	}

	return Board{}, false
}

// nextRow computes the next candidate row for the cursor's column:
// rows ascend from 0 to size−1 skipping the original row, `started`
// says whether the column has produced anything yet, and a column
// empty in the original has no candidates at all.
func nextRow(cur int, started bool, orig int, occupied bool, size int) (int, bool) {
	switch {
	case !occupied:
		return 0, false
	case !started:
		if orig == 0 {
			return 1, true
		}
		return 0, true
	default:
		next := cur + 1
		if next == orig {
			next++
		}
		if next >= size {
			return 0, false
		}
		return next, true
	}
}
