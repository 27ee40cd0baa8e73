package solver

import (
	"errors"
	"math/rand"

	"example.org/nqueens/board"
)

// ErrNoSolutionsExist reports that no solution exists at all for the
// requested size; this is a structural fact for sizes 2 and 3, not a
// search failure.
var ErrNoSolutionsExist = errors.New("no solutions exist for this board size")

// ErrSolutionNotFound reports that the search stopped at a local
// minimum or plateau. This is an expected outcome of a random start;
// callers retry with a fresh one.
var ErrSolutionNotFound = errors.New("hill climbing stuck at a local minimum or plateau")

// HillClimb attempts to find a zero-conflict board of the given size
// by greedy local search from a random start. The start is a full
// board with every column's row drawn independently at random (not a
// random permutation). Each step adopts the successor with the fewest
// conflicts, earliest in successor order on ties, and gives up with
// ErrSolutionNotFound as soon as the best successor is no strict
// improvement.
//
// Sizes 0 and 1 cannot conflict and return the degenerate random
// board immediately; sizes 2 and 3 return ErrNoSolutionsExist without
// searching.
func HillClimb(size int, rng *rand.Rand) (board.Board, error) {
	if size == 2 || size == 3 {
		return board.Board{}, ErrNoSolutionsExist
	}

	current := board.NewRandom(size, rng)
	if size < 2 {
		return current, nil
	}

	conflicts := current.CountConflicts()
	for conflicts != 0 {
		var best board.Board
		bestConflicts := -1
		it := current.Successors()
		for succ, ok := it.Next(); ok; succ, ok = it.Next() {
			// strict < keeps the first-seen minimum on ties
			if c := succ.CountConflicts(); bestConflicts == -1 || c < bestConflicts {
				best, bestConflicts = succ, c
			}
		}

		// Requiring strict improvement stops us on plateaus rather
		// than looping forever, at the cost of missing solutions that
		// are only reachable through a sideways move.
		if bestConflicts >= conflicts {
			return board.Board{}, ErrSolutionNotFound
		}
		current, conflicts = best, bestConflicts
	}
	return current, nil
}

// HillClimbRetry runs HillClimb with fresh random starts until it
// succeeds, hits a structural ErrNoSolutionsExist, or exhausts
// maxRestarts additional attempts, returning the last error in that
// case.
func HillClimbRetry(size int, rng *rand.Rand, maxRestarts int) (board.Board, error) {
	b, err := HillClimb(size, rng)
	for i := 0; i < maxRestarts && errors.Is(err, ErrSolutionNotFound); i++ {
		b, err = HillClimb(size, rng)
	}
	return b, err
}
