// Package solver finds N-Queens solutions: exhaustively over all row
// permutations for small boards, or by hill climbing over the board's
// successor graph for larger ones.
package solver

import (
	"fmt"
	"runtime"

	"github.com/benbjohnson/immutable"
	"golang.org/x/sync/errgroup"

	"example.org/nqueens/board"
	"example.org/nqueens/hashmap"
)

// BruteForce returns the set of all solutions of the given size by
// checking every permutation of row assignments. Permutations already
// exclude row and column repeats, so only diagonal conflicts are left
// for IsValid to reject; the factorial candidate count still reserves
// this for small sizes. Size 4 has 2 solutions, size 5 has 10.
func BruteForce(size int) *immutable.Map[board.Board, bool] {
	solutions, err := BruteForceFrom(NewHeapPermutations(size), 0)
	if err != nil {
		// HeapPermutations stays within [0, size) by construction
		panic(fmt.Errorf("brute force over own permutation source failed: %w", err))
	}
	return solutions
}

// BruteForceFrom is BruteForce over a caller-supplied permutation
// source, validated by a pool of the given number of workers (one per
// CPU when workers <= 0). Workers only read their own
// board snapshots; parallelism changes latency, never the result. The
// only error is a source producing an out-of-range row.
func BruteForceFrom(perms PermutationSource, workers int) (*immutable.Map[board.Board, bool], error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	candidates := make(chan board.Board, workers)
	locals := make([][]board.Board, workers)

	g := new(errgroup.Group)
	g.Go(func() error {
		defer close(candidates)
		for {
			rows, ok := perms.Next()
			if !ok {
				return nil
			}
			b, err := board.FromRows(rows)
			if err != nil {
				return err
			}
			candidates <- b
		}
	})
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for b := range candidates {
				if b.IsValid() {
					locals[w] = append(locals[w], b)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// merge per-worker results, deduping by position, then freeze
	seen := hashmap.New[bool]()
	for _, local := range locals {
		for _, b := range local {
			seen.Set(b, true)
		}
	}
	builder := immutable.NewMapBuilder[board.Board, bool](board.Hasher{})
	for _, b := range seen.Keys {
		builder.Set(b, true)
	}
	return builder.Map(), nil
}
