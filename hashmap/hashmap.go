// Package hashmap provides a mutable map keyed by board positions,
// addressed through Board.Hash. The brute-force solver uses it to
// collect solutions before freezing them into an immutable set.
package hashmap

import (
	"example.org/nqueens/board"
)

type entry[V any] struct {
	key   board.Board
	value V
}

// HashMap maps board positions to values. Keys preserves first-insert
// order. Hash collisions are resolved by Board.Equal within a bucket.
type HashMap[V any] struct {
	m    map[uint32][]entry[V]
	Keys []board.Board
}

func New[V any]() *HashMap[V] {
	return &HashMap[V]{m: make(map[uint32][]entry[V])}
}

func (h *HashMap[V]) Set(k board.Board, v V) {
	bucket := h.m[k.Hash()]
	for i := range bucket {
		if bucket[i].key.Equal(k) {
			bucket[i].value = v
			return
		}
	}
	h.m[k.Hash()] = append(bucket, entry[V]{key: k, value: v})
	h.Keys = append(h.Keys, k)
}

func (h *HashMap[V]) Get(k board.Board) (v V, ok bool) {
	for _, e := range h.m[k.Hash()] {
		if e.key.Equal(k) {
			return e.value, true
		}
	}
	return
}

func (h *HashMap[V]) Len() int {
	return len(h.Keys)
}

func (h *HashMap[V]) Clear() {
	for k := range h.m {
		delete(h.m, k)
	}
	h.Keys = nil
}
