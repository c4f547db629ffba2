// Package tabu - the bounded FIFO history of visited states.
package tabu

import "github.com/greenlsi/solidgo/search"

// List is an insertion-ordered history of previously visited states with a
// fixed capacity. Pushing beyond capacity evicts the oldest entry.
// Membership is by the configured equality, not identity.
//
// Invariant: Len() <= Cap() at every observation point.
//
// List is not safe for concurrent use; the engine mutates it only between
// rounds on the single search goroutine.
type List[S any] struct {
	items []S // ring buffer, fixed length == capacity
	head  int // index of the oldest entry
	size  int
	equal search.EqualFunc[S]
}

// NewList returns an empty history with the given capacity. capacity < 1 is
// clamped to 1; equal == nil falls back to reflect.DeepEqual.
//
// Complexity: O(capacity) allocation, O(1) afterwards per Push.
func NewList[S any](capacity int, equal search.EqualFunc[S]) *List[S] {
	if capacity < 1 {
		capacity = 1
	}
	return &List[S]{
		items: make([]S, capacity),
		equal: equal,
	}
}

// Push records s as the most recent visit, evicting the oldest entry when
// the list is full.
func (l *List[S]) Push(s S) {
	if l.size < len(l.items) {
		l.items[(l.head+l.size)%len(l.items)] = s
		l.size++
		return
	}
	// Full: overwrite the oldest slot and advance the head (FIFO eviction).
	l.items[l.head] = s
	l.head = (l.head + 1) % len(l.items)
}

// Contains reports whether s equals any recorded state.
//
// Complexity: O(Len()).
func (l *List[S]) Contains(s S) bool {
	for i := 0; i < l.size; i++ {
		if search.Equal(l.equal, l.items[(l.head+i)%len(l.items)], s) {
			return true
		}
	}
	return false
}

// Len returns the number of recorded states.
func (l *List[S]) Len() int { return l.size }

// Cap returns the capacity.
func (l *List[S]) Cap() int { return len(l.items) }

// Clear empties the list, keeping its capacity. Stored states are zeroed so
// evicted references do not linger.
func (l *List[S]) Clear() {
	var zero S
	for i := range l.items {
		l.items[i] = zero
	}
	l.head = 0
	l.size = 0
}
