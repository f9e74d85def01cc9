// SPDX-License-Identifier: MIT
//
// File: frontier.go
// Role: Min-priority open set used by the best-first driver.
// Policy:
//   - No decrease-key. Duplicates with different priorities coexist until popped.
//   - Equal priorities pop in insertion order (FIFO), so runs are reproducible.

// Package frontier provides the open set of a best-first search: a binary
// min-heap of (priority, payload) entries with deterministic tie-breaking.
//
// The queue follows the "lazy decrease-key" pattern: when a cheaper route to a
// state is found, callers push a new entry and let the stale one sit in the heap.
// Stale entries are filtered by the caller's closed set when they are popped.
//
// Complexity:
//
//   - Push: O(log N)
//   - Pop:  O(log N)
//   - Peek, Len, Empty: O(1)
//   - Space: O(N) for N pending entries (unbounded).
package frontier

import "container/heap"

// entry is one pending payload with its priority and insertion sequence.
type entry[T any] struct {
	priority float64
	seq      uint64 // insertion order; breaks priority ties
	payload  T
}

// entries is the heap.Interface backing store.
type entries[T any] []entry[T]

// Len returns the number of entries in the heap.
func (es entries[T]) Len() int { return len(es) }

// Less orders by priority ascending, then by insertion sequence ascending.
func (es entries[T]) Less(i, j int) bool {
	if es[i].priority != es[j].priority {
		return es[i].priority < es[j].priority
	}

	return es[i].seq < es[j].seq
}

// Swap swaps two entries in the heap.
func (es entries[T]) Swap(i, j int) { es[i], es[j] = es[j], es[i] }

// Push appends x; called by heap.Push.
func (es *entries[T]) Push(x any) { *es = append(*es, x.(entry[T])) }

// Pop removes the last element; called by heap.Pop.
func (es *entries[T]) Pop() any {
	old := *es
	n := len(old)
	item := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop the payload reference for the GC
	*es = old[:n-1]

	return item
}

// Queue is a min-priority queue of payloads of type T.
// The zero value is ready to use. A Queue is not safe for concurrent use;
// it is owned by exactly one search invocation.
type Queue[T any] struct {
	items   entries[T]
	nextSeq uint64
}

// New returns an empty Queue with room for capacity entries before growing.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{items: make(entries[T], 0, capacity)}
}

// Push inserts payload with the given priority.
// Complexity: O(log N).
func (q *Queue[T]) Push(priority float64, payload T) {
	heap.Push(&q.items, entry[T]{
		priority: priority,
		seq:      q.nextSeq,
		payload:  payload,
	})
	q.nextSeq++
}

// Pop removes and returns the entry with the lowest priority.
// ok is false when the queue is empty.
// Complexity: O(log N).
func (q *Queue[T]) Pop() (priority float64, payload T, ok bool) {
	if len(q.items) == 0 {
		return 0, payload, false
	}
	e := heap.Pop(&q.items).(entry[T])

	return e.priority, e.payload, true
}

// Peek returns the lowest-priority entry without removing it.
func (q *Queue[T]) Peek() (priority float64, payload T, ok bool) {
	if len(q.items) == 0 {
		return 0, payload, false
	}

	return q.items[0].priority, q.items[0].payload, true
}

// Len reports the number of pending entries, stale duplicates included.
func (q *Queue[T]) Len() int { return len(q.items) }

// Empty reports whether no entries are pending.
func (q *Queue[T]) Empty() bool { return len(q.items) == 0 }

// Pushed reports how many entries were ever pushed into q.
func (q *Queue[T]) Pushed() uint64 { return q.nextSeq }
