package search

import "fmt"

// link is the back-pointer stored for a discovered state: the key of the state
// it was reached from and the step taken.
type link[S any, K comparable] struct {
	parent K
	step   Step[S]
}

// ParentMap maps a state key to the predecessor used to reach it first.
// Later rediscoveries never overwrite an existing entry.
type ParentMap[S any, K comparable] struct {
	links map[K]link[S, K]
}

// NewParentMap returns an empty parent map sized for hint entries.
func NewParentMap[S any, K comparable](hint int) *ParentMap[S, K] {
	return &ParentMap[S, K]{links: make(map[K]link[S, K], hint)}
}

// RecordIfAbsent stores parent as the predecessor of child, reached via step.
// It reports whether the entry was written (false if child already had one).
func (m *ParentMap[S, K]) RecordIfAbsent(child, parent K, step Step[S]) bool {
	if _, ok := m.links[child]; ok {
		return false
	}
	m.links[child] = link[S, K]{parent: parent, step: step}

	return true
}

// Parent returns the recorded predecessor key of child.
func (m *ParentMap[S, K]) Parent(child K) (K, bool) {
	l, ok := m.links[child]
	return l.parent, ok
}

// Len returns the number of recorded children.
func (m *ParentMap[S, K]) Len() int { return len(m.links) }

// Reconstruct walks back from goal to start and returns the steps in forward order.
// A goal equal to start yields an empty path.
// Returns ErrBrokenChain if a link is missing or the chain loops.
//
// Complexity: O(L) for a path of L steps.
func (m *ParentMap[S, K]) Reconstruct(start, goal K) ([]Step[S], error) {
	steps := make([]Step[S], 0, 8)
	// a simple chain can never be longer than the number of links
	for cur := goal; cur != start; {
		l, ok := m.links[cur]
		if !ok || len(steps) > len(m.links) {
			return nil, fmt.Errorf("%w: stuck at %v", ErrBrokenChain, cur)
		}
		steps = append(steps, l.step)
		cur = l.parent
	}

	// reverse to get start → goal
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps, nil
}
