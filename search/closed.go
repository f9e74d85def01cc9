package search

// ClosedSet records the visit keys of expanded states.
// Once a key is marked, the driver never expands a state with that key again,
// even if a cheaper path to it shows up later.
type ClosedSet[K comparable] struct {
	marked map[K]struct{}
}

// NewClosedSet returns an empty closed set sized for hint keys.
func NewClosedSet[K comparable](hint int) *ClosedSet[K] {
	return &ClosedSet[K]{marked: make(map[K]struct{}, hint)}
}

// Contains reports whether key was marked.
func (c *ClosedSet[K]) Contains(key K) bool {
	_, ok := c.marked[key]
	return ok
}

// Mark records key as expanded.
func (c *ClosedSet[K]) Mark(key K) { c.marked[key] = struct{}{} }

// Len returns the number of marked keys.
func (c *ClosedSet[K]) Len() int { return len(c.marked) }
