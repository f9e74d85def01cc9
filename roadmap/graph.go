// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: In-memory road network: cities, undirected roads, optional coordinates.
// Policy:
//   - One RWMutex guards all storage; every exported method is safe for concurrent use.
//   - Iteration order is deterministic: Arcs in insertion order, Cities sorted.
//   - Parallel roads between the same cities are allowed (different highways).

// Package roadmap holds the road network consumed by route finding: cities,
// the roads between them (length, speed limit, highway name), and the
// city coordinates used by the great-circle heuristic.
//
// Errors:
//
//	ErrEmptyCity     - city name is the empty string.
//	ErrCityNotFound  - requested city does not exist.
//	ErrBadLength     - negative or non-finite road length.
//	ErrBadSpeedLimit - zero, negative or non-finite speed limit.
//	ErrLoop          - road from a city to itself when loops are disabled.
package roadmap

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/katalvlaran/bestfirst/geo"
)

// Sentinel errors for road network operations.
var (
	// ErrEmptyCity indicates an empty city name.
	ErrEmptyCity = errors.New("roadmap: city name is empty")

	// ErrCityNotFound indicates an operation referenced a non-existent city.
	ErrCityNotFound = errors.New("roadmap: city not found")

	// ErrBadLength indicates a negative or non-finite road length.
	ErrBadLength = errors.New("roadmap: road length must be finite and non-negative")

	// ErrBadSpeedLimit indicates a non-positive or non-finite speed limit.
	ErrBadSpeedLimit = errors.New("roadmap: speed limit must be finite and positive")

	// ErrLoop indicates a self-loop while loops are disabled.
	ErrLoop = errors.New("roadmap: road from a city to itself not allowed")
)

// Road is an undirected road segment. Roads are immutable once added.
type Road struct {
	ID         int
	A, B       string
	Length     float64 // miles
	SpeedLimit float64 // miles per hour
	Highway    string
}

// Other returns the endpoint of r opposite to city.
func (r *Road) Other(city string) string {
	if city == r.A {
		return r.B
	}

	return r.A
}

// Arc is a Road seen from one of its endpoints, heading To the other one.
type Arc struct {
	Road *Road
	From string
	To   string
}

// Option configures a Graph before creation.
type Option func(g *Graph)

// WithLoops permits roads from a city to itself.
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the road network.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	cities    map[string]struct{}
	locations map[string]geo.Point
	roads     []*Road
	arcs      map[string][]Arc // city → outgoing arcs, insertion order

	maxSpeed  float64
	maxLength float64
}

// NewGraph creates an empty road network.
// Complexity: O(1).
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		cities:    make(map[string]struct{}),
		locations: make(map[string]geo.Point),
		arcs:      make(map[string][]Arc),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddCity registers a city with no roads. Adding an existing city is a no-op.
func (g *Graph) AddCity(name string) error {
	if name == "" {
		return ErrEmptyCity
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cities[name] = struct{}{}

	return nil
}

// HasCity reports whether name is a known city.
func (g *Graph) HasCity(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.cities[name]

	return ok
}

// Cities returns every city name, sorted.
// Complexity: O(V log V).
func (g *Graph) Cities() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.cities))
	for c := range g.cities {
		out = append(out, c)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}

// SetLocation stores the coordinates of name. The city does not need to have
// roads; coordinate files routinely list places the road file never mentions.
func (g *Graph) SetLocation(name string, p geo.Point) error {
	if name == "" {
		return ErrEmptyCity
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.locations[name] = p

	return nil
}

// Location returns the coordinates of name, if known.
func (g *Graph) Location(name string) (geo.Point, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	p, ok := g.locations[name]

	return p, ok
}

// AddRoad adds an undirected road between a and b, creating either city if needed.
//
// Errors: ErrEmptyCity, ErrLoop, ErrBadLength, ErrBadSpeedLimit.
// Complexity: O(1) amortized.
func (g *Graph) AddRoad(a, b string, length, speedLimit float64, highway string) (*Road, error) {
	if a == "" || b == "" {
		return nil, ErrEmptyCity
	}
	if length < 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return nil, fmt.Errorf("%w: %s–%s length=%v", ErrBadLength, a, b, length)
	}
	if speedLimit <= 0 || math.IsNaN(speedLimit) || math.IsInf(speedLimit, 0) {
		return nil, fmt.Errorf("%w: %s–%s speed=%v", ErrBadSpeedLimit, a, b, speedLimit)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if a == b && !g.allowLoops {
		return nil, fmt.Errorf("%w: %s", ErrLoop, a)
	}

	r := &Road{
		ID:         len(g.roads),
		A:          a,
		B:          b,
		Length:     length,
		SpeedLimit: speedLimit,
		Highway:    highway,
	}
	g.roads = append(g.roads, r)
	g.cities[a] = struct{}{}
	g.cities[b] = struct{}{}
	g.arcs[a] = append(g.arcs[a], Arc{Road: r, From: a, To: b})
	if a != b {
		g.arcs[b] = append(g.arcs[b], Arc{Road: r, From: b, To: a})
	}
	g.maxSpeed = math.Max(g.maxSpeed, speedLimit)
	g.maxLength = math.Max(g.maxLength, length)

	return r, nil
}

// Arcs returns a copy of the arcs leaving city, in the order roads were added.
// Returns ErrCityNotFound for an unknown city.
func (g *Graph) Arcs(city string) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.cities[city]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrCityNotFound, city)
	}
	out := make([]Arc, len(g.arcs[city]))
	copy(out, g.arcs[city])

	return out, nil
}

// Road returns the road with the given ID.
func (g *Graph) Road(id int) (*Road, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || id >= len(g.roads) {
		return nil, false
	}

	return g.roads[id], true
}

// MaxSpeedLimit returns the highest speed limit of any road (0 with no roads).
func (g *Graph) MaxSpeedLimit() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxSpeed
}

// MaxLength returns the length of the longest road (0 with no roads).
func (g *Graph) MaxLength() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxLength
}

// Stats is a read-only snapshot of catalog sizes.
type Stats struct {
	Cities    int
	Roads     int
	Locations int
}

// Stats returns the current catalog sizes.
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Stats{Cities: len(g.cities), Roads: len(g.roads), Locations: len(g.locations)}
}
