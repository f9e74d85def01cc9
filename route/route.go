// Package route finds driving routes over a roadmap.Graph with the generic
// best-first engine, under one of four cost models (segments, distance, time,
// delivery).
//
// A search state is the arc used to arrive at a city, not the city itself,
// because the delivery model prices a road by how the path arrived. The closed
// set, however, is keyed by the destination city: once any road into a city
// has been expanded, no other road into that city is expanded again.
//
// The heuristic is the great-circle distance from the arc's city to the goal,
// converted into the units of the chosen model, or 0 when either city has no
// known coordinates.
package route

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/bestfirst/cost"
	"github.com/katalvlaran/bestfirst/geo"
	"github.com/katalvlaran/bestfirst/roadmap"
	"github.com/katalvlaran/bestfirst/search"
)

// ErrNilGraph indicates a nil road network.
var ErrNilGraph = errors.New("route: graph is nil")

// anyRoad marks keys that stand for a city rather than a specific road into it.
const anyRoad = -1

// key identifies an arc (City reached via Road) or, with Road == anyRoad, a city.
type key struct {
	City string
	Road int
}

// Leg is one step of a route: the next stop and a display line for the road taken.
type Leg struct {
	City string
	Info string
	Road *roadmap.Road
}

// Route is a found route with totals under every cost model.
type Route struct {
	Start, End string
	Model      cost.Model
	Legs       []Leg
	cost.Totals

	// Cost is the accumulated cost under Model, as charged during the search.
	Cost float64
	// Expanded is the number of arcs the search expanded.
	Expanded int
}

// FindBySelector parses selector with cost.Parse and calls Find.
// An unknown selector fails with cost.ErrInvalidCostModel before any search work.
func FindBySelector(g *roadmap.Graph, start, end, selector string, opts ...search.Option) (Route, error) {
	m, err := cost.Parse(selector)
	if err != nil {
		return Route{}, err
	}

	return Find(g, start, end, m, opts...)
}

// Find returns the cheapest route from start to end under m.
//
// A query with start == end returns an empty route without searching, even
// for a city the graph does not know.
//
// Errors:
//   - ErrNilGraph, cost.ErrInvalidCostModel, roadmap.ErrCityNotFound: before searching.
//   - search.ErrNoPath (wrapped): end is unreachable from start.
//   - any error from the search options (limits, cancellation).
func Find(g *roadmap.Graph, start, end string, m cost.Model, opts ...search.Option) (Route, error) {
	// 1) Validate inputs.
	if g == nil {
		return Route{}, ErrNilGraph
	}
	if !m.Valid() {
		return Route{}, fmt.Errorf("%w: %v", cost.ErrInvalidCostModel, m)
	}
	if start == end {
		// Staying put needs no road data, known city or not.
		return Route{Start: start, End: end, Model: m, Legs: []Leg{}}, nil
	}
	for _, c := range []string{start, end} {
		if !g.HasCity(c) {
			return Route{}, fmt.Errorf("%w: %q", roadmap.ErrCityNotFound, c)
		}
	}

	// 2) Search over arcs. The initial arc has no road and lands on start.
	p := search.Problem[roadmap.Arc, key]{
		Initial: roadmap.Arc{To: start},
		IsGoal:  func(a roadmap.Arc) bool { return a.To == end },
		Successors: func(a roadmap.Arc) []search.Transition[roadmap.Arc] {
			return successors(g, a)
		},
		Heuristic: heuristic(g, end, m),
		Key:       arcKey,
		VisitKey:  func(a roadmap.Arc) key { return key{City: a.To, Road: anyRoad} },
		Cost: func(t search.Transition[roadmap.Arc], prior float64) float64 {
			return m.Step(cost.Edge{Length: t.Length, SpeedLimit: t.SpeedLimit}, prior)
		},
	}
	res, err := search.Search(p, opts...)
	if err != nil {
		if errors.Is(err, search.ErrNoPath) {
			return Route{}, fmt.Errorf("route: %s to %s: %w", start, end, err)
		}
		return Route{}, err
	}

	// 3) Re-walk the path forward and total it under every model.
	out := Route{
		Start:    start,
		End:      end,
		Model:    m,
		Legs:     make([]Leg, 0, res.Len()),
		Cost:     res.Cost,
		Expanded: res.Expanded,
	}
	for _, s := range res.Steps {
		out.Legs = append(out.Legs, Leg{City: s.To.To, Info: s.Label, Road: s.To.Road})
		out.Totals.Add(cost.Edge{Length: s.Length, SpeedLimit: s.SpeedLimit})
	}

	return out, nil
}

func arcKey(a roadmap.Arc) key {
	if a.Road == nil {
		return key{City: a.To, Road: anyRoad}
	}

	return key{City: a.To, Road: a.Road.ID}
}

// successors lists the arcs leaving the city a arrives at.
func successors(g *roadmap.Graph, a roadmap.Arc) []search.Transition[roadmap.Arc] {
	arcs, err := g.Arcs(a.To)
	if err != nil {
		// every arc lands on a city of g
		return nil
	}
	out := make([]search.Transition[roadmap.Arc], 0, len(arcs))
	for _, next := range arcs {
		out = append(out, search.Transition[roadmap.Arc]{
			To:         next,
			Label:      LegInfo(next.Road),
			Length:     next.Road.Length,
			SpeedLimit: next.Road.SpeedLimit,
		})
	}

	return out
}

// heuristic returns the great-circle estimate to end in the units of m.
//
//	distance        – miles.
//	time, delivery  – miles / fastest speed limit (delivery is never below travel time).
//	segments        – miles / longest road.
func heuristic(g *roadmap.Graph, end string, m cost.Model) func(roadmap.Arc) float64 {
	goal, ok := g.Location(end)
	if !ok {
		return func(roadmap.Arc) float64 { return 0 }
	}

	var scale float64
	switch m {
	case cost.Distance:
		scale = 1
	case cost.Time, cost.Delivery:
		if v := g.MaxSpeedLimit(); v > 0 {
			scale = 1 / v
		}
	case cost.Segments:
		if l := g.MaxLength(); l > 0 {
			scale = 1 / l
		}
	}

	return func(a roadmap.Arc) float64 {
		here, ok := g.Location(a.To)
		if !ok {
			return 0
		}
		return geo.Haversine(here, goal) * scale
	}
}

// LegInfo formats the display line of a road: "<highway> for <miles> miles".
// Whole mile counts keep one decimal ("100.0").
func LegInfo(r *roadmap.Road) string {
	return r.Highway + " for " + formatMiles(r.Length) + " miles"
}

func formatMiles(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}
