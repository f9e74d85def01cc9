package route_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bestfirst/cost"
	"github.com/katalvlaran/bestfirst/geo"
	"github.com/katalvlaran/bestfirst/roadmap"
	"github.com/katalvlaran/bestfirst/route"
	"github.com/katalvlaran/bestfirst/search"
)

// pushCounter counts frontier pushes and stale pops.
type pushCounter struct {
	pushed, stale int
}

func (c *pushCounter) Pushed(float64) { c.pushed++ }
func (c *pushCounter) Popped(_ float64, stale bool) {
	if stale {
		c.stale++
	}
}
func (c *pushCounter) Expanded(float64, int)      {}
func (c *pushCounter) Finished(search.Phase, int) {}

// road is a compact fixture row.
type road struct {
	a, b          string
	length, speed float64
	highway       string
}

func build(t require.TestingT, roads ...road) *roadmap.Graph {
	g := roadmap.NewGraph()
	for _, r := range roads {
		_, err := g.AddRoad(r.a, r.b, r.length, r.speed, r.highway)
		require.NoError(t, err)
	}

	return g
}

// RouteSuite covers the documented scenarios on small synthetic networks.
type RouteSuite struct {
	suite.Suite
	line   *roadmap.Graph // A–B–C
	choice *roadmap.Graph // direct slow road vs fast detour
}

func (s *RouteSuite) SetupTest() {
	s.line = build(s.T(),
		road{"A", "B", 100, 60, "I-90"},
		road{"B", "C", 50, 40, "Rt-1"},
	)
	s.choice = build(s.T(),
		road{"A", "B", 100, 25, "Old_Rd"},
		road{"A", "C", 60, 65, "I-65"},
		road{"C", "B", 60, 65, "I-65"},
	)
}

func (s *RouteSuite) TestDistanceScenario() {
	r, err := route.FindBySelector(s.line, "A", "C", "distance")
	s.Require().NoError(err)
	s.Require().Len(r.Legs, 2)
	s.Equal("B", r.Legs[0].City)
	s.Equal("I-90 for 100.0 miles", r.Legs[0].Info)
	s.Equal("C", r.Legs[1].City)
	s.Equal("Rt-1 for 50.0 miles", r.Legs[1].Info)
	s.InDelta(150.0, r.Miles, 1e-9)
	s.Equal(2, r.Segments)
	s.InDelta(100.0/60+50.0/40, r.Hours, 1e-9)
	s.InDelta(r.Miles, r.Cost, 1e-9)
}

func (s *RouteSuite) TestSegmentsScenario() {
	r, err := route.FindBySelector(s.line, "A", "C", "segments")
	s.Require().NoError(err)
	s.Equal(2, r.Segments)
	s.Equal(2.0, r.Cost)
}

func (s *RouteSuite) TestIdentityForEverySelector() {
	for _, m := range cost.Models() {
		r, err := route.FindBySelector(s.line, "A", "A", m.String())
		s.Require().NoError(err, m.String())
		s.Empty(r.Legs, m.String())
		s.Equal(cost.Totals{}, r.Totals, m.String())
		s.Zero(r.Cost, m.String())
	}
}

func (s *RouteSuite) TestIdentityNeedsNoKnownCity() {
	c := &pushCounter{}
	r, err := route.Find(s.line, "Atlantis", "Atlantis", cost.Delivery, search.WithObserver(c))
	s.Require().NoError(err)
	s.Empty(r.Legs)
	s.Equal(cost.Totals{}, r.Totals)
	s.Zero(r.Expanded)
	s.Zero(c.pushed)

	// the selector is still checked first
	_, err = route.FindBySelector(s.line, "Atlantis", "Atlantis", "foo")
	s.Require().ErrorIs(err, cost.ErrInvalidCostModel)
}

func (s *RouteSuite) TestInvalidSelectorFailsBeforeSearch() {
	c := &pushCounter{}
	_, err := route.FindBySelector(s.line, "A", "C", "foo", search.WithObserver(c))
	s.Require().ErrorIs(err, cost.ErrInvalidCostModel)
	s.Zero(c.pushed)

	_, err = route.Find(s.line, "A", "C", cost.Model(42), search.WithObserver(c))
	s.Require().ErrorIs(err, cost.ErrInvalidCostModel)
	s.Zero(c.pushed)
}

func (s *RouteSuite) TestModelsPickDifferentRoutes() {
	cities := func(r route.Route) []string {
		out := []string{}
		for _, l := range r.Legs {
			out = append(out, l.City)
		}
		return out
	}

	r, err := route.Find(s.choice, "A", "B", cost.Segments)
	s.Require().NoError(err)
	s.Equal([]string{"B"}, cities(r))

	r, err = route.Find(s.choice, "A", "B", cost.Distance)
	s.Require().NoError(err)
	s.Equal([]string{"B"}, cities(r))

	r, err = route.Find(s.choice, "A", "B", cost.Time)
	s.Require().NoError(err)
	s.Equal([]string{"C", "B"}, cities(r))
	s.InDelta(120.0/65, r.Hours, 1e-9)

	r, err = route.Find(s.choice, "A", "B", cost.Delivery)
	s.Require().NoError(err)
	s.Equal([]string{"C", "B"}, cities(r))
	s.Less(r.DeliveryHours, 4.0)
}

func (s *RouteSuite) TestCostMatchesTotals() {
	for _, m := range []cost.Model{cost.Distance, cost.Time, cost.Delivery} {
		r, err := route.Find(s.choice, "A", "B", m)
		s.Require().NoError(err)
		s.InDelta(r.Totals.Of(m), r.Cost, 1e-9, m.String())

		var miles, hours float64
		for _, l := range r.Legs {
			miles += l.Road.Length
			hours += l.Road.Length / l.Road.SpeedLimit
		}
		s.InDelta(miles, r.Miles, 1e-9)
		s.InDelta(hours, r.Hours, 1e-9)
	}
}

func (s *RouteSuite) TestDeliveryClosedForm() {
	g := build(s.T(), road{"A", "B", 100, 60, "I-90"})
	r, err := route.Find(g, "A", "B", cost.Delivery)
	s.Require().NoError(err)

	tt := 100.0 / 60
	s.InDelta(tt+math.Tanh(100.0/1000)*2*tt, r.DeliveryHours, 1e-12)
	s.InDelta(r.DeliveryHours, r.Cost, 1e-12)
}

func (s *RouteSuite) TestUnknownAndUnreachable() {
	_, err := route.Find(s.line, "A", "Z", cost.Distance)
	s.Require().ErrorIs(err, roadmap.ErrCityNotFound)
	_, err = route.Find(s.line, "Z", "A", cost.Distance)
	s.Require().ErrorIs(err, roadmap.ErrCityNotFound)
	_, err = route.Find(nil, "A", "B", cost.Distance)
	s.Require().ErrorIs(err, route.ErrNilGraph)

	_, err = s.line.AddRoad("X", "Y", 1, 30, "Island")
	s.Require().NoError(err)
	_, err = route.Find(s.line, "A", "Y", cost.Time)
	s.Require().ErrorIs(err, search.ErrNoPath)
}

func (s *RouteSuite) TestVisitedByDestinationCity() {
	// Two roads into M: the fast one is expanded, the slow one is discarded
	// when popped because M is already closed.
	g := build(s.T(),
		road{"S", "M", 10, 10, "Slow_Rd"},
		road{"S", "M", 10, 100, "Fast_Rd"},
		road{"M", "G", 10, 10, "Last_Mile"},
	)
	c := &pushCounter{}
	r, err := route.Find(g, "S", "G", cost.Time, search.WithObserver(c))
	s.Require().NoError(err)
	s.Require().Len(r.Legs, 2)
	s.Equal("Fast_Rd", r.Legs[0].Road.Highway)
	s.Equal(2, r.Expanded)
	s.Equal(1, c.stale)
}

func (s *RouteSuite) TestHeuristicKeepsOptimalRoute() {
	// Coordinates roughly one degree apart (≈69 miles) so every road is longer
	// than the straight line between its ends.
	g := build(s.T(),
		road{"A", "B", 100, 60, "I-1"},
		road{"B", "D", 100, 60, "I-2"},
		road{"A", "C", 80, 60, "I-3"},
		road{"C", "D", 200, 60, "I-4"},
		road{"A", "W", 90, 60, "West"},
		road{"W", "V", 90, 60, "West"},
	)
	loc := map[string]geo.Point{
		"A": {Lat: 0, Lng: 0},
		"B": {Lat: 1, Lng: 0},
		"C": {Lat: 0, Lng: 1},
		"D": {Lat: 2, Lng: 0},
		"W": {Lat: -1, Lng: 0},
		"V": {Lat: -2, Lng: 0},
	}
	for c, p := range loc {
		s.Require().NoError(g.SetLocation(c, p))
	}

	informed, err := route.Find(g, "A", "D", cost.Distance)
	s.Require().NoError(err)
	s.InDelta(200.0, informed.Miles, 1e-9)

	// Same network without coordinates: uniform-cost search, same answer, more work.
	blind := build(s.T(),
		road{"A", "B", 100, 60, "I-1"},
		road{"B", "D", 100, 60, "I-2"},
		road{"A", "C", 80, 60, "I-3"},
		road{"C", "D", 200, 60, "I-4"},
		road{"A", "W", 90, 60, "West"},
		road{"W", "V", 90, 60, "West"},
	)
	uninformed, err := route.Find(blind, "A", "D", cost.Distance)
	s.Require().NoError(err)
	s.InDelta(informed.Miles, uninformed.Miles, 1e-9)
	s.LessOrEqual(informed.Expanded, uninformed.Expanded)

	for _, m := range cost.Models() {
		r, err := route.Find(g, "A", "D", m)
		s.Require().NoError(err, m.String())
		s.NotEmpty(r.Legs)
	}
}

func (s *RouteSuite) TestGoalOnGenerateOption() {
	r, err := route.Find(s.choice, "A", "B", cost.Time, search.WithGoalTest(search.GoalOnGenerate))
	s.Require().NoError(err)
	// B is generated straight from A over the slow road.
	s.Require().Len(r.Legs, 1)
	s.Equal("Old_Rd", r.Legs[0].Road.Highway)
}

func TestRouteSuite(t *testing.T) {
	suite.Run(t, new(RouteSuite))
}

func TestLegInfo(t *testing.T) {
	assert.Equal(t, "I-90 for 100.0 miles", route.LegInfo(&roadmap.Road{Highway: "I-90", Length: 100}))
	assert.Equal(t, "US_31 for 12.5 miles", route.LegInfo(&roadmap.Road{Highway: "US_31", Length: 12.5}))
	assert.Equal(t, "Rt-0 for 0.0 miles", route.LegInfo(&roadmap.Road{Highway: "Rt-0", Length: 0}))
}
