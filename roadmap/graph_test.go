package roadmap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestfirst/geo"
	"github.com/katalvlaran/bestfirst/roadmap"
)

func TestAddRoad_Undirected(t *testing.T) {
	g := roadmap.NewGraph()
	r, err := g.AddRoad("A", "B", 100, 60, "I-90")
	require.NoError(t, err)
	assert.Equal(t, 0, r.ID)
	assert.Equal(t, "B", r.Other("A"))
	assert.Equal(t, "A", r.Other("B"))

	fromA, err := g.Arcs("A")
	require.NoError(t, err)
	require.Len(t, fromA, 1)
	assert.Equal(t, "B", fromA[0].To)
	assert.Equal(t, "A", fromA[0].From)

	fromB, err := g.Arcs("B")
	require.NoError(t, err)
	require.Len(t, fromB, 1)
	assert.Equal(t, "A", fromB[0].To)
	assert.Same(t, fromA[0].Road, fromB[0].Road)

	assert.True(t, g.HasCity("A"))
	assert.Equal(t, []string{"A", "B"}, g.Cities())
}

func TestAddRoad_ParallelRoadsKeepOrder(t *testing.T) {
	g := roadmap.NewGraph()
	_, _ = g.AddRoad("A", "B", 10, 30, "Rt-1")
	_, _ = g.AddRoad("A", "B", 12, 65, "I-65")
	_, _ = g.AddRoad("A", "C", 4, 25, "Main")

	arcs, err := g.Arcs("A")
	require.NoError(t, err)
	require.Len(t, arcs, 3)
	assert.Equal(t, "Rt-1", arcs[0].Road.Highway)
	assert.Equal(t, "I-65", arcs[1].Road.Highway)
	assert.Equal(t, "Main", arcs[2].Road.Highway)

	assert.Equal(t, 65.0, g.MaxSpeedLimit())
	assert.Equal(t, 12.0, g.MaxLength())
	assert.Equal(t, roadmap.Stats{Cities: 3, Roads: 3}, g.Stats())

	road, ok := g.Road(1)
	require.True(t, ok)
	assert.Equal(t, "I-65", road.Highway)
	_, ok = g.Road(3)
	assert.False(t, ok)
}

func TestAddRoad_Validation(t *testing.T) {
	g := roadmap.NewGraph()

	_, err := g.AddRoad("", "B", 1, 1, "x")
	assert.ErrorIs(t, err, roadmap.ErrEmptyCity)
	_, err = g.AddRoad("A", "B", -1, 30, "x")
	assert.ErrorIs(t, err, roadmap.ErrBadLength)
	_, err = g.AddRoad("A", "B", math.NaN(), 30, "x")
	assert.ErrorIs(t, err, roadmap.ErrBadLength)
	_, err = g.AddRoad("A", "B", 1, 0, "x")
	assert.ErrorIs(t, err, roadmap.ErrBadSpeedLimit)
	_, err = g.AddRoad("A", "A", 1, 30, "x")
	assert.ErrorIs(t, err, roadmap.ErrLoop)

	assert.Equal(t, 0, g.Stats().Roads)

	looped := roadmap.NewGraph(roadmap.WithLoops())
	_, err = looped.AddRoad("A", "A", 1, 30, "ring")
	require.NoError(t, err)
	arcs, _ := looped.Arcs("A")
	assert.Len(t, arcs, 1)
}

func TestArcs_UnknownCity(t *testing.T) {
	g := roadmap.NewGraph()
	_, err := g.Arcs("Nowhere")
	assert.ErrorIs(t, err, roadmap.ErrCityNotFound)

	require.NoError(t, g.AddCity("Nowhere"))
	arcs, err := g.Arcs("Nowhere")
	require.NoError(t, err)
	assert.Empty(t, arcs)
	assert.ErrorIs(t, g.AddCity(""), roadmap.ErrEmptyCity)
}

func TestLocations(t *testing.T) {
	g := roadmap.NewGraph()
	p := geo.Point{Lat: 39.16, Lng: -86.52}
	require.NoError(t, g.SetLocation("Bloomington,_Indiana", p))
	assert.ErrorIs(t, g.SetLocation("", p), roadmap.ErrEmptyCity)

	got, ok := g.Location("Bloomington,_Indiana")
	require.True(t, ok)
	assert.Equal(t, p, got)

	_, ok = g.Location("Atlantis")
	assert.False(t, ok)
	// a location does not make a city
	assert.False(t, g.HasCity("Bloomington,_Indiana"))
}
