package roadmap_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestfirst/geo"
	"github.com/katalvlaran/bestfirst/roadmap"
)

const segmentsFixture = `A B 100 60 I-90
B C 50 40 Rt-1

short line
C D notanumber 30 Rt-2
D E 10 0 Closed_Rd
E F 7 30 Elm extra fields ignored
`

const gpsFixture = `A 39.0 -86.0
B 39.5 -86.5
bad
C north -87.0
`

func TestParseSegments(t *testing.T) {
	segs, skipped, err := roadmap.ParseSegments(strings.NewReader(segmentsFixture))
	require.NoError(t, err)
	require.Len(t, segs, 4)
	assert.Equal(t, roadmap.Segment{A: "A", B: "B", Length: 100, SpeedLimit: 60, Highway: "I-90"}, segs[0])
	assert.Equal(t, "Elm", segs[3].Highway)
	assert.Equal(t, roadmap.Skipped{Short: 1, BadValue: 1}, skipped)
	assert.Equal(t, 2, skipped.Total())
}

func TestParseLocations(t *testing.T) {
	places, skipped, err := roadmap.ParseLocations(strings.NewReader(gpsFixture))
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, roadmap.Place{City: "B", Point: geo.Point{Lat: 39.5, Lng: -86.5}}, places[1])
	assert.Equal(t, roadmap.Skipped{Short: 1, BadValue: 1}, skipped)
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o600))

	return p
}

func TestLoad_PlainFiles(t *testing.T) {
	dir := t.TempDir()
	segs := writeFile(t, dir, "road-segments.txt", []byte(segmentsFixture))
	gps := writeFile(t, dir, "city-gps.txt", []byte(gpsFixture))

	g, err := roadmap.Load(context.Background(), segs, gps)
	require.NoError(t, err)

	// D–E has speed 0 and is rejected by AddRoad, so D never becomes a city.
	st := g.Stats()
	assert.Equal(t, 3, st.Roads)
	assert.Equal(t, 2, st.Locations)
	assert.ElementsMatch(t, []string{"A", "B", "C", "E", "F"}, g.Cities())

	_, ok := g.Location("A")
	assert.True(t, ok)
}

func TestLoad_CompressedFiles(t *testing.T) {
	dir := t.TempDir()

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write([]byte(segmentsFixture))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	segs := writeFile(t, dir, "road-segments.txt.gz", gz.Bytes())

	var lz bytes.Buffer
	lw := lz4.NewWriter(&lz)
	_, err = lw.Write([]byte(gpsFixture))
	require.NoError(t, err)
	require.NoError(t, lw.Close())
	gps := writeFile(t, dir, "city-gps.txt.lz4", lz.Bytes())

	g, err := roadmap.Load(context.Background(), segs, gps)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Stats().Roads)
	assert.Equal(t, 2, g.Stats().Locations)
}

func TestLoad_Zstd(t *testing.T) {
	dir := t.TempDir()

	var zs bytes.Buffer
	zw, err := zstd.NewWriter(&zs)
	require.NoError(t, err)
	_, err = zw.Write([]byte(segmentsFixture))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	segs := writeFile(t, dir, "road-segments.txt.zst", zs.Bytes())

	g, err := roadmap.Load(context.Background(), segs, "")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Stats().Roads)
}

func TestLoad_RoadsOnly(t *testing.T) {
	dir := t.TempDir()
	segs := writeFile(t, dir, "roads.txt", []byte("X Y 1 30 Main\n"))

	g, err := roadmap.Load(context.Background(), segs, "")
	require.NoError(t, err)
	assert.Equal(t, roadmap.Stats{Cities: 2, Roads: 1}, g.Stats())
}

func TestLoad_GraphOptions(t *testing.T) {
	dir := t.TempDir()
	segs := writeFile(t, dir, "roads.txt", []byte("A A 5 30 Ring_Rd\nA B 1 30 Main\n"))

	strict, err := roadmap.Load(context.Background(), segs, "")
	require.NoError(t, err)
	assert.Equal(t, 1, strict.Stats().Roads)

	looped, err := roadmap.Load(context.Background(), segs, "", roadmap.WithGraphOptions(roadmap.WithLoops()))
	require.NoError(t, err)
	assert.Equal(t, 2, looped.Stats().Roads)
	arcs, err := looped.Arcs("A")
	require.NoError(t, err)
	require.Len(t, arcs, 2)
	assert.Equal(t, "Ring_Rd", arcs[0].Road.Highway)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := roadmap.Load(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	segs := writeFile(t, dir, "roads.txt", []byte("X Y 1 30 Main\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := roadmap.Load(ctx, segs, "")
	assert.ErrorIs(t, err, context.Canceled)
}
