package roadmap

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bestfirst/geo"
)

const (
	segmentFields  = 5 // city1 city2 length speedLimit highway
	locationFields = 3 // city lat lng
	maxLineBytes   = 1 << 20
)

// Segment is one parsed road-segment record.
type Segment struct {
	A, B       string
	Length     float64
	SpeedLimit float64
	Highway    string
}

// Place is one parsed city-coordinate record.
type Place struct {
	City  string
	Point geo.Point
}

// Skipped counts records dropped while parsing.
type Skipped struct {
	Short    int // fewer fields than required
	BadValue int // a numeric field did not parse, or AddRoad rejected it
}

// Total returns the number of dropped records.
func (s Skipped) Total() int { return s.Short + s.BadValue }

// ParseSegments reads whitespace-delimited "city1 city2 length speedLimit highway"
// records from r. Blank lines, short lines and unparsable numbers are skipped.
// Fields past the fifth are ignored.
func ParseSegments(r io.Reader) ([]Segment, Skipped, error) {
	var (
		out  []Segment
		skip Skipped
	)
	err := scanLines(r, func(fields []string) {
		if len(fields) < segmentFields {
			skip.Short++
			return
		}
		length, err1 := strconv.ParseFloat(fields[2], 64)
		speed, err2 := strconv.ParseFloat(fields[3], 64)
		if err1 != nil || err2 != nil {
			skip.BadValue++
			return
		}
		out = append(out, Segment{A: fields[0], B: fields[1], Length: length, SpeedLimit: speed, Highway: fields[4]})
	})

	return out, skip, err
}

// ParseLocations reads whitespace-delimited "city lat lng" records from r.
// Blank lines, short lines and unparsable numbers are skipped.
func ParseLocations(r io.Reader) ([]Place, Skipped, error) {
	var (
		out  []Place
		skip Skipped
	)
	err := scanLines(r, func(fields []string) {
		if len(fields) < locationFields {
			skip.Short++
			return
		}
		lat, err1 := strconv.ParseFloat(fields[1], 64)
		lng, err2 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil {
			skip.BadValue++
			return
		}
		out = append(out, Place{City: fields[0], Point: geo.Point{Lat: lat, Lng: lng}})
	})

	return out, skip, err
}

// scanLines calls fn with the fields of every non-blank line.
func scanLines(r io.Reader, fn func(fields []string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		fn(fields)
	}

	return sc.Err()
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger *slog.Logger
	graph  []Option
}

// WithLogger sets the logger that receives skip counts and catalog sizes.
func WithLogger(l *slog.Logger) LoadOption {
	return func(c *loadConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithGraphOptions forwards options to NewGraph.
func WithGraphOptions(opts ...Option) LoadOption {
	return func(c *loadConfig) { c.graph = append(c.graph, opts...) }
}

// Load reads the road-segment file and the city-coordinate file concurrently
// and builds a Graph. Files ending in ".gz", ".zst" or ".lz4" are decompressed on the fly.
// An empty gpsPath loads roads only (the heuristic then degrades to zero).
// Malformed records are skipped and counted, never fatal.
func Load(ctx context.Context, segmentsPath, gpsPath string, opts ...LoadOption) (*Graph, error) {
	cfg := loadConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		segments               []Segment
		places                 []Place
		segSkipped, gpsSkipped Skipped
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return readFile(ctx, segmentsPath, func(r io.Reader) (err error) {
			segments, segSkipped, err = ParseSegments(r)
			return err
		})
	})
	if gpsPath != "" {
		eg.Go(func() error {
			return readFile(ctx, gpsPath, func(r io.Reader) (err error) {
				places, gpsSkipped, err = ParseLocations(r)
				return err
			})
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	g := NewGraph(cfg.graph...)
	for _, s := range segments {
		if _, err := g.AddRoad(s.A, s.B, s.Length, s.SpeedLimit, s.Highway); err != nil {
			segSkipped.BadValue++
			cfg.logger.Debug("road skipped", slog.String("a", s.A), slog.String("b", s.B), slog.Any("err", err))
		}
	}
	for _, p := range places {
		// City names are non-empty: scanLines never yields empty fields.
		_ = g.SetLocation(p.City, p.Point)
	}

	st := g.Stats()
	cfg.logger.Info("road network loaded",
		slog.Int("cities", st.Cities),
		slog.Int("roads", st.Roads),
		slog.Int("locations", st.Locations),
		slog.Int("segments_skipped", segSkipped.Total()),
		slog.Int("locations_skipped", gpsSkipped.Total()),
	)

	return g, nil
}

// readFile opens path, wraps it in a decompressor chosen by extension, and
// passes the stream to parse.
func readFile(ctx context.Context, path string, parse func(io.Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("roadmap: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("roadmap: gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return fmt.Errorf("roadmap: zstd %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(path, ".lz4"):
		r = lz4.NewReader(f)
	}

	if err = parse(r); err != nil {
		return fmt.Errorf("roadmap: read %s: %w", path, err)
	}

	return nil
}
