// Package cost defines the interchangeable edge-cost models used by route
// finding, and the per-route totals computed by replaying a path.
//
// Models:
//
//	segments – 1 per road (hop count).
//	distance – road length in miles.
//	time     – length / speed limit, in hours.
//	delivery – expected hours for a driver who may lose the package on fast roads
//	           and have to drive back to fetch another one. Non-separable: the
//	           increment depends on the cost already accumulated on the path.
//
// Errors (sentinel):
//
//	ErrInvalidCostModel – unrecognised selector string.
package cost

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCostModel indicates an unrecognised cost selector.
var ErrInvalidCostModel = errors.New("cost: invalid cost model")

// DangerSpeedLimit is the speed limit (mph) at or above which a package can fall out.
const DangerSpeedLimit = 50.0

// riskScale is the road length (miles) at which tanh(length/riskScale) reaches tanh(1).
const riskScale = 1000.0

// Model selects how a road contributes to the accumulated cost g(n).
type Model int

const (
	// Segments counts roads.
	Segments Model = iota
	// Distance sums road lengths.
	Distance
	// Time sums travel times.
	Time
	// Delivery sums risk-adjusted travel times.
	Delivery
)

var names = [...]string{
	Segments: "segments",
	Distance: "distance",
	Time:     "time",
	Delivery: "delivery",
}

// Models lists every valid model in selector order.
func Models() []Model { return []Model{Segments, Distance, Time, Delivery} }

// String returns the selector name of m.
func (m Model) String() string {
	if !m.Valid() {
		return fmt.Sprintf("model(%d)", int(m))
	}

	return names[m]
}

// Valid reports whether m is one of the four known models.
func (m Model) Valid() bool { return m >= Segments && m <= Delivery }

// Parse maps a selector ("segments", "distance", "time", "delivery") to a Model.
// Any other string yields ErrInvalidCostModel.
func Parse(selector string) (Model, error) {
	for i, n := range names {
		if n == selector {
			return Model(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidCostModel, selector)
}

// Edge carries the physical attributes of a road that the models read.
type Edge struct {
	Length     float64 // miles
	SpeedLimit float64 // miles per hour
}

// TravelTime returns Length / SpeedLimit in hours.
func (e Edge) TravelTime() float64 { return e.Length / e.SpeedLimit }

// Step returns the increment e adds to g under m, given the cost prior
// already accumulated on the path. Only Delivery reads prior.
// Step panics on an invalid Model; use Parse or Valid first.
func (m Model) Step(e Edge, prior float64) float64 {
	switch m {
	case Segments:
		return 1
	case Distance:
		return e.Length
	case Time:
		return e.TravelTime()
	case Delivery:
		return DeliveryStep(e, prior)
	default:
		panic(fmt.Sprintf("cost: Step on %v", m))
	}
}

// DeliveryStep prices e for a delivery driver who has already spent prior hours.
//
// Below DangerSpeedLimit the increment is the plain travel time t. At or above it,
// the package falls out with probability tanh(length/1000), in which case the
// driver drives back to the start and does the whole trip so far plus this road
// again: t + tanh(length/1000) * 2 * (t + prior).
func DeliveryStep(e Edge, prior float64) float64 {
	t := e.TravelTime()
	if e.SpeedLimit < DangerSpeedLimit {
		return t
	}

	return t + math.Tanh(e.Length/riskScale)*2*(t+prior)
}

// Func returns the step function for selector, or ErrInvalidCostModel.
func Func(selector string) (func(e Edge, prior float64) float64, error) {
	m, err := Parse(selector)
	if err != nil {
		return nil, err
	}

	return m.Step, nil
}
