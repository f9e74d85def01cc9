// Package search defines the problem description, options and result types
// for best-first (A*) search over an implicit state space.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors returned by Search and BreadthFirst.
var (
	// ErrNilGoalTest indicates that Problem.IsGoal is nil.
	ErrNilGoalTest = errors.New("search: goal test is nil")

	// ErrNilSuccessors indicates that Problem.Successors is nil.
	ErrNilSuccessors = errors.New("search: successor generator is nil")

	// ErrNilKey indicates that Problem.Key is nil.
	ErrNilKey = errors.New("search: state key function is nil")

	// ErrNoPath indicates that the frontier emptied before any goal was reached.
	ErrNoPath = errors.New("search: no path found")

	// ErrBadCost indicates a transition cost that is negative, NaN or infinite.
	ErrBadCost = errors.New("search: transition cost must be finite and non-negative")

	// ErrBadHeuristic indicates a heuristic estimate that is negative or NaN.
	ErrBadHeuristic = errors.New("search: heuristic must be non-negative")

	// ErrLimitExceeded indicates that MaxExpansions was reached before a goal.
	ErrLimitExceeded = errors.New("search: expansion limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBrokenChain indicates that the parent map does not lead back to the start.
	ErrBrokenChain = errors.New("search: parent chain does not reach the start state")
)

// Transition is one edge from a state to a successor state.
//
// Cost is the incremental cost used when the Problem has no CostFunc.
// Length and SpeedLimit are optional physical attributes read by cost models
// that price an edge by distance or travel time. Label is free-form display text.
type Transition[S any] struct {
	To         S
	Label      string
	Cost       float64
	Length     float64
	SpeedLimit float64
}

// CostFunc prices transition t given the accumulated cost of the path that
// reached its source state. The result is the increment added to g(n).
// Implementations may depend on prior (non-separable cost models).
type CostFunc[S any] func(t Transition[S], prior float64) float64

// Problem describes a search instance as plain function values.
//
//	Initial    – start state.
//	IsGoal     – goal test (required).
//	Successors – finite set of outgoing transitions (required).
//	Heuristic  – non-negative estimate of remaining cost; nil means 0 (uniform-cost search).
//	Key        – identity of a state, used by the parent map (required).
//	VisitKey   – closed-set key; nil means Key. Several states may share one visit key.
//	Cost       – incremental cost model; nil means Transition.Cost.
type Problem[S any, K comparable] struct {
	Initial    S
	IsGoal     func(S) bool
	Successors func(S) []Transition[S]
	Heuristic  func(S) float64
	Key        func(S) K
	VisitKey   func(S) K
	Cost       CostFunc[S]
}

// validate checks required callbacks and fills defaults for optional ones.
func (p *Problem[S, K]) validate() error {
	if p.IsGoal == nil {
		return ErrNilGoalTest
	}
	if p.Successors == nil {
		return ErrNilSuccessors
	}
	if p.Key == nil {
		return ErrNilKey
	}
	if p.VisitKey == nil {
		p.VisitKey = p.Key
	}
	if p.Heuristic == nil {
		p.Heuristic = func(S) float64 { return 0 }
	}
	if p.Cost == nil {
		p.Cost = func(t Transition[S], _ float64) float64 { return t.Cost }
	}

	return nil
}

// Phase is the driver state: Ready → Expanding → {Goal, Exhausted}.
type Phase int

const (
	// Ready means the frontier is seeded and nothing was popped yet.
	Ready Phase = iota
	// Expanding means the driver is popping and expanding entries.
	Expanding
	// Goal is the terminal success state.
	Goal
	// Exhausted is the terminal failure state: the frontier emptied first.
	Exhausted
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case Ready:
		return "ready"
	case Expanding:
		return "expanding"
	case Goal:
		return "goal"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Step is one transition of a reconstructed path.
// StepCost is the increment charged by the cost model; G is the accumulated cost after the step.
type Step[S any] struct {
	Transition[S]
	StepCost float64
	G        float64
}

// Result is the outcome of a search.
type Result[S any] struct {
	Start     S
	Steps     []Step[S]
	Cost      float64
	Expanded  int
	Generated int
	Phase     Phase
}

// Found reports whether a goal was reached.
func (r Result[S]) Found() bool { return r.Phase == Goal }

// Len returns the number of transitions on the path.
func (r Result[S]) Len() int { return len(r.Steps) }

// Labels returns the transition labels in path order.
func (r Result[S]) Labels() []string {
	out := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		out[i] = s.Label
	}

	return out
}

// States returns the start state followed by the destination of every step.
func (r Result[S]) States() []S {
	out := make([]S, 0, len(r.Steps)+1)
	out = append(out, r.Start)
	for _, s := range r.Steps {
		out = append(out, s.To)
	}

	return out
}

// GoalTest selects when the driver applies the goal test.
type GoalTest int

const (
	// GoalOnExpand tests a state when it is popped from the frontier.
	// With a consistent heuristic the returned path is optimal.
	GoalOnExpand GoalTest = iota

	// GoalOnGenerate tests each successor as soon as it is generated and stops
	// at the first hit. Faster, but may return a costlier path.
	GoalOnGenerate
)

// Observer receives engine events. All methods are called synchronously
// from the search goroutine.
type Observer interface {
	// Pushed is called for every frontier insertion.
	Pushed(priority float64)
	// Popped is called for every frontier removal; stale is true for closed duplicates.
	Popped(priority float64, stale bool)
	// Expanded is called when a state is closed and its successors generated.
	Expanded(g float64, successors int)
	// Finished is called once with the terminal phase.
	Finished(phase Phase, expanded int)
}

// nopObserver ignores all events.
type nopObserver struct{}

func (nopObserver) Pushed(float64)        {}
func (nopObserver) Popped(float64, bool)  {}
func (nopObserver) Expanded(float64, int) {}
func (nopObserver) Finished(Phase, int)   {}

// Option configures Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of a single search run.
type Options struct {
	// Ctx allows cancellation; checked once per pop.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts with ErrLimitExceeded after that many expansions.
	MaxExpansions int

	// GoalTest chooses between testing on expansion and on generation.
	GoalTest GoalTest

	// Observer receives engine events.
	Observer Observer

	// Logger receives debug records for the run.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion limit
//   - GoalOnExpand
//   - a no-op observer and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		GoalTest:      GoalOnExpand,
		Observer:      nopObserver{},
		Logger:        slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of expanded states.
//
//	n > 0: limit to n
//	n == 0: no limit
//	n < 0: invalid → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithGoalTest selects when the goal test runs.
func WithGoalTest(mode GoalTest) Option {
	return func(o *Options) {
		if mode != GoalOnExpand && mode != GoalOnGenerate {
			o.err = fmt.Errorf("%w: unknown goal test mode %d", ErrOptionViolation, int(mode))
			return
		}
		o.GoalTest = mode
	}
}

// WithObserver registers an event observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
