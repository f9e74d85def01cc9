// Package search implements a generic best-first (A*) search engine.
//
// The driver repeatedly pulls the cheapest entry f = g + h from the frontier,
// goal-tests it, and otherwise expands it through the injected successor
// generator, pricing each successor with the injected cost model and heuristic.
//
// Notes on implementation choices:
//
//   - "Lazy decrease-key": a state may sit in the frontier several times with
//     different priorities. The first pop wins; later pops of a closed visit key
//     are discarded as stale.
//   - The closed set is keyed by VisitKey, which may be coarser than Key. The route
//     adapter uses this to close a city once any road into it was expanded.
//   - The back-pointer travels inside the frontier entry and is committed to the
//     parent map when the entry is first popped, so the reconstructed path always
//     has exactly the popped cost, including under non-separable cost models.
//   - Costs are charged as CostFunc(t, g(parent)), never memoized per edge.
//
// Complexity:
//
//   - Time:  O(E log E) for E generated transitions.
//   - Space: O(E) frontier entries plus O(V) closed-set and parent-map entries.
package search

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/bestfirst/frontier"
)

// node is a frontier payload: a state, its accumulated cost, and its back-pointer.
type node[S any, K comparable] struct {
	state  S
	key    K
	g      float64
	root   bool    // true only for the initial state
	parent K       // key of the state this node was generated from
	step   Step[S] // transition from parent to state
}

// runner holds the mutable state of a single search invocation.
type runner[S any, K comparable] struct {
	p       Problem[S, K]
	opts    Options
	open    *frontier.Queue[node[S, K]]
	closed  *ClosedSet[K]
	parents *ParentMap[S, K]
	start   K
	phase   Phase
	res     Result[S]
}

// Search runs best-first search on p and returns the reconstructed path.
//
// Returns:
//
//   - Result with Phase == Goal and the forward path on success.
//   - Result with Phase == Exhausted and ErrNoPath if the frontier empties first.
//   - ErrNilGoalTest, ErrNilSuccessors, ErrNilKey, ErrOptionViolation before any
//     frontier operation for an invalid problem or option.
//   - ErrBadCost, ErrBadHeuristic, ErrLimitExceeded or ctx.Err() mid-run.
//
// Search is synchronous and owns all of its bookkeeping; concurrent calls on
// independent problems are safe as long as the callbacks are.
func Search[S any, K comparable](p Problem[S, K], opts ...Option) (Result[S], error) {
	// 1) Validate problem and options before touching the frontier.
	if err := p.validate(); err != nil {
		return Result[S]{}, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Result[S]{}, err
	}

	// 2) Fresh per-query structures.
	r := &runner[S, K]{
		p:       p,
		opts:    o,
		open:    frontier.New[node[S, K]](64),
		closed:  NewClosedSet[K](64),
		parents: NewParentMap[S, K](64),
		start:   p.Key(p.Initial),
		res:     Result[S]{Start: p.Initial},
	}

	// 3) Seed and run.
	if err = r.seed(); err != nil {
		return r.res, err
	}
	err = r.run()
	r.finish(err)

	return r.res, err
}

// seed pushes the initial state with priority h(initial).
func (r *runner[S, K]) seed() error {
	h := r.p.Heuristic(r.p.Initial)
	if h < 0 || math.IsNaN(h) {
		return fmt.Errorf("%w: h(initial)=%v", ErrBadHeuristic, h)
	}
	r.push(h, node[S, K]{state: r.p.Initial, key: r.start, root: true})
	r.phase = Ready
	r.opts.Logger.Debug("search seeded", slog.Float64("h", h))

	return nil
}

// run is the Expanding loop. It returns nil only after a goal was reached.
func (r *runner[S, K]) run() error {
	r.phase = Expanding
	for {
		// cancellation check (once per pop)
		if err := r.opts.Ctx.Err(); err != nil {
			return err
		}

		f, n, ok := r.open.Pop()
		if !ok {
			r.phase = Exhausted
			return ErrNoPath
		}

		// 1) Skip stale duplicates of already-closed states.
		vk := r.p.VisitKey(n.state)
		if r.closed.Contains(vk) {
			r.opts.Observer.Popped(f, true)
			continue
		}
		r.opts.Observer.Popped(f, false)

		// 2) Commit the back-pointer carried by this entry (first writer wins).
		if !n.root {
			r.parents.RecordIfAbsent(n.key, n.parent, n.step)
		}

		// 3) Goal test on expansion. The initial state is always tested here,
		//    since it is never generated as a successor.
		if (r.opts.GoalTest == GoalOnExpand || n.root) && r.p.IsGoal(n.state) {
			return r.succeed(n.key)
		}

		// 4) Close and expand, unless the budget is already spent.
		if r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions {
			return fmt.Errorf("%w: %d expansions", ErrLimitExceeded, r.opts.MaxExpansions)
		}
		r.closed.Mark(vk)
		r.res.Expanded++
		done, err := r.expand(n)
		if err != nil || done {
			return err
		}
	}
}

// expand generates the successors of n and pushes every one whose visit key
// is still open. It reports done=true if GoalOnGenerate found a goal.
func (r *runner[S, K]) expand(n node[S, K]) (bool, error) {
	succ := r.p.Successors(n.state)
	r.opts.Observer.Expanded(n.g, len(succ))

	var (
		t    Transition[S]
		step float64
		h    float64
	)
	for _, t = range succ {
		if r.closed.Contains(r.p.VisitKey(t.To)) {
			continue
		}
		r.res.Generated++

		// Price the edge against the cost of the path that reached n.
		step = r.p.Cost(t, n.g)
		if !validCost(step) {
			return false, fmt.Errorf("%w: %q costs %v", ErrBadCost, t.Label, step)
		}

		child := node[S, K]{
			state:  t.To,
			key:    r.p.Key(t.To),
			g:      n.g + step,
			parent: n.key,
			step:   Step[S]{Transition: t, StepCost: step, G: n.g + step},
		}

		if r.opts.GoalTest == GoalOnGenerate && r.p.IsGoal(t.To) {
			r.parents.RecordIfAbsent(child.key, child.parent, child.step)
			return true, r.succeed(child.key)
		}

		h = r.p.Heuristic(t.To)
		if h < 0 || math.IsNaN(h) {
			return false, fmt.Errorf("%w: h=%v after %q", ErrBadHeuristic, h, t.Label)
		}
		r.push(child.g+h, child)
	}

	return false, nil
}

// validCost reports whether a step cost is finite and non-negative.
func validCost(c float64) bool {
	return c >= 0 && !math.IsNaN(c) && !math.IsInf(c, 0)
}

// push inserts n with priority f and notifies the observer.
func (r *runner[S, K]) push(f float64, n node[S, K]) {
	r.open.Push(f, n)
	r.opts.Observer.Pushed(f)
}

// succeed reconstructs the path ending at goal and fills the result.
func (r *runner[S, K]) succeed(goal K) error {
	steps, err := r.parents.Reconstruct(r.start, goal)
	if err != nil {
		return err
	}
	r.phase = Goal
	r.res.Steps = steps
	if len(steps) > 0 {
		r.res.Cost = steps[len(steps)-1].G
	}

	return nil
}

// finish stamps the terminal phase and reports it.
func (r *runner[S, K]) finish(err error) {
	r.res.Phase = r.phase
	r.opts.Observer.Finished(r.phase, r.res.Expanded)
	r.opts.Logger.Debug("search finished",
		slog.String("phase", r.phase.String()),
		slog.Int("expanded", r.res.Expanded),
		slog.Int("generated", r.res.Generated),
		slog.Int("pending", r.open.Len()),
		slog.Float64("cost", r.res.Cost),
		slog.Any("err", err),
	)
}
