package search

import (
	"fmt"
	"log/slog"
)

// BreadthFirst runs uninformed breadth-first search on p: states are explored in
// order of transition count, ignoring Heuristic. Cost is still charged through
// p.Cost so the Result is comparable with Search, but the returned path is only
// guaranteed to be shortest in number of transitions.
//
// A state is marked seen when enqueued (classic BFS), so it is used as a
// brute-force oracle for unit-cost domains. Options MaxExpansions, Ctx,
// Observer and Logger are honoured; GoalTest is ignored (goals are tested on pop).
//
// Complexity: O(V + E) time and space.
func BreadthFirst[S any, K comparable](p Problem[S, K], opts ...Option) (res Result[S], err error) {
	if err := p.validate(); err != nil {
		return Result[S]{}, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Result[S]{}, err
	}

	start := p.Key(p.Initial)
	res = Result[S]{Start: p.Initial, Phase: Expanding}
	defer func() {
		o.Observer.Finished(res.Phase, res.Expanded)
		o.Logger.Debug("breadth-first search finished",
			slog.String("phase", res.Phase.String()),
			slog.Int("expanded", res.Expanded),
			slog.Any("err", err),
		)
	}()
	seen := NewClosedSet[K](64)
	parents := NewParentMap[S, K](64)
	queue := []node[S, K]{{state: p.Initial, key: start, root: true}}
	seen.Mark(p.VisitKey(p.Initial))

	for len(queue) > 0 {
		if err = o.Ctx.Err(); err != nil {
			return res, err
		}
		n := queue[0]
		queue = queue[1:]
		o.Observer.Popped(n.g, false)

		if p.IsGoal(n.state) {
			steps, err := parents.Reconstruct(start, n.key)
			if err != nil {
				return res, err
			}
			res.Steps, res.Cost, res.Phase = steps, n.g, Goal
			return res, nil
		}

		if o.MaxExpansions > 0 && res.Expanded >= o.MaxExpansions {
			return res, fmt.Errorf("%w: %d expansions", ErrLimitExceeded, o.MaxExpansions)
		}
		res.Expanded++
		succ := p.Successors(n.state)
		o.Observer.Expanded(n.g, len(succ))
		for _, t := range succ {
			vk := p.VisitKey(t.To)
			if seen.Contains(vk) {
				continue
			}
			seen.Mark(vk)
			res.Generated++

			step := p.Cost(t, n.g)
			if !validCost(step) {
				return res, fmt.Errorf("%w: %q costs %v", ErrBadCost, t.Label, step)
			}
			child := node[S, K]{
				state:  t.To,
				key:    p.Key(t.To),
				g:      n.g + step,
				parent: n.key,
				step:   Step[S]{Transition: t, StepCost: step, G: n.g + step},
			}
			parents.RecordIfAbsent(child.key, child.parent, child.step)
			queue = append(queue, child)
			o.Observer.Pushed(child.g)
		}
	}

	res.Phase = Exhausted

	return res, ErrNoPath
}
