// Package bestfirst is a generic best-first (A*) search engine with three
// ready-made domains: driving routes over a road network, sorting a row of
// birds by adjacent swaps, and the row/column/ring rotation puzzle.
//
// What is in the box?
//
//	A small, allocation-aware engine plus adapters that feed it pure functions:
//		• search/   – Problem, Options, Result; Search (A*) and BreadthFirst (oracle)
//		• frontier/ – generic min-priority queue with FIFO tie-break
//		• cost/     – segments, distance, time and delivery cost models + totals
//		• geo/      – haversine great-circle distance in miles
//		• roadmap/  – undirected multigraph of cities and roads, file loaders
//		• route/    – road routing on top of roadmap, cost and geo
//		• birds/    – permutation sorting by adjacent swaps
//		• tiles/    – R×C rotation puzzle
//		• cmd/bestfirst – command-line front end
//
// The engine never inspects a state. A Problem supplies:
//
//	Initial, IsGoal, Successors – the state space;
//	Heuristic                   – optional estimate of remaining cost;
//	Key, VisitKey               – identity for the parent map and the closed set;
//	Cost                        – optional pricing of a transition given the prior path cost.
//
// Quick sketch of a route query:
//
//	g, _ := roadmap.Load(ctx, "road-segments.txt", "city-gps.txt")
//	r, err := route.FindBySelector(g, "Bloomington,_Indiana", "Indianapolis,_Indiana", "time")
//
//	go install github.com/katalvlaran/bestfirst/cmd/bestfirst@latest
package bestfirst
