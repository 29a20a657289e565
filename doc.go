// Package roadpath plans delivery and refueling routes over weighted road
// networks.
//
// What is inside
//
//	core/      — thread-safe road graph: nodes, ordered outgoing edges, two-way roads
//	route/     — the Result/Status pair every routing query returns
//	dijkstra/  — all-distances table and single-pair optimal path
//	greedy/    — nearest-neighbor walk with a fuel budget and refuel stops
//	bfs/       — fewest-stops route (weights ignored for the choice)
//	builder/   — fixture maps, road lists, random graphs, terrain grids
//	planner/   — cached query facade with per-query logging
//	roadstore/ — load a road network from a MySQL table
//	config/    — flags and ROADPATH_* environment for the CLI
//	cmd/roadpath — the command-line front end
//
// Quick start
//
//	g := builder.GasStations()
//	p := planner.New(g)
//	cmp, _ := p.Compare("Start", "Destination", 10)
//	fmt.Println(cmp.Greedy)  // Start → A → Gas1 → C → Destination (cost 18)
//	fmt.Println(cmp.Optimal) // Start → A → Gas1 → C → Destination (cost 18)
//
// Determinism
//
//	Outgoing edges keep insertion order and frontier ties break on node ID,
//	so every query returns the same answer for the same graph.
package roadpath
