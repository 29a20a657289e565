// SPDX-License-Identifier: MIT
// Package builder assembles road graphs: the fixed networks of the delivery
// and gas-station programs, and generated networks for tests and benchmarks.
//
// Fixtures (ready-made *core.Graph, fresh on every call):
//
//	Delivery()     – undirected triangle A–B 4, B–C 2, A–C 5.
//	DeliveryMap()  – undirected six-city delivery map.
//	Warehouse()    – directed warehouse → customer network (W→A→D→C = 25).
//	GasStations()  – directed Start → … → Destination network with Gas1/Gas2.
//
// Generated topologies (Constructor closures run by BuildGraph):
//
//	Roads(list)          – explicit list of one-way or two-way roads.
//	Grid(rows, cols)     – 4-neighborhood grid "r,c"; weights follow an
//	                       OpenSimplex terrain field seeded by WithSeed.
//	Random(n, m)         – n nodes and m random edges; requires WithSeed/WithRand.
//
// Determinism: the same constructors, options and seed produce identical
// graphs, including per-node edge order.
package builder
