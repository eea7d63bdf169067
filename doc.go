// Package transitgraph is a bus transit catalogue and trip router.
//
// Stops and bus routes are loaded into a catalogue (package catalogue),
// which records stop coordinates, directional road-distance overrides
// and route membership. A router (package router) compiles a catalogue
// into a weighted graph (package graph) using a two-vertex-per-stop
// encoding, and answers origin-to-destination trip queries with a
// single-pair Dijkstra search (package pathfinder).
//
// Package stats computes the externally reported bus/stop/route query
// results, package svgmap renders a catalogue as an SVG map, and package
// iodoc is the only package aware of the external JSON request/response
// document format, bridging it to the above.
//
// cmd/transitcli is the command-line entry point: it reads a document,
// builds the catalogue and router it describes, answers every query and
// writes the results back out.
package transitgraph
