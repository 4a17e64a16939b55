// Package assign implements the assignment graph (spec §4.3): a
// directed "who-can-give-what-to-whom" graph over template nodes (plus
// two transient dummy nodes during replacement-trade), stored as an
// adjacency matrix of course-set payloads rather than a bit-matrix,
// since the spec's edges carry the set of courses one node holds that
// another could also accept.
//
// Graph stores node names and integer indices only — never template or
// FulfillmentStatus pointers — so ownership of those objects stays with
// the engine (spec §9 Design Notes). BFS is a single-source,
// multi-root breadth-first reachability search generalized from
// lvlath's bfs.BFS walker.
package assign
