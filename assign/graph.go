// SPDX-License-Identifier: MIT
package assign

import (
	"errors"
	"sort"

	"github.com/gradctl/degreepath/catalog"
)

// ErrUnknownNode is returned when an operation references a node name
// that was never added to the graph.
var ErrUnknownNode = errors.New("assign: unknown node")

// Graph is a directed adjacency matrix over named nodes. Edge (u, v)
// carries the set of courses u currently holds that v could also
// accept; a missing or empty set means no edge. Non-template roots
// (templates with positive excess) are tracked separately so BFS can
// start from all of them at once.
//
// Graph is not safe for concurrent use; the engine owns one Graph per
// template combination and mutates it synchronously (spec §5).
type Graph struct {
	index map[string]int
	names []string
	edges [][]catalog.CourseSet
	roots map[string]struct{}
}

// NewGraph returns a Graph with one node per name, no edges, no roots.
func NewGraph(names []string) *Graph {
	g := &Graph{
		index: make(map[string]int, len(names)),
		names: append([]string(nil), names...),
		roots: make(map[string]struct{}),
	}
	for i, n := range g.names {
		g.index[n] = i
	}
	g.edges = make([][]catalog.CourseSet, len(g.names))
	for i := range g.edges {
		g.edges[i] = make([]catalog.CourseSet, len(g.names))
	}
	return g
}

// AddNode appends a new node (used for the trade procedure's dummy
// donor/receiver) and returns nothing; the node becomes addressable by
// name immediately. Adding a name that already exists is a no-op.
func (g *Graph) AddNode(name string) {
	if _, ok := g.index[name]; ok {
		return
	}
	g.index[name] = len(g.names)
	g.names = append(g.names, name)

	for i := range g.edges {
		g.edges[i] = append(g.edges[i], nil)
	}
	g.edges = append(g.edges, make([]catalog.CourseSet, len(g.names)))
}

// Has reports whether name is a node of g.
func (g *Graph) Has(name string) bool {
	_, ok := g.index[name]
	return ok
}

// SetRoot marks or unmarks name as a root (a template with positive
// excess, or an explicitly supplied BFS source).
func (g *Graph) SetRoot(name string, isRoot bool) {
	if isRoot {
		g.roots[name] = struct{}{}
	} else {
		delete(g.roots, name)
	}
}

// Roots returns the current root set, sorted for deterministic BFS seeding.
func (g *Graph) Roots() []string {
	out := make([]string, 0, len(g.roots))
	for n := range g.roots {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// UpdateEdge recomputes the payload of edge (u, v) to payload. An empty
// or nil payload clears the edge.
func (g *Graph) UpdateEdge(u, v string, payload catalog.CourseSet) error {
	ui, ok := g.index[u]
	if !ok {
		return ErrUnknownNode
	}
	vi, ok := g.index[v]
	if !ok {
		return ErrUnknownNode
	}
	if len(payload) == 0 {
		g.edges[ui][vi] = nil
	} else {
		g.edges[ui][vi] = payload
	}
	return nil
}

// EdgeData returns the payload set for edge (u, v), or nil if absent.
func (g *Graph) EdgeData(u, v string) catalog.CourseSet {
	ui, ok := g.index[u]
	if !ok {
		return nil
	}
	vi, ok := g.index[v]
	if !ok {
		return nil
	}
	return g.edges[ui][vi]
}

// EdgeFirst returns a deterministic element of edge (u, v)'s payload
// (the lexicographically smallest course key), or nil if the edge is empty.
func (g *Graph) EdgeFirst(u, v string) *catalog.Course {
	payload := g.EdgeData(u, v)
	if len(payload) == 0 {
		return nil
	}
	return payload.Slice()[0]
}

// Outbound returns the names of nodes reachable from n by a single
// non-empty edge, sorted for determinism.
func (g *Graph) Outbound(n string) []string {
	ni, ok := g.index[n]
	if !ok {
		return nil
	}
	var out []string
	for vi, payload := range g.edges[ni] {
		if len(payload) > 0 {
			out = append(out, g.names[vi])
		}
	}
	sort.Strings(out)
	return out
}

// Inbound returns the names of nodes with a single non-empty edge into
// n, sorted for determinism.
func (g *Graph) Inbound(n string) []string {
	ni, ok := g.index[n]
	if !ok {
		return nil
	}
	var out []string
	for ui := range g.edges {
		if len(g.edges[ui][ni]) > 0 {
			out = append(out, g.names[ui])
		}
	}
	sort.Strings(out)
	return out
}

// Overlap computes the standard edge-data formula used for both the
// backwards-overlap (steal) and forwards-overlap (trade) edge
// generators of spec §4.3: the courses held intersected with the
// courses accepted.
func Overlap(held, accepted catalog.CourseSet) catalog.CourseSet {
	return held.Intersect(accepted)
}

// RebuildEdges recomputes every edge among names using held (what each
// node currently holds) and accepted (what each node could accept, its
// max-fulfillment set). Nodes absent from held/accepted contribute no
// edges. Used to build or fully refresh a graph in one pass.
func (g *Graph) RebuildEdges(names []string, held, accepted map[string]catalog.CourseSet) {
	for _, u := range names {
		for _, v := range names {
			if u == v {
				continue
			}
			_ = g.UpdateEdge(u, v, Overlap(held[u], accepted[v]))
		}
	}
}

// MoveCourse updates held[from]/held[to] to reflect course moving from
// "from" to "to", then recomputes every edge incident on "from" or
// "to" against the full node set, keeping the graph consistent with
// the move (spec §4.3 "move_course").
func (g *Graph) MoveCourse(from, to string, course *catalog.Course, held map[string]catalog.CourseSet, accepted map[string]catalog.CourseSet) {
	if held[from] != nil {
		held[from].Remove(course)
	}
	if held[to] == nil {
		held[to] = make(catalog.CourseSet)
	}
	held[to].Add(course)

	for _, n := range g.names {
		if n == from || n == to {
			continue
		}
		_ = g.UpdateEdge(from, n, Overlap(held[from], accepted[n]))
		_ = g.UpdateEdge(n, from, Overlap(held[n], accepted[from]))
		_ = g.UpdateEdge(to, n, Overlap(held[to], accepted[n]))
		_ = g.UpdateEdge(n, to, Overlap(held[n], accepted[to]))
	}
	_ = g.UpdateEdge(from, to, Overlap(held[from], accepted[to]))
	_ = g.UpdateEdge(to, from, Overlap(held[to], accepted[from]))
}
