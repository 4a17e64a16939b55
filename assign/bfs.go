// SPDX-License-Identifier: MIT
package assign

// queueItem pairs a node name with its parent in the BFS tree.
type queueItem struct {
	name   string
	parent string // empty for a root
}

// BFSResult holds the outcome of a multi-root BFS: the visit order and
// each reached node's parent, from which any root-to-node path can be
// reconstructed.
type BFSResult struct {
	Order  []string
	Parent map[string]string
	roots  map[string]struct{}
}

// BFS runs a single-source-equivalent, multi-root breadth-first search
// from roots simultaneously: every root is seeded at depth 0 and FIFO
// insertion order of the root slice breaks ties between equally short
// paths (spec §4.4.7).
func (g *Graph) BFS(roots []string) *BFSResult {
	res := &BFSResult{
		Parent: make(map[string]string),
		roots:  make(map[string]struct{}, len(roots)),
	}
	visited := make(map[string]bool)
	var queue []queueItem

	for _, r := range roots {
		if !g.Has(r) || visited[r] {
			continue
		}
		visited[r] = true
		res.roots[r] = struct{}{}
		queue = append(queue, queueItem{name: r})
	}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.name)
		if item.parent != "" {
			res.Parent[item.name] = item.parent
		}

		for _, nbr := range g.Outbound(item.name) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			queue = append(queue, queueItem{name: nbr, parent: item.name})
		}
	}

	return res
}

// Contains reports whether dest was reached at all, including dest
// itself being one of the BFS roots (path length 0). This is the
// "contains_node" test of spec §9 Design Notes, used inside trade.
func (r *BFSResult) Contains(dest string) bool {
	for _, n := range r.Order {
		if n == dest {
			return true
		}
	}
	return false
}

// HasChildPath reports whether dest was reached via a non-trivial path
// (length > 1 from some root) — i.e. dest is reachable but is not
// itself one of the roots. This is the "contains_child" test of spec
// §9 Design Notes, mandated for steal.
func (r *BFSResult) HasChildPath(dest string) bool {
	if _, isRoot := r.roots[dest]; isRoot {
		return false
	}
	return r.Contains(dest)
}

// PathTo reconstructs the root-to-dest path, or nil if dest was not reached.
func (r *BFSResult) PathTo(dest string) []string {
	if !r.Contains(dest) {
		return nil
	}

	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		parent, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
