package engine

import (
	"sort"

	"github.com/gradctl/degreepath/assign"
	"github.com/gradctl/degreepath/catalog"
)

// steal pulls courses into a still-unfulfilled non-replacement template
// t by walking BFS paths through the assignment graph and rotating
// courses along them, rather than unbinding a single weak holder
// directly (spec §4.4.4). Only called for non-replacement t; calling it
// on a replacement template is a harmless no-op since replacement
// templates aren't filled until after the steal pass runs.
func steal(t *catalog.Template, cs *comboState, importanceLevel int) {
	if t.IsReplacement() {
		return
	}
	status := cs.assignment[t.Name]

	for _, c := range cs.accepted[t.Name].Slice() {
		if status.Fulfilled() {
			break
		}
		if status.Fulfillment.Has(c) {
			continue
		}

		roots := computeRoots(sortedNames(cs.assignment), cs.assignment, importanceLevel)
		bfsRes := cs.graph.BFS(roots)

		holder := nearestReachableHolder(c, cs, t.Name, bfsRes, true)
		if holder == "" {
			continue
		}

		chain := append(bfsRes.PathTo(holder), t.Name)
		applyChain(chain, cs)
	}
}

// computeRoots returns the names whose FulfillmentStatus has positive
// excess, unioned with names strictly less important than
// importanceLevel when importanceLevel was actually given (spec
// §4.4.4 step 1). Names missing from statuses are skipped. The trade
// procedure's dummy nodes carry the importance of the template being
// traded for, which is never strictly below the level trade passes, so
// they never satisfy the importance clause.
func computeRoots(names []string, statuses map[string]*catalog.FulfillmentStatus, importanceLevel int) []string {
	var out []string
	for _, n := range names {
		st, ok := statuses[n]
		if !ok {
			continue
		}
		isRoot := st.Excess() > 0
		if !isRoot && importanceLevel != defaultImportanceLevel && st.Template.Importance < importanceLevel {
			isRoot = true
		}
		if isRoot {
			out = append(out, n)
		}
	}
	return out
}

// nearestReachableHolder finds, among the current holders of c other
// than exclude, the one nearest to the BFS roots, preferring a
// non-trivial path (requireChildPath) when requested; steal requires a
// non-trivial path (contains_child, spec §9 Design Notes) since a root
// that already holds c is better served by fill's direct adoption.
func nearestReachableHolder(c *catalog.Course, cs *comboState, exclude string, bfsRes *assign.BFSResult, requireChildPath bool) string {
	holders := holdersOf(c, cs, exclude)

	best, bestLen := "", -1
	for _, h := range holders {
		reachable := bfsRes.Contains(h)
		if requireChildPath {
			reachable = bfsRes.HasChildPath(h)
		}
		if !reachable {
			continue
		}
		path := bfsRes.PathTo(h)
		if bestLen == -1 || len(path) < bestLen {
			best, bestLen = h, len(path)
		}
	}
	return best
}

// chainMove records one hop's transfer so a caller can reverse it.
type chainMove struct {
	from, to string
	course   *catalog.Course
}

// applyChain walks chain hop by hop, transferring one course per hop
// from held[giver] to held[receiver]. Every hop but the last picks a
// deterministic (lexicographically smallest) element of the edge;
// the final hop into the target picks the element bound to the fewest
// replacement templates, so courses still useful for replacement sharing
// aren't hoarded by a non-replacement template (spec §4.4.4 step 4).
// Returns the moves actually made, so a caller that decides the overall
// attempt failed can reverse them with undoChain.
func applyChain(chain []string, cs *comboState) []chainMove {
	g := cs.graph
	var moves []chainMove
	for i := 0; i < len(chain)-1; i++ {
		giver, receiver := chain[i], chain[i+1]

		var course *catalog.Course
		if i == len(chain)-2 {
			course = fewestReplacementBindings(g.EdgeData(giver, receiver), cs)
		} else {
			course = g.EdgeFirst(giver, receiver)
		}
		if course == nil {
			return moves
		}

		g.MoveCourse(giver, receiver, course, cs.held, cs.accepted)
		moves = append(moves, chainMove{giver, receiver, course})
	}
	return moves
}

// undoChain reverses moves in the opposite order they were applied.
func undoChain(moves []chainMove, cs *comboState) {
	for i := len(moves) - 1; i >= 0; i-- {
		m := moves[i]
		cs.graph.MoveCourse(m.to, m.from, m.course, cs.held, cs.accepted)
	}
}

func fewestReplacementBindings(candidates catalog.CourseSet, cs *comboState) *catalog.Course {
	list := candidates.Slice()
	if len(list) == 0 {
		return nil
	}
	sort.SliceStable(list, func(i, j int) bool {
		return replacementBindingCount(list[i], cs) < replacementBindingCount(list[j], cs)
	})
	return list[0]
}

func replacementBindingCount(c *catalog.Course, cs *comboState) int {
	n := 0
	for name, set := range cs.held {
		if t, ok := cs.templateOf(name); ok && t.IsReplacement() && set.Has(c) {
			n++
		}
	}
	return n
}
