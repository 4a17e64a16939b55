package engine

import (
	"sort"

	"github.com/gradctl/degreepath/assign"
	"github.com/gradctl/degreepath/catalog"
)

// Dummy node names used by the trade procedure's two-node subgraph (spec
// §4.4.5). They never collide with a real template name since template
// names come from a user-authored degree and these start with "__".
const (
	donorNode    = "__donor"
	receiverNode = "__receiver"
)

// trade runs the replacement-trade procedure for a still-unfulfilled
// replacement template t, repeating until it stops making progress
// (spec §4.4.5). Calling it on a non-replacement template is a no-op.
func trade(t *catalog.Template, cs *comboState, importanceLevel int) {
	if !t.IsReplacement() {
		return
	}
	status := cs.assignment[t.Name]

	for !status.Fulfilled() {
		if !tradeOnce(t, cs, importanceLevel) {
			return
		}
	}
}

// tradeOnce attempts to acquire exactly one course for t, trying each
// outstanding candidate — fewest existing replacement bindings first —
// until one succeeds or all are exhausted. A candidate that no
// non-replacement template holds is shared into t directly, as fill's
// rule 1 would; only candidates held by a non-replacement template go
// through the donor/receiver trade.
func tradeOnce(t *catalog.Template, cs *comboState, importanceLevel int) bool {
	status := cs.assignment[t.Name]
	pool := cs.accepted[t.Name].Minus(status.Fulfillment).Slice()
	sort.SliceStable(pool, func(i, j int) bool {
		return replacementBindingCount(pool[i], cs) < replacementBindingCount(pool[j], cs)
	})

	for _, c := range pool {
		if !anyNonReplacementHolder(holdersOf(c, cs, t.Name), cs) {
			status.Bind(c)
			return true
		}

		tentative := tentativeBind(c, cs)

		if attemptTrade(t, c, cs, importanceLevel) {
			undoTentative(c, tentative, cs)
			status.Bind(c)
			return true
		}

		undoTentative(c, tentative, cs)
	}
	return false
}

// tentativeBind binds c to every replacement template (other than
// holders it's already bound to) whose max-fulfillment set contains it
// (spec §4.4.5 step a), simulating what the combination would look like
// if c were already shared everywhere it's eligible. This can turn an
// at-capacity replacement template into one with excess, making its
// surplus available to the trade's BFS search.
func tentativeBind(c *catalog.Course, cs *comboState) []string {
	var bound []string
	for _, t2 := range cs.combo {
		if !t2.IsReplacement() {
			continue
		}
		st := cs.assignment[t2.Name]
		if st.Fulfillment.Has(c) {
			continue
		}
		if cs.accepted[t2.Name].Has(c) {
			st.Bind(c)
			bound = append(bound, t2.Name)
		}
	}
	return bound
}

func undoTentative(c *catalog.Course, bound []string, cs *comboState) {
	for _, n := range bound {
		cs.assignment[n].Unbind(c)
	}
}

// weaklyReplacementBoundCourses collects every course held by a
// replacement template with positive excess (spec §4.4.5 step b): the
// pool the dummy donor offers up.
func weaklyReplacementBoundCourses(cs *comboState) catalog.CourseSet {
	out := make(catalog.CourseSet)
	for _, t2 := range cs.combo {
		if !t2.IsReplacement() {
			continue
		}
		st := cs.assignment[t2.Name]
		if st.Excess() <= 0 {
			continue
		}
		for _, c := range st.Fulfillment.Slice() {
			out.Add(c)
		}
	}
	return out
}

// attemptTrade builds the transient donor/receiver subgraph for c (spec
// §4.4.5 steps c-e): the donor offers the weakly replacement-bound pool
// with no requirement, the receiver needs exactly one course and will
// only accept c. The graph is rebuilt fresh from the current held state
// for this one attempt — per spec §4.4.5 step d, the same rebuilt graph
// (dummies included) backs both the reachability gate and the delivery
// BFS, so the donor naturally joins the root set via computeRoots the
// moment it has excess; there are not two separate root sets.
//
// Real templates' held sets are shared by reference with cs.held (the
// same maps backing their FulfillmentStatus), so a successful chain
// application is already live when this returns. A failed attempt
// reverses every move it made via undoChain before returning, so the
// live assignment is untouched either way. Success is "c ended up in
// the receiver's held set" rather than the spec's literal "the donor
// lost a course" — the spec's own redesign notes flag that exact
// bookkeeping as underspecified ("behavior when multiple donor courses
// move is underspecified"), and a direct root can sit closer to the
// receiver than the donor, making the literal check nearly
// unsatisfiable. See DESIGN.md.
func attemptTrade(t *catalog.Template, c *catalog.Course, cs *comboState, importanceLevel int) bool {
	holder := holdersOfReal(c, cs)
	if holder == "" {
		return false
	}

	donorPool := weaklyReplacementBoundCourses(cs)

	names := append(templateNames(cs.combo), donorNode, receiverNode)
	g := assign.NewGraph(names)

	held := map[string]catalog.CourseSet{}
	for name, set := range cs.held {
		held[name] = set
	}
	accepted := map[string]catalog.CourseSet{}
	for name, set := range cs.accepted {
		accepted[name] = set
	}
	held[donorNode] = donorPool.Clone()
	accepted[donorNode] = catalog.CourseSet{}
	held[receiverNode] = catalog.CourseSet{}
	accepted[receiverNode] = catalog.NewCourseSet(c)

	g.RebuildEdges(names, held, accepted)

	statuses := map[string]*catalog.FulfillmentStatus{}
	for name, st := range cs.assignment {
		statuses[name] = st
	}
	statuses[donorNode] = &catalog.FulfillmentStatus{
		Template:    &catalog.Template{Name: donorNode, Importance: t.Importance},
		Required:    0,
		Fulfillment: held[donorNode],
	}
	statuses[receiverNode] = &catalog.FulfillmentStatus{
		Template:    &catalog.Template{Name: receiverNode, Importance: t.Importance},
		Required:    1,
		Fulfillment: held[receiverNode],
	}

	roots := computeRoots(append(sortedNames(cs.assignment), donorNode, receiverNode), statuses, importanceLevel)
	bfsRes := g.BFS(roots)

	if !bfsRes.Contains(holder) {
		return false
	}

	shadow := &comboState{combo: cs.combo, assignment: cs.assignment, maxMap: cs.maxMap, held: held, accepted: accepted, graph: g}
	nearest := nearestReachableHolder(c, shadow, "", bfsRes, false)
	if nearest == "" {
		return false
	}

	chain := append(bfsRes.PathTo(nearest), receiverNode)
	moves := applyChain(chain, shadow)

	if held[receiverNode].Has(c) {
		return true
	}

	undoChain(moves, shadow)
	return false
}

// holdersOfReal returns the single real (non-dummy) template currently
// holding c, or "" if none does.
func holdersOfReal(c *catalog.Course, cs *comboState) string {
	holders := holdersOf(c, cs, "")
	if len(holders) == 0 {
		return ""
	}
	return holders[0]
}

func templateNames(combo []*catalog.Template) []string {
	out := make([]string, len(combo))
	for i, t := range combo {
		out[i] = t.Name
	}
	return out
}
