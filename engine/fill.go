package engine

import (
	"sort"

	"github.com/gradctl/degreepath/catalog"
)

// fill walks t's candidate courses and adopts as many as it can without
// violating any existing binding's strength (spec §4.4.3):
//
//  1. An unbound course, or a course bound only to replacement templates
//     when t itself is replacement-allowed, is adopted outright.
//  2. Otherwise, if t is non-replacement and every current holder of the
//     course is "weak" (has positive excess and importance at or above
//     importanceLevel), the course is unbound from its holders and
//     adopted by t.
//  3. Otherwise the course is left alone.
//
// Replacement templates walk their candidates ordered by how many other
// still-unfulfilled replacement templates in the combination also want
// the course, most-wanted first, so contested courses are claimed before
// uncontested ones.
// Rule 1 carries no "stop once fulfilled" guard in the spec: a template
// — replacement templates especially — can walk past its own
// requirement and end up holding extra, currently-uncontested courses.
// That over-fill is exactly where steal's "templates with excess" roots
// come from later; only rule 2's takeover is gated on t still being
// unfulfilled.
func fill(t *catalog.Template, cs *comboState, importanceLevel int) {
	status := cs.assignment[t.Name]
	candidates := candidateOrder(t, cs)

	for _, c := range candidates {
		holders := holdersOf(c, cs, t.Name)

		if len(holders) == 0 || (t.IsReplacement() && !anyNonReplacementHolder(holders, cs)) {
			status.Bind(c)
			continue
		}

		if !status.Fulfilled() && !t.IsReplacement() && allWeak(holders, cs, importanceLevel) {
			for _, h := range holders {
				cs.assignment[h].Unbind(c)
			}
			status.Bind(c)
		}
	}
}

func candidateOrder(t *catalog.Template, cs *comboState) []*catalog.Course {
	base := cs.accepted[t.Name].Slice()
	if !t.IsReplacement() {
		return base
	}

	bindCount := func(c *catalog.Course) int {
		n := 0
		for _, t2 := range cs.combo {
			if !t2.IsReplacement() {
				continue
			}
			st := cs.assignment[t2.Name]
			if !st.Fulfilled() && cs.accepted[t2.Name].Has(c) {
				n++
			}
		}
		return n
	}

	sort.SliceStable(base, func(i, j int) bool {
		return bindCount(base[i]) > bindCount(base[j])
	})
	return base
}

// holdersOf returns the names (other than exclude) currently holding c,
// in sorted order for determinism.
func holdersOf(c *catalog.Course, cs *comboState, exclude string) []string {
	var out []string
	for _, n := range sortedNames(cs.assignment) {
		if n == exclude {
			continue
		}
		if cs.assignment[n].Fulfillment.Has(c) {
			out = append(out, n)
		}
	}
	return out
}

func anyNonReplacementHolder(holders []string, cs *comboState) bool {
	for _, n := range holders {
		if t, ok := cs.templateOf(n); ok && !t.IsReplacement() {
			return true
		}
	}
	return false
}

func allWeak(holders []string, cs *comboState, importanceLevel int) bool {
	for _, n := range holders {
		st := cs.assignment[n]
		if st.Excess() <= 0 || st.Template.Importance < importanceLevel {
			return false
		}
	}
	return true
}
