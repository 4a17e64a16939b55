package match

import (
	"sort"
	"strings"

	"github.com/gradctl/degreepath/attribute"
	"github.com/gradctl/degreepath/catalog"
	"github.com/gradctl/degreepath/specexpr"
)

// Matcher evaluates templates against course pools. It holds no state
// and is safe for concurrent use.
type Matcher struct{}

// New returns a Matcher.
func New() *Matcher {
	return &Matcher{}
}

// Candidates expands t's wildcards against pool and returns one
// FulfillmentStatus per concrete variant (spec §4.2 steps 1-4). If t has
// no '*' atoms, or none fire against pool, the result is a single
// status. The result is never empty.
func (m *Matcher) Candidates(t *catalog.Template, pool catalog.CourseSet) []*catalog.FulfillmentStatus {
	return expand(t, pool)
}

// Satisfies reports whether course satisfies every specification of t,
// as currently written (wildcards matched existentially, unresolved).
func (m *Matcher) Satisfies(t *catalog.Template, course *catalog.Course) bool {
	for _, spec := range t.Specifications {
		if !specexpr.Eval(specexpr.Parse(spec), course.Attrs).Value {
			return false
		}
	}
	return true
}

func expand(t *catalog.Template, pool catalog.CourseSet) []*catalog.FulfillmentStatus {
	nodes := parseAll(t.Specifications)
	bindings, satisfying := evaluate(nodes, pool)

	if len(bindings) == 0 {
		return []*catalog.FulfillmentStatus{statusFrom(t, satisfying)}
	}

	key := firstKey(bindings)
	values := sortedValues(bindings[key])

	var out []*catalog.FulfillmentStatus
	for _, v := range values {
		variant := substitute(t, key, v)
		out = append(out, expand(variant, pool)...)
	}

	if len(out) == 0 {
		out = append(out, statusFrom(t, catalog.CourseSet{}))
	}

	return out
}

func parseAll(specs []string) []specexpr.Node {
	nodes := make([]specexpr.Node, len(specs))
	for i, s := range specs {
		nodes[i] = specexpr.Parse(s)
	}
	return nodes
}

// evaluate runs every node against every course in pool, merging
// wildcard bindings across specs and courses, and collects the set of
// courses that satisfy every spec.
func evaluate(nodes []specexpr.Node, pool catalog.CourseSet) (specexpr.Bindings, catalog.CourseSet) {
	var bindings specexpr.Bindings
	satisfying := make(catalog.CourseSet)

	for _, c := range pool {
		allMatch := true
		for _, n := range nodes {
			res := specexpr.Eval(n, c.Attrs)
			bindings = bindings.Merge(res.Bindings)
			if !res.Value {
				allMatch = false
			}
		}
		if allMatch {
			satisfying.Add(c)
		}
	}

	return bindings, satisfying
}

// firstKey returns a deterministic choice of wildcard key: the
// lexicographically smallest. The spec leaves the pop order of multiple
// distinct wildcard keys within one template unspecified; see DESIGN.md.
func firstKey(bindings specexpr.Bindings) attribute.Attribute {
	keys := make([]attribute.Attribute, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys[0]
}

func sortedValues(values map[string]struct{}) []string {
	out := make([]string, 0, len(values))
	for v := range values {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// substitute deep-copies t and rewrites every occurrence of the
// wildcard atom for key with the concrete value, equivalent to
// attribute.ReplaceWildcard applied to the template's spec text.
func substitute(t *catalog.Template, key attribute.Attribute, value string) *catalog.Template {
	clone := t.Clone()

	from, to := string(attribute.Wildcard), value
	if key != "" {
		from = string(key) + "." + string(attribute.Wildcard)
		to = string(key) + "." + value
	}

	for i, s := range clone.Specifications {
		clone.Specifications[i] = strings.ReplaceAll(s, from, to)
	}

	return clone
}

func statusFrom(t *catalog.Template, courses catalog.CourseSet) *catalog.FulfillmentStatus {
	status := catalog.NewFulfillmentStatus(t)
	for _, c := range courses {
		status.Bind(c)
	}
	return status
}
