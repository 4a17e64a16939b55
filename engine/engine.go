package engine

import (
	"log/slog"
	"sort"

	"github.com/gradctl/degreepath/assign"
	"github.com/gradctl/degreepath/catalog"
	"github.com/gradctl/degreepath/match"
)

// defaultImportanceLevel is the sentinel "no level given" value for
// fill/steal/trade's importance_level parameter (spec §4.4.3-§4.4.5): a
// real template's Importance never legitimately equals it in practice,
// so "importance < defaultImportanceLevel" is always false and the
// corresponding gate is effectively disabled.
const defaultImportanceLevel = -1

// AssignmentMap is the engine's result: one FulfillmentStatus per
// degree template, keyed by template name.
type AssignmentMap map[string]*catalog.FulfillmentStatus

// Engine runs the fulfillment algorithm of spec §4.4 against a catalog's
// course pool.
type Engine struct {
	matcher *match.Matcher
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger overrides the engine's structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an Engine ready to run Fulfillment.
func New(opts ...Option) *Engine {
	e := &Engine{matcher: match.New(), logger: slog.Default()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// comboState is the mutable working state for one enumerated combination
// of concrete (wildcard-resolved) templates.
type comboState struct {
	combo      []*catalog.Template
	assignment AssignmentMap
	maxMap     AssignmentMap
	held       map[string]catalog.CourseSet
	accepted   map[string]catalog.CourseSet
	graph      *assign.Graph
}

func (cs *comboState) templateOf(name string) (*catalog.Template, bool) {
	st, ok := cs.assignment[name]
	if !ok {
		return nil, false
	}
	return st.Template, true
}

// Fulfillment runs the full enumerate → fill → steal → fill → trade →
// score pipeline of spec §4.4.1 and returns the best-scoring assignment
// across every template combination.
func (e *Engine) Fulfillment(degree *catalog.Degree, taken catalog.CourseSet) AssignmentMap {
	combos := e.enumerateCombinations(degree, taken)

	var best AssignmentMap
	var bestScore scoreValue

	for i, combo := range combos {
		cs := e.runCombo(combo, taken)
		sc := scoreOf(cs.assignment)
		if best == nil || sc.better(bestScore) {
			best, bestScore = cs.assignment, sc
		}
		e.logger.Debug("fulfillment combination scored",
			"degree", degree.Name,
			"combination", i,
			"unfulfilled", sc.unfulfilled,
			"actual", sc.actual,
		)
	}

	if best == nil {
		best = AssignmentMap{}
	}
	return best
}

// enumerateCombinations expands every template's wildcards against taken
// and returns the cartesian product of the per-template variant lists,
// one combination per product element (spec §4.4.2).
func (e *Engine) enumerateCombinations(degree *catalog.Degree, taken catalog.CourseSet) [][]*catalog.Template {
	if len(degree.Templates) == 0 {
		return [][]*catalog.Template{{}}
	}

	perSlot := make([][]*catalog.Template, len(degree.Templates))
	for i, t := range degree.Templates {
		variants := e.matcher.Candidates(t, taken)
		slot := make([]*catalog.Template, len(variants))
		for j, v := range variants {
			slot[j] = v.Template
		}
		if len(slot) == 0 {
			slot = []*catalog.Template{t}
		}
		perSlot[i] = slot
	}

	return cartesian(perSlot)
}

func cartesian(slots [][]*catalog.Template) [][]*catalog.Template {
	result := [][]*catalog.Template{{}}
	for _, slot := range slots {
		next := make([][]*catalog.Template, 0, len(result)*len(slot))
		for _, combo := range result {
			for _, v := range slot {
				c := make([]*catalog.Template, len(combo), len(combo)+1)
				copy(c, combo)
				next = append(next, append(c, v))
			}
		}
		result = next
	}
	return result
}

// runCombo executes the pipeline of spec §4.4.1 for a single combination.
func (e *Engine) runCombo(combo []*catalog.Template, taken catalog.CourseSet) *comboState {
	cs := &comboState{
		combo:      combo,
		assignment: AssignmentMap{},
		maxMap:     AssignmentMap{},
		held:       map[string]catalog.CourseSet{},
		accepted:   map[string]catalog.CourseSet{},
	}

	names := make([]string, len(combo))
	for i, t := range combo {
		names[i] = t.Name
		variants := e.matcher.Candidates(t, taken)
		cs.maxMap[t.Name] = variants[0]
		cs.assignment[t.Name] = catalog.NewFulfillmentStatus(t)
		cs.held[t.Name] = cs.assignment[t.Name].Fulfillment
		cs.accepted[t.Name] = cs.maxMap[t.Name].Fulfillment
	}

	for _, t := range combo {
		if !t.IsReplacement() {
			fill(t, cs, defaultImportanceLevel)
		}
	}

	cs.graph = assign.NewGraph(names)
	cs.graph.RebuildEdges(names, cs.held, cs.accepted)

	for _, t := range combo {
		if !t.IsReplacement() {
			steal(t, cs, defaultImportanceLevel)
		}
	}

	for _, t := range combo {
		if t.IsReplacement() {
			fill(t, cs, defaultImportanceLevel)
		}
	}

	for _, t := range combo {
		if t.IsReplacement() {
			trade(t, cs, defaultImportanceLevel)
		}
	}
	for _, t := range combo {
		if t.IsReplacement() {
			trade(t, cs, t.Importance)
		}
	}

	return cs
}

func sortedNames(m AssignmentMap) []string {
	out := make([]string, 0, len(m))
	for n := range m {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
