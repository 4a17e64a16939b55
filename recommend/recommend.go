package recommend

import (
	"log/slog"
	"sort"

	"github.com/gradctl/degreepath/catalog"
	"github.com/gradctl/degreepath/engine"
	"github.com/gradctl/degreepath/match"
)

// Result is the recommender's output: ranked candidate courses keyed by
// resolved template name, matching engine.AssignmentMap's keying (spec
// §4.5 "Output: { resolved_template → [ranked candidate courses] }").
type Result map[string][]*catalog.Course

// Recommender runs the recommendation facade of spec §4.5 against an
// already-computed fulfillment result.
type Recommender struct {
	matcher *match.Matcher
	logger  *slog.Logger
}

// Option configures a Recommender.
type Option func(*Recommender)

// WithLogger overrides the recommender's structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Recommender) {
		if l != nil {
			r.logger = l
		}
	}
}

// New returns a Recommender ready to run Recommend.
func New(opts ...Option) *Recommender {
	r := &Recommender{matcher: match.New(), logger: slog.Default()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Recommend runs spec §4.5 for every satisfied template in assignment:
// it re-matches degree's original (pre-wildcard) template against pool,
// drops courses already bound to it, ranks the remainder by
// replacement-binding count across assignment, and — when scorer is
// non-nil — lets it reorder the result (spec §6.5).
func (r *Recommender) Recommend(degree *catalog.Degree, assignment engine.AssignmentMap, pool catalog.CourseSet, scorer Scorer, customTags []string) Result {
	out := Result{}

	for name, status := range assignment {
		if !status.Fulfilled() {
			continue
		}
		original, ok := degree.Template(name)
		if !ok {
			r.logger.Warn("recommend: template missing from degree", "template", name)
			continue
		}

		candidates := r.candidatesFor(original, pool, status.Fulfillment)
		candidates = rankByBindCount(candidates, assignment, original.IsReplacement())

		if scorer != nil {
			candidates = scorer.Rank(status.Template, candidates, status.Fulfillment, customTags)
		}

		out[name] = candidates
	}

	return out
}

// candidatesFor re-matches t's original specification (wildcards left
// unresolved, matched existentially per course) against every course in
// pool not already bound to t (spec §4.5 steps 1-2).
func (r *Recommender) candidatesFor(t *catalog.Template, pool catalog.CourseSet, assigned catalog.CourseSet) []*catalog.Course {
	var out []*catalog.Course
	for _, c := range pool.Slice() {
		if assigned.Has(c) {
			continue
		}
		if r.matcher.Satisfies(t, c) {
			out = append(out, c)
		}
	}
	return out
}

// rankByBindCount sorts candidates ascending by the number of
// replacement templates currently holding them across assignment, or
// descending when the recommended-for template is itself replacement
// (spec §4.5 step 3). candidates arrives in catalog-key order, so the
// stable sort preserves that order among ties (spec §4.4.7 "bucket-sort
// preserves encounter order").
func rankByBindCount(candidates []*catalog.Course, assignment engine.AssignmentMap, replacement bool) []*catalog.Course {
	counts := make(map[string]int, len(candidates))
	for _, c := range candidates {
		counts[c.Key()] = bindCount(c, assignment)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := counts[candidates[i].Key()], counts[candidates[j].Key()]
		if replacement {
			return ci > cj
		}
		return ci < cj
	})

	return candidates
}

func bindCount(c *catalog.Course, assignment engine.AssignmentMap) int {
	n := 0
	for _, st := range assignment {
		if st.Template.IsReplacement() && st.Fulfillment.Has(c) {
			n++
		}
	}
	return n
}
