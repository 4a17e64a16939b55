package recommend

import "github.com/gradctl/degreepath/catalog"

// Scorer realizes the external scorer contract of spec §6.5: given a
// resolved template, its bind-count-ranked candidate pool, a set of
// taken courses, and optional free-form tags, it returns its own
// preferred ordering of the same candidates. Recommender.Recommend
// passes as taken only the courses assigned to that template, not the
// user's whole set of taken courses. The engine core
// never depends on a concrete Scorer — absence of one is legal and
// simply skips this step (see semantic.Client for the one concrete
// adapter in this repo).
type Scorer interface {
	Rank(template *catalog.Template, candidates []*catalog.Course, taken catalog.CourseSet, customTags []string) []*catalog.Course
}
