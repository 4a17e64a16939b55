package scenario

import (
	"fmt"

	"github.com/gradctl/degreepath/attribute"
	"github.com/gradctl/degreepath/catalog"
)

// Fixture is a self-contained input to engine.Fulfillment: a degree and
// the set of courses the hypothetical student has taken.
type Fixture struct {
	Degree *catalog.Degree
	Taken  catalog.CourseSet
}

// course builds course n ("GEN 10<n> Course <n>") carrying attrs. The
// identity triple is fixed and non-empty by construction, so a
// NewCourse error here would mean a programmer error in this file, not
// bad input — panicking matches this repo's posture for literal,
// hardcoded fixture data.
func course(n int, attrs ...string) *catalog.Course {
	c, err := catalog.NewCourse("GEN", fmt.Sprintf("10%d", n), fmt.Sprintf("Course %d", n))
	if err != nil {
		panic(fmt.Sprintf("scenario: course %d: %v", n, err))
	}
	for _, a := range attrs {
		c.Attrs.Add(attribute.Attribute(a))
	}
	return c
}

func template(name, spec string, replacement catalog.Replacement, required int) *catalog.Template {
	return &catalog.Template{
		Name:            name,
		Specifications:  []string{spec},
		Replacement:     replacement,
		CoursesRequired: required,
	}
}

func degree(name string, templates ...*catalog.Template) *catalog.Degree {
	d := catalog.NewDegree(name)
	for _, t := range templates {
		if err := d.AddTemplate(t); err != nil {
			panic(fmt.Sprintf("scenario: degree %s: %v", name, err))
		}
	}
	return d
}

// S1 is the "linear overlap" scenario: five NR templates bin.1..bin.5,
// required=1 each, against five courses whose attributes chain pairwise
// overlap. Every template is expected to end up fulfilled.
func S1() Fixture {
	c1 := course(1, "bin.1", "bin.5")
	c2 := course(2, "bin.1", "bin.2")
	c3 := course(3, "bin.2", "bin.3")
	c4 := course(4, "bin.3", "bin.4")
	c5 := course(5, "bin.3", "bin.4")

	d := degree("s1-linear-overlap",
		template("bin.1", "bin.1", catalog.NR, 1),
		template("bin.2", "bin.2", catalog.NR, 1),
		template("bin.3", "bin.3", catalog.NR, 1),
		template("bin.4", "bin.4", catalog.NR, 1),
		template("bin.5", "bin.5", catalog.NR, 1),
	)

	return Fixture{Degree: d, Taken: catalog.NewCourseSet(c1, c2, c3, c4, c5)}
}

// S2 is S1's courses against the same five bins, but every template is
// replacement-allowed: every template is expected to end up fulfilled,
// with overlapping courses shared freely instead of contested.
func S2() Fixture {
	c1 := course(1, "bin.1", "bin.5")
	c2 := course(2, "bin.1", "bin.2")
	c3 := course(3, "bin.2", "bin.3")
	c4 := course(4, "bin.3", "bin.4")
	c5 := course(5, "bin.3", "bin.4")

	d := degree("s2-r-sharing",
		template("bin.1", "bin.1", catalog.R, 1),
		template("bin.2", "bin.2", catalog.R, 1),
		template("bin.3", "bin.3", catalog.R, 1),
		template("bin.4", "bin.4", catalog.R, 1),
		template("bin.5", "bin.5", catalog.R, 1),
	)

	return Fixture{Degree: d, Taken: catalog.NewCourseSet(c1, c2, c3, c4, c5)}
}

// S3 is the "trade required" scenario: an NR template locks up both
// courses two R templates want, and only a trade can free one of them
// up. Expected: t1 ends with c2, t2 and t3 both end with c1 (shared, R).
func S3() Fixture {
	c1 := course(1, "bin.1", "bin.2", "bin.3")
	c2 := course(2, "bin.1", "bin.2")

	d := degree("s3-trade-required",
		template("t1", "bin.1", catalog.NR, 1),
		template("t2", "bin.2", catalog.R, 1),
		template("t3", "bin.3", catalog.R, 1),
	)

	return Fixture{Degree: d, Taken: catalog.NewCourseSet(c1, c2)}
}

// S4 is the "unfulfillable" scenario: two NR templates compete for the
// single course that satisfies the first of them; the second can never
// be fulfilled. Expected: unfulfilled(t1) = 0, unfulfilled(t2) = 1.
func S4() Fixture {
	c1 := course(1, "bin.1")

	d := degree("s4-unfulfillable",
		template("t1", "bin.1", catalog.NR, 1),
		template("t2", "bin.2", catalog.NR, 1),
	)

	return Fixture{Degree: d, Taken: catalog.NewCourseSet(c1)}
}

// S5 is the "wildcard concentration" scenario: a single wildcard
// template concentration.* required=2 against two "ai" courses and one
// "theory" course. Expected: the engine resolves the wildcard to "ai",
// the only completion with enough matches to reach Required=2.
func S5() Fixture {
	c1 := course(1, "concentration.ai")
	c2 := course(2, "concentration.ai")
	c3 := course(3, "concentration.theory")

	d := degree("s5-wildcard-concentration",
		template("concentration", "concentration.*", catalog.NR, 2),
	)

	return Fixture{Degree: d, Taken: catalog.NewCourseSet(c1, c2, c3)}
}

// SpecExprCase is S6's fixture shape: a raw boolean specification
// string matched against one course's attribute set.
type SpecExprCase struct {
	Spec     string
	Attrs    []string
	Expected bool
}

// S6 is the "specification parser" scenario: the grammar
// "(bin.1 & (bin.5 | bin.4))" evaluated against three attribute sets.
func S6() []SpecExprCase {
	const spec = "(bin.1 & (bin.5 | bin.4))"
	return []SpecExprCase{
		{Spec: spec, Attrs: []string{"bin.1", "bin.5"}, Expected: true},
		{Spec: spec, Attrs: []string{"bin.1"}, Expected: false},
		{Spec: spec, Attrs: []string{"bin.5", "bin.4"}, Expected: false},
	}
}
