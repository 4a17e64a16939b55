package engine_test

import (
	"testing"

	"github.com/gradctl/degreepath/attribute"
	"github.com/gradctl/degreepath/catalog"
	"github.com/gradctl/degreepath/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCourse(t *testing.T, subject, id, name string, attrs ...string) *catalog.Course {
	t.Helper()
	c, err := catalog.NewCourse(subject, id, name)
	require.NoError(t, err)
	for _, a := range attrs {
		c.Attrs.Add(attribute.Attribute(a))
	}
	return c
}

func mustTemplate(t *testing.T, name, spec string, replacement catalog.Replacement, required int) *catalog.Template {
	t.Helper()
	return &catalog.Template{
		Name:            name,
		Specifications:  []string{spec},
		Replacement:     replacement,
		CoursesRequired: required,
	}
}

func mustDegree(t *testing.T, name string, templates ...*catalog.Template) *catalog.Degree {
	t.Helper()
	d := catalog.NewDegree(name)
	for _, tmpl := range templates {
		require.NoError(t, d.AddTemplate(tmpl))
	}
	return d
}

// TestFulfillment_GraphSteal uses its own fixture (not scenario.S1): a course needed by a
// low-importance template (Z) sits with a template (H) that has no
// excess of its own, but a separate over-filled template (R) can feed H
// a substitute so H can release what Z needs — a genuine two-hop steal,
// not a direct single-hop weak takeover.
func TestFulfillment_GraphSteal(t *testing.T) {
	cR1 := mustCourse(t, "CS", "200", "R1", "bin.R.1")
	cFiller := mustCourse(t, "CS", "900", "Filler", "bin.R.1", "bin.H.1")
	cTarget := mustCourse(t, "CS", "100", "Target", "bin.H.1", "bin.Z.1")

	tmplR := mustTemplate(t, "R", "bin.R.1", catalog.NR, 1)
	tmplH := mustTemplate(t, "H", "bin.H.1", catalog.NR, 1)
	tmplZ := mustTemplate(t, "Z", "bin.Z.1", catalog.NR, 1)
	degree := mustDegree(t, "steal-degree", tmplR, tmplH, tmplZ)

	taken := catalog.NewCourseSet(cR1, cFiller, cTarget)
	result := engine.New().Fulfillment(degree, taken)

	require.Len(t, result, 3)
	for _, name := range []string{"R", "H", "Z"} {
		st := result[name]
		require.NotNil(t, st, name)
		assert.Truef(t, st.Fulfilled(), "%s should be fulfilled, has %d of %d", name, st.Actual(), st.Required)
	}
	assert.True(t, result["R"].Fulfillment.Has(cR1))
	assert.True(t, result["H"].Fulfillment.Has(cFiller))
	assert.True(t, result["Z"].Fulfillment.Has(cTarget))
}

// TestFulfillment_ReplacementSharing is a one-course variant of scenario S2: a single course
// satisfying two replacement-allowed templates is bound to both
// simultaneously (invariant: R templates may share a course).
func TestFulfillment_ReplacementSharing(t *testing.T) {
	shared := mustCourse(t, "MATH", "250", "Linear Algebra", "bin.A.1", "bin.B.1")

	tmplA := mustTemplate(t, "A", "bin.A.1", catalog.R, 1)
	tmplB := mustTemplate(t, "B", "bin.B.1", catalog.R, 1)
	degree := mustDegree(t, "sharing-degree", tmplA, tmplB)

	taken := catalog.NewCourseSet(shared)
	result := engine.New().Fulfillment(degree, taken)

	require.Len(t, result, 2)
	assert.True(t, result["A"].Fulfilled())
	assert.True(t, result["B"].Fulfilled())
	assert.True(t, result["A"].Fulfillment.Has(shared))
	assert.True(t, result["B"].Fulfillment.Has(shared))
}

// TestFulfillment_TradeRequired is a variant of scenario S3 with two extra courses: a non-replacement
// template over-fills and locks up every course two replacement
// templates want; one replacement template legitimately earns excess
// from its own unrelated courses, and trade is required to extract one
// of the locked courses for the other replacement template.
func TestFulfillment_TradeRequired(t *testing.T) {
	c1 := mustCourse(t, "CS", "101", "Intro", "bin.1.1", "bin.2.1", "bin.3.1")
	c2 := mustCourse(t, "CS", "102", "Intro Two", "bin.1.1", "bin.2.1")
	c4 := mustCourse(t, "CS", "400", "Elective Four", "bin.3.1")
	c5 := mustCourse(t, "CS", "500", "Elective Five", "bin.3.1")

	t1 := mustTemplate(t, "t1", "bin.1.1", catalog.NR, 1)
	t2 := mustTemplate(t, "t2", "bin.2.1", catalog.R, 1)
	t3 := mustTemplate(t, "t3", "bin.3.1", catalog.R, 1)
	degree := mustDegree(t, "trade-degree", t1, t2, t3)

	taken := catalog.NewCourseSet(c1, c2, c4, c5)
	result := engine.New().Fulfillment(degree, taken)

	require.Len(t, result, 3)
	for _, name := range []string{"t1", "t2", "t3"} {
		st := result[name]
		require.NotNil(t, st, name)
		assert.Truef(t, st.Fulfilled(), "%s should be fulfilled, has %d of %d", name, st.Actual(), st.Required)
	}

	// t1 ends up with exactly one of {c1, c2}; t2 ends up with the other —
	// trade moved whichever one t1 didn't keep.
	t1Course := result["t1"].Fulfillment.Has(c1) != result["t1"].Fulfillment.Has(c2)
	assert.True(t, t1Course, "t1 should hold exactly one of c1/c2")
	assert.NotEqual(t, result["t1"].Fulfillment.Has(c1), result["t2"].Fulfillment.Has(c1))
	assert.NotEqual(t, result["t1"].Fulfillment.Has(c2), result["t2"].Fulfillment.Has(c2))

	assert.True(t, result["t3"].Fulfillment.Has(c4))
	assert.True(t, result["t3"].Fulfillment.Has(c5))
}

// TestFulfillment_Unfulfillable is a variant of scenario S4: two non-replacement
// templates compete for the single course that satisfies both; there is
// no rotation that can fulfill both at once, so the engine must report
// exactly one of them unfulfilled rather than fabricate a course.
func TestFulfillment_Unfulfillable(t *testing.T) {
	only := mustCourse(t, "PHYS", "301", "Mechanics", "bin.X.1")

	tmplA := mustTemplate(t, "A", "bin.X.1", catalog.NR, 1)
	tmplB := mustTemplate(t, "B", "bin.X.1", catalog.NR, 1)
	degree := mustDegree(t, "unfulfillable-degree", tmplA, tmplB)

	taken := catalog.NewCourseSet(only)
	result := engine.New().Fulfillment(degree, taken)

	require.Len(t, result, 2)
	fulfilledCount := 0
	for _, name := range []string{"A", "B"} {
		if result[name].Fulfilled() {
			fulfilledCount++
		}
	}
	assert.Equal(t, 1, fulfilledCount, "exactly one of A/B can hold the sole course")

	total := 0
	for _, st := range result {
		total += st.Unfulfilled()
	}
	assert.Equal(t, 1, total)
}

// TestFulfillment_EmptyDegree covers the degenerate case of a degree with
// no templates at all: the engine must return an empty assignment
// without panicking on the empty cartesian product.
func TestFulfillment_EmptyDegree(t *testing.T) {
	degree := catalog.NewDegree("empty-degree")
	result := engine.New().Fulfillment(degree, catalog.CourseSet{})
	assert.Empty(t, result)
}
