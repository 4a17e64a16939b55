package catalog_test

import (
	"testing"

	"github.com/gradctl/degreepath/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourse_DerivesIdentityAttrs(t *testing.T) {
	c, err := catalog.NewCourse("CS", "4100", "Computer Networks")
	require.NoError(t, err)

	assert.True(t, c.Attrs.Has("subject.CS"))
	assert.True(t, c.Attrs.Has("id.4100"))
	assert.True(t, c.Attrs.Has("level.4"))
	assert.True(t, c.Attrs.Has("name.Computer Networks"))
}

func TestNewCourse_MissingIdentity(t *testing.T) {
	_, err := catalog.NewCourse("", "4100", "X")
	assert.ErrorIs(t, err, catalog.ErrMissingIdentity)
}

func TestCourse_Key(t *testing.T) {
	c, err := catalog.NewCourse("CS", "4100", "Computer Networks")
	require.NoError(t, err)
	assert.Equal(t, "cs 4100 computer networks", c.Key())
}

func TestDegree_AddTemplate_Importance(t *testing.T) {
	d := catalog.NewDegree("BS Computer Science")

	t1 := &catalog.Template{Name: "t1", CoursesRequired: 1}
	t2 := &catalog.Template{Name: "t2", CoursesRequired: 1}
	require.NoError(t, d.AddTemplate(t1))
	require.NoError(t, d.AddTemplate(t2))

	assert.Equal(t, 1000, t1.Importance)
	assert.Equal(t, 999, t2.Importance)
}

func TestDegree_AddTemplate_InvalidRequired(t *testing.T) {
	d := catalog.NewDegree("BS")
	err := d.AddTemplate(&catalog.Template{Name: "t", CoursesRequired: 0})
	assert.ErrorIs(t, err, catalog.ErrInvalidRequiredCount)
}

func TestDegree_AddTemplate_DuplicateName(t *testing.T) {
	d := catalog.NewDegree("BS")
	require.NoError(t, d.AddTemplate(&catalog.Template{Name: "t", CoursesRequired: 1}))
	err := d.AddTemplate(&catalog.Template{Name: "t", CoursesRequired: 1})
	assert.ErrorIs(t, err, catalog.ErrDuplicateTemplate)
}

func TestCatalog_AddCourse_Duplicate(t *testing.T) {
	cat := catalog.NewCatalog()
	c, err := catalog.NewCourse("CS", "4100", "Networks")
	require.NoError(t, err)
	require.NoError(t, cat.AddCourse(c))

	dup, err := catalog.NewCourse("cs", "4100", "networks")
	require.NoError(t, err)
	assert.ErrorIs(t, cat.AddCourse(dup), catalog.ErrDuplicateCourse)
}

func TestCourseSet_IntersectMinus(t *testing.T) {
	a, _ := catalog.NewCourse("CS", "1", "A")
	b, _ := catalog.NewCourse("CS", "2", "B")
	c, _ := catalog.NewCourse("CS", "3", "C")

	s1 := catalog.NewCourseSet(a, b)
	s2 := catalog.NewCourseSet(b, c)

	assert.Equal(t, catalog.NewCourseSet(b), s1.Intersect(s2))
	assert.Equal(t, catalog.NewCourseSet(a), s1.Minus(s2))
}

func TestSchedule_Flatten(t *testing.T) {
	a, _ := catalog.NewCourse("CS", "1", "A")
	b, _ := catalog.NewCourse("CS", "2", "B")

	s := catalog.NewSchedule("BS Computer Science")
	s.AddSemester(a)
	s.AddSemester(b)

	flat := s.Flatten()
	assert.Len(t, flat, 2)
	assert.True(t, flat.Has(a))
	assert.True(t, flat.Has(b))
}

func TestTemplate_Clone_Independent(t *testing.T) {
	t1 := &catalog.Template{Name: "t", Specifications: []string{"bin.1"}, CoursesRequired: 1}
	clone := t1.Clone()
	clone.Specifications[0] = "bin.2"

	assert.Equal(t, "bin.1", t1.Specifications[0])
	assert.Equal(t, "bin.2", clone.Specifications[0])
}
