package assign_test

import (
	"testing"

	"github.com/gradctl/degreepath/assign"
	"github.com/gradctl/degreepath/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func course(t *testing.T, id string) *catalog.Course {
	t.Helper()
	c, err := catalog.NewCourse("CS", id, "course-"+id)
	require.NoError(t, err)
	return c
}

func TestGraph_BFS_ShortestPath(t *testing.T) {
	g := assign.NewGraph([]string{"a", "b", "c", "d"})
	c1 := course(t, "1")

	require.NoError(t, g.UpdateEdge("a", "b", catalog.NewCourseSet(c1)))
	require.NoError(t, g.UpdateEdge("b", "c", catalog.NewCourseSet(c1)))
	require.NoError(t, g.UpdateEdge("a", "d", catalog.NewCourseSet(c1)))

	res := g.BFS([]string{"a"})
	assert.Equal(t, []string{"a", "b", "d", "c"}, res.Order)
	assert.Equal(t, []string{"a", "b", "c"}, res.PathTo("c"))
}

func TestGraph_BFS_ContainsVsChildPath(t *testing.T) {
	g := assign.NewGraph([]string{"root", "child"})
	c1 := course(t, "1")
	require.NoError(t, g.UpdateEdge("root", "child", catalog.NewCourseSet(c1)))

	res := g.BFS([]string{"root"})

	assert.True(t, res.Contains("root"))
	assert.False(t, res.HasChildPath("root"), "root has no non-trivial path to itself")
	assert.True(t, res.Contains("child"))
	assert.True(t, res.HasChildPath("child"))
}

func TestGraph_MultiRoot_PathFromReachingRoot(t *testing.T) {
	g := assign.NewGraph([]string{"r1", "r2", "target"})
	c1 := course(t, "1")
	require.NoError(t, g.UpdateEdge("r2", "target", catalog.NewCourseSet(c1)))

	res := g.BFS([]string{"r1", "r2"})
	assert.Equal(t, []string{"r2", "target"}, res.PathTo("target"))
}

func TestGraph_MoveCourse_KeepsEdgesConsistent(t *testing.T) {
	g := assign.NewGraph([]string{"u", "v", "w"})
	c1 := course(t, "1")

	held := map[string]catalog.CourseSet{"u": catalog.NewCourseSet(c1), "v": {}, "w": {}}
	accepted := map[string]catalog.CourseSet{"u": catalog.NewCourseSet(c1), "v": catalog.NewCourseSet(c1), "w": catalog.NewCourseSet(c1)}

	g.RebuildEdges([]string{"u", "v", "w"}, held, accepted)
	assert.True(t, len(g.EdgeData("u", "v")) > 0)

	g.MoveCourse("u", "v", c1, held, accepted)

	assert.False(t, held["u"].Has(c1))
	assert.True(t, held["v"].Has(c1))
	assert.Empty(t, g.EdgeData("u", "v"))
	assert.True(t, len(g.EdgeData("v", "w")) > 0)
}

func TestGraph_AddNode_Dummy(t *testing.T) {
	g := assign.NewGraph([]string{"t1"})
	g.AddNode("__donor")
	g.AddNode("__receiver")

	assert.True(t, g.Has("__donor"))
	assert.True(t, g.Has("__receiver"))
}
