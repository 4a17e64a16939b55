package main

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gradctl/degreepath/catalog"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *App {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := NewApp(&Config{}, logger)

	c1, err := catalog.NewCourse("CS", "4100", "Intro to AI")
	require.NoError(t, err)
	c1.AddAttribute("bin", "1")
	c2, err := catalog.NewCourse("CS", "4810", "Theory of Computation")
	require.NoError(t, err)
	c2.AddAttribute("bin", "2")

	require.NoError(t, app.catalog.AddCourse(c1))
	require.NoError(t, app.catalog.AddCourse(c2))

	deg := catalog.NewDegree("BSCS")
	require.NoError(t, deg.AddTemplate(&catalog.Template{Name: "bin1", Specifications: []string{"bin.1"}, Replacement: catalog.NR, CoursesRequired: 1}))
	require.NoError(t, app.catalog.AddDegree(deg))

	return app
}

func TestDispatch_ScheduleAddPrintFulfillment(t *testing.T) {
	app := testApp(t)

	require.Equal(t, `active degree set to "BSCS"`, app.Dispatch("degree BSCS"))
	require.Equal(t, "schedule now has 1 semester(s)", app.Dispatch("schedule 1"))
	require.Equal(t, "added cs 4100 intro to ai to semester 0", app.Dispatch("add 0,Intro to AI"))

	printed := app.Dispatch("print")
	require.Contains(t, printed, "cs 4100 intro to ai")

	fulfillment := app.Dispatch("fulfillment")
	require.Contains(t, fulfillment, "bin1")
	require.Contains(t, fulfillment, "fulfilled=true")
}

func TestDispatch_UnknownCommand(t *testing.T) {
	app := testApp(t)
	require.Equal(t, `unknown command "bogus"`, app.Dispatch("bogus 1,2"))
}

func TestDispatch_TooFewArguments(t *testing.T) {
	app := testApp(t)
	require.Equal(t, "add requires at least 2 argument(s)", app.Dispatch("add 0"))
}

func TestDispatch_DisambiguationRoundTrip(t *testing.T) {
	app := testApp(t)

	c3, err := catalog.NewCourse("CS", "4200", "Theory of Algorithms")
	require.NoError(t, err)
	require.NoError(t, app.catalog.AddCourse(c3))

	reply := app.Dispatch("find Theory")
	require.True(t, strings.Contains(reply, "ambiguous"), "expected an ambiguity prompt, got %q", reply)
	require.Contains(t, reply, "1:")
	require.Contains(t, reply, "2:")

	resolved := app.Dispatch("1")
	require.NotContains(t, resolved, "ambiguous")
}

func TestDispatch_RejectsConcurrentWhileDisambiguating(t *testing.T) {
	app := testApp(t)

	c3, err := catalog.NewCourse("CS", "4200", "Theory of Algorithms")
	require.NoError(t, err)
	require.NoError(t, app.catalog.AddCourse(c3))

	_ = app.Dispatch("find Theory")
	require.Contains(t, app.queue.State().String(), "awaiting_disambiguation")

	// A new command line is not run while the queue awaits an index.
	require.Equal(t, "expected a 1-based index", app.Dispatch("print"))
	require.Contains(t, app.queue.State().String(), "awaiting_disambiguation")
}
