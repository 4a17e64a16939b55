package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gradctl/degreepath/catalog"
	"github.com/gradctl/degreepath/engine"
	"github.com/gradctl/degreepath/jsonimport"
	"github.com/gradctl/degreepath/recommend"
	"github.com/gradctl/degreepath/semantic"
	"github.com/gradctl/degreepath/session"
)

// App holds gradctl's shell state for one local user. The CLI owns a
// single session.Queue directly and does not use a session.Manager;
// spec §5's per-user independence does not arise with one user.
type App struct {
	cfg         *Config
	logger      *slog.Logger
	catalog     *catalog.Catalog
	schedule    *catalog.Schedule
	engine      *engine.Engine
	recommender *recommend.Recommender
	scorer      recommend.Scorer
	queue       *session.Queue
}

// NewApp constructs an App. The catalog starts empty; run the "import"
// command to populate it before "fulfillment" or "find" will have
// anything to work against. --catalog/--degrees only set the paths that
// "import" reads when it is given no arguments; they load nothing by
// themselves.
func NewApp(cfg *Config, logger *slog.Logger) *App {
	a := &App{
		cfg:         cfg,
		logger:      logger,
		catalog:     catalog.NewCatalog(),
		schedule:    catalog.NewSchedule(cfg.ActiveDegree),
		engine:      engine.New(engine.WithLogger(logger)),
		recommender: recommend.New(recommend.WithLogger(logger)),
		queue:       session.NewQueue(),
	}
	if cfg.SemanticScorer && cfg.OpenAIKey != "" {
		a.scorer = semantic.NewClient(cfg.OpenAIKey, semantic.WithLogger(logger))
	}
	return a
}

// minArgs gives the minimum comma-separated argument count for each
// command name, per spec §6.4's table. "recommend" is gradctl's own
// addition, surfacing the Core API's recommend method (spec §6.1)
// alongside fulfillment with the same thin-wrapper treatment; it isn't
// part of spec §6.4's named command set.
var minArgs = map[string]int{
	"add":         2,
	"remove":      2,
	"schedule":    1,
	"print":       0,
	"fulfillment": 0,
	"degree":      1,
	"find":        1,
	"details":     1,
	"import":      0,
	"recommend":   0,
}

// Dispatch evaluates one line of shell input, honoring the per-user
// queue lock of spec §5: a line arriving while AwaitingDisambiguation is
// treated as the 1-based index answer, not a new command.
func (a *App) Dispatch(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}

	if a.queue.State() == session.AwaitingDisambiguation {
		return a.resumeDisambiguation(line)
	}

	name, args := splitCommand(line)
	min, known := minArgs[name]
	if !known {
		return fmt.Sprintf("unknown command %q", name)
	}
	if len(args) < min {
		return fmt.Sprintf("%s requires at least %d argument(s)", name, min)
	}

	if err := a.queue.Begin(); err != nil {
		return err.Error() // ErrQueueBusy
	}
	defer a.finishIfStillBusy()

	switch name {
	case "add":
		return a.cmdAdd(args)
	case "remove":
		return a.cmdRemove(args)
	case "schedule":
		return a.cmdSchedule(args)
	case "print":
		return a.cmdPrint()
	case "fulfillment":
		return a.cmdFulfillment()
	case "recommend":
		return a.cmdRecommend(args)
	case "degree":
		return a.cmdDegree(args)
	case "find":
		return a.cmdFind(args)
	case "details":
		return a.cmdDetails(args)
	case "import":
		return a.cmdImport(args)
	default:
		return fmt.Sprintf("unknown command %q", name)
	}
}

// finishIfStillBusy returns the queue to Idle unless the command being
// evaluated paused it for disambiguation — in which case leaving the
// lock held is the whole point (spec §5).
func (a *App) finishIfStillBusy() {
	if a.queue.State() == session.Busy {
		_ = a.queue.Finish()
	}
}

func splitCommand(line string) (string, []string) {
	fields := strings.SplitN(line, " ", 2)
	name := fields[0]
	if len(fields) == 1 {
		return name, nil
	}
	return name, splitArgs(fields[1])
}

func splitArgs(rest string) []string {
	if strings.TrimSpace(rest) == "" {
		return nil
	}
	parts := strings.Split(rest, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

func (a *App) cmdImport(args []string) string {
	catalogPath, degreesPath := a.cfg.CatalogPath, a.cfg.DegreesPath
	if len(args) >= 1 && args[0] != "" {
		catalogPath = args[0]
	}
	if len(args) >= 2 && args[1] != "" {
		degreesPath = args[1]
	}

	var loaded int
	if catalogPath != "" {
		f, err := os.Open(catalogPath)
		if err != nil {
			return fmt.Sprintf("import: open catalog: %v", err)
		}
		defer f.Close()

		courses, err := jsonimport.Courses(f, a.logger)
		if err != nil {
			return fmt.Sprintf("import: parse catalog: %v", err)
		}
		for _, c := range courses {
			if err := a.catalog.AddCourse(c); err != nil {
				a.logger.Warn("import: skipping course", "course", c.Key(), "error", err)
				continue
			}
			loaded++
		}
	}

	var degreesLoaded int
	if degreesPath != "" {
		f, err := os.Open(degreesPath)
		if err != nil {
			return fmt.Sprintf("import: open degrees: %v", err)
		}
		defer f.Close()

		degrees, err := jsonimport.Degrees(f, a.logger)
		if err != nil {
			return fmt.Sprintf("import: parse degrees: %v", err)
		}
		for _, d := range degrees {
			if err := a.catalog.AddDegree(d); err != nil {
				a.logger.Warn("import: skipping degree", "degree", d.Name, "error", err)
				continue
			}
			degreesLoaded++
		}
	}

	return fmt.Sprintf("imported %d course(s), %d degree(s)", loaded, degreesLoaded)
}

func (a *App) cmdDegree(args []string) string {
	name := args[0]
	if _, ok := a.catalog.Degree(name); !ok {
		return fmt.Sprintf("degree: unknown degree %q", name)
	}
	a.schedule.ActiveDegree = name
	return fmt.Sprintf("active degree set to %q", name)
}

func (a *App) cmdSchedule(args []string) string {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return "schedule: argument must be a non-negative semester count"
	}
	for len(a.schedule.Semesters) < n {
		a.schedule.AddSemester()
	}
	return fmt.Sprintf("schedule now has %d semester(s)", len(a.schedule.Semesters))
}

func (a *App) cmdPrint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "active degree: %s\n", a.schedule.ActiveDegree)
	for i, sem := range a.schedule.Semesters {
		fmt.Fprintf(&b, "semester %d:\n", i)
		for _, c := range sem.Slice() {
			fmt.Fprintf(&b, "  %s\n", c.Key())
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *App) cmdFulfillment() string {
	degree, ok := a.catalog.Degree(a.schedule.ActiveDegree)
	if !ok {
		return fmt.Sprintf("fulfillment: unknown active degree %q (use 'degree <name>')", a.schedule.ActiveDegree)
	}

	assignment := a.engine.Fulfillment(degree, a.schedule.Flatten())

	names := make([]string, 0, len(assignment))
	for n := range assignment {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, n := range names {
		st := assignment[n]
		fmt.Fprintf(&b, "%-24s %d/%d fulfilled=%t\n", n, st.Actual(), st.Required, st.Fulfilled())
	}
	return strings.TrimRight(b.String(), "\n")
}

// cmdRecommend runs the Core API's recommend method (spec §6.1) against
// the active degree's best fulfillment assignment. Remaining comma
// arguments, if any, are free-form interest tags passed through to the
// optional semantic scorer (spec §6.5); without --semantic configured,
// a.scorer is nil and Recommender.Recommend simply skips that step.
func (a *App) cmdRecommend(tags []string) string {
	degree, ok := a.catalog.Degree(a.schedule.ActiveDegree)
	if !ok {
		return fmt.Sprintf("recommend: unknown active degree %q (use 'degree <name>')", a.schedule.ActiveDegree)
	}

	taken := a.schedule.Flatten()
	assignment := a.engine.Fulfillment(degree, taken)
	result := a.recommender.Recommend(degree, assignment, a.catalog.CourseSet(), a.scorer, tags)

	names := make([]string, 0, len(result))
	for n := range result {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, n := range names {
		fmt.Fprintf(&b, "%s:\n", n)
		for _, c := range result[n] {
			fmt.Fprintf(&b, "  %s\n", c.Key())
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// resolveCourse substring-matches query (case-insensitively) against
// the catalog's course names. It returns the unique match directly, or
// pauses the queue for disambiguation and returns a prompt listing
// every match (spec §7 "Disambiguation required").
func (a *App) resolveCourse(command string, args []string, query string) (*catalog.Course, string) {
	query = strings.ToLower(query)
	var matches []*catalog.Course
	for _, c := range a.catalog.Courses() {
		if strings.Contains(strings.ToLower(c.Name), query) || strings.Contains(strings.ToLower(c.Key()), query) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Sprintf("no course matches %q", query)
	case 1:
		return matches[0], ""
	default:
		candidates := make([]string, len(matches))
		for i, m := range matches {
			candidates[i] = m.Key()
		}
		_ = a.queue.Pause(session.PausedCommand{Command: command, Args: args, Candidates: candidates})

		var b strings.Builder
		fmt.Fprintf(&b, "ambiguous course %q, reply with a 1-based index:\n", query)
		for i, k := range candidates {
			fmt.Fprintf(&b, "  %d: %s\n", i+1, k)
		}
		return nil, strings.TrimRight(b.String(), "\n")
	}
}

// resumeDisambiguation parses line as a 1-based index into the paused
// command's candidate list and re-runs that command against the chosen
// course (spec §7's caller "re-invokes with a concrete unique name").
func (a *App) resumeDisambiguation(line string) string {
	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return "expected a 1-based index"
	}

	cmd, err := a.queue.Resume()
	if err != nil {
		return err.Error()
	}
	defer a.finishIfStillBusy()

	if idx < 1 || idx > len(cmd.Candidates) {
		return fmt.Sprintf("index out of range: must be between 1 and %d", len(cmd.Candidates))
	}
	key := cmd.Candidates[idx-1]

	course, ok := a.catalog.Course(key)
	if !ok {
		return fmt.Sprintf("internal error: %q no longer in catalog", key)
	}

	switch cmd.Command {
	case "find", "details":
		return a.describeCourse(course)
	case "add":
		return a.addResolvedCourse(cmd.Args, course)
	case "remove":
		return a.removeResolvedCourse(cmd.Args, course)
	default:
		return fmt.Sprintf("internal error: unexpected paused command %q", cmd.Command)
	}
}

func (a *App) cmdFind(args []string) string {
	course, msg := a.resolveCourse("find", args, args[0])
	if course == nil {
		return msg
	}
	return course.Key()
}

func (a *App) cmdDetails(args []string) string {
	course, msg := a.resolveCourse("details", args, args[0])
	if course == nil {
		return msg
	}
	return a.describeCourse(course)
}

func (a *App) describeCourse(c *catalog.Course) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", c.Key())
	for _, attr := range c.Attrs.All() {
		fmt.Fprintf(&b, "  %s\n", attr)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *App) cmdAdd(args []string) string {
	course, msg := a.resolveCourse("add", args, args[1])
	if course == nil {
		return msg
	}
	return a.addResolvedCourse(args, course)
}

func (a *App) addResolvedCourse(args []string, course *catalog.Course) string {
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 0 {
		return "add: first argument must be a non-negative semester index"
	}
	for len(a.schedule.Semesters) <= idx {
		a.schedule.AddSemester()
	}
	a.schedule.Semesters[idx].Add(course)
	return fmt.Sprintf("added %s to semester %d", course.Key(), idx)
}

func (a *App) cmdRemove(args []string) string {
	course, msg := a.resolveCourse("remove", args, args[1])
	if course == nil {
		return msg
	}
	return a.removeResolvedCourse(args, course)
}

func (a *App) removeResolvedCourse(args []string, course *catalog.Course) string {
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return "remove: first argument must be a semester index"
	}
	if err := a.schedule.RemoveCourse(idx, course); err != nil {
		return fmt.Sprintf("remove: %v", err)
	}
	return fmt.Sprintf("removed %s from semester %d", course.Key(), idx)
}
