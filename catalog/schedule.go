package catalog

// SemesterSet is the set of courses taken in one semester.
type SemesterSet = CourseSet

// Schedule is a user's ordered list of semester buckets plus the name of
// their active degree. The engine never looks at semester boundaries —
// it only consumes Flatten()'s union (spec §3 "User schedule").
type Schedule struct {
	Semesters    []SemesterSet
	ActiveDegree string
}

// NewSchedule returns an empty Schedule for the named active degree.
func NewSchedule(activeDegree string) *Schedule {
	return &Schedule{ActiveDegree: activeDegree}
}

// AddSemester appends a new semester bucket containing courses.
func (s *Schedule) AddSemester(courses ...*Course) int {
	s.Semesters = append(s.Semesters, NewCourseSet(courses...))
	return len(s.Semesters) - 1
}

// RemoveCourse removes c from semester index idx. Returns
// ErrUnknownSemester if idx is out of range.
func (s *Schedule) RemoveCourse(idx int, c *Course) error {
	if idx < 0 || idx >= len(s.Semesters) {
		return ErrUnknownSemester
	}
	s.Semesters[idx].Remove(c)
	return nil
}

// Flatten returns the union of every semester's courses.
func (s *Schedule) Flatten() CourseSet {
	out := make(CourseSet)
	for _, sem := range s.Semesters {
		for k, c := range sem {
			out[k] = c
		}
	}
	return out
}
