package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gradctl/degreepath/attribute"
)

// Course is identified by the triple (Subject, ID, Name); every other
// fact about it lives in its attribute.Set.
type Course struct {
	Subject string
	ID      string
	Name    string
	Attrs   *attribute.Set
}

// NewCourse constructs a Course and auto-derives the invariant
// attributes every course must carry: subject.<subject>, id.<id>,
// level.<first digit of id>, name.<name>. Returns ErrMissingIdentity if
// subject, id or name is empty.
func NewCourse(subject, id, name string) (*Course, error) {
	if subject == "" || id == "" || name == "" {
		return nil, ErrMissingIdentity
	}

	c := &Course{
		Subject: subject,
		ID:      id,
		Name:    name,
		Attrs:   attribute.NewSet(),
	}
	c.deriveIdentityAttrs()

	return c, nil
}

func (c *Course) deriveIdentityAttrs() {
	c.Attrs.Add(attribute.Attribute("subject." + c.Subject))
	c.Attrs.Add(attribute.Attribute("id." + c.ID))
	c.Attrs.Add(attribute.Attribute("level." + firstDigit(c.ID)))
	c.Attrs.Add(attribute.Attribute("name." + c.Name))
}

// firstDigit returns the first ASCII digit found in id, or "0" if none.
func firstDigit(id string) string {
	for _, r := range id {
		if r >= '0' && r <= '9' {
			return string(r)
		}
	}
	return "0"
}

// AddAttribute adds the attribute "key.value" to the course.
func (c *Course) AddAttribute(key, value string) {
	c.Attrs.Add(attribute.Attribute(key + "." + value))
}

// Key returns the catalog's canonical unique-name for this course:
// "<subject casefolded> <id> <name casefolded>".
func (c *Course) Key() string {
	return fmt.Sprintf("%s %s %s", strings.ToLower(c.Subject), c.ID, strings.ToLower(c.Name))
}

// Equal reports structural equality: identity plus attribute membership.
func (c *Course) Equal(other *Course) bool {
	if other == nil {
		return false
	}
	if c.Key() != other.Key() {
		return false
	}
	a, b := c.Attrs.All(), other.Attrs.All()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CourseSet is a set of courses keyed by Course.Key(), used throughout
// the engine for fulfillment sets, max-fulfillment sets and candidate pools.
type CourseSet map[string]*Course

// NewCourseSet builds a CourseSet from a variadic course list.
func NewCourseSet(courses ...*Course) CourseSet {
	s := make(CourseSet, len(courses))
	for _, c := range courses {
		s[c.Key()] = c
	}
	return s
}

// Clone returns a shallow copy (courses are shared pointers; the set
// membership is independent).
func (s CourseSet) Clone() CourseSet {
	out := make(CourseSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Has reports whether c is a member of s.
func (s CourseSet) Has(c *Course) bool {
	_, ok := s[c.Key()]
	return ok
}

// Add inserts c into s.
func (s CourseSet) Add(c *Course) {
	s[c.Key()] = c
}

// Remove deletes c from s.
func (s CourseSet) Remove(c *Course) {
	delete(s, c.Key())
}

// Intersect returns the set of courses present in both s and other.
func (s CourseSet) Intersect(other CourseSet) CourseSet {
	out := make(CourseSet)
	small, big := s, other
	if len(other) < len(s) {
		small, big = other, s
	}
	for k, c := range small {
		if _, ok := big[k]; ok {
			out[k] = c
		}
	}
	return out
}

// Minus returns the set of courses in s but not in other.
func (s CourseSet) Minus(other CourseSet) CourseSet {
	out := make(CourseSet)
	for k, c := range s {
		if _, ok := other[k]; !ok {
			out[k] = c
		}
	}
	return out
}

// Slice returns the members of s in Key-sorted order, for determinism.
func (s CourseSet) Slice() []*Course {
	out := make([]*Course, 0, len(s))
	for _, c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}
