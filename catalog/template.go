package catalog

// Replacement distinguishes non-replacement (NR, a course is consumed by
// at most one template) from replacement-allowed (R, a course may
// satisfy several templates at once) templates.
type Replacement int

const (
	// NR marks a non-replacement template.
	NR Replacement = iota
	// R marks a replacement-allowed template.
	R
)

func (r Replacement) String() string {
	if r == R {
		return "R"
	}
	return "NR"
}

// Template is one requirement slot of a Degree.
//
// Specifications is an ordered list of boolean specification strings
// (spec §4.2 grammar), implicitly conjoined: a course satisfies the
// template iff it satisfies every specification in the list.
// Importance is assigned by Degree.AddTemplate and is strictly
// decreasing in insertion order; callers should not set it directly.
type Template struct {
	Name             string
	Specifications   []string
	Replacement      Replacement
	CoursesRequired  int
	Importance       int
}

// Clone returns a deep copy of t, sharing nothing mutable: the
// specification list is copied element-by-element so that wildcard
// resolution (which rewrites one specification's text per concrete
// variant) never mutates the original template.
func (t *Template) Clone() *Template {
	specs := make([]string, len(t.Specifications))
	copy(specs, t.Specifications)

	return &Template{
		Name:            t.Name,
		Specifications:  specs,
		Replacement:     t.Replacement,
		CoursesRequired: t.CoursesRequired,
		Importance:      t.Importance,
	}
}

// IsReplacement reports whether t allows course sharing (R).
func (t *Template) IsReplacement() bool {
	return t.Replacement == R
}
