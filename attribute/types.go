package attribute

import "strings"

// Attribute is a dotted, case-insensitive path, e.g. "concentration.ai".
type Attribute string

// Wildcard is the segment that marks a binding point in a template spec atom.
const Wildcard = "*"

// Presence is the suffix marker for an existence-only atom (no binding).
const Presence = "#"

// absentSegments lists segment values that impose no constraint when they
// appear in a template, per spec §4.1 edge cases.
var absentSegments = map[string]struct{}{
	"na":  {},
	"any": {},
	"-1":  {},
}

// Segments splits a into its casefolded, '.'-separated parts.
// An empty Attribute yields an empty slice.
func (a Attribute) Segments() []string {
	s := strings.ToLower(strings.TrimSpace(string(a)))
	if s == "" {
		return nil
	}

	return strings.Split(s, ".")
}

// String returns the casefolded canonical form of a.
func (a Attribute) String() string {
	return strings.Join(a.Segments(), ".")
}

// IsAbsentSegment reports whether seg is one of the "no constraint"
// markers (NA, ANY, -1), compared case-insensitively.
func IsAbsentSegment(seg string) bool {
	_, ok := absentSegments[strings.ToLower(seg)]
	return ok
}

// HasAbsentSegment reports whether any segment of a is an absent marker.
func (a Attribute) HasAbsentSegment() bool {
	for _, seg := range a.Segments() {
		if IsAbsentSegment(seg) {
			return true
		}
	}
	return false
}

// hasPrefixSegments reports whether segs begins with the segments of head.
func hasPrefixSegments(segs, head []string) bool {
	if len(head) > len(segs) {
		return false
	}
	for i, h := range head {
		if segs[i] != h {
			return false
		}
	}
	return true
}

// join rebuilds a dotted Attribute from segments.
func join(segs []string) Attribute {
	return Attribute(strings.Join(segs, "."))
}
