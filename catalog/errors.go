package catalog

import "errors"

// Sentinel errors for catalog package operations.
var (
	// ErrMissingIdentity indicates a course was constructed without a
	// subject, id or name — spec §7 "missing identity triple".
	ErrMissingIdentity = errors.New("catalog: course missing subject, id or name")

	// ErrDuplicateCourse indicates a course with the same Key already exists.
	ErrDuplicateCourse = errors.New("catalog: duplicate course")

	// ErrDuplicateDegree indicates a degree with the same name already exists.
	ErrDuplicateDegree = errors.New("catalog: duplicate degree")

	// ErrDuplicateTemplate indicates a template name already exists in a degree.
	ErrDuplicateTemplate = errors.New("catalog: duplicate template name")

	// ErrInvalidRequiredCount indicates courses_required < 1.
	ErrInvalidRequiredCount = errors.New("catalog: courses_required must be >= 1")

	// ErrUnknownSemester indicates a semester index out of range.
	ErrUnknownSemester = errors.New("catalog: unknown semester index")
)
