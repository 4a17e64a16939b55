package jsonimport

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/gradctl/degreepath/catalog"
)

// identity keys are consumed as Course identity rather than attributes
// (spec §6.2 table).
const (
	keyName     = "name"
	keySubject  = "subject"
	keyCourseID = "course_id"
)

// Courses decodes the JSON array format of spec §6.2 and returns every
// record that carried a complete identity triple. A record missing
// name/subject/course_id is logged at Warn and skipped, per spec §7
// ("Parse errors in JSON input (missing identity triple on a course
// record) are logged and the record is skipped"). A nil logger falls
// back to slog.Default().
func Courses(r io.Reader, logger *slog.Logger) ([]*catalog.Course, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var records []map[string]any
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArray, err)
	}

	courses := make([]*catalog.Course, 0, len(records))
	for i, rec := range records {
		c, err := courseFromRecord(rec)
		if err != nil {
			logger.Warn("jsonimport: skipping malformed course record",
				"index", i, "error", err, "record", rec)
			continue
		}
		courses = append(courses, c)
	}

	return courses, nil
}

func courseFromRecord(rec map[string]any) (*catalog.Course, error) {
	name, _ := rec[keyName].(string)
	subject, _ := rec[keySubject].(string)
	id, _ := rec[keyCourseID].(string)

	c, err := catalog.NewCourse(subject, id, name)
	if err != nil {
		return nil, err
	}

	for k, v := range rec {
		if k == keyName || k == keySubject || k == keyCourseID {
			continue
		}
		applyAttributeField(c, k, v)
	}

	return c, nil
}

// applyAttributeField implements spec §6.2's remaining two table rows:
// a scalar value adds one "k.v" attribute, a list adds one "k.v_i" per
// element.
func applyAttributeField(c *catalog.Course, key string, value any) {
	switch v := value.(type) {
	case []any:
		for _, elem := range v {
			c.AddAttribute(key, scalarString(elem))
		}
	default:
		c.AddAttribute(key, scalarString(v))
	}
}

// scalarString renders a decoded JSON scalar (string, float64, bool,
// nil) as the attribute value text. encoding/json decodes every JSON
// number as float64 regardless of the source's int/float form, so a
// whole-number value is formatted through int64 with %d (e.g. "4100",
// never "4100.0" or "4.1e+03"); every other value is formatted with %v.
func scalarString(v any) string {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", v)
}
