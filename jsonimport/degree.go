package jsonimport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/gradctl/degreepath/catalog"
)

// templateJSON mirrors one template's value in spec §6.3's shape:
// { "requires": int, "replacement": bool, "attributes": [spec, ...] }.
type templateJSON struct {
	Requires    int      `json:"requires"`
	Replacement bool     `json:"replacement"`
	Attributes  []string `json:"attributes"`
}

// Degrees decodes the JSON object format of spec §6.3 — { degree_name:
// { template_name: templateJSON } } — into a map of catalog.Degree keyed
// by degree name. Template insertion order within each degree object is
// preserved and becomes the templates' importance order (spec §6.3
// "Template insertion order in JSON is the importance order"), since
// Go's encoding/json has no ordered-map type.
//
// A template whose requires/replacement/attributes would violate
// Degree.AddTemplate's invariants (courses_required < 1, duplicate
// name) is logged at Warn and skipped rather than aborting the whole
// degree, matching Courses' per-record skip posture (spec §7).
func Degrees(r io.Reader, logger *slog.Logger) (map[string]*catalog.Degree, error) {
	if logger == nil {
		logger = slog.Default()
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	degreeNames, degreeRaw, err := decodeOrderedObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotObject, err)
	}

	degrees := make(map[string]*catalog.Degree, len(degreeNames))
	for _, degreeName := range degreeNames {
		templateNames, templateRaw, err := decodeOrderedObject(degreeRaw[degreeName])
		if err != nil {
			logger.Warn("jsonimport: skipping malformed degree", "degree", degreeName, "error", err)
			continue
		}

		d := catalog.NewDegree(degreeName)
		for _, templateName := range templateNames {
			var tj templateJSON
			if err := json.Unmarshal(templateRaw[templateName], &tj); err != nil {
				logger.Warn("jsonimport: skipping malformed template",
					"degree", degreeName, "template", templateName, "error", err)
				continue
			}

			replacement := catalog.NR
			if tj.Replacement {
				replacement = catalog.R
			}
			t := &catalog.Template{
				Name:            templateName,
				Specifications:  tj.Attributes,
				Replacement:     replacement,
				CoursesRequired: tj.Requires,
			}
			if err := d.AddTemplate(t); err != nil {
				logger.Warn("jsonimport: skipping invalid template",
					"degree", degreeName, "template", templateName, "error", err)
			}
		}

		degrees[degreeName] = d
	}

	return degrees, nil
}

// decodeOrderedObject walks a single JSON object's top-level keys in
// their on-the-wire order using a token-level decoder (json.Unmarshal
// into a map discards order), returning the key order and each key's
// still-encoded value for a second-pass decode.
func decodeOrderedObject(data []byte) ([]string, map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, ErrNotObject
	}

	var order []string
	values := make(map[string]json.RawMessage)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, nil, ErrNotObject
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, err
		}

		order = append(order, key)
		values[key] = raw
	}

	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, nil, err
	}

	return order, values, nil
}
