package jsonimport

import "errors"

// ErrNotArray indicates the course JSON's top-level value was not a
// JSON array (spec §6.2 "a top-level list").
var ErrNotArray = errors.New("jsonimport: course JSON must be a top-level array")

// ErrNotObject indicates the degree JSON's top-level value, or a
// degree's value, was not a JSON object (spec §6.3).
var ErrNotObject = errors.New("jsonimport: degree JSON must be a top-level object")
