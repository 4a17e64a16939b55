// Package jsonimport loads the Course and Degree JSON formats of spec
// §6.2/§6.3 into catalog.Course and catalog.Degree values. It is a
// peripheral collaborator (spec §1 "out of scope for the core"): it
// never runs the fulfillment algorithm itself, only populates the
// catalog the engine later consumes.
//
// Malformed records are never fatal to the whole import: spec §7
// requires a course record missing its identity triple to be logged and
// skipped, and this package extends the same posture to degree/template
// records with an invalid requirement count or a duplicate name.
package jsonimport
