// Package scenario provides one deterministic constructor per named
// specification scenario (S1-S6): fixed courses, degrees and expected
// outcomes, reproducible byte-for-byte on every call. It exists so the
// same canonical fixtures back both package tests and documentation
// examples instead of each reinventing their own ad hoc data.
package scenario
