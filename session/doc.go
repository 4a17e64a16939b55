// Package session implements the per-user command-queue state machine of
// spec §5: while a command is being evaluated the user's queue is
// locked; a command needing further input (disambiguation) pauses
// instead of finishing, storing itself until the next input event
// resumes it. Concurrent commands for the same user are rejected with
// ErrQueueBusy; concurrent commands for different users are independent,
// since each user gets its own Queue.
//
// This package has no engine/catalog dependency — it only sequences
// command evaluation for cmd/gradctl, matching spec §1's framing of the
// interactive shell as a peripheral collaborator, never part of the
// core.
package session
