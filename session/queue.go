package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// State is one of a Queue's three positions in spec §5's state machine.
type State int

const (
	// Idle accepts a new command.
	Idle State = iota
	// Busy means a command is currently being evaluated; a second
	// concurrent command for the same user is rejected.
	Busy
	// AwaitingDisambiguation means the in-flight command paused itself
	// pending a 1-based index choice from the next input event.
	AwaitingDisambiguation
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Busy:
		return "busy"
	case AwaitingDisambiguation:
		return "awaiting_disambiguation"
	default:
		return "unknown"
	}
}

// ErrQueueBusy is returned by Begin when the user's queue is not Idle
// (spec §5 "rejected with a queue busy response").
var ErrQueueBusy = errors.New("session: queue busy")

// ErrNotAwaitingDisambiguation is returned by Resume when the queue has
// no paused command to resume.
var ErrNotAwaitingDisambiguation = errors.New("session: no paused command to resume")

// ErrNotBusy is returned by Pause/Finish when called outside the Busy state.
var ErrNotBusy = errors.New("session: queue is not busy")

// PausedCommand is the command a Queue stores while AwaitingDisambiguation.
// CorrelationID stamps the pause for logging/tracing across the
// disambiguation round trip.
type PausedCommand struct {
	CorrelationID uuid.UUID
	Command       string
	Args          []string
	Candidates    []string
}

// Queue serializes command evaluation for a single user (spec §5). The
// zero value is not usable; construct with NewQueue.
type Queue struct {
	mu     sync.Mutex
	state  State
	paused *PausedCommand
}

// NewQueue returns an Idle Queue.
func NewQueue() *Queue {
	return &Queue{state: Idle}
}

// State reports the queue's current state.
func (q *Queue) State() State {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Begin locks the queue for command evaluation. Returns ErrQueueBusy if
// the queue is not Idle — including when it is AwaitingDisambiguation,
// since only a disambiguation Resume may proceed from that state.
func (q *Queue) Begin() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state != Idle {
		return ErrQueueBusy
	}
	q.state = Busy
	return nil
}

// Pause stores cmd as the paused command and transitions Busy ->
// AwaitingDisambiguation, releasing the lock to wait for the next input
// event (spec §5). cmd.CorrelationID is assigned here if the zero value.
func (q *Queue) Pause(cmd PausedCommand) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state != Busy {
		return ErrNotBusy
	}
	if cmd.CorrelationID == uuid.Nil {
		cmd.CorrelationID = uuid.New()
	}
	q.paused = &cmd
	q.state = AwaitingDisambiguation
	return nil
}

// Resume consumes the paused command and transitions
// AwaitingDisambiguation -> Busy, so the caller can finish evaluating it
// with the supplied choice before calling Finish. Returns
// ErrNotAwaitingDisambiguation if there is nothing paused.
func (q *Queue) Resume() (PausedCommand, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state != AwaitingDisambiguation || q.paused == nil {
		return PausedCommand{}, ErrNotAwaitingDisambiguation
	}
	cmd := *q.paused
	q.paused = nil
	q.state = Busy
	return cmd, nil
}

// Finish releases the lock, returning the queue to Idle. Returns
// ErrNotBusy if called outside the Busy state (Finish should follow
// Begin or Resume, never Pause directly).
func (q *Queue) Finish() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state != Busy {
		return ErrNotBusy
	}
	q.state = Idle
	return nil
}
