package history

import "layerpaint/internal/core"

// DefaultReplayCapacity bounds the replay queue.
const DefaultReplayCapacity = 1000

// Mode is the replay tracker state.
type Mode uint8

const (
	// Recording accepts actions from a live session.
	Recording Mode = iota
	// Replaying plays recorded actions back.
	Replaying
)

func (m Mode) String() string {
	if m == Replaying {
		return "replaying"
	}
	return "recording"
}

type entry struct {
	action Action
	isUndo bool
}

// ReplayTracker records a session's actions in order and plays them back.
type ReplayTracker struct {
	actions *queue[entry]
	mode    Mode
	started bool
}

// NewReplayTracker returns a recording tracker holding up to capacity
// entries; non-positive values select DefaultReplayCapacity.
func NewReplayTracker(capacity int) *ReplayTracker {
	if capacity <= 0 {
		capacity = DefaultReplayCapacity
	}
	return &ReplayTracker{actions: newQueue[entry](capacity)}
}

// AddAction appends an action. isUndo marks actions that were undone, so
// playback reverts them. It returns false when the queue is full.
func (r *ReplayTracker) AddAction(a Action, isUndo bool) bool {
	if a == nil {
		return false
	}
	return r.actions.enqueue(entry{action: a, isUndo: isUndo})
}

// StartReplay switches to playback. Calls after the first one drop whatever
// is still queued.
func (r *ReplayTracker) StartReplay() {
	r.mode = Replaying
	if r.started {
		r.actions.reset()
	}
	r.started = true
}

// PlayNextAction plays one recorded action on g. It returns true when there
// was nothing left to play.
func (r *ReplayTracker) PlayNextAction(g *core.Grid) bool {
	e, ok := r.actions.dequeue()
	if !ok {
		return true
	}
	if e.isUndo {
		e.action.Revert(g)
	} else {
		e.action.Apply(g)
	}
	return false
}

// Mode reports whether the tracker is recording or replaying.
func (r *ReplayTracker) Mode() Mode { return r.mode }

// Len reports how many actions are queued.
func (r *ReplayTracker) Len() int { return r.actions.size() }
