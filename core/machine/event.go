package machine

import (
	"github.com/proteanblank/xstate/internal/reflector"
)

// InitEventType is the synthetic event delivered to the initial state's
// entry actions when a ref starts.
const InitEventType = "machine.init"

// Event is what a machine processes: a type string used for transition
// lookup plus an optional payload readable by actions and guards.
type Event struct {
	Type    string
	Payload map[string]any
}

// EventOf coerces an arbitrary value into an Event:
//
//   - an Event passes through unchanged
//   - a string becomes Event{Type: s}
//   - anything else derives its type from the value's Go type name
func EventOf(v any) Event {
	switch e := v.(type) {
	case Event:
		return e
	case string:
		return Event{Type: e}
	default:
		return Event{Type: reflector.TypeInfoOf(v).Short}
	}
}

// Snapshot is an immutable view of a machine's state: the current state
// value and the extended context. The context map must be treated as
// read-only.
type Snapshot struct {
	Value   string
	Context map[string]any
}

// Matches reports whether the snapshot's state value equals value.
func (s Snapshot) Matches(value string) bool { return s.Value == value }
