package machine

import (
	"fmt"
	"log/slog"
)

type (
	// Definition describes a machine as plain data. It is immutable from
	// the runtime's perspective: interpreting it never modifies it, and one
	// definition may back any number of refs.
	Definition struct {
		ID      string
		Initial string
		Context map[string]any
		States  map[string]StateNode
		Impl    Impl
	}

	// StateNode is one named state: entry/exit action names and the
	// transitions it handles, keyed by event type.
	StateNode struct {
		Entry []string
		Exit  []string
		On    map[string]Transition
	}

	// Transition moves the machine to Target when its event fires and the
	// guard (if named) passes. An empty Target is a self-transition without
	// exit/entry: only Actions run.
	Transition struct {
		Target  string
		Guard   string
		Actions []string
	}

	// Impl carries the default implementations the definition's action and
	// guard names resolve against. Interpret options override per name.
	Impl struct {
		Actions map[string]ActionFunc
		Guards  map[string]GuardFunc
	}

	// ActionFunc is a side effect run during a transition. It may read the
	// triggering event, assign to the extended context, and Send further
	// events to its own ref; such sends queue behind the event being
	// processed.
	ActionFunc func(ac *ActionCtx)

	// GuardFunc decides whether a guarded transition is taken.
	GuardFunc func(snap Snapshot, ev Event) bool

	// ActionCtx is handed to actions for the duration of one transition.
	ActionCtx struct {
		Event Event

		log     *slog.Logger
		context map[string]any
	}
)

// Log returns the ref's logger.
func (ac *ActionCtx) Log() *slog.Logger { return ac.log }

// Get reads a context value.
func (ac *ActionCtx) Get(key string) any { return ac.context[key] }

// Assign writes a context value. The write lands in the transition's fresh
// top-level context copy, so previously published snapshots are unaffected.
func (ac *ActionCtx) Assign(key string, val any) { ac.context[key] = val }

// validate checks the definition is internally consistent against the
// resolved action and guard tables.
func (d Definition) validate(actions map[string]ActionFunc, guards map[string]GuardFunc) error {
	if len(d.States) == 0 {
		return fmt.Errorf("machine %q: no states", d.ID)
	}
	if _, ok := d.States[d.Initial]; !ok {
		return fmt.Errorf("machine %q: initial state %q not defined", d.ID, d.Initial)
	}

	checkActions := func(state string, names []string) error {
		for _, name := range names {
			if _, ok := actions[name]; !ok {
				return fmt.Errorf("machine %q: state %q references unknown action %q", d.ID, state, name)
			}
		}
		return nil
	}

	for name, node := range d.States {
		if err := checkActions(name, node.Entry); err != nil {
			return err
		}
		if err := checkActions(name, node.Exit); err != nil {
			return err
		}
		for evType, tr := range node.On {
			if tr.Target != "" {
				if _, ok := d.States[tr.Target]; !ok {
					return fmt.Errorf("machine %q: transition %s.%s targets unknown state %q", d.ID, name, evType, tr.Target)
				}
			}
			if tr.Guard != "" {
				if _, ok := guards[tr.Guard]; !ok {
					return fmt.Errorf("machine %q: transition %s.%s references unknown guard %q", d.ID, name, evType, tr.Guard)
				}
			}
			if err := checkActions(name, tr.Actions); err != nil {
				return err
			}
		}
	}
	return nil
}
