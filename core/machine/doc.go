// Package machine provides a small, synchronous statechart runtime shaped
// like the actor boundary the bindings consume: a started actor exposes a
// snapshot, a change stream, and an event inbox.
//
// # Defining a machine
//
// A [Definition] is plain data: named states, transitions keyed by event
// type, and named actions resolved against an implementation table:
//
//	def := machine.Definition{
//	    ID:      "toggle",
//	    Initial: "off",
//	    Context: map[string]any{"count": 0},
//	    States: map[string]machine.StateNode{
//	        "off": {On: map[string]machine.Transition{
//	            "TOGGLE": {Target: "on", Actions: []string{"count"}},
//	        }},
//	        "on": {On: map[string]machine.Transition{
//	            "TOGGLE": {Target: "off"},
//	        }},
//	    },
//	    Impl: machine.Impl{
//	        Actions: map[string]machine.ActionFunc{
//	            "count": func(ac *machine.ActionCtx) {
//	                ac.Assign("count", ac.Get("count").(int)+1)
//	            },
//	        },
//	    },
//	}
//
// # Running
//
// [Interpret] validates the definition and returns a [Ref]; [MustInterpret]
// panics on an invalid one. The ref implements bind.ActorRef[Snapshot]:
//
//	ref := machine.MustInterpret(def)
//	ref.Start()
//	sub := ref.Subscribe(func(s machine.Snapshot) { ... })
//	ref.Send(machine.Event{Type: "TOGGLE"})
//	sub.Unsubscribe()
//	ref.Stop()
//
// Send processes the event synchronously; events sent from within a
// listener are queued and delivered after the current notification pass, so
// listeners never observe overlapping or out-of-order transitions. Events
// arriving before Start or after Stop are dropped with a warning.
//
// # Runtime configuration
//
// Named actions and guards can be substituted per ref without touching the
// definition, for example to stub side effects in tests:
//
//	ref := machine.MustInterpret(def,
//	    machine.WithAction("notify", func(*machine.ActionCtx) {}),
//	)
//
// # Snapshots
//
// A [Snapshot] is an immutable view of the current state value and
// extended context. The top-level context map is copied on every
// transition; untouched values keep their identity, which is what the
// shallow comparator in core/bind relies on.
package machine
