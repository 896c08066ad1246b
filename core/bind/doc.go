// Package bind bridges a running actor to the view tree: components read
// derived slices of the actor's state and re-render only when the selected
// slice changes, and obtain the live actor reference to send it events.
//
// The package is the selector-subscription core. It knows nothing about any
// concrete actor runtime; it consumes the [ActorRef] interface and drives
// the host engine in core/view.
//
// # Providing an actor
//
// [ActorProvider] owns one actor per mount of its scope: the factory runs
// once, the actor is started once, and it is stopped exactly once when the
// scope unmounts:
//
//	app := bind.ActorProvider(func() bind.ActorRef[machine.Snapshot] {
//	    return machine.MustInterpret(def)
//	}, body)
//
// [ActorProviderRef] publishes an externally owned, already running
// reference instead; the provider then only borrows it and never starts or
// stops it.
//
// # Reading state
//
// [UseSelector] subscribes to the actor's change stream, projects each
// snapshot through a pure function, and re-renders the calling component
// only when a comparator reports the projection changed:
//
//	value := bind.UseSelector(c, ref, func(s machine.Snapshot) string {
//	    return s.Value
//	})
//
// The initial render reads the snapshot synchronously, so there is no flash
// of an empty state. The latest projection function is always the one
// invoked on the next notification; changing the projection between renders
// does not resubscribe. Changing the actor reference does: the old
// subscription is torn down and a fresh initial projection is taken from
// the new reference.
//
// [UseActorRef] resolves the reference published by the nearest enclosing
// provider scope and panics with [*MissingProviderError] when there is
// none. [UseSelectorFromScope] combines the two.
//
// # Comparators
//
// [Identity] (the default) compares by value for comparable kinds and by
// reference identity for maps, slices, pointers, channels and funcs.
// [Shallow] compares mapping-like values key by key, each value by
// identity. Any func with the [Comparator] signature can be supplied
// instead; re-render suppression assumes it is reflexive and consistent.
package bind
