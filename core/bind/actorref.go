package bind

type (
	// Subscription is the capability to detach a listener from an actor's
	// change stream. Unsubscribe is synchronous: once it returns, no further
	// notifications reach the listener. It must be safe to call more than
	// once.
	Subscription interface {
		Unsubscribe()
	}

	// ActorRef is the consumed boundary of the actor runtime: a live,
	// running instance with a synchronously readable state snapshot, a
	// change stream, and an event inbox.
	//
	// Implementations must be comparable (pointer-backed): the selector
	// hook detects rebinds by comparing reference identity.
	ActorRef[S any] interface {
		// Start begins processing. Running entry behavior happens here,
		// exactly once.
		Start()
		// Stop ends processing and releases the actor's resources.
		Stop()
		// Send enqueues an event for processing.
		Send(event any)
		// GetSnapshot returns the current state, readable at any time.
		GetSnapshot() S
		// Subscribe registers a listener invoked on every state change.
		Subscribe(listener func(S)) Subscription
	}
)
