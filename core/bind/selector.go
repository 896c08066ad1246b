package bind

import (
	"fmt"

	"github.com/proteanblank/xstate/core/view"
)

type selectorState[S, T any] struct {
	ref  ActorRef[S]
	proj func(S) T
	eq   Comparator[T]
	last T
	sub  Subscription
}

// UseSelector subscribes the calling component to ref's change stream,
// projects each snapshot through proj, and invalidates the component only
// when cmp reports the projection changed from the last committed value.
// The default comparator is [Identity].
//
// The first render reads the snapshot synchronously and commits the initial
// projection. Notifications always run the projection function passed to
// the most recent render. If ref changes identity between renders, the old
// subscription is torn down and a fresh initial projection is committed
// from the new reference. Unmount unsubscribes exactly once.
func UseSelector[S, T any](c *view.Ctx, ref ActorRef[S], proj func(S) T, cmp ...Comparator[T]) T {
	st := view.Use(c, func() *selectorState[S, T] { return &selectorState[S, T]{} })

	// latest projection and comparator win, without resubscribing
	st.proj = proj
	st.eq = Identity[T]()
	if len(cmp) > 0 && cmp[len(cmp)-1] != nil {
		st.eq = cmp[len(cmp)-1]
	}

	if st.sub == nil || st.ref != ref {
		if st.sub != nil {
			st.sub.Unsubscribe()
			st.sub = nil
		}
		st.ref = ref
		st.last = st.proj(ref.GetSnapshot())

		node := c.Node()
		st.sub = ref.Subscribe(func(s S) {
			next := st.proj(s)
			if st.eq(st.last, next) {
				return
			}
			st.last = next
			node.Invalidate()
		})
	}

	c.Cleanup(func() {
		if st.sub != nil {
			st.sub.Unsubscribe()
			st.sub = nil
		}
	})

	return st.last
}

// UseActorRef resolves the reference published by the nearest enclosing
// [ActorProvider] scope. Panics with [*MissingProviderError] when no scope
// encloses the calling component.
func UseActorRef[S any](c *view.Ctx) ActorRef[S] {
	return useActorRef[S](c, "UseActorRef")
}

// UseSelectorFromScope is [UseSelector] bound to the nearest provider
// scope: it resolves the reference like [UseActorRef], failing identically
// when no scope exists.
func UseSelectorFromScope[S, T any](c *view.Ctx, proj func(S) T, cmp ...Comparator[T]) T {
	ref := useActorRef[S](c, "UseSelectorFromScope")
	return UseSelector(c, ref, proj, cmp...)
}

func useActorRef[S any](c *view.Ctx, accessor string) ActorRef[S] {
	v, ok := c.Lookup(scopeKey{})
	if !ok {
		panic(&MissingProviderError{Accessor: accessor})
	}
	ref, ok := v.(ActorRef[S])
	if !ok {
		panic(fmt.Sprintf("bind: %s: enclosing ActorProvider publishes %T, not ActorRef[%T]", accessor, v, *new(S)))
	}
	return ref
}
