package bind

import (
	"github.com/proteanblank/xstate/core/cache"
	"github.com/proteanblank/xstate/core/view"
)

// scopeKey is the environment key an ActorProvider publishes its reference
// under. One key for all snapshot types: the accessor re-types on lookup.
type scopeKey struct{}

// ActorProvider returns a component owning one actor for its subtree. The
// factory runs once per mount of the scope (memoized in the host's
// scope-keyed store, so re-renders never recreate the actor), the produced
// reference is started once, published to all descendants, and stopped
// exactly once when the scope unmounts.
func ActorProvider[S any](factory func() ActorRef[S], children ...view.RenderFunc) view.RenderFunc {
	return func(c *view.Ctx) {
		ref := UseActor(c, factory)
		c.Provide(scopeKey{}, ref)
		for _, child := range children {
			c.Render(child)
		}
	}
}

// ActorProviderRef returns a component publishing an externally owned,
// already running reference. Lifecycle ownership stays with the caller: the
// provider never starts or stops the reference, and swapping it between
// renders just republishes.
func ActorProviderRef[S any](ref ActorRef[S], children ...view.RenderFunc) view.RenderFunc {
	return func(c *view.Ctx) {
		c.Provide(scopeKey{}, ref)
		for _, child := range children {
			c.Render(child)
		}
	}
}

// UseActor creates, starts and retains an actor for the lifetime of the
// calling component. The factory is invoked once per mount; the reference
// lives in the host's memoization store keyed by the component's identity
// and is stopped and evicted on unmount.
func UseActor[S any](c *view.Ctx, factory func() ActorRef[S]) ActorRef[S] {
	refs := cache.NewTyped[ActorRef[S]](c.Memo())
	key := "actor/" + c.Node().ID()

	ref, ok := refs.Get(key)
	if !ok {
		ref = factory()
		ref.Start()
		refs.Put(key, ref)
	}

	c.Cleanup(func() {
		refs.Delete(key)
		ref.Stop()
	})

	return ref
}
