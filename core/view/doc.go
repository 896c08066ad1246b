// Package view provides the minimal host rendering engine the actor bindings
// attach to: a tree of components with retained hook state, explicit
// scope/environment propagation, and a cooperative invalidation queue.
//
// # Components
//
// A component is a [RenderFunc]. Rendering a component may render children,
// which are reconciled positionally across renders:
//
//	app := func(c *view.Ctx) {
//	    c.Render(header)
//	    c.Render(body)
//	}
//
//	host := view.New(view.Options{})
//	host.Mount(app)
//
// # Hook state
//
// [Use] retains a value per component across renders, keyed by call order.
// Call order must therefore be stable between renders of the same component.
// [Ctx.Cleanup] registers a teardown function run exactly once when the
// component unmounts; re-registering on a later render replaces the function,
// not adds another.
//
// # Scope propagation
//
// [Ctx.Provide] publishes a value to the subtree rendered by this component;
// [Ctx.Lookup] resolves the nearest published value by walking the parent
// chain. There is no ambient context: the environment is carried by the
// nodes themselves.
//
// # Invalidation
//
// [Node.Invalidate] marks a component dirty; [Host.Flush] re-renders dirty
// components in invalidation order, coalescing repeated invalidations of the
// same component into a single render. Rendering is cooperative and
// single-threaded; Invalidate itself may be called from externally scheduled
// callbacks (timers, actor notifications).
//
// # Failures
//
// A panicking render propagates. [ErrorBoundary] wraps a subtree, recovers
// the first failure, reports it once, and renders nothing beneath afterward.
package view
