package view

import "log/slog"

type boundaryState struct {
	failed bool
}

// ErrorBoundary wraps child so that a panic raised while rendering the
// subtree is recovered instead of propagating out of the host. The first
// failure is logged and reported to onErr once; afterwards the boundary
// renders nothing, which unmounts whatever part of the subtree had mounted.
//
// Programmer errors raised by the bindings (a selector accessor used outside
// a provider scope, a throwing projection) surface here.
func ErrorBoundary(child RenderFunc, onErr func(recovered any)) RenderFunc {
	return func(c *Ctx) {
		st := Use(c, func() *boundaryState { return &boundaryState{} })
		if st.failed {
			return
		}

		defer func() {
			if r := recover(); r != nil {
				st.failed = true
				c.Log().Error("subtree render failed", slog.String("node", c.Node().ID()), slog.Any("recovered", r))
				if onErr != nil {
					onErr(r)
				}
				c.Node().Invalidate()
			}
		}()

		c.Render(child)
	}
}
