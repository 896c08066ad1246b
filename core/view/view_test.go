package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHost_mountRendersTree(t *testing.T) {
	var order []string

	leaf := func(name string) RenderFunc {
		return func(c *Ctx) { order = append(order, name) }
	}

	h := New(Options{})
	h.Mount(func(c *Ctx) {
		order = append(order, "root")
		c.Render(leaf("a"))
		c.Render(leaf("b"))
	})

	require.Equal(t, []string{"root", "a", "b"}, order)
}

func TestUse_retainsAcrossRenders(t *testing.T) {
	type state struct{ renders int }

	var seen []*state

	h := New(Options{})
	root := h.Mount(func(c *Ctx) {
		st := Use(c, func() *state { return &state{} })
		st.renders++
		seen = append(seen, st)
	})

	root.Invalidate()
	require.Equal(t, 1, h.Flush())

	require.Len(t, seen, 2)
	require.Same(t, seen[0], seen[1])
	require.Equal(t, 2, seen[0].renders)
}

func TestFlush_coalescesInvalidations(t *testing.T) {
	renders := 0

	h := New(Options{})
	root := h.Mount(func(c *Ctx) { renders++ })

	root.Invalidate()
	root.Invalidate()
	root.Invalidate()

	require.Equal(t, 1, h.Flush())
	require.Equal(t, 2, renders)

	// nothing dirty, nothing rendered
	require.Equal(t, 0, h.Flush())
}

func TestFlush_skipsNodeRefreshedByParent(t *testing.T) {
	childRenders := 0

	var child *Node

	h := New(Options{})
	root := h.Mount(func(c *Ctx) {
		c.Render(func(cc *Ctx) {
			child = cc.Node()
			childRenders++
		})
	})

	// both dirty: the parent render refreshes the child, so the child's
	// queue entry must not render it a second time
	root.Invalidate()
	child.Invalidate()
	require.Equal(t, 1, h.Flush())
	require.Equal(t, 2, childRenders)
}

func TestProvideLookup(t *testing.T) {
	type key struct{}

	var got any
	var found bool

	h := New(Options{})
	h.Mount(func(c *Ctx) {
		c.Provide(key{}, "published")
		c.Render(func(cc *Ctx) {
			c.Render(func(ccc *Ctx) {
				got, found = ccc.Lookup(key{})
			})
		})
	})

	require.True(t, found)
	require.Equal(t, "published", got)
}

func TestLookup_missing(t *testing.T) {
	type key struct{}

	h := New(Options{})
	h.Mount(func(c *Ctx) {
		_, ok := c.Lookup(key{})
		require.False(t, ok)
	})
}

func TestProvide_innerShadowsOuter(t *testing.T) {
	type key struct{}

	var got any

	h := New(Options{})
	h.Mount(func(c *Ctx) {
		c.Provide(key{}, "outer")
		c.Render(func(cc *Ctx) {
			cc.Provide(key{}, "inner")
			cc.Render(func(ccc *Ctx) {
				got, _ = ccc.Lookup(key{})
			})
		})
	})

	require.Equal(t, "inner", got)
}

func TestCleanup_runsOnceOnUnmount(t *testing.T) {
	cleanups := 0

	h := New(Options{})
	root := h.Mount(func(c *Ctx) {
		c.Cleanup(func() { cleanups++ })
	})

	// re-render replaces the cleanup, does not stack another
	root.Invalidate()
	h.Flush()
	require.Equal(t, 0, cleanups)

	h.Close()
	require.Equal(t, 1, cleanups)

	// idempotent
	h.Close()
	require.Equal(t, 1, cleanups)
}

func TestCleanup_reverseOrderChildrenFirst(t *testing.T) {
	var order []string

	h := New(Options{})
	h.Mount(func(c *Ctx) {
		c.Cleanup(func() { order = append(order, "parent-1") })
		c.Cleanup(func() { order = append(order, "parent-2") })
		c.Render(func(cc *Ctx) {
			cc.Cleanup(func() { order = append(order, "child") })
		})
	})

	h.Close()
	require.Equal(t, []string{"child", "parent-2", "parent-1"}, order)
}

func TestRender_droppedChildUnmounts(t *testing.T) {
	unmounted := false
	renderChild := true

	h := New(Options{})
	root := h.Mount(func(c *Ctx) {
		if renderChild {
			c.Render(func(cc *Ctx) {
				cc.Cleanup(func() { unmounted = true })
			})
		}
	})

	renderChild = false
	root.Invalidate()
	h.Flush()

	require.True(t, unmounted)
}

func TestInvalidate_afterUnmountIsNoop(t *testing.T) {
	var child *Node

	h := New(Options{})
	h.Mount(func(c *Ctx) {
		c.Render(func(cc *Ctx) { child = cc.Node() })
	})

	h.Close()
	child.Invalidate()
	require.Equal(t, 0, h.Flush())
}

func TestErrorBoundary_containsPanic(t *testing.T) {
	boom := errors.New("boom")
	var reported any

	h := New(Options{})
	require.NotPanics(t, func() {
		h.Mount(ErrorBoundary(func(c *Ctx) {
			panic(boom)
		}, func(r any) { reported = r }))
	})

	require.Equal(t, boom, reported)
}

func TestErrorBoundary_reportsOnceAndStopsRendering(t *testing.T) {
	reports := 0
	childRenders := 0

	h := New(Options{})
	root := h.Mount(ErrorBoundary(func(c *Ctx) {
		childRenders++
		panic("boom")
	}, func(any) { reports++ }))

	h.Flush()
	root.Invalidate()
	h.Flush()

	require.Equal(t, 1, reports)
	require.Equal(t, 1, childRenders)
}

func TestErrorBoundary_failedSubtreeCleansUp(t *testing.T) {
	cleaned := false

	h := New(Options{})
	h.Mount(ErrorBoundary(func(c *Ctx) {
		c.Cleanup(func() { cleaned = true })
		c.Render(func(cc *Ctx) { panic("boom") })
	}, nil))

	// the boundary invalidates itself after a failure; the next flush
	// unmounts the failed subtree
	h.Flush()
	require.True(t, cleaned)
}

func TestUse_hookOrderViolationPanics(t *testing.T) {
	first := true

	h := New(Options{})
	root := h.Mount(func(c *Ctx) {
		if first {
			Use(c, func() int { return 1 })
		} else {
			Use(c, func() string { return "x" })
		}
	})

	first = false
	root.Invalidate()
	require.Panics(t, func() { h.Flush() })
}
