package view

import "fmt"

// Use retains a value for the calling component across renders, keyed by
// call order within the render. The first render runs init; later renders
// return the retained value. Hook call order must be stable between renders
// of the same component.
func Use[T any](c *Ctx, init func() T) T {
	n := c.node
	if n.cursor < len(n.slots) {
		v, ok := n.slots[n.cursor].(T)
		if !ok {
			panic(fmt.Sprintf("view: hook order changed between renders of node %s (slot %d holds %T)", n.id, n.cursor, n.slots[n.cursor]))
		}
		n.cursor++
		return v
	}

	v := init()
	n.slots = append(n.slots, v)
	n.cursor++
	return v
}

type cleanupSlot struct {
	f func()
}

// Cleanup registers a teardown function for the calling component, run
// exactly once on unmount. Registering again on a later render replaces the
// function. Like [Use], Cleanup occupies a hook slot and is subject to the
// stable call order rule.
func (c *Ctx) Cleanup(f func()) {
	n := c.node
	if n.cursor < len(n.slots) {
		s, ok := n.slots[n.cursor].(*cleanupSlot)
		if !ok {
			panic(fmt.Sprintf("view: hook order changed between renders of node %s (slot %d holds %T)", n.id, n.cursor, n.slots[n.cursor]))
		}
		s.f = f
		n.cursor++
		return
	}

	n.slots = append(n.slots, &cleanupSlot{f: f})
	n.cursor++
}
