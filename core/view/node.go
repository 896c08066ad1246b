package view

import (
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/proteanblank/xstate/core/cache"
)

func newNodeID() string {
	return "node-" + gonanoid.Must(8)
}

// Node is one mounted component. Nodes are created by [Ctx.Render] and
// [Host.Mount] and torn down when their parent stops rendering them.
type Node struct {
	id     string
	host   *Host
	parent *Node
	render RenderFunc

	children []*Node
	slots    []any
	env      map[any]any

	cursor   int
	childIdx int

	dirty     bool
	unmounted bool
}

// ID returns the node's identity, stable for the node's lifetime.
func (n *Node) ID() string { return n.id }

// Invalidate schedules a re-render of this component on the next
// [Host.Flush]. Safe to call from externally scheduled callbacks;
// invalidating an unmounted or already dirty node is a no-op.
func (n *Node) Invalidate() {
	h := n.host
	h.mu.Lock()
	defer h.mu.Unlock()
	if n.unmounted || n.dirty {
		return
	}
	n.dirty = true
	h.dirty = append(h.dirty, n)
}

// Ctx is handed to a [RenderFunc] for the duration of one render.
type Ctx struct {
	host *Host
	node *Node
}

// Node returns the component being rendered.
func (c *Ctx) Node() *Node { return c.node }

// Log returns the host's logger.
func (c *Ctx) Log() *slog.Logger { return c.host.log }

// Memo is the host-wide memoization store, see [Host.Memo].
func (c *Ctx) Memo() cache.Cache { return c.host.memo }

// Render renders a child component. Children are reconciled by position:
// the i-th Render call of every pass addresses the same child node.
func (c *Ctx) Render(child RenderFunc) {
	n := c.node
	if n.childIdx < len(n.children) {
		existing := n.children[n.childIdx]
		n.childIdx++
		existing.render = child
		c.host.renderNode(existing)
		return
	}

	created := c.host.newNode(n, child)
	n.children = append(n.children, created)
	n.childIdx++
	c.host.renderNode(created)
}

// Provide publishes a value to this component's subtree. The value is
// visible to Lookup from this node downward and persists across re-renders
// until overwritten.
func (c *Ctx) Provide(key, val any) {
	if c.node.env == nil {
		c.node.env = make(map[any]any)
	}
	c.node.env[key] = val
}

// Lookup resolves the nearest value published under key by walking the
// parent chain, starting at this node.
func (c *Ctx) Lookup(key any) (any, bool) {
	for n := c.node; n != nil; n = n.parent {
		if n.env == nil {
			continue
		}
		if v, ok := n.env[key]; ok {
			return v, true
		}
	}
	return nil, false
}
