package view

import (
	"log/slog"
	"sync"

	"github.com/proteanblank/xstate/core/cache"
)

// RenderFunc renders one component. It may read hook state via [Use],
// publish scope values via [Ctx.Provide], and render children via
// [Ctx.Render].
type RenderFunc func(c *Ctx)

type Options struct {
	Logger  *slog.Logger
	Metrics Metrics
}

// Host owns a component tree and its invalidation queue. A host is driven
// cooperatively: something invalidates nodes, the owner calls [Host.Flush].
type Host struct {
	log     *slog.Logger
	metrics Metrics
	memo    *cache.Mem

	root  *Node
	nodes int

	mu    sync.Mutex
	dirty []*Node
}

func New(opts Options) *Host {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = NopMetrics()
	}

	return &Host{
		log:     opts.Logger,
		metrics: opts.Metrics,
		memo:    cache.NewMem(),
	}
}

// Mount renders the root component. A host holds exactly one root.
func (h *Host) Mount(render RenderFunc) *Node {
	if h.root != nil {
		panic("view: host already mounted")
	}
	root := h.newNode(nil, render)
	h.root = root
	h.renderNode(root)
	return root
}

// Close unmounts the whole tree, running all cleanups.
func (h *Host) Close() {
	if h.root == nil {
		return
	}
	h.unmount(h.root)
	h.root = nil
}

// Memo is the host-wide memoization store. Entries are keyed by the owning
// node's identity and must be deleted by the owner's cleanup.
func (h *Host) Memo() cache.Cache { return h.memo }

// Flush re-renders all currently dirty nodes in invalidation order and
// returns the number of renders performed. Repeated invalidations of one
// node coalesce into a single render; a node already refreshed by a parent
// render is skipped.
func (h *Host) Flush() int {
	count := 0
	for {
		h.mu.Lock()
		if len(h.dirty) == 0 {
			h.mu.Unlock()
			return count
		}
		n := h.dirty[0]
		h.dirty = h.dirty[1:]
		stale := n.dirty
		h.mu.Unlock()

		if !stale || n.unmounted {
			continue
		}
		h.renderNode(n)
		count++
	}
}

func (h *Host) newNode(parent *Node, render RenderFunc) *Node {
	n := &Node{
		id:     newNodeID(),
		host:   h,
		parent: parent,
		render: render,
	}
	h.nodes++
	h.metrics.NodesActive(h.nodes)
	return n
}

func (h *Host) renderNode(n *Node) {
	if n.unmounted {
		return
	}

	h.mu.Lock()
	n.dirty = false
	h.mu.Unlock()

	defer h.metrics.RenderDuration().ObserveDuration()
	h.metrics.Rendered()

	n.cursor = 0
	n.childIdx = 0
	n.render(&Ctx{host: h, node: n})

	// children not re-rendered this pass are gone
	for _, c := range n.children[n.childIdx:] {
		h.unmount(c)
	}
	n.children = n.children[:n.childIdx]
}

func (h *Host) unmount(n *Node) {
	if n.unmounted {
		return
	}
	n.unmounted = true

	// children first, then own cleanups in reverse registration order
	for _, c := range n.children {
		h.unmount(c)
	}
	for i := len(n.slots) - 1; i >= 0; i-- {
		if s, ok := n.slots[i].(*cleanupSlot); ok && s.f != nil {
			s.f()
		}
	}

	n.children = nil
	n.slots = nil
	n.env = nil

	h.nodes--
	h.metrics.NodesActive(h.nodes)
	h.log.Debug("node unmounted", slog.String("node", n.id))
}
