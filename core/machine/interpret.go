package machine

import (
	"fmt"
	"log/slog"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/proteanblank/xstate/core/bind"
	"github.com/proteanblank/xstate/core/ds"
)

type status int

const (
	statusIdle status = iota
	statusRunning
	statusStopped
)

type options struct {
	id      string
	logger  *slog.Logger
	metrics Metrics
	actions map[string]ActionFunc
	guards  map[string]GuardFunc
}

type Option func(*options)

// WithID overrides the generated ref ID.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithMetrics(m Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithAction substitutes the implementation bound to an action name for
// this ref only, leaving the definition untouched.
func WithAction(name string, f ActionFunc) Option {
	return func(o *options) { o.actions[name] = f }
}

// WithGuard substitutes the implementation bound to a guard name for this
// ref only.
func WithGuard(name string, f GuardFunc) Option {
	return func(o *options) { o.guards[name] = f }
}

// Ref is a live machine instance. It implements bind.ActorRef[Snapshot]:
// Start/Stop drive the lifecycle, Send feeds events, GetSnapshot and
// Subscribe expose state. All methods are safe for concurrent use, but
// event processing and listener delivery are serialized: notifications
// never overlap and arrive in transition order.
type Ref struct {
	id      string
	log     *slog.Logger
	metrics Metrics
	def     Definition
	actions map[string]ActionFunc
	guards  map[string]GuardFunc

	mu        sync.Mutex
	status    status
	snap      Snapshot
	queue     []Event
	busy      bool
	listeners map[string]func(Snapshot)
	order     ds.Set[string]
}

// Interpret validates def and builds a ref for it. The ref is idle until
// Start.
func Interpret(def Definition, opts ...Option) (*Ref, error) {
	o := options{
		actions: make(map[string]ActionFunc),
		guards:  make(map[string]GuardFunc),
	}
	for name, f := range def.Impl.Actions {
		o.actions[name] = f
	}
	for name, f := range def.Impl.Guards {
		o.guards[name] = f
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = fmt.Sprintf("%s-%s", def.ID, gonanoid.Must(6))
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.metrics == nil {
		o.metrics = NopMetrics()
	}

	if err := def.validate(o.actions, o.guards); err != nil {
		return nil, err
	}

	return &Ref{
		id:        o.id,
		log:       o.logger.With(slog.String("machine", o.id)),
		metrics:   o.metrics,
		def:       def,
		actions:   o.actions,
		guards:    o.guards,
		snap:      Snapshot{Value: def.Initial, Context: copyContext(def.Context)},
		listeners: make(map[string]func(Snapshot)),
	}, nil
}

// MustInterpret is Interpret, panicking on an invalid definition.
func MustInterpret(def Definition, opts ...Option) *Ref {
	r, err := Interpret(def, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// ID returns the ref's identity.
func (r *Ref) ID() string { return r.id }

// Start enters the initial state, running its entry actions exactly once.
// Idempotent; a stopped ref cannot be restarted. Events sent from inside an
// entry action queue behind the start and are processed before Start
// returns.
func (r *Ref) Start() {
	r.mu.Lock()
	if r.status != statusIdle {
		r.mu.Unlock()
		return
	}
	r.status = statusRunning
	r.busy = true
	ctx := copyContext(r.snap.Context)
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.busy = false
		r.mu.Unlock()
	}()

	r.runActions(r.def.States[r.def.Initial].Entry, Event{Type: InitEventType}, ctx)

	r.mu.Lock()
	r.snap = Snapshot{Value: r.def.Initial, Context: ctx}
	snap := r.snap
	ids := r.order.Values()
	r.mu.Unlock()

	r.log.Debug("started", slog.String("state", snap.Value))
	r.deliver(ids, snap)
	r.drain()
}

// Stop ends processing: pending events are dropped, all listeners are
// detached, later sends are ignored. Idempotent.
func (r *Ref) Stop() {
	r.mu.Lock()
	if r.status == statusStopped {
		r.mu.Unlock()
		return
	}
	r.status = statusStopped
	r.queue = nil
	r.listeners = make(map[string]func(Snapshot))
	r.order.Clear()
	r.mu.Unlock()

	r.metrics.ListenersActive(r.id, 0)
	r.log.Debug("stopped")
}

// GetSnapshot returns the current state, readable at any time.
func (r *Ref) GetSnapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

// Send enqueues an event and processes the queue. Events are handled
// synchronously and strictly in order; a send issued from inside a
// listener, action or guard is queued behind the event being processed
// instead of nesting. Events sent to a ref that is not running are dropped
// with a warning.
func (r *Ref) Send(event any) {
	ev := EventOf(event)

	r.mu.Lock()
	if r.status != statusRunning {
		stopped := r.status == statusStopped
		r.mu.Unlock()
		r.log.Warn("event dropped, ref not running", slog.String("event", ev.Type), slog.Bool("stopped", stopped))
		return
	}
	r.queue = append(r.queue, ev)
	if r.busy {
		r.mu.Unlock()
		return
	}
	r.busy = true
	r.mu.Unlock()

	r.drain()
}

// drain processes queued events in order until the queue is empty or the
// ref stops. The busy flag is cleared on the way out even when an action or
// listener panics, so a recovered failure leaves the ref processing later
// sends; events still queued at the time of the panic stay queued.
func (r *Ref) drain() {
	defer func() {
		r.mu.Lock()
		r.busy = false
		r.mu.Unlock()
	}()

	for {
		pending, changed, snap, ids := r.processNext()
		if !pending {
			return
		}
		if changed {
			r.deliver(ids, snap)
		}
	}
}

// Subscribe registers a listener invoked on every state change, in
// subscription order. The returned subscription detaches synchronously and
// is safe to cancel more than once.
func (r *Ref) Subscribe(listener func(Snapshot)) bind.Subscription {
	id := gonanoid.Must(8)

	r.mu.Lock()
	r.listeners[id] = listener
	r.order.Add(id)
	count := len(r.listeners)
	r.mu.Unlock()

	r.metrics.ListenersActive(r.id, count)
	return &subscription{ref: r, id: id}
}

type subscription struct {
	ref *Ref
	id  string
}

func (s *subscription) Unsubscribe() {
	r := s.ref

	r.mu.Lock()
	if _, ok := r.listeners[s.id]; !ok {
		r.mu.Unlock()
		return
	}
	delete(r.listeners, s.id)
	r.order.Remove(s.id)
	count := len(r.listeners)
	r.mu.Unlock()

	r.metrics.ListenersActive(r.id, count)
}

// processNext pops one event and processes it. The lock is held only while
// popping and while committing the resulting snapshot; guards and actions
// run unlocked, so they may Send to their own ref. The definition and the
// resolved action and guard tables are immutable after Interpret.
func (r *Ref) processNext() (pending, changed bool, snap Snapshot, ids []string) {
	r.mu.Lock()
	if len(r.queue) == 0 || r.status != statusRunning {
		r.mu.Unlock()
		return false, false, Snapshot{}, nil
	}
	ev := r.queue[0]
	r.queue = r.queue[1:]
	cur := r.snap
	r.mu.Unlock()

	node := r.def.States[cur.Value]
	tr, ok := node.On[ev.Type]
	if !ok {
		r.metrics.EventProcessed(ev.Type, false)
		r.log.Debug("unhandled event", slog.String("state", cur.Value), slog.String("event", ev.Type))
		return true, false, Snapshot{}, nil
	}

	if tr.Guard != "" && !r.guards[tr.Guard](cur, ev) {
		r.metrics.EventProcessed(ev.Type, false)
		return true, false, Snapshot{}, nil
	}

	defer r.metrics.TransitionDuration().ObserveDuration()
	r.metrics.EventProcessed(ev.Type, true)

	ctx := copyContext(cur.Context)
	value := cur.Value

	if tr.Target == "" {
		// self-transition: actions only, no exit/entry
		r.runActions(tr.Actions, ev, ctx)
	} else {
		r.runActions(node.Exit, ev, ctx)
		r.runActions(tr.Actions, ev, ctx)
		r.runActions(r.def.States[tr.Target].Entry, ev, ctx)
		value = tr.Target
	}

	r.mu.Lock()
	r.snap = Snapshot{Value: value, Context: ctx}
	snap = r.snap
	ids = r.order.Values()
	r.mu.Unlock()

	r.log.Debug("transition", slog.String("event", ev.Type), slog.String("state", value))
	return true, true, snap, ids
}

func (r *Ref) runActions(names []string, ev Event, ctx map[string]any) {
	for _, name := range names {
		r.actions[name](&ActionCtx{Event: ev, log: r.log, context: ctx})
	}
}

// deliver notifies listeners outside the lock, re-checking liveness per
// listener so an unsubscribe issued mid-pass stops delivery immediately.
func (r *Ref) deliver(ids []string, snap Snapshot) {
	for _, id := range ids {
		r.mu.Lock()
		l, ok := r.listeners[id]
		r.mu.Unlock()
		if ok {
			l(snap)
		}
	}
}

// copyContext copies the top level only: untouched values keep identity so
// shallow comparators can recognize them as unchanged.
func copyContext(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

var _ bind.ActorRef[Snapshot] = (*Ref)(nil)
