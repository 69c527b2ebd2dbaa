/*
Package events implements event listener registration and dispatch for
HTML nodes.

Nodes of golang.org/x/net/html carry no listeners, therefore listeners are
kept in a Registry, keyed by node and event type. Package dom uses the
process-wide registry Default for its On/Off operations.

Dispatching an event calls the listeners of the target node in order of
registration. If the event bubbles, dispatch continues with the listeners of
the parent node, and so on up to the root, until a listener stops
propagation.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package events

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'thedom.events'.
func tracer() tracing.Trace {
	return tracing.Select("thedom.events")
}

// Event is an event to be dispatched to a node.
type Event struct {
	Type          string      // event type, e.g. "click"
	Target        *html.Node  // node the event has been dispatched to
	CurrentTarget *html.Node  // node whose listeners are currently invoked
	Bubbles       bool        // propagate to ancestors of the target?
	Detail        interface{} // application data
	stopped       bool
}

// New creates an event of type typ.
func New(typ string, bubbles bool) *Event {
	return &Event{Type: typ, Bubbles: bubbles}
}

// StopPropagation prevents the event from reaching further nodes.
// Listeners of the current node will still be called.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped is a predicate wether propagation has been stopped.
func (e *Event) Stopped() bool {
	return e.stopped
}

// Listener is an object receiving events.
//
// Listeners are identified by equality (==) when removed from a registry,
// therefore implementations must be comparable, e.g. pointer types.
type Listener interface {
	HandleEvent(*Event)
}

// Handler is a Listener wrapping a function. Go functions are not
// comparable; a *Handler is, by identity.
type Handler struct {
	fn func(*Event)
}

// Func wraps fn into a Listener. Keep the result to be able to remove the
// listener later.
func Func(fn func(*Event)) *Handler {
	return &Handler{fn: fn}
}

// HandleEvent calls the wrapped function.
func (h *Handler) HandleEvent(e *Event) {
	if h != nil && h.fn != nil {
		h.fn(e)
	}
}

var _ Listener = &Handler{}

// --- Registry --------------------------------------------------------------

type key struct {
	node *html.Node
	typ  string
}

// Registry holds event listeners for nodes. A registry is safe for
// concurrent use, listeners are always called outside of its lock.
type Registry struct {
	mu        sync.RWMutex
	listeners map[key][]Listener
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{listeners: make(map[key][]Listener)}
}

// Default is the process-wide registry.
var Default = NewRegistry()

// Add registers listener l for events of type typ on node n.
// Registrations are not de-duplicated: adding the same listener twice
// will have it called twice.
func (r *Registry) Add(n *html.Node, typ string, l Listener) {
	if n == nil || l == nil || typ == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key{n, typ}
	r.listeners[k] = append(r.listeners[k], l)
	tracer().Debugf("events: add listener for %q on <%s>, now %d", typ, n.Data, len(r.listeners[k]))
}

// Remove unregisters listener l for events of type typ on node n.
// If l has been added more than once, only the earliest registration is
// removed. Remove returns false if l was not registered.
func (r *Registry) Remove(n *html.Node, typ string, l Listener) bool {
	if n == nil || l == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key{n, typ}
	ls := r.listeners[k]
	for i, x := range ls {
		if x == l {
			ls = append(ls[:i:i], ls[i+1:]...)
			if len(ls) == 0 {
				delete(r.listeners, k)
			} else {
				r.listeners[k] = ls
			}
			tracer().Debugf("events: removed listener for %q on <%s>", typ, n.Data)
			return true
		}
	}
	return false
}

// Count returns the number of registrations for events of type typ on node n.
func (r *Registry) Count(n *html.Node, typ string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.listeners[key{n, typ}])
}

// Forget removes all listeners of node n.
func (r *Registry) Forget(n *html.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.listeners {
		if k.node == n {
			delete(r.listeners, k)
		}
	}
}

func (r *Registry) snapshot(n *html.Node, typ string) []Listener {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ls := r.listeners[key{n, typ}]
	if len(ls) == 0 {
		return nil
	}
	return append([]Listener(nil), ls...)
}

// Dispatch delivers event e to node n and, for bubbling events, to the
// ancestors of n. It returns the number of listener invocations.
//
// Listeners of a node are taken from a snapshot, thus listeners may add or
// remove listeners while being called, without affecting the current
// dispatch on this node.
func (r *Registry) Dispatch(n *html.Node, e *Event) int {
	if n == nil || e == nil {
		return 0
	}
	e.Target = n
	e.stopped = false
	count := 0
	for cur := n; cur != nil; cur = cur.Parent {
		e.CurrentTarget = cur
		for _, l := range r.snapshot(cur, e.Type) {
			l.HandleEvent(e)
			count++
		}
		if e.stopped || !e.Bubbles {
			break
		}
	}
	e.CurrentTarget = nil
	tracer().Debugf("events: dispatched %q to <%s>, %d listeners called", e.Type, n.Data, count)
	return count
}
