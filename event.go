package maple

// --- Events ---

// EventKind classifies a pointer event.
type EventKind uint8

const (
	EventButtonDown EventKind = iota
	EventMove
	EventButtonUp
)

// PointerEvent is one raw pointer event from the input boundary: a kind, an
// absolute pixel position, and the button involved (meaningful for
// EventButtonDown and EventButtonUp).
type PointerEvent struct {
	Kind   EventKind
	Pos    Point
	Button MouseButton
}

// --- Subscriptions ---

// Handler is a pure reducer: given the event it was subscribed for, it
// returns the replacement subscriptions it contributes to its node's list.
// A handler that wants to keep listening returns a subscription with the
// same kind and tag; returning nil (or an empty slice) drops the binding.
type Handler func(ev PointerEvent) []Subscription

// Subscription is one event-kind -> handler binding for a node. The Tag
// names the handler's role (for example "drag.start") and is what makes two
// subscription lists comparable: a reduction that returns bindings with the
// same kinds and tags in the same order counts as "unchanged" and lets
// dispatch continue to the next node.
type Subscription struct {
	Kind   EventKind
	Tag    string
	Handle Handler
}

// Sub builds a Subscription.
func Sub(kind EventKind, tag string, handle Handler) Subscription {
	return Subscription{Kind: kind, Tag: tag, Handle: handle}
}

// sameBindings reports whether two subscription lists carry the same
// (kind, tag) sequence. Handler funcs are intentionally not compared.
func sameBindings(a, b []Subscription) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind || a[i].Tag != b[i].Tag {
			return false
		}
	}
	return true
}

// --- Dispatcher ---

// Dispatcher routes pointer events to subscribed nodes. Each scene (or test)
// owns its own Dispatcher; nodes are registered in the order they first
// subscribe and scanned in reverse order at dispatch time, so the most
// recently subscribed node gets first refusal of every event.
//
// Exactly one subscription list exists per node. Handlers do not add or
// remove individual subscriptions; each dispatch step replaces the whole
// list atomically, which is what makes handler invocation reentrant-safe in
// the single-threaded frame loop.
type Dispatcher struct {
	table map[*Node][]Subscription
	order []*Node
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{table: make(map[*Node][]Subscription)}
}

// Subscribe appends subs to the node's subscription list, registering the
// node on first use.
func (d *Dispatcher) Subscribe(n *Node, subs ...Subscription) {
	if _, ok := d.table[n]; !ok {
		d.order = append(d.order, n)
		d.table[n] = nil
	}
	d.table[n] = append(d.table[n], subs...)
}

// Subscriptions returns the node's current subscription list. The returned
// slice must not be mutated. Nodes that never subscribed return nil.
func (d *Dispatcher) Subscriptions(n *Node) []Subscription {
	return d.table[n]
}

// Dispatch routes one pointer event. Nodes are scanned most-recently-
// registered first. The first node whose list contains a handler for the
// event's kind has its whole list reduced: matching handlers are invoked in
// order and replaced by what they return, non-matching bindings are carried
// over unchanged. If the reduced list differs from the old one the event is
// consumed and dispatch stops; if it is binding-equal (a no-op
// resubscription) scanning continues with the next node. At most one node's
// subscriptions change per event.
//
// Dispatching to a node with no subscriptions is a no-op, not an error.
func (d *Dispatcher) Dispatch(ev PointerEvent) {
	for i := len(d.order) - 1; i >= 0; i-- {
		node := d.order[i]
		subs := d.table[node]

		matched := false
		for _, sub := range subs {
			if sub.Kind == ev.Kind {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		next := make([]Subscription, 0, len(subs))
		for _, sub := range subs {
			if sub.Kind == ev.Kind {
				next = append(next, sub.Handle(ev)...)
			} else {
				next = append(next, sub)
			}
		}

		changed := !sameBindings(subs, next)
		d.table[node] = next
		if changed {
			return
		}
	}
}
