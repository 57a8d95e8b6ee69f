package analytics

import (
	"iter"
	"maps"
	"slices"

	json "github.com/goccy/go-json"

	"github.com/XuRonTing/ron-fun/pkg/ronerrors"
)

// Event is a symbolic analytics event name.
type Event string

// Known symbolic event names.
const (
	ButtonClick Event = "BUTTON_CLICK"
	PageView    Event = "PAGE_VIEW"
	ScrollDepth Event = "SCROLL_DEPTH"
	TimeSpent   Event = "TIME_SPENT"
)

var knownEvents = []Event{ButtonClick, PageView, ScrollDepth, TimeSpent}

// KnownEvents returns the closed set of symbolic event names.
func KnownEvents() []Event {
	return slices.Clone(knownEvents)
}

// Known reports whether e belongs to the closed set.
func (e Event) Known() bool {
	return slices.Contains(knownEvents, e)
}

// EventMap maps symbolic event names to wire event names. It has no
// mutators; the zero value is an empty map.
type EventMap struct {
	wire map[Event]string
}

// newEventMap validates raw against the closed set: every key must be known,
// every known event must be present and no wire name may be empty.
func newEventMap(raw map[string]string) (EventMap, error) {
	if raw == nil {
		return EventMap{}, missingFields("events")
	}

	keys := slices.Sorted(maps.Keys(raw))
	wire := make(map[Event]string, len(raw))
	for _, k := range keys {
		e := Event(k)
		if !e.Known() {
			return EventMap{}, ronerrors.New(ronerrors.KindConfigLoad, "unknown event").
				WithDetail("event", k)
		}
		if raw[k] == "" {
			return EventMap{}, ronerrors.New(ronerrors.KindConfigLoad, "event has an empty wire name").
				WithDetail("event", k)
		}
		wire[e] = raw[k]
	}

	for _, e := range knownEvents {
		if _, ok := wire[e]; !ok {
			return EventMap{}, ronerrors.New(ronerrors.KindConfigLoad, "event is not mapped").
				WithDetail("event", string(e))
		}
	}

	return EventMap{wire: wire}, nil
}

// Wire returns the wire name of e.
func (m EventMap) Wire(e Event) (string, bool) {
	s, ok := m.wire[e]
	return s, ok
}

// MustWire returns the wire name of e and panics when e is not mapped.
func (m EventMap) MustWire(e Event) string {
	s, ok := m.wire[e]
	if !ok {
		panic(ronerrors.New(ronerrors.KindInternal, "event is not mapped").
			WithDetail("event", string(e)))
	}
	return s
}

// Len returns the number of mapped events.
func (m EventMap) Len() int {
	return len(m.wire)
}

// Names returns the mapped symbolic names in sorted order.
func (m EventMap) Names() []Event {
	return slices.Sorted(maps.Keys(m.wire))
}

// All iterates over the mapping in sorted symbolic-name order.
func (m EventMap) All() iter.Seq2[Event, string] {
	return func(yield func(Event, string) bool) {
		for _, e := range m.Names() {
			if !yield(e, m.wire[e]) {
				return
			}
		}
	}
}

// Map returns a copy of the mapping keyed by symbolic name.
func (m EventMap) Map() map[string]string {
	out := make(map[string]string, len(m.wire))
	for e, s := range m.wire {
		out[string(e)] = s
	}
	return out
}

// MarshalJSON encodes the mapping as a flat object, as the SDK initializer
// expects.
func (m EventMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Map())
}
