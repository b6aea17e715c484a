// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import "github.com/bits-and-blooms/bitset"

// Event identifies one lifecycle event a notifier can subscribe to
// (spec §4.7). The set is small and fixed, but the mask is represented with
// a bitset.BitSet rather than a raw integer because that is how the teacher
// repo represents compact membership sets (bart/node.go imports
// bits-and-blooms/bitset for exactly this reason).
type Event uint

const (
	EventFree Event = iota
	EventSteal
	EventMove
	EventResize
	EventRename
	EventAddChild
	EventDelChild
	EventAddNotifier
	EventDelNotifier

	numEvents
)

// String renders an Event for log/error messages.
func (e Event) String() string {
	switch e {
	case EventFree:
		return "FREE"
	case EventSteal:
		return "STEAL"
	case EventMove:
		return "MOVE"
	case EventResize:
		return "RESIZE"
	case EventRename:
		return "RENAME"
	case EventAddChild:
		return "ADD_CHILD"
	case EventDelChild:
		return "DEL_CHILD"
	case EventAddNotifier:
		return "ADD_NOTIFIER"
	case EventDelNotifier:
		return "DEL_NOTIFIER"
	default:
		return "UNKNOWN"
	}
}

// EventMask is a set of Events, as subscribed by a single notifier.
type EventMask struct {
	bits *bitset.BitSet
}

// NewEventMask builds a mask containing exactly the given events.
func NewEventMask(events ...Event) EventMask {
	b := bitset.New(uint(numEvents))
	for _, e := range events {
		b.Set(uint(e))
	}
	return EventMask{bits: b}
}

// Has reports whether e is a member of the mask.
func (m EventMask) Has(e Event) bool {
	if m.bits == nil {
		return false
	}
	return m.bits.Test(uint(e))
}

// IsEmpty reports whether the mask has no events set, matching the
// "empty mask" state add_notifier installs before firing ADD_NOTIFIER
// (spec §4.7).
func (m EventMask) IsEmpty() bool {
	return m.bits == nil || m.bits.None()
}

// IsExactly reports whether the mask contains e and nothing else. Used to
// implement the process-wide (here: tree-wide) non-destructor notifier
// counter from spec §4.7 ("anything other than exactly FREE").
func (m EventMask) IsExactly(e Event) bool {
	return m.bits != nil && m.bits.Count() == 1 && m.bits.Test(uint(e))
}

// with returns a copy of m with events added. addNotifier does not use it;
// it assigns the real mask directly after the empty-mask birth
// notification.
func (m EventMask) with(events ...Event) EventMask {
	b := m.bits.Clone()
	if b == nil {
		b = bitset.New(uint(numEvents))
	}
	for _, e := range events {
		b.Set(uint(e))
	}
	return EventMask{bits: b}
}
