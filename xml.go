// Package lazyxml is a lazy, non-standards-compliant XML tokenizer that
// ignores every mistake it can afford to.
//
// It produces open/close/empty tag and text events as views into the
// source buffer, copying nothing. As long as the markup is reasonably
// valid it tokenizes: missing whitespace, junk inside attribute keys and
// stray slashes are all looked past. Entities, namespaces, balance and
// everything else in XML 1.0 are the caller's problem. Declarations
// (<! ... >) and processing instructions (<? ... ?>) are not tokenized
// and fail cleanly with ErrInvalidName.
package lazyxml

import (
	"iter"
)

// Valid reports whether data tokenizes end to end without error,
// attribute regions included. It does not validate against XML 1.0.
func Valid(data []byte) bool {
	r := NewReader(data)
	for {
		ev, err := r.Next()
		if err != nil {
			return false
		}
		switch ev.Type {
		case EventEOF:
			return true
		case EventText:
			continue
		}
		it := ev.Attrs()
		for it.Scan() {
		}
		if it.Err() != nil {
			return false
		}
	}
}

// Events iterates the event stream of data with default settings.
// Iteration ends at end of input, or after yielding the first error with
// a zero Event.
func Events(data []byte) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		r := NewReader(data)
		for {
			ev, err := r.Next()
			if err != nil {
				yield(Event{}, err)
				return
			}
			if ev.Type == EventEOF {
				return
			}
			if !yield(ev, nil) {
				return
			}
		}
	}
}
