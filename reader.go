package lazyxml

import (
	"github.com/biggeezerdevelopment/lazyxml-go/internal/bytescan"
)

type state uint8

const (
	// stateSearching: the reader isn't on anything in particular, it's
	// looking for text or the next tag.
	stateSearching state = iota
	// stateLocatedTag: the reader sits one byte past an opening '<'.
	stateLocatedTag
	// stateEnd: the source is exhausted.
	stateEnd
)

// Reader is a low-level tokenizer producing events over a byte buffer.
//
// The entire input must be resident in memory; all emitted spans borrow
// from it and the buffer is never mutated. A Reader is not safe for
// concurrent use, but independent Readers over the same buffer never
// interfere.
type Reader struct {
	source []byte
	offset int
	state  state

	trim bool
}

// NewReader constructs a Reader over ASCII-compatible XML bytes.
func NewReader(data []byte) *Reader {
	return &Reader{source: data, trim: true}
}

// TrimWhitespace enables or disables trimming whitespace in text events.
// The setting is dynamic and can be flipped while scanning; it takes
// effect on the next text candidate. Defaults to enabled.
func (r *Reader) TrimWhitespace(trim bool) *Reader {
	r.trim = trim
	return r
}

// Offset returns the absolute byte offset of the scan cursor from the
// start of the input.
func (r *Reader) Offset() int {
	return r.offset
}

// Next produces the next event, or a *SyntaxError wrapping one of the
// sentinel errors. Events come in strict document order. On error the
// cursor is not advanced past the offending tag, so calling Next again
// reproduces the same error.
func (r *Reader) Next() (Event, error) {
	for {
		switch r.state {
		case stateSearching:
			if ev, ok := r.nextText(); ok {
				return ev, nil
			}
			// Runs that are empty after trimming, as between adjacent
			// tags, are skipped rather than emitted.
		case stateLocatedTag:
			return r.nextTag()
		case stateEnd:
			return Event{Type: EventEOF}, nil
		}
	}
}

func (r *Reader) nextText() (Event, bool) {
	src := r.source[r.offset:]
	var text []byte
	if i := bytescan.IndexByte(src, '<'); i >= 0 {
		// Move one byte past the '<' since we know that's what it is.
		// The next access is then worst-case an empty slice.
		text = src[:i]
		r.offset += i + 1
		r.state = stateLocatedTag
	} else {
		text = src
		r.state = stateEnd
	}
	if r.trim {
		text = trimSpace(text)
	}
	if len(text) == 0 {
		return Event{}, false
	}
	return Event{Type: EventText, Content: text}, true
}

func (r *Reader) nextTag() (Event, error) {
	src := r.source[r.offset:]
	if len(src) == 0 {
		return Event{}, syntaxErr(ErrUnexpectedEOF, r.offset-1)
	}
	switch src[0] {
	case '!', '?':
		// Declarations (<! ... >) and processing instructions (<? ... ?>)
		// are not tokenized. Failing before the '>' search keeps a '>'
		// inside such a construct from fixing a bogus tag extent.
		return Event{}, syntaxErr(ErrInvalidName, r.offset-1)
	}
	isClose := src[0] == '/'

	end := bytescan.IndexByte(src, '>')
	if end < 0 {
		return Event{}, syntaxErr(ErrUnexpectedEOF, r.offset-1)
	}
	inner := src[:end]

	// Separate head and tail (tag name, attribute region) at the first
	// whitespace byte:
	//   (head, tail) of `<Name a="1"/>` is <[Name] [a="1"/]>
	//   (head, tail) of `<Name />`      is <[Name] [/]>
	//   (head, tail) of `<Name/>`      is <[Name/][]>
	head, tail := inner, inner[len(inner):]
	if ws := indexSpace(inner); ws >= 0 {
		head, tail = inner[:ws], inner[ws+1:]
	}

	// Trim the '/' of '/>' in empty tags. With no attribute region the
	// slash sits at the end of head, otherwise at the end of tail. This
	// permits `</Name/>` as a close tag on purpose: this trim and the
	// close-tag trim below are independent and both apply.
	isEmpty := len(inner) > 0 && inner[len(inner)-1] == '/'
	if isEmpty {
		if len(tail) == 0 {
			head = head[:len(head)-1]
		} else {
			tail = tail[:len(tail)-1]
		}
	}

	// Trim the '/' of '</' in close tags.
	if isClose {
		if len(head) == 0 {
			// A strange case of `</>` leads here.
			return Event{}, syntaxErr(ErrInvalidName, r.offset-1)
		}
		head = head[1:]
	}

	if !validName(head) {
		return Event{}, syntaxErr(ErrInvalidName, r.offset-1)
	}

	r.offset += end + 1
	r.state = stateSearching
	typ := EventOpenTag
	switch {
	case isClose:
		typ = EventCloseTag
	case isEmpty:
		typ = EventEmptyTag
	}
	return Event{Type: typ, Name: head, Content: tail}, nil
}
