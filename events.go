package lazyxml

// EventType discriminates the result of one scan step.
type EventType uint8

const (
	// EventEOF is the terminal event: the source is exhausted. Every
	// subsequent call keeps returning it.
	EventEOF EventType = iota
	// EventOpenTag is a <Start> tag.
	EventOpenTag
	// EventCloseTag is a </End> tag.
	EventCloseTag
	// EventEmptyTag is an <Empty /> tag.
	EventEmptyTag
	// EventText is a run of text between tags. With trimming enabled the
	// run is trimmed on both ends, and runs that are empty after trimming
	// are skipped rather than emitted.
	EventText
)

func (t EventType) String() string {
	switch t {
	case EventEOF:
		return "EOF"
	case EventOpenTag:
		return "OpenTag"
	case EventCloseTag:
		return "CloseTag"
	case EventEmptyTag:
		return "EmptyTag"
	case EventText:
		return "Text"
	}
	return "Unknown"
}

// Event is one unit of tokenizer output. Name and Content are views into
// the source buffer, valid as long as the buffer is unchanged; nothing is
// copied.
//
// For tag events, Name is the tag name without the leading '/' of a close
// tag, and Content is everything after the name up to but not including
// the terminator, without the trailing '/' of an empty tag. For EventText,
// Content is the text run and Name is nil.
type Event struct {
	Type    EventType
	Name    []byte
	Content []byte
}

// Attrs returns a cursor over the attribute region of a tag event.
func (e Event) Attrs() *AttrIter {
	return NewAttrIter(e.Content)
}
