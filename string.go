package lazyxml

import (
	"strings"
	"unsafe"
)

// StringReader tokenizes input already validated as well-formed text,
// re-exposing the byte tokenizer's spans typed as strings.
//
// There is one algorithm, run over bytes. Every delimiter it splits on
// ('<', '>', '/', '=', the quotes, and bytes <= 0x20) is a single-byte
// code point, so re-slicing valid UTF-8 at those boundaries can never cut
// a multi-byte sequence. The conversions below rely on that invariant and
// reinterpret the spans in place instead of copying.
type StringReader struct {
	r Reader
}

// NewReaderString constructs a StringReader over a UTF-8 string. All
// emitted name/content/key/value spans are themselves valid strings.
func NewReaderString(s string) *StringReader {
	return &StringReader{r: Reader{source: stringBytes(s), trim: true}}
}

// NewReaderStringBOM is NewReaderString with a leading byte-order mark
// stripped if present.
func NewReaderStringBOM(s string) *StringReader {
	return NewReaderString(strings.TrimPrefix(s, "\uFEFF"))
}

// TrimWhitespace enables or disables trimming whitespace in text events.
// Dynamic, like Reader.TrimWhitespace.
func (sr *StringReader) TrimWhitespace(trim bool) *StringReader {
	sr.r.TrimWhitespace(trim)
	return sr
}

// Offset returns the absolute byte offset of the scan cursor.
func (sr *StringReader) Offset() int {
	return sr.r.Offset()
}

// Next produces the next event. Semantics match Reader.Next exactly.
func (sr *StringReader) Next() (StringEvent, error) {
	ev, err := sr.r.Next()
	if err != nil {
		return StringEvent{}, err
	}
	return StringEvent{
		Type:    ev.Type,
		Name:    unsafeString(ev.Name),
		Content: unsafeString(ev.Content),
	}, nil
}

// StringEvent mirrors Event with string-typed spans.
type StringEvent struct {
	Type    EventType
	Name    string
	Content string
}

// Attrs returns a cursor over the attribute region of a tag event.
func (e StringEvent) Attrs() *StringAttrIter {
	return &StringAttrIter{it: AttrIter{content: stringBytes(e.Content)}}
}

// StringAttr mirrors Attr with string-typed spans.
type StringAttr struct {
	Key   string
	Value string
}

// StringAttrIter mirrors AttrIter over a string-typed attribute region.
type StringAttrIter struct {
	it AttrIter
}

// Scan advances to the next pair.
func (it *StringAttrIter) Scan() bool {
	return it.it.Scan()
}

// Attr returns the pair found by the last successful Scan.
func (it *StringAttrIter) Attr() StringAttr {
	a := it.it.Attr()
	return StringAttr{Key: unsafeString(a.Key), Value: unsafeString(a.Value)}
}

// Err returns the error that stopped Scan, if any.
func (it *StringAttrIter) Err() error {
	return it.it.Err()
}

// Zero-copy view conversions. Safe because the tokenizer never mutates
// its source and every emitted span borrows from it.

func stringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
