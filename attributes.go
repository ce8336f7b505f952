package lazyxml

import (
	"github.com/biggeezerdevelopment/lazyxml-go/internal/bytescan"
)

// Attr is one key/value pair. Key has surrounding whitespace trimmed;
// Value is the literal bytes between the quotes, not unescaped. Both are
// views into the buffer the cursor was built from.
type Attr struct {
	Key   []byte
	Value []byte
}

// AttrIter is a forward-only cursor over a tag's attribute region,
// following the scan idiom:
//
//	it := ev.Attrs()
//	for it.Scan() {
//		a := it.Attr()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
//
// Error offsets are relative to the content span the cursor was built
// from. The cursor holds no state beyond its offset and the last result.
type AttrIter struct {
	content []byte
	offset  int

	attr Attr
	err  error
}

// NewAttrIter constructs a cursor over the given attribute region.
// Usually reached through Event.Attrs, but any byte span works.
func NewAttrIter(content []byte) *AttrIter {
	return &AttrIter{content: content}
}

// Scan advances to the next pair. It returns false when the region is
// exhausted or a pair is malformed; Err tells the two apart.
func (it *AttrIter) Scan() bool {
	if it.err != nil {
		return false
	}
	src := it.content[it.offset:]

	// Whitespace precedes pairs, and sometimes separates them too. The
	// standard requires the separator; we just skip whatever is there.
	i := indexNonSpace(src)
	if i < 0 {
		return false // no more pairs
	}
	it.offset += i

	// Error anchor for everything in this pair.
	anchor := it.offset
	src = it.content[it.offset:]

	// Key/value separator. A bare word with no '=' anywhere after it is
	// not an attribute.
	sep := bytescan.IndexByte(src, '=')
	if sep < 0 {
		it.err = syntaxErr(ErrInvalidAttribute, anchor)
		return false
	}

	// Trim around the key so a="1" and a = "1" behave the same.
	key := trimSpace(src[:sep])
	if len(key) == 0 {
		it.err = syntaxErr(ErrInvalidAttribute, anchor)
		return false
	}
	it.offset += sep + 1
	src = it.content[it.offset:]

	// Opening quote, whichever of '"' or '\'' comes first.
	q := bytescan.IndexByte2(src, '"', '\'')
	if q < 0 {
		it.err = syntaxErr(ErrInvalidAttribute, anchor)
		return false
	}
	quote := src[q]
	it.offset += q + 1
	src = it.content[it.offset:]

	// The closing quote must match the opening one; the other quote
	// character is literal inside the value.
	end := bytescan.IndexByte(src, quote)
	if end < 0 {
		it.err = syntaxErr(ErrUnexpectedEOF, anchor)
		return false
	}
	it.attr = Attr{Key: key, Value: src[:end]}
	it.offset += end + 1
	return true
}

// Attr returns the pair found by the last successful Scan.
func (it *AttrIter) Attr() Attr {
	return it.attr
}

// Err returns the error that stopped Scan, or nil if the region simply
// ran out of pairs.
func (it *AttrIter) Err() error {
	return it.err
}
