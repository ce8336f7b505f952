package lazyxml

// nameStart classifies every possible first byte of a tag name. Bytes at
// or above 0x80 are permitted so multi-byte sequences pass through intact;
// only the first byte of a name is ever checked.
var nameStart = makeNameStartTable()

func makeNameStartTable() (t [256]bool) {
	for i := range t {
		switch {
		case i <= ' ': // space and all controls
		case i >= '!' && i <= '9':
		case i >= ':' && i <= '@':
		case i >= '[' && i <= '`':
		case i >= '{' && i <= 0x7f:
		default:
			t[i] = true
		}
	}
	return t
}

func validName(name []byte) bool {
	return len(name) > 0 && nameStart[name[0]]
}

// Whitespace throughout the tokenizer is any byte <= 0x20, not Unicode
// whitespace.

// trimSpace returns the maximal sub-span of b with no leading or trailing
// whitespace bytes.
func trimSpace(b []byte) []byte {
	for len(b) > 0 && b[0] <= ' ' {
		b = b[1:]
	}
	for len(b) > 0 && b[len(b)-1] <= ' ' {
		b = b[:len(b)-1]
	}
	return b
}

// indexSpace returns the index of the first whitespace byte, or -1.
func indexSpace(b []byte) int {
	for i := 0; i < len(b); i++ {
		if b[i] <= ' ' {
			return i
		}
	}
	return -1
}

// indexNonSpace returns the index of the first non-whitespace byte, or -1.
func indexNonSpace(b []byte) int {
	for i := 0; i < len(b); i++ {
		if b[i] > ' ' {
			return i
		}
	}
	return -1
}
