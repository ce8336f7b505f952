// Package bytescan locates control bytes within a span. It is the byte
// search primitive under the tokenizer: functionally a linear scan, but
// processing a machine word per step, with a wider unrolled stride on
// CPUs whose vector units indicate wide load ports.
//
// Loads go through encoding/binary's little-endian views so the first
// match can be recovered with a trailing-zero count regardless of host
// endianness. No call ever reads past the end of the slice.
package bytescan

import (
	"encoding/binary"
	"math/bits"
)

const (
	wordSize  = 8
	chunkSize = 4 * wordSize // wide-path stride

	ones = 0x0101010101010101
	high = 0x8080808080808080
)

// IndexByte returns the index of the first occurrence of c in b, or -1 if
// c is not present.
func IndexByte(b []byte, c byte) int {
	pat := uint64(c) * ones
	i, n := 0, len(b)
	if wideChunks {
		for ; i+chunkSize <= n; i += chunkSize {
			m0 := zeroMask(binary.LittleEndian.Uint64(b[i:]) ^ pat)
			m1 := zeroMask(binary.LittleEndian.Uint64(b[i+8:]) ^ pat)
			m2 := zeroMask(binary.LittleEndian.Uint64(b[i+16:]) ^ pat)
			m3 := zeroMask(binary.LittleEndian.Uint64(b[i+24:]) ^ pat)
			if m0|m1|m2|m3 != 0 {
				switch {
				case m0 != 0:
					return i + bits.TrailingZeros64(m0)>>3
				case m1 != 0:
					return i + 8 + bits.TrailingZeros64(m1)>>3
				case m2 != 0:
					return i + 16 + bits.TrailingZeros64(m2)>>3
				default:
					return i + 24 + bits.TrailingZeros64(m3)>>3
				}
			}
		}
	}
	for ; i+wordSize <= n; i += wordSize {
		if m := zeroMask(binary.LittleEndian.Uint64(b[i:]) ^ pat); m != 0 {
			return i + bits.TrailingZeros64(m)>>3
		}
	}
	for ; i < n; i++ {
		if b[i] == c {
			return i
		}
	}
	return -1
}

// IndexByte2 returns the index of the first occurrence of either c0 or c1
// in b, or -1 if neither is present. Neither candidate is preferred; the
// earlier byte wins.
func IndexByte2(b []byte, c0, c1 byte) int {
	p0 := uint64(c0) * ones
	p1 := uint64(c1) * ones
	i, n := 0, len(b)
	for ; i+wordSize <= n; i += wordSize {
		w := binary.LittleEndian.Uint64(b[i:])
		if m := zeroMask(w^p0) | zeroMask(w^p1); m != 0 {
			return i + bits.TrailingZeros64(m)>>3
		}
	}
	for ; i < n; i++ {
		if b[i] == c0 || b[i] == c1 {
			return i
		}
	}
	return -1
}

// zeroMask sets the high bit of every byte of w that is zero. Borrow
// propagation can raise spurious bits, but only in byte positions above
// the first genuine zero, so the lowest set bit is always exact.
func zeroMask(w uint64) uint64 {
	return (w - ones) & ^w & high
}
