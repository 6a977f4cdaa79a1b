package simd

import (
	"encoding/binary"
	"math/bits"
)

// Word-parallel kernels. Each window is loaded as little-endian 8-byte
// lanes, per-byte predicates are evaluated carry-free across a lane, the
// top bit of every byte is gathered into a window bitmask, and the first
// position failing the predicate falls out of a trailing-zero count.
// Whole windows are loaded only while they fit the remaining length; the
// tail of a buffer is always finished by the scalar kernel, so no load
// ever crosses the end of the buffer.

const (
	ones = 0x0101010101010101
	msb  = 0x8080808080808080
	lsb7 = 0x7f7f7f7f7f7f7f7f

	// gather positions the eight per-byte flags of a lane into the top
	// byte of the product.
	gather = 0x0102040810204080

	// spaceAddend pushes any low-7-bit value above 0x20 across the byte's
	// top bit when added.
	spaceAddend = (0x7f - 0x20) * ones
)

// broadcast replicates b into every byte of a word.
func broadcast(b byte) uint64 { return ones * uint64(b) }

// equalFlags returns 0x80 in every byte position where w and the
// broadcast candidate word carry equal bytes. The form is carry-free:
// a byte's flag cannot be disturbed by its neighbors.
func equalFlags(w, cand uint64) uint64 {
	x := w ^ cand
	return ^(((x & lsb7) + lsb7) | x) & msb
}

// notSpaceCtrlFlags returns 0x80 in every byte position that must stop a
// whitespace/control run: the low seven bits exceed the space character,
// or the top bit is set.
func notSpaceCtrlFlags(w uint64) uint64 {
	t := (w & lsb7) + spaceAddend
	return (t | w) & msb
}

// movemask gathers the top bit of each byte of flags into the low eight
// bits of the result, first buffer byte in bit 0. flags must carry no
// bits other than the top bit of each byte.
func movemask(flags uint64) uint64 {
	return (flags >> 7) * gather >> 56
}

// partialWord assembles the first t (1..7) bytes of b into a
// little-endian word.
func partialWord(b []byte, t int) uint64 {
	var w uint64
	for i := 0; i < t; i++ {
		w |= uint64(b[i]) << (8 * i)
	}
	return w
}

// LeadingMembersWide processes 32-byte windows: one membership bitmask
// per window, advance while whole windows match, stop at the first clear
// bit. The set must be batch-eligible; the packed candidate list only
// covers sets up to MaxSetBytes.
func LeadingMembersWide(buf []byte, set *ByteSet) int {
	n := 0
	for len(buf)-n >= WideWidth {
		var mask uint32
		for lane := 0; lane < WideWidth/laneSize; lane++ {
			w := binary.LittleEndian.Uint64(buf[n+lane*laneSize:])
			var flags uint64
			for i := 0; i < set.n; i++ {
				flags |= equalFlags(w, set.words[i])
			}
			mask |= uint32(movemask(flags)) << (laneSize * lane)
		}
		r := bits.TrailingZeros32(^mask) // first non-member, 32 when all match
		n += r
		if r < WideWidth {
			return n
		}
	}
	return n + LeadingMembersScalar(buf[n:], set)
}

// LeadingMembersNarrow is the 16-byte window variant of
// LeadingMembersWide.
func LeadingMembersNarrow(buf []byte, set *ByteSet) int {
	n := 0
	for len(buf)-n >= NarrowWidth {
		var mask uint32
		for lane := 0; lane < NarrowWidth/laneSize; lane++ {
			w := binary.LittleEndian.Uint64(buf[n+lane*laneSize:])
			var flags uint64
			for i := 0; i < set.n; i++ {
				flags |= equalFlags(w, set.words[i])
			}
			mask |= uint32(movemask(flags)) << (laneSize * lane)
		}
		// The upper half of the complement is always set, capping the
		// count at the window width.
		r := bits.TrailingZeros32(^mask)
		n += r
		if r < NarrowWidth {
			return n
		}
	}
	return n + LeadingMembersScalar(buf[n:], set)
}

// LeadingSpaceCtrlWide processes 32-byte windows of the
// whitespace/control predicate.
func LeadingSpaceCtrlWide(buf []byte) int {
	n := 0
	for len(buf)-n >= WideWidth {
		var stop uint32
		for lane := 0; lane < WideWidth/laneSize; lane++ {
			w := binary.LittleEndian.Uint64(buf[n+lane*laneSize:])
			stop |= uint32(movemask(notSpaceCtrlFlags(w))) << (laneSize * lane)
		}
		r := bits.TrailingZeros32(stop) // 32 when the whole window is skippable
		n += r
		if r < WideWidth {
			return n
		}
	}
	return n + LeadingSpaceCtrlScalar(buf[n:])
}

// LeadingSpaceCtrlNarrow is the 16-byte window variant of
// LeadingSpaceCtrlWide.
func LeadingSpaceCtrlNarrow(buf []byte) int {
	n := 0
	for len(buf)-n >= NarrowWidth {
		var stop uint32
		for lane := 0; lane < NarrowWidth/laneSize; lane++ {
			w := binary.LittleEndian.Uint64(buf[n+lane*laneSize:])
			stop |= uint32(movemask(notSpaceCtrlFlags(w))) << (laneSize * lane)
		}
		r := bits.TrailingZeros32(stop)
		if r > NarrowWidth {
			r = NarrowWidth
		}
		n += r
		if r < NarrowWidth {
			return n
		}
	}
	return n + LeadingSpaceCtrlScalar(buf[n:])
}

// MatchOrderedSWAR compares expected against the head of buf in word
// lanes, accumulating XOR differences; the match holds only when every
// lane is clean. Requires len(buf) >= len(expected).
func MatchOrderedSWAR(buf, expected []byte) bool {
	n := len(expected)
	if n > len(buf) {
		return false
	}
	var diff uint64
	i := 0
	for ; n-i >= laneSize; i += laneSize {
		diff |= binary.LittleEndian.Uint64(buf[i:]) ^ binary.LittleEndian.Uint64(expected[i:])
	}
	if t := n - i; t > 0 {
		diff |= partialWord(buf[i:], t) ^ partialWord(expected[i:], t)
	}
	return diff == 0
}
