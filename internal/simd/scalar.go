package simd

// The scalar kernels are the reference semantics for their batch
// counterparts; the two must agree on every input.

// LeadingMembersScalar walks buf one byte at a time using the membership
// table.
func LeadingMembersScalar(buf []byte, set *ByteSet) int {
	i := 0
	for ; i < len(buf); i++ {
		if !set.table[buf[i]] {
			break
		}
	}
	return i
}

// LeadingSpaceCtrlScalar compares each byte as unsigned against the space
// character. Bytes with the top bit set compare greater than space and
// stop the run.
func LeadingSpaceCtrlScalar(buf []byte) int {
	i := 0
	for ; i < len(buf); i++ {
		if buf[i] > ' ' {
			break
		}
	}
	return i
}

// MatchOrderedScalar compares buf against expected byte by byte. It only
// reports; the caller owns the cursor position, so a mismatch after a
// matching prefix moves nothing.
func MatchOrderedScalar(buf, expected []byte) bool {
	if len(expected) > len(buf) {
		return false
	}
	for i := 0; i < len(expected); i++ {
		if buf[i] != expected[i] {
			return false
		}
	}
	return true
}
