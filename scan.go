package parsebase

import (
	"github.com/biggeezerdevelopment/parsebase-go/internal/simd"
)

// Skip advances the position past the longest run of bytes belonging to
// set. It stops at the first non-member or cleanly at the end of the
// buffer; a repeated call with the same set is a no-op.
func (c *Cursor) Skip(set *SkipSet) {
	c.pos += simd.LeadingMembers(c.buf[c.pos:], &set.set)
}

// SkipSpaceAndControl advances the position past bytes that are space or
// below as unsigned values. Bytes with the top bit set are never skipped,
// so continuation bytes of multi-byte encoded text stay in place.
func (c *Cursor) SkipSpaceAndControl() {
	c.pos += simd.LeadingSpaceCtrl(c.buf[c.pos:])
}

// ParseExpected consumes expected at the current position. On success the
// position advances by exactly len(expected); on any failure, including a
// mismatch after a matching prefix or too few bytes available, the
// position does not move.
func (c *Cursor) ParseExpected(expected []byte) bool {
	if len(expected) > c.AvailableSize() {
		return false
	}
	if !simd.MatchOrdered(c.buf[c.pos:], expected) {
		return false
	}
	c.pos += len(expected)
	return true
}
