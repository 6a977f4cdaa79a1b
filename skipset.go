package parsebase

import (
	"github.com/biggeezerdevelopment/parsebase-go/internal/simd"
)

// SkipSet is a reusable set of byte values for Skip. Build one per
// character class and share it across cursors; construction is the only
// allocating step.
type SkipSet struct {
	set simd.ByteSet
}

// NewSkipSet builds a SkipSet from the bytes of chars. Duplicate bytes
// collapse. Sets of up to 16 distinct values are eligible for the batch
// kernels; larger sets are scanned by the scalar engine.
func NewSkipSet(chars string) *SkipSet {
	return &SkipSet{set: simd.MakeByteSet(chars)}
}

// Contains reports whether b belongs to the set.
func (s *SkipSet) Contains(b byte) bool { return s.set.Contains(b) }
