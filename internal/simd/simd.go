// Package simd holds the batch scanning kernels behind the cursor
// operations. Each kernel exists in a wide (32-byte window), narrow
// (16-byte window) and scalar form; the window widths match the vector
// register widths of the hosts the detection code recognizes, and the
// level is picked once at process start.
package simd

const (
	// Window widths for the batch kernels.
	WideWidth   = 32 // 256-bit register's worth of bytes
	NarrowWidth = 16 // 128-bit register's worth of bytes

	// MaxSetBytes is how many distinct candidate bytes fit one match
	// register. Sets larger than this are served by the scalar kernel.
	MaxSetBytes = 16

	laneSize = 8 // bytes per word lane
)

// Level identifies which batch width the dispatching entry points use.
type Level uint8

const (
	LevelScalar Level = iota
	LevelNarrow
	LevelWide
)

func (l Level) String() string {
	switch l {
	case LevelWide:
		return "wide"
	case LevelNarrow:
		return "narrow"
	default:
		return "scalar"
	}
}

var active = detectLevel()

// Active returns the kernel level selected at init for this host.
func Active() Level { return active }

// ByteSet is a set of candidate byte values. It carries a full membership
// table for the scalar kernel and a packed candidate list, pre-broadcast
// into word lanes, for the batch kernels.
type ByteSet struct {
	table [256]bool
	words [MaxSetBytes]uint64 // broadcast candidates for lane compares
	n     int                 // distinct candidates stored in words
	batch bool                // candidate list fits one match register
}

// MakeByteSet builds a ByteSet from the bytes of chars. Duplicates
// collapse. If chars holds more than MaxSetBytes distinct values the
// batch kernels are disabled for the set and only the table is used.
func MakeByteSet(chars string) ByteSet {
	var s ByteSet
	distinct := 0
	for i := 0; i < len(chars); i++ {
		b := chars[i]
		if s.table[b] {
			continue
		}
		s.table[b] = true
		distinct++
		if distinct <= MaxSetBytes {
			s.words[s.n] = broadcast(b)
			s.n++
		}
	}
	s.batch = distinct > 0 && distinct <= MaxSetBytes
	return s
}

// Contains reports whether b is a member of the set.
func (s *ByteSet) Contains(b byte) bool { return s.table[b] }

// Batch reports whether the set qualifies for the batch kernels.
func (s *ByteSet) Batch() bool { return s.batch }

// LeadingMembers returns the length of the run of set members at the
// start of buf.
func LeadingMembers(buf []byte, set *ByteSet) int {
	if !set.batch {
		return LeadingMembersScalar(buf, set)
	}
	switch active {
	case LevelWide:
		return LeadingMembersWide(buf, set)
	case LevelNarrow:
		return LeadingMembersNarrow(buf, set)
	}
	return LeadingMembersScalar(buf, set)
}

// LeadingSpaceCtrl returns the length of the run at the start of buf in
// which every byte is space or below as an unsigned value. Bytes with the
// top bit set terminate the run.
func LeadingSpaceCtrl(buf []byte) int {
	switch active {
	case LevelWide:
		return LeadingSpaceCtrlWide(buf)
	case LevelNarrow:
		return LeadingSpaceCtrlNarrow(buf)
	}
	return LeadingSpaceCtrlScalar(buf)
}

// MatchOrdered reports whether buf begins with expected. Tokens longer
// than one match register take the scalar path.
func MatchOrdered(buf, expected []byte) bool {
	if len(expected) > len(buf) {
		return false
	}
	if active == LevelScalar || len(expected) > MaxSetBytes {
		return MatchOrderedScalar(buf, expected)
	}
	return MatchOrderedSWAR(buf, expected)
}
