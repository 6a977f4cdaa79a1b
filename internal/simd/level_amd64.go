//go:build amd64

package simd

import (
	"golang.org/x/sys/cpu"
)

// detectLevel keys the batch width to the widest vector registers the
// host carries: 32-byte windows where AVX2 is present, 16-byte windows
// for SSE4.2, scalar otherwise.
func detectLevel() Level {
	if cpu.X86.HasAVX2 {
		return LevelWide
	}
	if cpu.X86.HasSSE42 {
		return LevelNarrow
	}
	return LevelScalar
}
