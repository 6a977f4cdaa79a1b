//go:build arm64

package simd

// detectLevel picks the narrow level on arm64: NEON registers are 128
// bits wide, matching the 16-byte window.
func detectLevel() Level {
	return LevelNarrow
}
