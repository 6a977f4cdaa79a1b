//go:build !amd64 && !arm64

package simd

// detectLevel falls back to the scalar kernels on architectures the
// detection code does not recognize.
func detectLevel() Level {
	return LevelScalar
}
