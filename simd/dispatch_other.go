//go:build !amd64 && !arm64

package simd

func init() {
	// Other architectures (wasm, riscv64, ...) have no ISA table here yet;
	// fall back to scalar mode, same as amd64/arm64 do when their feature
	// detection comes up empty.
	currentLevel = DispatchScalar
	currentWidth = 16
}
