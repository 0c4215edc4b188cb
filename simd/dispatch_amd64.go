//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	detectCPUFeatures()
}

// detectCPUFeatures walks the fallback order AVX2 -> SSE4.1 -> SSE2 ->
// scalar, same order spec.md section 4.5 names for the C dispatch tables.
// This module is built without GOEXPERIMENT=simd, so the chosen level only
// controls segment width (CurrentWidth) for the kernels below; the
// arithmetic itself always runs as portable Go (ops.go).
func detectCPUFeatures() {
	switch {
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
	case cpu.X86.HasSSE41:
		currentLevel = DispatchSSE41
		currentWidth = 16
	case cpu.X86.HasSSE2:
		currentLevel = DispatchSSE2
		currentWidth = 16
	default:
		setScalarMode()
	}
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}
