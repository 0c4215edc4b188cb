package simd

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the ISA a real SIMD build would select for
// this CPU. The fallback order mirrors the C source's dispatch tables:
// AVX2 -> SSE4.1 -> SSE2 -> scalar on amd64, with NEON coequal to SSE4.1
// on arm64.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD; pure Go arithmetic.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates the SSE2 baseline (128-bit, all amd64 CPUs).
	DispatchSSE2

	// DispatchSSE41 indicates SSE4.1 (128-bit, adds integer lane blends
	// the striped/scan kernels would otherwise emulate).
	DispatchSSE41

	// DispatchAVX2 indicates AVX2 (256-bit).
	DispatchAVX2

	// DispatchNEON indicates ARM NEON/ASIMD (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchSSE41:
		return "sse41"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected dispatch level for this runtime. Set once
// by init() in dispatch_*.go; never mutated afterward, so reads from
// concurrent goroutines after program init are always safe (see
// align/dispatch.go for the analogous one-shot guard around kernel
// selection).
var currentLevel DispatchLevel

// currentWidth is the nominal vector width in bytes for currentLevel.
var currentWidth int

// CurrentLevel returns the ISA level selected at process start.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the nominal vector width in bytes: 16 for
// SSE2/SSE4.1/NEON/scalar, 32 for AVX2.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current dispatch
// level, e.g. "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// HasSIMD reports whether a non-scalar ISA was selected.
func HasSIMD() bool {
	return currentLevel != DispatchScalar
}

// NoSimdEnv reports whether PARASAIL_NO_SIMD is set, forcing scalar
// dispatch regardless of detected CPU capability. Useful for reproducing
// a bug reported from a narrower ISA without needing the hardware.
func NoSimdEnv() bool {
	val := os.Getenv("PARASAIL_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns how many lanes of T fit in a vector of CurrentWidth
// bytes. The query-profile builder and striped/scan kernels use this to
// size segWidth for a given lane type.
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
