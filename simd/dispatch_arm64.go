//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentWidth = 16
		return
	}

	// ARMv8-A always carries NEON (ASIMD); there is no narrower fallback
	// to walk through the way amd64 has SSE2/SSE4.1 beneath AVX2. Spec.md
	// section 6 lists NEON as coequal with SSE4.1 in the dispatch order.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16
	} else {
		currentLevel = DispatchScalar
		currentWidth = 16
	}
}
