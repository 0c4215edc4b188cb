package align

import (
	"sync"

	"github.com/ajroetker/go-parasail/simd"
)

// dispatchPolicy is the CPU-dependent knobs a dispatch decision needs.
// Computed once per process (see policy) rather than re-read from
// simd.CurrentLevel() on every call, mirroring the C source's pattern of
// resolving a self-overwriting function pointer to a concrete
// implementation the first time it's invoked. Go has no function-pointer
// self-rewrite, so a sync.Once-guarded cache is the idiomatic
// equivalent here.
type dispatchPolicy struct {
	// diagonalMaxQuery is the largest query length for which the
	// diagonal scheme's lack of profile setup still beats striped's
	// profile-build cost. At or below this, diagonal is chosen; above
	// it, striped is preferred. Scan is only selected when the caller pins
	// it explicitly with WithScheme.
	diagonalMaxQuery int
}

var (
	dispatchOnce   sync.Once
	cachedDispatch dispatchPolicy
)

func policy() dispatchPolicy {
	dispatchOnce.Do(func() {
		threshold := 16
		if simd.HasSIMD() {
			// With a SIMD level selected, the threshold is the native
			// vector width in bytes: 16 for SSE2/SSE4.1/NEON, 32 for AVX2.
			threshold = simd.CurrentWidth()
		}
		cachedDispatch = dispatchPolicy{diagonalMaxQuery: threshold}
	})
	return cachedDispatch
}

// selectScheme picks a vectorization scheme for a query of queryLen
// residues, honoring cfg.pinScheme when the caller set one.
func selectScheme(cfg config, queryLen int) Scheme {
	if cfg.pinSchemeSet {
		return cfg.pinScheme
	}
	// Stats requests always run the striped scheme regardless of query
	// length; no vectorized kernel tracks match/similar/length, and
	// finish (align.go) fills those in from the scalar reference.
	if cfg.stats {
		return SchemeStriped
	}
	if queryLen <= policy().diagonalMaxQuery {
		return SchemeDiagonal
	}
	return SchemeStriped
}
