// Package profile builds the striped query profile the striped and
// scan alignment kernels consume. A profile precomputes, for every
// symbol in the matrix's alphabet, the per-segment score vectors in
// the striping order the kernels index: query position i maps to
// segment i%segLen and lane i/segLen, so a single SIMD vector holds
// one cell from each of segWidth independent lanes of the query.
//
// Diagonal kernels don't use a profile; they index the substitution
// matrix directly, one cell at a time.
package profile

import (
	"fmt"

	"github.com/ajroetker/go-parasail/matrix"
	"github.com/ajroetker/go-parasail/simd"
)

// Profile holds the striped query profile for one query sequence under
// one substitution matrix, specialized to lane type T.
type Profile[T simd.Integers] struct {
	Matrix   *matrix.Matrix
	QueryLen int
	SegLen   int
	NumLanes int

	// Vectors is a flat N*SegLen array: Vectors[k*SegLen+s] is the
	// vector for alphabet symbol k, segment s. Lane l within that
	// vector holds the score of aligning query residue l*SegLen+s
	// against symbol k, or 0 if l*SegLen+s >= QueryLen.
	Vectors []simd.Vec[T]

	// IsMatch and IsSimilar mirror Vectors' layout but hold boolean
	// masks instead of scores, for stats-mode kernels: IsMatch[k*SegLen+s]
	// lane l is true when symbol k equals the query residue at
	// l*SegLen+s; IsSimilar is true when the substitution score there
	// is positive. Only populated when Build is called with stats true.
	IsMatch   []simd.Mask[T]
	IsSimilar []simd.Mask[T]
}

// Build constructs a striped query profile for query under m, sized to
// numLanes lanes of type T. When stats is true, IsMatch/IsSimilar masks
// are also populated.
func Build[T simd.Integers](query []byte, m *matrix.Matrix, numLanes int, stats bool) (*Profile[T], error) {
	if len(query) == 0 {
		return nil, fmt.Errorf("profile: empty query")
	}
	if m == nil {
		return nil, fmt.Errorf("profile: nil matrix")
	}
	if numLanes <= 0 {
		return nil, fmt.Errorf("profile: numLanes must be positive, got %d", numLanes)
	}

	segLen := (len(query) + numLanes - 1) / numLanes
	aligned := len(query)%numLanes == 0
	n := m.Size()

	p := &Profile[T]{
		Matrix:   m,
		QueryLen: len(query),
		SegLen:   segLen,
		NumLanes: numLanes,
		Vectors:  make([]simd.Vec[T], n*segLen),
	}
	if stats {
		p.IsMatch = make([]simd.Mask[T], n*segLen)
		p.IsSimilar = make([]simd.Mask[T], n*segLen)
	}

	symbols := m.Symbols()
	for k := 0; k < n; k++ {
		sym := symbols[k]
		row := m.Row(sym)
		for s := 0; s < segLen; s++ {
			lanes := make([]T, numLanes)
			var matchBits, similarBits []bool
			if stats {
				matchBits = make([]bool, numLanes)
				similarBits = make([]bool, numLanes)
			}
			for l := 0; l < numLanes; l++ {
				qpos := l*segLen + s
				if !aligned && qpos >= len(query) {
					continue // padding lane stays at neutral score 0
				}
				qsym := query[qpos]
				qidx := m.Index(qsym)
				if qidx < 0 {
					return nil, fmt.Errorf("profile: query symbol %q at position %d not in matrix alphabet %q", qsym, qpos, m.Symbols())
				}
				lanes[l] = T(row[qidx])
				if stats {
					matchBits[l] = qsym == sym
					similarBits[l] = row[qidx] > 0
				}
			}
			p.Vectors[k*segLen+s] = simd.Load(lanes)
			if stats {
				p.IsMatch[k*segLen+s] = simd.LoadMask[T](matchBits)
				p.IsSimilar[k*segLen+s] = simd.LoadMask[T](similarBits)
			}
		}
	}
	return p, nil
}

// Vector returns the score vector for database symbol dbSym at
// segment s, the expression the striped kernel's inner loop evaluates
// once per (segment, database position) as "H += profile[s2[j]][i]".
func (p *Profile[T]) Vector(dbSym byte, s int) (simd.Vec[T], error) {
	k := p.Matrix.Index(dbSym)
	if k < 0 {
		var zero simd.Vec[T]
		return zero, fmt.Errorf("profile: database symbol %q not in matrix alphabet %q", dbSym, p.Matrix.Symbols())
	}
	return p.Vectors[k*p.SegLen+s], nil
}
