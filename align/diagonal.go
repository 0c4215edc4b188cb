package align

import (
	"github.com/ajroetker/go-parasail/matrix"
	"github.com/ajroetker/go-parasail/presult"
	"github.com/ajroetker/go-parasail/simd"
)

// diagonalAlign runs the anti-diagonal kernel (spec.md section 4.4.3):
// cell (i, j) lives on anti-diagonal i+j, and every cell on a diagonal
// is independent of every other cell on that same diagonal, so one
// vector holds up to MaxLanes[T]() cells of a diagonal's H values and
// the kernel needs no query profile — unlike striped/scan it indexes the
// substitution matrix directly, one row-major lookup per lane, since
// there is no stable per-query-symbol vector to precompute against an
// unbounded, non-striped diagonal.
//
// This scheme carries no segmenting cost at all, which makes it the
// dispatcher's choice for queries too short to amortize building a
// striped profile (spec.md section 4.5).
func diagonalAlign[T simd.SignedInts](rec Recurrence, s1, s2 []byte, open, extend int32, m *matrix.Matrix, stats bool, flag presult.Flag) (*presult.Result, error) {
	if err := validateInputs(s1, s2, open, extend, m); err != nil {
		return nil, err
	}

	s1Len, s2Len := len(s1), len(s2)
	minT, _ := typeBounds[T]()
	openT, extendT := T(open), T(extend)

	rows, cols := s1Len+1, s2Len+1
	H := make([][]T, rows)
	E := make([][]T, rows)
	F := make([][]T, rows)
	for i := range H {
		H[i] = make([]T, cols)
		E[i] = make([]T, cols)
		F[i] = make([]T, cols)
	}

	rowBoundary, colBoundary := boundaryTables(rec, s1Len, s2Len, open, extend)
	for j := 0; j < cols; j++ {
		H[0][j] = T(clampToBounds(rowBoundary[j], minT))
		E[0][j] = minT
		F[0][j] = minT
	}
	for i := 0; i < rows; i++ {
		H[i][0] = T(clampToBounds(colBoundary[i], minT))
		E[i][0] = minT
		F[i][0] = minT
	}

	var bounds boundsTracker[T]
	globalMax := int64(minT)
	globalEndQuery, globalEndRef := 0, 0
	lastRowMax := int64(negInf)
	lastRowMaxJ := s2Len - 1

	numLanes := simd.MaxLanes[T]()
	openVec, extendVec := simd.Set(openT), simd.Set(extendT)

	// Sweep anti-diagonals d = i+j, each processed in chunks of at most
	// numLanes cells (a diagonal can be far longer than one vector
	// holds once either sequence exceeds the lane width). d ranges from
	// 2 (the first interior cell, i=j=1) through s1Len+s2Len.
	for d := 2; d <= s1Len+s2Len; d++ {
		iLo := max(1, d-s2Len)
		iHi := min(s1Len, d-1)
		if iLo > iHi {
			continue
		}

		for chunkStart := iLo; chunkStart <= iHi; chunkStart += numLanes {
			chunkEnd := min(chunkStart+numLanes-1, iHi)
			width := chunkEnd - chunkStart + 1

			diagH := make([]T, width)
			diagE := make([]T, width)
			diagF := make([]T, width)
			hLeftOfE := make([]T, width) // H[i][j-1], the open-gap source for E[i][j]
			hAboveF := make([]T, width)  // H[i-1][j], the open-gap source for F[i][j]
			for k := 0; k < width; k++ {
				i := chunkStart + k
				j := d - i
				score := int64(m.Score(s1[i-1], s2[j-1]))
				diagH[k] = T(clampToBounds(int64(H[i-1][j-1])+score, minT))
				diagE[k] = E[i][j-1]
				diagF[k] = F[i-1][j]
				hLeftOfE[k] = H[i][j-1]
				hAboveF[k] = H[i-1][j]
			}

			vDiag := simd.Load(diagH)
			vE := simd.Load(diagE)
			vF := simd.Load(diagF)
			vHLeftOfE := simd.Load(hLeftOfE)
			vHAboveF := simd.Load(hAboveF)

			eCandidate := simd.Max(simd.SaturatedSub(vE, extendVec), simd.SaturatedSub(vHLeftOfE, openVec))
			fCandidate := simd.Max(simd.SaturatedSub(vF, extendVec), simd.SaturatedSub(vHAboveF, openVec))

			vH := simd.Max(simd.Max(vDiag, eCandidate), fCandidate)
			if rec == RecurrenceSW {
				vH = simd.Max(vH, simd.Zero[T]())
			}
			bounds.Update(vH)

			hData, eData, fData := vH.Data(), eCandidate.Data(), fCandidate.Data()
			for k := 0; k < width; k++ {
				i := chunkStart + k
				j := d - i
				H[i][j] = hData[k]
				E[i][j] = eData[k]
				F[i][j] = fData[k]

				v := int64(hData[k])
				if rec == RecurrenceSW && (v > globalMax || (v == globalMax && i-1 < globalEndQuery)) {
					globalMax = v
					globalEndQuery, globalEndRef = i-1, j-1
				}
				if rec == RecurrenceSG && i == s1Len && v > lastRowMax {
					lastRowMax = v
					lastRowMaxJ = j - 1
				}
			}
		}
	}

	if bounds.Saturated(open, m.Max()) {
		return &presult.Result{Flag: flag | presult.Saturated | widthOf[T]().flag()}, nil
	}

	result := &presult.Result{Flag: flag | presult.Diag | widthOf[T]().flag()}
	switch rec {
	case RecurrenceNW:
		result.Score = int64(H[s1Len][s2Len])
		result.EndQuery, result.EndRef = s1Len-1, s2Len-1
	case RecurrenceSG:
		best := lastRowMax
		endQuery, endRef := s1Len-1, lastRowMaxJ
		for i := 1; i < rows; i++ {
			if v := int64(H[i][s2Len]); v > best {
				best = v
				endQuery, endRef = i-1, s2Len-1
			}
		}
		result.Score = best
		result.EndQuery, result.EndRef = endQuery, endRef
	case RecurrenceSW:
		result.Score = globalMax
		result.EndQuery, result.EndRef = globalEndQuery, globalEndRef
	}
	return result, nil
}
