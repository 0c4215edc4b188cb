package align

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-parasail/matrix"
	"github.com/ajroetker/go-parasail/presult"
)

// negInf is a sentinel far enough from zero that a single gap-open or
// gap-extend subtraction never wraps, but still comparable with plain
// int64 arithmetic. Mirrors the C source's "INT32_MIN/2" convention
// from sg_scan.c, widened to int64 since the reference always runs at
// full width.
const negInf = math.MinInt64 / 4

// refCell carries the stats triple alongside a DP value so the
// non-stats and stats code paths can share one recurrence.
type refCell struct {
	score   int64
	matches int64
	similar int64
	length  int64
}

func negInfCell() refCell { return refCell{score: negInf} }

// better returns whichever of a, b has the higher score, the stats
// triple following the score the same way parasail's *_stats kernels
// propagate (M,S,L) through whichever recurrence branch wins, without
// any separate traceback pass.
func better(a, b refCell) refCell {
	if a.score >= b.score {
		return a
	}
	return b
}

// ReferenceNW computes global (Needleman-Wunsch) alignment with the
// textbook Gotoh triple-nested-loop recurrence, in 64-bit arithmetic.
// This is both the oracle align/oracle_test.go checks every vectorized
// kernel against, and the routine small-input callers should reach for
// directly when SIMD setup cost would dominate (spec.md's supplemented
// "exported reference path", mirroring parasail_nw).
func ReferenceNW(s1, s2 []byte, open, extend int32, m *matrix.Matrix, stats bool) (*presult.Result, error) {
	return referenceAlign(RecurrenceNW, s1, s2, open, extend, m, stats, presult.NW)
}

// ReferenceSG computes semi-global alignment: leading gaps in s1 (the
// query) are penalized, leading and trailing gaps in s2 are free, and
// the score is the best cell of the last row or last column, so
// trailing query residues may also be left unaligned for free.
func ReferenceSG(s1, s2 []byte, open, extend int32, m *matrix.Matrix, stats bool) (*presult.Result, error) {
	return referenceAlign(RecurrenceSG, s1, s2, open, extend, m, stats, presult.SG)
}

// ReferenceSW computes local (Smith-Waterman) alignment.
func ReferenceSW(s1, s2 []byte, open, extend int32, m *matrix.Matrix, stats bool) (*presult.Result, error) {
	return referenceAlign(RecurrenceSW, s1, s2, open, extend, m, stats, presult.SW)
}

func referenceAlign(rec Recurrence, s1, s2 []byte, open, extend int32, m *matrix.Matrix, stats bool, flag presult.Flag) (*presult.Result, error) {
	if err := validateInputs(s1, s2, open, extend, m); err != nil {
		return nil, err
	}

	rows, cols := len(s1)+1, len(s2)+1
	H := make([][]refCell, rows)
	E := make([][]refCell, rows)
	F := make([][]refCell, rows)
	for i := range H {
		H[i] = make([]refCell, cols)
		E[i] = make([]refCell, cols)
		F[i] = make([]refCell, cols)
	}

	openExt := int64(open)
	extendExt := int64(extend)

	// Boundary initialization.
	for j := 0; j < cols; j++ {
		E[0][j] = negInfCell()
		F[0][j] = negInfCell()
		switch rec {
		case RecurrenceNW:
			if j == 0 {
				H[0][j] = refCell{}
			} else {
				H[0][j] = refCell{score: -openExt - int64(j-1)*extendExt}
			}
		case RecurrenceSG, RecurrenceSW:
			H[0][j] = refCell{} // free leading database gap (SG) / local restart (SW)
		}
	}
	for i := 1; i < rows; i++ {
		E[i][0] = negInfCell()
		F[i][0] = negInfCell()
		switch rec {
		case RecurrenceSW:
			H[i][0] = refCell{}
		default: // NW and SG both penalize a leading query gap
			H[i][0] = refCell{score: -openExt - int64(i-1)*extendExt}
		}
	}

	globalMax := refCell{score: negInf}
	globalMaxI, globalMaxJ := 0, 0

	for i := 1; i < rows; i++ {
		a := s1[i-1]
		for j := 1; j < cols; j++ {
			b := s2[j-1]

			eOpen := refCell{score: H[i][j-1].score - openExt, matches: H[i][j-1].matches, similar: H[i][j-1].similar, length: H[i][j-1].length}
			eExt := refCell{score: E[i][j-1].score - extendExt, matches: E[i][j-1].matches, similar: E[i][j-1].similar, length: E[i][j-1].length}
			E[i][j] = better(eExt, eOpen)

			fOpen := refCell{score: H[i-1][j].score - openExt, matches: H[i-1][j].matches, similar: H[i-1][j].similar, length: H[i-1][j].length}
			fExt := refCell{score: F[i-1][j].score - extendExt, matches: F[i-1][j].matches, similar: F[i-1][j].similar, length: F[i-1][j].length}
			F[i][j] = better(fExt, fOpen)

			sc := int64(m.Score(a, b))
			diag := refCell{
				score:   H[i-1][j-1].score + sc,
				matches: H[i-1][j-1].matches,
				similar: H[i-1][j-1].similar,
				length:  H[i-1][j-1].length + 1,
			}
			if a == b {
				diag.matches++
			}
			if sc > 0 {
				diag.similar++
			}

			h := better(better(diag, E[i][j]), F[i][j])
			if rec == RecurrenceSW && h.score < 0 {
				h = refCell{}
			}
			H[i][j] = h

			if h.score > globalMax.score {
				globalMax = h
				globalMaxI, globalMaxJ = i, j
			}
		}
	}

	var result refCell
	endI, endJ := rows-1, cols-1

	switch rec {
	case RecurrenceNW:
		result = H[rows-1][cols-1]
	case RecurrenceSG:
		result = negInfCell()
		endI, endJ = rows-1, 1
		for j := 1; j < cols; j++ {
			if H[rows-1][j].score > result.score {
				result = H[rows-1][j]
				endJ = j
			}
		}
		for i := 1; i < rows; i++ {
			if H[i][cols-1].score > result.score {
				result = H[i][cols-1]
				endI, endJ = i, cols-1
			}
		}
	case RecurrenceSW:
		result = globalMax
		endI, endJ = globalMaxI, globalMaxJ
	}

	r := &presult.Result{
		Flag:     flag,
		Score:    result.score,
		EndQuery: endI - 1,
		EndRef:   endJ - 1,
	}
	if stats {
		r.Flag |= presult.Stats
		r.Matches = result.matches
		r.Similar = result.similar
		r.Length = result.length
	}
	// The reference always carries the full table: oracle_test.go needs
	// it to check score_table cell-by-cell against every vectorized
	// kernel, and the reference is already O(m*n) so this adds nothing
	// asymptotically.
	table := make([][]int64, rows)
	for i := range table {
		table[i] = make([]int64, cols)
		for j := range table[i] {
			table[i][j] = H[i][j].score
		}
	}
	r.Table = table
	r.Flag |= presult.Table
	return r, nil
}

func validateInputs(s1, s2 []byte, open, extend int32, m *matrix.Matrix) error {
	if len(s1) == 0 || len(s2) == 0 {
		return ErrEmptySequence
	}
	if m == nil {
		return ErrNilMatrix
	}
	if open < 0 || extend < 0 {
		return ErrInvalidGapPenalty
	}
	for _, s := range [2][]byte{s1, s2} {
		for _, c := range s {
			if !m.Contains(c) {
				return fmt.Errorf("align: symbol %q not in matrix %q alphabet", c, m.Name())
			}
		}
	}
	return nil
}
