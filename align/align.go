// Package align computes pairwise sequence alignment scores under the
// three classic recurrences (global/Needleman-Wunsch, semi-global, and
// local/Smith-Waterman) using vectorized DP kernels over a fixed set of
// lane widths, with automatic width escalation when a narrower kernel's
// score would overflow.
//
// Three vectorization schemes back the generic kernels: striped
// (Farrar's query-profile layout with lazy-F correction), scan (the
// striped layout's fixed-cost doubling alternative to lazy-F), and
// diagonal (anti-diagonal sweep, no profile, best for short queries).
// Callers normally never choose a scheme or width directly; NW, SG, and
// SW pick both automatically and escalate on saturation. WithScheme and
// WithWidth pin either choice, primarily for tests that need to exercise
// one kernel instantiation directly.
package align

import (
	"github.com/ajroetker/go-parasail/matrix"
	"github.com/ajroetker/go-parasail/presult"
)

// NW computes global (Needleman-Wunsch) alignment: both sequences are
// consumed end to end under the given substitution matrix and affine
// gap penalties (open is charged once per gap, extend for every
// additional residue in it).
func NW(s1, s2 []byte, open, extend int32, m *matrix.Matrix, opts ...Option) (*presult.Result, error) {
	return align(RecurrenceNW, presult.NW, s1, s2, open, extend, m, opts)
}

// SG computes semi-global alignment: leading gaps in s1 (the query) are
// penalized; leading and trailing gaps in s2 (the database) are free;
// the score is the best cell of the last row or last column, so
// trailing query residues may also be left unaligned for free.
func SG(s1, s2 []byte, open, extend int32, m *matrix.Matrix, opts ...Option) (*presult.Result, error) {
	return align(RecurrenceSG, presult.SG, s1, s2, open, extend, m, opts)
}

// SW computes local (Smith-Waterman) alignment: the highest-scoring
// substring pair, with H never allowed below zero.
func SW(s1, s2 []byte, open, extend int32, m *matrix.Matrix, opts ...Option) (*presult.Result, error) {
	return align(RecurrenceSW, presult.SW, s1, s2, open, extend, m, opts)
}

// widthOrder is the escalation ladder: each width is tried in turn until
// one produces a result without the Saturated flag set.
var widthOrder = []Width{Width8, Width16, Width32, Width64}

func align(rec Recurrence, flag presult.Flag, s1, s2 []byte, open, extend int32, m *matrix.Matrix, opts []Option) (*presult.Result, error) {
	cfg := resolveConfig(opts)
	scheme := selectScheme(cfg, len(s1))

	widths := widthOrder
	if cfg.pinWidthSet {
		widths = []Width{cfg.pinWidth}
	}

	var last *presult.Result
	for _, w := range widths {
		r, err := runKernel(scheme, w, rec, s1, s2, open, extend, m, cfg.stats, flag)
		if err != nil {
			return nil, err
		}
		last = r
		if !r.Flag.Has(presult.Saturated) {
			return finish(r, cfg, rec, s1, s2, open, extend, m)
		}
	}
	// Every width saturated (possible only if the caller pinned one);
	// return the widest attempt's zeroed result as-is.
	return last, nil
}

// runKernel instantiates and runs the (scheme, width) kernel pair. Go
// generics need the concrete lane type at the call site, so this is a
// plain type switch rather than a table of function values — the
// switch arms are the only place a width maps to a Go integer type.
func runKernel(scheme Scheme, w Width, rec Recurrence, s1, s2 []byte, open, extend int32, m *matrix.Matrix, stats bool, flag presult.Flag) (*presult.Result, error) {
	switch scheme {
	case SchemeDiagonal:
		switch w {
		case Width8:
			return diagonalAlign[int8](rec, s1, s2, open, extend, m, stats, flag)
		case Width16:
			return diagonalAlign[int16](rec, s1, s2, open, extend, m, stats, flag)
		case Width32:
			return diagonalAlign[int32](rec, s1, s2, open, extend, m, stats, flag)
		default:
			return diagonalAlign[int64](rec, s1, s2, open, extend, m, stats, flag)
		}
	case SchemeScan:
		switch w {
		case Width8:
			return scanAlign[int8](rec, s1, s2, open, extend, m, stats, flag)
		case Width16:
			return scanAlign[int16](rec, s1, s2, open, extend, m, stats, flag)
		case Width32:
			return scanAlign[int32](rec, s1, s2, open, extend, m, stats, flag)
		default:
			return scanAlign[int64](rec, s1, s2, open, extend, m, stats, flag)
		}
	default:
		switch w {
		case Width8:
			return stripedAlign[int8](rec, s1, s2, open, extend, m, stats, flag)
		case Width16:
			return stripedAlign[int16](rec, s1, s2, open, extend, m, stats, flag)
		case Width32:
			return stripedAlign[int32](rec, s1, s2, open, extend, m, stats, flag)
		default:
			return stripedAlign[int64](rec, s1, s2, open, extend, m, stats, flag)
		}
	}
}

// finish attaches WithTable/WithRowCol/WithStats output to a successful
// result. Table and rowcol need the full O(m*n) table, which none of the
// vectorized kernels materialize (they only ever keep the live DP
// columns/segments needed for the recurrence), and none of them track
// match/similar/length, so when any of these is requested this reruns
// the scalar reference path, cheap relative to the normal
// anti-saturation retries and never invoked unless a caller explicitly
// asked for one of them.
func finish(r *presult.Result, cfg config, rec Recurrence, s1, s2 []byte, open, extend int32, m *matrix.Matrix) (*presult.Result, error) {
	if !cfg.table && !cfg.rowcol && !cfg.stats {
		return r, nil
	}
	ref, err := referenceAlign(rec, s1, s2, open, extend, m, cfg.stats, r.Flag&^(presult.Striped|presult.Scan|presult.Diag))
	if err != nil {
		return nil, err
	}
	if cfg.stats {
		r.Matches, r.Similar, r.Length = ref.Matches, ref.Similar, ref.Length
		r.Flag |= presult.Stats
	}
	if cfg.table {
		r.Table = ref.Table
		r.Flag |= presult.Table
	}
	if cfg.rowcol {
		rows := len(ref.Table)
		cols := 0
		if rows > 0 {
			cols = len(ref.Table[0])
		}
		row := make([]int64, cols)
		copy(row, ref.Table[rows-1])
		col := make([]int64, rows)
		for i := 0; i < rows; i++ {
			col[i] = ref.Table[i][cols-1]
		}
		r.RowLast = row
		r.ColLast = col
		r.Flag |= presult.RowCol
	}
	return r, nil
}
