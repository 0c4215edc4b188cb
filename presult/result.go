package presult

import (
	"fmt"
	"strings"
)

// Result is the output of a single NW/SG/SW alignment: the optimal
// score, where it ends in each sequence, and (depending on which
// Option values the caller requested) the full DP table, the last
// row/column, and/or match/similar/length statistics.
type Result struct {
	Flag Flag

	Score   int64
	EndQuery int
	EndRef   int

	// Length is the alignment length; only meaningful alongside Stats.
	Length int64
	// Matches and Similar count identical and positive-scoring residue
	// pairs respectively; only meaningful alongside Stats.
	Matches int64
	Similar int64

	// Table holds the full H matrix, row-major [queryLen+1][refLen+1],
	// present only when Flag.Has(Table).
	Table [][]int64

	// RowLast and ColLast hold the final row and column of H,
	// present only when Flag.Has(RowCol).
	RowLast []int64
	ColLast []int64
}

// NewEmpty builds a Result carrying only the score and end positions.
func NewEmpty(flag Flag, score int64, endQuery, endRef int) *Result {
	return &Result{Flag: flag, Score: score, EndQuery: endQuery, EndRef: endRef}
}

// NewTable builds a Result that also carries the full DP table.
func NewTable(flag Flag, score int64, endQuery, endRef int, table [][]int64) *Result {
	r := NewEmpty(flag|Table, score, endQuery, endRef)
	r.Table = table
	return r
}

// NewRowCol builds a Result that carries the final row and column of
// the DP table instead of the whole table, a cheaper alternative for
// callers that only need traceback-adjacent boundary data.
func NewRowCol(flag Flag, score int64, endQuery, endRef int, rowLast, colLast []int64) *Result {
	r := NewEmpty(flag|RowCol, score, endQuery, endRef)
	r.RowLast = rowLast
	r.ColLast = colLast
	return r
}

// NewStatsTable builds a Result carrying both the full DP table and
// match/similar/length statistics.
func NewStatsTable(flag Flag, score int64, endQuery, endRef int, table [][]int64, matches, similar, length int64) *Result {
	r := NewTable(flag|Stats, score, endQuery, endRef, table)
	r.Matches = matches
	r.Similar = similar
	r.Length = length
	return r
}

// String summarizes the result for logging: score, end positions, and
// the active flag bits.
func (r *Result) String() string {
	return fmt.Sprintf("score=%d end_query=%d end_ref=%d flags=%s", r.Score, r.EndQuery, r.EndRef, r.Flag)
}

// DebugTable renders the full DP table as a grid of scores, one row per
// line, for use in test failure messages. Returns "<no table>" if the
// Result doesn't carry one.
func (r *Result) DebugTable() string {
	if !r.Flag.Has(Table) {
		return "<no table>"
	}
	var b strings.Builder
	for _, row := range r.Table {
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// DiffTable compares r's table against want cell by cell and returns a
// human-readable report of the first mismatch, or "" if they match.
// Mirrors the original C test suite's practice of reporting the first
// disagreeing cell rather than dumping both tables.
func (r *Result) DiffTable(want [][]int64) string {
	if !r.Flag.Has(Table) {
		return "result has no table"
	}
	if len(r.Table) != len(want) {
		return fmt.Sprintf("row count mismatch: got %d, want %d", len(r.Table), len(want))
	}
	for i := range r.Table {
		if len(r.Table[i]) != len(want[i]) {
			return fmt.Sprintf("row %d: column count mismatch: got %d, want %d", i, len(r.Table[i]), len(want[i]))
		}
		for j := range r.Table[i] {
			if r.Table[i][j] != want[i][j] {
				return fmt.Sprintf("cell (%d,%d): got %d, want %d", i, j, r.Table[i][j], want[i][j])
			}
		}
	}
	return ""
}
