// Package matrix provides substitution matrices for scoring pairwise
// sequence alignments.
//
// A Matrix maps a pair of residue symbols to an integer score, the way
// BLOSUM and PAM matrices do for proteins and DNAFULL/NUC44 do for
// nucleotides. The striped and scan kernels in package align never
// index a Matrix inside their inner loop; instead package profile
// gathers the scores up front into a striped query profile (see spec
// section 4.2). The diagonal kernel calls Score per cell.
package matrix

import "fmt"

// Matrix is a square substitution matrix over a fixed alphabet.
type Matrix struct {
	name    string
	symbols string
	pos     [256]int8
	scores  []int32
	size    int
	min     int32
	max     int32
}

// NewMatrix builds a Matrix from a symbol alphabet and a row-major score
// table. len(scores) must equal len(symbols)*len(symbols). Symbols not
// present in the alphabet map to position -1 and Score panics if asked
// to look one up; callers that need to tolerate unknown symbols should
// check Contains first.
func NewMatrix(name, symbols string, scores []int32) (*Matrix, error) {
	n := len(symbols)
	if n == 0 {
		return nil, fmt.Errorf("matrix: empty alphabet")
	}
	if len(scores) != n*n {
		return nil, fmt.Errorf("matrix: score table has %d entries, want %d for a %d-symbol alphabet", len(scores), n*n, n)
	}

	m := &Matrix{
		name:    name,
		symbols: symbols,
		scores:  append([]int32(nil), scores...),
		size:    n,
	}
	for i := range m.pos {
		m.pos[i] = -1
	}
	for i := 0; i < n; i++ {
		m.pos[symbols[i]] = int8(i)
	}

	m.min, m.max = scores[0], scores[0]
	for _, s := range scores {
		if s < m.min {
			m.min = s
		}
		if s > m.max {
			m.max = s
		}
	}
	return m, nil
}

// Name returns the matrix's registry name, e.g. "blosum62".
func (m *Matrix) Name() string { return m.name }

// Size returns the number of symbols in the alphabet.
func (m *Matrix) Size() int { return m.size }

// Symbols returns the alphabet, in the order used by the score table's
// rows and columns.
func (m *Matrix) Symbols() string { return m.symbols }

// Contains reports whether sym is part of the matrix's alphabet.
func (m *Matrix) Contains(sym byte) bool {
	return m.pos[sym] >= 0
}

// Index returns sym's row/column position in the score table, or -1 if
// sym is not in the alphabet. The profile builder calls this for every
// query residue while constructing the striped layout, and
// Profile.Vector calls it for each database symbol it is asked for.
func (m *Matrix) Index(sym byte) int {
	return int(m.pos[sym])
}

// Score returns the substitution score for aligning a against b. Panics
// if either symbol is not part of the alphabet; callers crossing a trust
// boundary (user-supplied sequences) should validate with Contains
// first, which is exactly what align.NW/SG/SW do before dispatch.
func (m *Matrix) Score(a, b byte) int32 {
	i, j := m.pos[a], m.pos[b]
	if i < 0 || j < 0 {
		panic(fmt.Sprintf("matrix: symbol %q or %q not in alphabet %q", a, b, m.symbols))
	}
	return m.scores[int(i)*m.size+int(j)]
}

// Row returns the full score row for symbol sym, in alphabet order. The
// profile builder gathers this directly into a query profile segment
// rather than calling Score per database symbol.
func (m *Matrix) Row(sym byte) []int32 {
	i := m.pos[sym]
	if i < 0 {
		panic(fmt.Sprintf("matrix: symbol %q not in alphabet %q", sym, m.symbols))
	}
	start := int(i) * m.size
	return m.scores[start : start+m.size]
}

// Min returns the lowest score anywhere in the matrix.
func (m *Matrix) Min() int32 { return m.min }

// Max returns the highest score anywhere in the matrix.
func (m *Matrix) Max() int32 { return m.max }

var registry = map[string]*Matrix{}

func register(m *Matrix, err error) {
	if err != nil {
		panic(err)
	}
	registry[m.name] = m
}

// Lookup returns a built-in matrix by name ("blosum62", "pam250", ...).
// The bool is false if name is not registered.
func Lookup(name string) (*Matrix, bool) {
	m, ok := registry[name]
	return m, ok
}

// Names returns the names of all built-in matrices, for CLI help text
// and error messages.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
