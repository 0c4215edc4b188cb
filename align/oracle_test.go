package align_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-parasail/align"
	"github.com/ajroetker/go-parasail/matrix"
	"github.com/ajroetker/go-parasail/presult"
)

// randomProtein generates a seeded random amino-acid sequence over
// BLOSUM62's alphabet (minus the ambiguity/stop symbols, which would
// make oracle scores depend on exactly which ambiguous residue matrix
// lookup convention is used).
func randomProtein(rng *rand.Rand, n int) []byte {
	const alphabet = "ARNDCQEGHILKMFPSTWYV"
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return out
}

// TestOracleEquivalence checks invariant 1 from spec.md section 8: every
// kernel instantiation agrees with the scalar reference on score,
// end_query, end_ref, and (when requested) the full table, for inputs
// short enough that no lane saturates.
func TestOracleEquivalence(t *testing.T) {
	m, ok := matrix.Lookup("blosum62")
	require.True(t, ok)

	rng := rand.New(rand.NewSource(42))
	s1 := randomProtein(rng, 60)
	s2 := randomProtein(rng, 55)

	type recurrence struct {
		name string
		ref  func([]byte, []byte, int32, int32, *matrix.Matrix, bool) (*presult.Result, error)
		run  func([]byte, []byte, int32, int32, *matrix.Matrix, ...align.Option) (*presult.Result, error)
	}
	recurrences := []recurrence{
		{"nw", align.ReferenceNW, align.NW},
		{"sg", align.ReferenceSG, align.SG},
		{"sw", align.ReferenceSW, align.SW},
	}

	schemes := []align.Scheme{align.SchemeStriped, align.SchemeScan, align.SchemeDiagonal}
	widths := []align.Width{align.Width16, align.Width32, align.Width64}

	for _, rec := range recurrences {
		ref, err := rec.ref(s1, s2, 10, 1, m, true)
		require.NoError(t, err)

		for _, scheme := range schemes {
			for _, width := range widths {
				got, err := rec.run(s1, s2, 10, 1, m,
					align.WithScheme(scheme), align.WithWidth(width), align.WithTable())
				require.NoErrorf(t, err, "%s/%v/%v", rec.name, scheme, width)
				require.Falsef(t, got.Flag.Has(presult.Saturated), "%s/%v/%v unexpectedly saturated", rec.name, scheme, width)

				require.EqualValuesf(t, ref.Score, got.Score, "%s/%v/%v score", rec.name, scheme, width)
				require.Equalf(t, ref.EndQuery, got.EndQuery, "%s/%v/%v end_query", rec.name, scheme, width)
				require.Equalf(t, ref.EndRef, got.EndRef, "%s/%v/%v end_ref", rec.name, scheme, width)

				if diff := cmp.Diff(ref.Table, got.Table); diff != "" {
					t.Errorf("%s/%v/%v table mismatch (-want +got):\n%s\n%s", rec.name, scheme, width, diff, got.DiffTable(ref.Table))
				}
			}
		}
	}
}

// TestOracleSWNonNegativity checks invariant 2: every SW table cell is
// non-negative and the final score is the table's maximum.
func TestOracleSWNonNegativity(t *testing.T) {
	m, ok := matrix.Lookup("blosum62")
	require.True(t, ok)
	rng := rand.New(rand.NewSource(7))
	s1, s2 := randomProtein(rng, 40), randomProtein(rng, 45)

	r, err := align.SW(s1, s2, 10, 1, m, align.WithTable())
	require.NoError(t, err)

	maxCell := int64(0)
	for _, row := range r.Table {
		for _, v := range row {
			require.GreaterOrEqual(t, v, int64(0))
			if v > maxCell {
				maxCell = v
			}
		}
	}
	require.Equal(t, maxCell, r.Score)
}
