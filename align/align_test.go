package align_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-parasail/align"
	"github.com/ajroetker/go-parasail/matrix"
	"github.com/ajroetker/go-parasail/presult"
)

func blosum62(t *testing.T) *matrix.Matrix {
	t.Helper()
	m, ok := matrix.Lookup("blosum62")
	require.True(t, ok)
	return m
}

// Scenarios 1-3: the canonical HEAGAWGHEE/PAWHEAE triple under BLOSUM62,
// open=10 extend=1 (spec.md section 8).
func TestScenarioHEAGAWGHEE(t *testing.T) {
	s1, s2 := []byte("HEAGAWGHEE"), []byte("PAWHEAE")
	m := blosum62(t)

	t.Run("sw", func(t *testing.T) {
		r, err := align.SW(s1, s2, 10, 1, m)
		require.NoError(t, err)
		require.EqualValues(t, 28, r.Score)
		require.Equal(t, 8, r.EndQuery)
		require.Equal(t, 6, r.EndRef)
	})

	t.Run("nw", func(t *testing.T) {
		r, err := align.NW(s1, s2, 10, 1, m)
		require.NoError(t, err)
		require.EqualValues(t, 19, r.Score)
		require.Equal(t, 9, r.EndQuery)
		require.Equal(t, 6, r.EndRef)
	})

	t.Run("sg", func(t *testing.T) {
		r, err := align.SG(s1, s2, 10, 1, m)
		require.NoError(t, err)
		require.EqualValues(t, 22, r.Score)
	})
}

// Scenario 4: identical runs of "A" score as a plain multiple of the
// self-match, across every scheme and width.
func TestScenarioAAAA(t *testing.T) {
	s1 := []byte(strings.Repeat("A", 4))
	s2 := []byte(strings.Repeat("A", 4))
	m := blosum62(t)
	want := int64(4) * int64(m.Score('A', 'A'))

	for _, scheme := range []align.Scheme{align.SchemeStriped, align.SchemeScan, align.SchemeDiagonal} {
		for _, width := range []align.Width{align.Width8, align.Width16, align.Width32, align.Width64} {
			r, err := align.NW(s1, s2, 10, 1, m, align.WithScheme(scheme), align.WithWidth(width))
			require.NoError(t, err)
			require.EqualValuesf(t, want, r.Score, "scheme=%v width=%v", scheme, width)
		}
	}
}

// Scenario 5: a long run of "A" saturates the 8-bit striped SW kernel,
// and automatic escalation recovers the correct score at a wider width.
func TestScenarioSaturationEscalates(t *testing.T) {
	s1 := []byte(strings.Repeat("A", 200))
	s2 := []byte(strings.Repeat("A", 200))
	m := blosum62(t)

	pinned, err := align.SW(s1, s2, 10, 1, m,
		align.WithScheme(align.SchemeStriped), align.WithWidth(align.Width8))
	require.NoError(t, err)
	require.True(t, pinned.Flag.Has(presult.Saturated), "expected Saturated bit set for pinned 8-bit kernel")

	escalated, err := align.SW(s1, s2, 10, 1, m, align.WithScheme(align.SchemeStriped))
	require.NoError(t, err)
	require.False(t, escalated.Flag.Has(presult.Saturated))
	require.EqualValues(t, 200*int64(m.Score('A', 'A')), escalated.Score)
}

func TestNWRejectsEmptySequence(t *testing.T) {
	m := blosum62(t)
	_, err := align.NW(nil, []byte("A"), 10, 1, m)
	require.ErrorIs(t, err, align.ErrEmptySequence)
}

func TestNWRejectsNilMatrix(t *testing.T) {
	_, err := align.NW([]byte("A"), []byte("A"), 10, 1, nil)
	require.ErrorIs(t, err, align.ErrNilMatrix)
}

func TestWithTableReturnsScoreTable(t *testing.T) {
	m := blosum62(t)
	s1, s2 := []byte("HEAGAWGHEE"), []byte("PAWHEAE")
	r, err := align.NW(s1, s2, 10, 1, m, align.WithTable())
	require.NoError(t, err)
	require.NotNil(t, r.Table)
	require.EqualValues(t, r.Score, r.Table[len(s1)][len(s2)])
}
