package align_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-parasail/align"
	"github.com/ajroetker/go-parasail/matrix"
)

// TestConcurrentDispatch exercises the claim that align.NW/SG/SW are
// safe to call concurrently from many goroutines on distinct inputs:
// the package's only shared mutable state is the sync.Once-guarded
// dispatch policy cache, which every call reads but none of them write
// after the first initialization.
func TestConcurrentDispatch(t *testing.T) {
	m, ok := matrix.Lookup("blosum62")
	require.True(t, ok)

	g, _ := errgroup.WithContext(context.Background())
	rng := rand.New(rand.NewSource(11))

	seqs := make([][2][]byte, 64)
	for i := range seqs {
		seqs[i] = [2][]byte{randomProtein(rng, 20+i%30), randomProtein(rng, 15+i%25)}
	}

	for i, pair := range seqs {
		i, pair := i, pair
		g.Go(func() error {
			r, err := align.SW(pair[0], pair[1], 10, 1, m)
			if err != nil {
				return fmt.Errorf("seq %d: %w", i, err)
			}
			if r.Score < 0 {
				return fmt.Errorf("seq %d: negative SW score %d", i, r.Score)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
