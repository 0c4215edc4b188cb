package profile

import (
	"testing"

	"github.com/ajroetker/go-parasail/matrix"
)

func TestBuildSegLen(t *testing.T) {
	m, _ := matrix.Lookup("blosum62")
	p, err := Build[int16]([]byte("ACDEFGHIK"), m, 4, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// 9 residues over 4 lanes -> segLen = ceil(9/4) = 3.
	if p.SegLen != 3 {
		t.Errorf("SegLen = %d, want 3", p.SegLen)
	}
	if len(p.Vectors) != m.Size()*p.SegLen {
		t.Errorf("len(Vectors) = %d, want %d", len(p.Vectors), m.Size()*p.SegLen)
	}
}

func TestVectorMatchesMatrixScore(t *testing.T) {
	m, _ := matrix.Lookup("blosum62")
	query := []byte("ACDEFG")
	p, err := Build[int32](query, m, 2, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for s := 0; s < p.SegLen; s++ {
		v, err := p.Vector('C', s)
		if err != nil {
			t.Fatalf("Vector: %v", err)
		}
		for lane := 0; lane < p.NumLanes; lane++ {
			qpos := lane*p.SegLen + s
			want := int32(0)
			if qpos < len(query) {
				want = m.Score(query[qpos], 'C')
			}
			if got := v.Data()[lane]; got != want {
				t.Errorf("segment %d lane %d: got %d, want %d", s, lane, got, want)
			}
		}
	}
}

func TestBuildStatsMasks(t *testing.T) {
	m, _ := matrix.Lookup("blosum62")
	query := []byte("AAAA")
	p, err := Build[int8](query, m, 2, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	k := m.Index('A')
	for s := 0; s < p.SegLen; s++ {
		mask := p.IsMatch[k*p.SegLen+s]
		if !mask.AllTrue() {
			t.Errorf("segment %d: expected all query positions to match symbol A", s)
		}
	}
}

func TestBuildRejectsEmptyQuery(t *testing.T) {
	m, _ := matrix.Lookup("blosum62")
	if _, err := Build[int16](nil, m, 4, false); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestBuildRejectsUnknownSymbol(t *testing.T) {
	m, _ := matrix.Lookup("blosum62")
	if _, err := Build[int16]([]byte("ACGT1"), m, 4, false); err == nil {
		t.Fatal("expected error for query symbol outside alphabet")
	}
}

func TestVectorRejectsUnknownSymbol(t *testing.T) {
	m, _ := matrix.Lookup("blosum62")
	p, err := Build[int16]([]byte("ACDE"), m, 2, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := p.Vector('1', 0); err == nil {
		t.Fatal("expected error for unknown database symbol")
	}
}
