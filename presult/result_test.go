package presult

import (
	"strings"
	"testing"
)

func TestFlagString(t *testing.T) {
	f := SW | Striped | Bits8
	got := f.String()
	for _, want := range []string{"sw", "striped", "8bit"} {
		if !strings.Contains(got, want) {
			t.Errorf("Flag.String() = %q, missing %q", got, want)
		}
	}
}

func TestFlagHas(t *testing.T) {
	f := NW | Saturated
	if !f.Has(NW) {
		t.Error("expected Has(NW) true")
	}
	if f.Has(SW) {
		t.Error("expected Has(SW) false")
	}
	if !f.Has(NW | Saturated) {
		t.Error("expected Has(NW|Saturated) true")
	}
}

func TestWidthFlag(t *testing.T) {
	cases := map[int]Flag{8: Bits8, 16: Bits16, 32: Bits32, 64: Bits64, 7: 0}
	for width, want := range cases {
		if got := WidthFlag(width); got != want {
			t.Errorf("WidthFlag(%d) = %v, want %v", width, got, want)
		}
	}
}

func TestNewEmpty(t *testing.T) {
	r := NewEmpty(SW, 42, 3, 5)
	if r.Score != 42 || r.EndQuery != 3 || r.EndRef != 5 {
		t.Errorf("unexpected result fields: %+v", r)
	}
	if r.Flag.Has(Table) {
		t.Error("NewEmpty should not set Table flag")
	}
}

func TestNewTableSetsFlag(t *testing.T) {
	table := [][]int64{{0, -1}, {-1, 1}}
	r := NewTable(NW, 1, 1, 1, table)
	if !r.Flag.Has(Table) {
		t.Error("expected Table flag set")
	}
	if diff := r.DiffTable(table); diff != "" {
		t.Errorf("unexpected diff: %s", diff)
	}
}

func TestDiffTableDetectsMismatch(t *testing.T) {
	r := NewTable(NW, 1, 1, 1, [][]int64{{0, -1}, {-1, 2}})
	diff := r.DiffTable([][]int64{{0, -1}, {-1, 1}})
	if diff == "" {
		t.Fatal("expected mismatch to be reported")
	}
}

func TestDebugTableNoTable(t *testing.T) {
	r := NewEmpty(SW, 1, 0, 0)
	if r.DebugTable() != "<no table>" {
		t.Errorf("DebugTable() = %q, want <no table>", r.DebugTable())
	}
}
