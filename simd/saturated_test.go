package simd

import "testing"

func TestSaturatedAddInt8(t *testing.T) {
	a := Load([]int8{120, -120, 50, -50})
	b := Load([]int8{10, -10, 50, -50})
	result := SaturatedAdd(a, b)

	expected := []int8{127, -128, 100, -100}
	for i, want := range expected {
		if got := result.Data()[i]; got != want {
			t.Errorf("lane %d: got %d, want %d", i, got, want)
		}
	}
}

func TestSaturatedSubInt8(t *testing.T) {
	a := Load([]int8{-120, 120, 0, -50})
	b := Load([]int8{10, -10, 0, 50})
	result := SaturatedSub(a, b)

	expected := []int8{-128, 127, 0, -100}
	for i, want := range expected {
		if got := result.Data()[i]; got != want {
			t.Errorf("lane %d: got %d, want %d", i, got, want)
		}
	}
}

func TestSaturatedAddInt16(t *testing.T) {
	a := Load([]int16{32760, -32760, 0})
	b := Load([]int16{10, -10, 5})
	result := SaturatedAdd(a, b)

	expected := []int16{32767, -32768, 5}
	for i, want := range expected {
		if got := result.Data()[i]; got != want {
			t.Errorf("lane %d: got %d, want %d", i, got, want)
		}
	}
}

func TestSaturatedAddInt32NoOverflowForTypicalScores(t *testing.T) {
	// Typical substitution-matrix scores are tiny compared to int32 range;
	// SaturatedAdd should behave exactly like plain addition here.
	a := Load([]int32{10, -5, 0})
	b := Load([]int32{3, -2, 7})
	result := SaturatedAdd(a, b)

	expected := []int32{13, -7, 7}
	for i, want := range expected {
		if got := result.Data()[i]; got != want {
			t.Errorf("lane %d: got %d, want %d", i, got, want)
		}
	}
}

func TestSaturatedAddInt64(t *testing.T) {
	a := Load([]int64{1 << 62, -(1 << 62)})
	b := Load([]int64{1 << 62, -(1 << 62)})
	result := SaturatedAdd(a, b)

	if result.Data()[0] <= 0 {
		t.Errorf("expected saturated positive max, got %d", result.Data()[0])
	}
	if result.Data()[1] >= 0 {
		t.Errorf("expected saturated negative min, got %d", result.Data()[1])
	}
}
