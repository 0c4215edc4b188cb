package simd

import "testing"

func TestBroadcast(t *testing.T) {
	v := Load([]int32{1, 2, 3, 4})
	result := Broadcast(v, 2)

	for i, got := range result.Data() {
		if got != 3 {
			t.Errorf("lane %d: got %d, want 3", i, got)
		}
	}
}

func TestGetLane(t *testing.T) {
	v := Load([]int32{10, 20, 30})
	if got := GetLane(v, 1); got != 20 {
		t.Errorf("GetLane(1) = %d, want 20", got)
	}
	if got := GetLane(v, 99); got != 0 {
		t.Errorf("GetLane(out of bounds) = %d, want 0", got)
	}
}

func TestInsertLane(t *testing.T) {
	v := Load([]int32{10, 20, 30})
	result := InsertLane(v, 1, 99)

	want := []int32{10, 99, 30}
	for i, w := range want {
		if got := result.Data()[i]; got != w {
			t.Errorf("lane %d: got %d, want %d", i, got, w)
		}
	}
}

func TestSlide1Up(t *testing.T) {
	v := Load([]int32{1, 2, 3, 4})
	result := Slide1Up(v)

	want := []int32{0, 1, 2, 3}
	for i, w := range want {
		if got := result.Data()[i]; got != w {
			t.Errorf("lane %d: got %d, want %d", i, got, w)
		}
	}
}

func TestSlide1Down(t *testing.T) {
	v := Load([]int32{1, 2, 3, 4})
	result := Slide1Down(v)

	want := []int32{2, 3, 4, 0}
	for i, w := range want {
		if got := result.Data()[i]; got != w {
			t.Errorf("lane %d: got %d, want %d", i, got, w)
		}
	}
}

func TestSlideUpLanesOffsetBeyondWidth(t *testing.T) {
	v := Load([]int32{1, 2, 3, 4})
	result := SlideUpLanes(v, 10)

	for i, got := range result.Data() {
		if got != 0 {
			t.Errorf("lane %d: got %d, want 0", i, got)
		}
	}
}
