package align

import (
	"github.com/ajroetker/go-parasail/matrix"
	"github.com/ajroetker/go-parasail/presult"
	"github.com/ajroetker/go-parasail/profile"
	"github.com/ajroetker/go-parasail/simd"
)

// stripedAlign runs Farrar's striped kernel (spec.md section 4.4.1):
// s1 is the query, striped into a profile.Profile[T]; s2 (the database)
// is walked one symbol at a time. H and E are carried across database
// columns as segLen-element vector slices in striped order; F is a
// single vector reset every column and corrected by the lazy-F loop
// once the naive per-segment sweep underestimates it.
func stripedAlign[T simd.SignedInts](rec Recurrence, s1, s2 []byte, open, extend int32, m *matrix.Matrix, stats bool, flag presult.Flag) (*presult.Result, error) {
	if err := validateInputs(s1, s2, open, extend, m); err != nil {
		return nil, err
	}

	numLanes := simd.MaxLanes[T]()
	prof, err := profile.Build[T](s1, m, numLanes, stats)
	if err != nil {
		return nil, err
	}
	segLen := prof.SegLen
	s1Len, s2Len := len(s1), len(s2)

	minT, _ := typeBounds[T]()
	openT, extendT := T(open), T(extend)
	openVec := simd.Set(openT)
	extendVec := simd.Set(extendT)

	rowBoundary, colBoundary := boundaryTables(rec, s1Len, s2Len, open, extend)

	pvHLoad := make([]simd.Vec[T], segLen)
	pvHStore := make([]simd.Vec[T], segLen)
	pvE := make([]simd.Vec[T], segLen)
	for seg := 0; seg < segLen; seg++ {
		lanes := make([]T, numLanes)
		for l := 0; l < numLanes; l++ {
			qpos := l*segLen + seg + 1
			if qpos <= s1Len {
				lanes[l] = T(clampToBounds(colBoundary[qpos], minT))
			}
		}
		pvHLoad[seg] = simd.Load(lanes)
		pvE[seg] = simd.Set(minT)
	}

	lastSeg := (s1Len - 1) % segLen
	lastLane := (s1Len - 1) / segLen

	var bounds boundsTracker[T]
	lastRowMax := int64(negInf)
	lastRowMaxJ := s2Len - 1
	globalMax := int64(minT)
	globalEndQuery, globalEndRef := 0, 0

	for j := 0; j < s2Len; j++ {
		dbSym := s2[j]

		topBoundary := T(clampToBounds(rowBoundary[j], minT))
		H := simd.InsertLane(simd.Slide1Up(pvHLoad[segLen-1]), 0, topBoundary)
		F := simd.Set(minT)

		for seg := 0; seg < segLen; seg++ {
			profVec, verr := prof.Vector(dbSym, seg)
			if verr != nil {
				return nil, verr
			}
			H = simd.SaturatedAdd(H, profVec)
			H = simd.Max(H, pvE[seg])
			H = simd.Max(H, F)
			if rec == RecurrenceSW {
				H = simd.Max(H, simd.Zero[T]())
			}
			pvHStore[seg] = H
			bounds.Update(H)

			pvE[seg] = simd.Max(simd.SaturatedSub(pvE[seg], extendVec), simd.SaturatedSub(H, openVec))
			F = simd.Max(simd.SaturatedSub(F, extendVec), simd.SaturatedSub(H, openVec))

			H = pvHLoad[seg]
		}

		// Lazy-F correction: F computed above only accounts for gaps
		// opened within the same segment sweep. A gap opened late in
		// one segment can still need to propagate into every later
		// segment, wrapping around the striped layout, so walk the
		// column again feeding F forward until no lane still improves.
		F = simd.InsertLane(simd.Slide1Up(F), 0, T(clampToBounds(rowBoundary[j+1]-int64(open), minT)))
		for iter := 0; iter < numLanes; iter++ {
			changed := false
			for seg := 0; seg < segLen; seg++ {
				threshold := simd.SaturatedSub(pvHStore[seg], openVec)
				if simd.GreaterThan(F, threshold).AnyTrue() {
					changed = true
				}
				newH := simd.Max(pvHStore[seg], F)
				pvHStore[seg] = newH
				bounds.Update(newH)
				F = simd.Max(simd.SaturatedSub(F, extendVec), simd.SaturatedSub(newH, openVec))
			}
			if !changed {
				break
			}
			F = simd.InsertLane(simd.Slide1Up(F), 0, minT)
		}

		pvHLoad, pvHStore = pvHStore, pvHLoad

		if rec == RecurrenceSW {
			for seg := 0; seg < segLen; seg++ {
				data := pvHLoad[seg].Data()
				for l := 0; l < numLanes; l++ {
					qpos := l*segLen + seg
					if qpos >= s1Len {
						continue
					}
					if v := int64(data[l]); v > globalMax || (v == globalMax && qpos < globalEndQuery) {
						globalMax = v
						globalEndQuery, globalEndRef = qpos, j
					}
				}
			}
		}
		if rec == RecurrenceSG {
			v := int64(simd.GetLane(pvHLoad[lastSeg], lastLane))
			if v > lastRowMax {
				lastRowMax = v
				lastRowMaxJ = j
			}
		}
	}

	if bounds.Saturated(open, m.Max()) {
		return &presult.Result{Flag: flag | presult.Saturated | widthOf[T]().flag() | kernelLaneFlag(numLanes)}, nil
	}

	result := &presult.Result{Flag: flag | presult.Striped | widthOf[T]().flag() | kernelLaneFlag(numLanes)}
	switch rec {
	case RecurrenceNW:
		result.Score = int64(simd.GetLane(pvHLoad[lastSeg], lastLane))
		result.EndQuery, result.EndRef = s1Len-1, s2Len-1
	case RecurrenceSG:
		best := lastRowMax
		endQuery, endRef := s1Len-1, lastRowMaxJ
		for qpos := 0; qpos < s1Len; qpos++ {
			if v := int64(simd.GetLane(pvHLoad[qpos%segLen], qpos/segLen)); v > best {
				best = v
				endQuery, endRef = qpos, s2Len-1
			}
		}
		result.Score = best
		result.EndQuery, result.EndRef = endQuery, endRef
	case RecurrenceSW:
		result.Score = globalMax
		result.EndQuery, result.EndRef = globalEndQuery, globalEndRef
	}
	return result, nil
}

// clampToBounds saturates a wide boundary value (which can be an exact
// multiple of open/extend far outside T's range for long sequences) to
// T's minimum before it is narrowed, mirroring the sentinel every other
// lane in the column already carries.
func clampToBounds[T simd.SignedInts](v int64, minT T) int64 {
	if v < int64(minT) {
		return int64(minT)
	}
	return v
}

// boundaryTables computes H's top row (indexed by database position,
// 0..s2Len) and left column (indexed by query position, 0..s1Len) the
// same way referenceAlign does, so every kernel seeds its DP boundary
// identically regardless of scheme.
func boundaryTables(rec Recurrence, s1Len, s2Len int, open, extend int32) (row, col []int64) {
	row = make([]int64, s2Len+1)
	col = make([]int64, s1Len+1)
	for j := 0; j <= s2Len; j++ {
		switch rec {
		case RecurrenceNW:
			if j == 0 {
				row[j] = 0
			} else {
				row[j] = -int64(open) - int64(j-1)*int64(extend)
			}
		default:
			row[j] = 0
		}
	}
	for i := 0; i <= s1Len; i++ {
		switch rec {
		case RecurrenceSW:
			col[i] = 0
		default:
			if i == 0 {
				col[i] = 0
			} else {
				col[i] = -int64(open) - int64(i-1)*int64(extend)
			}
		}
	}
	return row, col
}

func (w Width) flag() presult.Flag {
	return presult.WidthFlag(int(w))
}

func kernelLaneFlag(numLanes int) presult.Flag {
	return presult.LanesFlag(numLanes)
}
