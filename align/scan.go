package align

import (
	"math/bits"

	"github.com/ajroetker/go-parasail/matrix"
	"github.com/ajroetker/go-parasail/presult"
	"github.com/ajroetker/go-parasail/profile"
	"github.com/ajroetker/go-parasail/simd"
)

// scanAlign runs the prefix-scan kernel (spec.md section 4.4.2). It
// shares stripedAlign's query-profile layout and within-lane recurrence
// (F chained across segments at a fixed lane mirrors gap extension along
// consecutive query positions), but resolves the cross-lane wraparound
// Farrar's lazy-F loop handles with a variable, data-dependent number of
// rounds with a Hillis-Steele doubling scan instead: max the carried F
// with itself shifted by 1, 2, 4, ... lanes (less segLen*extend per lane
// crossed), then sweep the column once, so the correction always costs
// exactly ceil(log2(segWidth)) rounds regardless of how far a gap needs
// to propagate.
func scanAlign[T simd.SignedInts](rec Recurrence, s1, s2 []byte, open, extend int32, m *matrix.Matrix, stats bool, flag presult.Flag) (*presult.Result, error) {
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
	scanRounds := bits.Len(uint(numLanes - 1))

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

		// Doubling scan: resolve cross-lane wraparound in
		// scanRounds = ceil(log2(segWidth)) rounds, win or lose,
		// instead of repeating until no lane still improves.
		F = simd.InsertLane(simd.Slide1Up(F), 0, T(clampToBounds(rowBoundary[j+1]-int64(open), minT)))
		shift := 1
		for round := 0; round < scanRounds; round++ {
			prev := F
			F = simd.SlideUpLanes(F, shift)
			// SlideUpLanes fills the vacated low lanes with zero, but F is
			// a gap-decay quantity: a lane with no known predecessor needs
			// the minT sentinel, not a literal 0 that would out-Max real
			// pvHStore values on the next round.
			for lane := 0; lane < shift; lane++ {
				F = simd.InsertLane(F, lane, minT)
			}
			F = simd.Max(prev, simd.SaturatedAdd(F, simd.Set(T(clampToBounds(-int64(shift*segLen)*int64(extend), minT)))))
			shift <<= 1
		}
		for seg := 0; seg < segLen; seg++ {
			newH := simd.Max(pvHStore[seg], F)
			pvHStore[seg] = newH
			bounds.Update(newH)
			F = simd.Max(simd.SaturatedSub(F, extendVec), simd.SaturatedSub(newH, openVec))
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

	result := &presult.Result{Flag: flag | presult.Scan | widthOf[T]().flag() | kernelLaneFlag(numLanes)}
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
