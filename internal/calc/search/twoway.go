package search

import (
	"math"

	"Tendon/internal/calc/loads"
	"Tendon/internal/calc/material"
	"Tendon/internal/calc/section"
)

// Two-way beam-and-slab: beams on all column lines, slab panel
// supported on four edges. The slab load splits between the two span
// directions by relative stiffness of the strips; the beam search
// designs the governing direction and prices stems in both.

const twoWaySlabPerimeterRatio = 180.0

// twoWaySlabThickness is the minimum two-way panel thickness from the
// perimeter/180 rule, rounded up to the half inch.
func twoWaySlabThickness(bayLengthFt, bayWidthFt float64) float64 {
	h := 2.0 * (bayLengthFt + bayWidthFt) * 12.0 / twoWaySlabPerimeterRatio
	h = math.Ceil(h*2) / 2
	if h < minSlabThicknessIn {
		h = minSlabThicknessIn
	}
	return h
}

// shortShare returns the fraction of panel load carried in the short
// span direction: Llong^4 / (Llong^4 + Lshort^4).
func shortShare(longFt, shortFt float64) float64 {
	l4 := math.Pow(longFt, 4)
	s4 := math.Pow(shortFt, 4)
	return l4 / (l4 + s4)
}

// TwoWayBeam searches the beam grid for the governing direction of a
// two-way panel.
func TwoWayBeam(in Input) (*Result, Diagnostics, error) {
	if err := in.validate(); err != nil {
		return nil, Diagnostics{}, err
	}

	longFt := math.Max(in.BayLengthFt, in.BayWidthFt)
	shortFt := math.Min(in.BayLengthFt, in.BayWidthFt)
	planFt2 := in.BayLengthFt * in.BayWidthFt
	parking := in.Occupancy == loads.OccupancyParking

	hSlab := twoWaySlabThickness(in.BayLengthFt, in.BayWidthFt)
	_, dead, live := loads.Gravity(hSlab, in.SuperimposedDeadPsf, in.Occupancy)

	// Load delivered in the short direction lands on the beams that
	// run the long way, and vice versa. The governing beam is the one
	// seeing the larger dead moment; with the stiffness split that is
	// the long-running beam for any non-square panel.
	share := shortShare(longFt, shortFt)
	longBeam := beamLine{spanFt: longFt, tribFt: shortFt, loadShare: share}
	shortBeam := beamLine{spanFt: shortFt, tribFt: longFt, loadShare: 1 - share}
	governing := longBeam
	if shortBeam.deadMoment(dead, 0) > longBeam.deadMoment(dead, 0) {
		governing = shortBeam
	}

	spanIn := governing.spanFt * 12.0

	var best *Result
	var diag Diagnostics

	for _, fc := range Strengths(governing.spanFt) {
		cover := material.Cover(fc)
		axes := [][]float64{
			Axis{Min: beamWidthMinIn, Max: beamWidthMaxIn, Step: beamWidthStepIn}.Values(),
			beamDepthAxis(spanIn).Values(),
			balanceAxis.Values(),
			eccAxis.Values(),
		}
		Product(axes, func(_ int, vals []float64) bool {
			bw, d, gamma, er := vals[0], vals[1], vals[2], vals[3]
			if d < hSlab+stemClearanceIn {
				diag.Geometry++
				return true
			}
			emax := d/2 - cover - strandDiaAllowIn
			if emax < minUsableEccIn {
				diag.Geometry++
				return true
			}
			diag.Evaluated++

			stemPlf := bw / 12.0 * (d - hSlab) / 12.0 * 150.0
			wDead := (governing.loadShare*dead*governing.tribFt + stemPlf) / 12.0
			wLive := governing.loadShare * live * governing.tribFt / 12.0
			mDead := wDead * spanIn * spanIn / 8.0
			mLive := wLive * spanIn * spanIn / 8.0

			e := er * emax
			pe := gamma * mDead / e
			pi := pe / material.LossRatio(fc)
			sec := section.Rectangle(bw, d)

			art, reason := evaluate(trial{
				fc:                 fc,
				sec:                sec,
				spanIn:             spanIn,
				deadMomentLbIn:     mDead,
				serviceMomentLbIn:  serviceMoment(mDead, mLive),
				factoredMomentLbIn: factoredMoment(mDead, mLive),
				liveLoadLbPerIn:    wLive,
				effectiveLb:        pe,
				initialLb:          pi,
				eccIn:              e,
				parking:            parking,
				twoWayRebar:        true,
				longSpanIn:         longFt * 12.0,
				panelWidthIn:       shortFt * 12.0,
			})
			if reason != "" {
				diag.bump(reason)
				return true
			}
			diag.Feasible++

			// stems run both directions
			res := assembleBeam(in, SystemTwoWayBeam, fc, hSlab, bw, d, gamma, e, pe, pi,
				longFt+shortFt, planFt2, stemPlf, art)
			if best == nil || res.Cost.Total < best.Cost.Total {
				best = res
			}
			return true
		})
	}
	return best, diag, nil
}

type beamLine struct {
	spanFt    float64
	tribFt    float64
	loadShare float64
}

func (b beamLine) deadMoment(deadPsf, stemPlf float64) float64 {
	w := (b.loadShare*deadPsf*b.tribFt + stemPlf) / 12.0
	span := b.spanFt * 12.0
	return w * span * span / 8.0
}
