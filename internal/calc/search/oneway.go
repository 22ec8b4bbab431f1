package search

import (
	"math"

	"Tendon/internal/calc/capacity"
	"Tendon/internal/calc/cost"
	"Tendon/internal/calc/loads"
	"Tendon/internal/calc/material"
	"Tendon/internal/calc/section"
)

// One-way beam-and-slab: beams on the column lines span the bay
// length, the slab spans one-way between beam lines. The slab
// thickness is not searched; it is resolved as the minimum satisfying
// the span/depth rule, then the beam grid is searched.

const (
	oneWaySlabDepthRatio = 45.0
	minSlabThicknessIn   = 5.0
	beamWidthMinIn       = 12.0
	beamWidthMaxIn       = 36.0
	beamWidthStepIn      = 6.0
	beamDepthStepIn      = 2.0
	stemClearanceIn      = 4.0
)

// slabThicknessFor returns the minimum slab thickness for a one-way
// span, rounded up to the half inch.
func slabThicknessFor(slabSpanFt float64) float64 {
	h := slabSpanFt * 12.0 / oneWaySlabDepthRatio
	h = math.Ceil(h*2) / 2
	if h < minSlabThicknessIn {
		h = minSlabThicknessIn
	}
	return h
}

func beamDepthAxis(spanIn float64) Axis {
	lo := math.Ceil(spanIn/24.0/beamDepthStepIn) * beamDepthStepIn
	hi := math.Ceil(spanIn/14.0/beamDepthStepIn) * beamDepthStepIn
	return Axis{Min: lo, Max: hi, Step: beamDepthStepIn}
}

// OneWayBeam searches beam width x depth x balance x eccentricity for
// the beam carrying one bay width of one-way slab.
func OneWayBeam(in Input) (*Result, Diagnostics, error) {
	if err := in.validate(); err != nil {
		return nil, Diagnostics{}, err
	}

	spanFt := in.BayLengthFt
	spanIn := spanFt * 12.0
	tribFt := in.BayWidthFt
	planFt2 := in.BayLengthFt * in.BayWidthFt
	parking := in.Occupancy == loads.OccupancyParking

	hSlab := slabThicknessFor(tribFt)
	_, dead, live := loads.Gravity(hSlab, in.SuperimposedDeadPsf, in.Occupancy)

	var best *Result
	var diag Diagnostics

	for _, fc := range Strengths(spanFt) {
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
			wDead := (dead*tribFt + stemPlf) / 12.0 // lb/in
			wLive := live * tribFt / 12.0
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
			})
			if reason != "" {
				diag.bump(reason)
				return true
			}
			diag.Feasible++

			res := assembleBeam(in, SystemOneWayBeam, fc, hSlab, bw, d, gamma, e, pe, pi,
				spanFt, planFt2, stemPlf, art)
			if best == nil || res.Cost.Total < best.Cost.Total {
				best = res
			}
			return true
		})
	}
	return best, diag, nil
}

// assembleBeam prices a beam-system candidate: slab priced by the
// thickness table, stems by volume, steel by weight. beamRunFt is the
// total beam length contributing stems to the bay.
func assembleBeam(in Input, sys System, fc, hSlab, bw, d, gamma, e, pe, pi,
	beamRunFt, planFt2, stemPlf float64, art artifacts) *Result {

	concrete := cost.StrengthAdjustedSlab(cost.InterpolatedSlab(hSlab, in.Cost.SlabTable), hSlab, fc)

	stemFt3 := bw / 12.0 * (d - hSlab) / 12.0 * beamRunFt
	beamForm := stemFt3*in.Cost.BeamFormPerFt3 +
		stemFt3/27.0*(cost.BaseConcrete(fc)-cost.BaseConcrete(cost.ReferenceFc))

	fse := strandJackingPsi * material.LossRatio(fc)

	// beam strand plus the minimum-compression tendons in the slab
	beamStrandLb := art.strandIn2 * steelLbPerFtPerIn2 * beamRunFt
	slabFloor := capacity.PrestressFloor(in.Occupancy == loads.OccupancyParking)
	slabStrandPsf := slabFloor * 12.0 * hSlab / fse * steelLbPerFtPerIn2

	beamRebarLb := art.rebarSize.GoverningRatio * bw * d * steelLbPerFtPerIn2 * beamRunFt
	slabRebarPsf := 0.0018 * 12.0 * hSlab * steelLbPerFtPerIn2

	strandCost := (beamStrandLb + slabStrandPsf*planFt2) * in.Cost.StrandCostPerLb
	rebarCost := (beamRebarLb + slabRebarPsf*planFt2) * in.Cost.MildSteelPerLb

	unit := concrete + in.Cost.FormworkPerFt2 +
		(beamForm+strandCost+rebarCost)/planFt2

	self, _, _ := loads.Gravity(hSlab, 0, in.Occupancy)
	weight := self + stemPlf*beamRunFt/planFt2 +
		(beamStrandLb+beamRebarLb)/planFt2 + slabStrandPsf + slabRebarPsf

	return &Result{
		System:           sys,
		Fc:               fc,
		ThicknessIn:      hSlab,
		BeamWidthIn:      bw,
		BeamDepthIn:      d,
		BalanceRatio:     gamma,
		EccentricityIn:   e,
		EffectiveForceLb: pe,
		InitialForceLb:   pi,
		RebarRatio:       art.rebarSize.GoverningRatio,
		RebarGoverning:   art.rebarSize.Governing,
		WeightPsf:        weight,
		Cost: CostBreakdown{
			ConcretePerFt2: concrete,
			FormworkPerFt2: in.Cost.FormworkPerFt2,
			BeamFormPerFt2: beamForm / planFt2,
			StrandPerFt2:   strandCost / planFt2,
			RebarPerFt2:    rebarCost / planFt2,
			UnitPerFt2:     unit,
			Total:          unit * planFt2,
		},
		Checks: art.checks,
	}
}
