package search

import (
	"math"

	"Tendon/internal/calc/capacity"
	"Tendon/internal/calc/cost"
	"Tendon/internal/calc/loads"
	"Tendon/internal/calc/material"
	"Tendon/internal/calc/section"
)

// Flat plate: uniform slab spanning both ways between columns, no
// beams. The design strip is a 12 in wide slice along the longer
// span; punching shear at the supporting column governs thickness as
// often as deflection does.

const (
	stripWidthIn     = 12.0
	columnSizeIn     = 20.0
	punchingAlphaInt = 40.0
)

// plateThicknessAxis covers the applicable span/depth range for a
// flat plate, span/55 up to span/28, in half-inch steps.
func plateThicknessAxis(spanIn float64) Axis {
	lo := math.Ceil(spanIn/55.0*2) / 2
	hi := math.Ceil(spanIn/28.0*2) / 2
	return Axis{Min: lo, Max: hi, Step: 0.5}
}

// FlatPlate searches the flat plate grid and returns the cheapest
// feasible design, or nil when nothing passes.
func FlatPlate(in Input) (*Result, Diagnostics, error) {
	if err := in.validate(); err != nil {
		return nil, Diagnostics{}, err
	}

	spanFt := math.Max(in.BayLengthFt, in.BayWidthFt)
	spanIn := spanFt * 12.0
	planFt2 := in.BayLengthFt * in.BayWidthFt
	parking := in.Occupancy == loads.OccupancyParking

	var best *Result
	var diag Diagnostics

	for _, fc := range Strengths(spanFt) {
		cover := material.Cover(fc)
		for _, h := range plateThicknessAxis(spanIn).Values() {
			emax := h/2 - cover - strandDiaAllowIn
			if emax < minUsableEccIn {
				diag.Geometry++
				continue
			}

			_, dead, live := loads.Gravity(h, in.SuperimposedDeadPsf, in.Occupancy)
			_, wLive, mDead, mLive := stripLoads(dead, live, stripWidthIn, spanIn)
			sec := section.Rectangle(stripWidthIn, h)

			d := h - cover - strandDiaAllowIn
			wu := 1.2*dead + 1.6*live
			punch := &capacity.PunchingInput{
				DepthIn:         d,
				ColumnC1In:      columnSizeIn,
				ColumnC2In:      columnSizeIn,
				AlphaS:          punchingAlphaInt,
				FactoredShearLb: wu * (planFt2 - (columnSizeIn+d)*(columnSizeIn+d)/144.0),
			}

			Product([][]float64{balanceAxis.Values(), eccAxis.Values()}, func(_ int, vals []float64) bool {
				gamma, er := vals[0], vals[1]
				diag.Evaluated++

				e := er * emax
				pe := gamma * mDead / e
				pi := pe / material.LossRatio(fc)

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
					punching:           punch,
					twoWayRebar:        true,
					longSpanIn:         spanIn,
					panelWidthIn:       math.Min(in.BayLengthFt, in.BayWidthFt) * 12.0,
				})
				if reason != "" {
					diag.bump(reason)
					return true
				}
				diag.Feasible++

				res := assemblePlate(in, fc, h, gamma, e, pe, pi, planFt2, art)
				if best == nil || res.Cost.Total < best.Cost.Total {
					best = res
				}
				return true
			})
		}
	}
	return best, diag, nil
}

func assemblePlate(in Input, fc, h, gamma, e, pe, pi, planFt2 float64, art artifacts) *Result {
	concrete := cost.StrengthAdjustedSlab(cost.InterpolatedSlab(h, in.Cost.SlabTable), h, fc)
	strandPsf := art.strandIn2 * steelLbPerFtPerIn2 // 12 in strip -> per ft of width
	rebarPsf := art.rebarSize.WeightPsf

	unit := concrete + in.Cost.FormworkPerFt2 +
		strandPsf*in.Cost.StrandCostPerLb + rebarPsf*in.Cost.MildSteelPerLb

	self, _, _ := loads.Gravity(h, 0, in.Occupancy)
	return &Result{
		System:           SystemFlatPlate,
		Fc:               fc,
		ThicknessIn:      h,
		BalanceRatio:     gamma,
		EccentricityIn:   e,
		EffectiveForceLb: pe,
		InitialForceLb:   pi,
		RebarRatio:       art.rebarSize.GoverningRatio,
		RebarGoverning:   art.rebarSize.Governing,
		WeightPsf:        self + strandPsf + rebarPsf,
		Cost: CostBreakdown{
			ConcretePerFt2: concrete,
			FormworkPerFt2: in.Cost.FormworkPerFt2,
			StrandPerFt2:   strandPsf * in.Cost.StrandCostPerLb,
			RebarPerFt2:    rebarPsf * in.Cost.MildSteelPerLb,
			UnitPerFt2:     unit,
			Total:          unit * planFt2,
		},
		Checks: art.checks,
	}
}
