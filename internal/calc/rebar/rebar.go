package rebar

import (
	"math"

	"Tendon/internal/calc/section"
)

// Minimum bonded mild steel. Three criteria are computed as ratios of
// gross concrete area and the largest governs; the result is priced
// by weight.

const (
	tempRatioGrade60 = 0.0018
	tempRatioGrade40 = 0.0020
	bondedMultiplier = 1.2
	twoWayFactor     = 0.00075
	// tensile stress past this multiple of sqrt(fc) triggers extra
	// bonded area in two-way panels
	tensionTrigger = 2.0

	// one square inch of bar weighs 3.4 lb per foot of length
	steelLbPerFtPerIn2 = 3.4
)

type Input struct {
	Fc                 float64 // psi
	Fy                 float64 // psi, 60000 or 40000
	Section            section.Properties
	EffectiveDepthIn   float64
	CrackingMomentLbIn float64
	// panel geometry for the two-way distribution criterion
	LongSpanIn   float64
	PanelWidthIn float64
	TwoWay       bool
	// signed service fiber stresses (compression negative)
	ServiceTopPsi float64
	ServiceBotPsi float64
}

type Result struct {
	TempShrinkRatio float64 `json:"temp_shrink_ratio"`
	BondedRatio     float64 `json:"bonded_ratio"`
	TwoWayRatio     float64 `json:"two_way_ratio"`
	GoverningRatio  float64 `json:"governing_ratio"`
	Governing       string  `json:"governing"`
	WeightPsf       float64 `json:"weight_psf"`
}

// Size returns the governing minimum-steel ratio and its weight per
// square foot of floor.
func Size(in Input) Result {
	gross := in.Section.AreaIn2

	temp := tempRatioGrade60
	if in.Fy < 60000 {
		temp = tempRatioGrade40
	}

	bonded := in.CrackingMomentLbIn / (bondedMultiplier * in.Fy * in.EffectiveDepthIn) / gross
	if bonded < temp {
		bonded = temp
	}

	twoWay := temp
	if in.TwoWay && in.PanelWidthIn > 0 {
		twoWay = twoWayFactor * in.LongSpanIn / in.PanelWidthIn
		if ft := tensileExcess(in); ft > 0 {
			twoWay += tensionArea(in, ft) / gross
		}
		if twoWay < temp {
			twoWay = temp
		}
	}

	res := Result{
		TempShrinkRatio: temp,
		BondedRatio:     bonded,
		TwoWayRatio:     twoWay,
	}
	switch {
	case twoWay > bonded && twoWay > temp:
		res.GoverningRatio, res.Governing = twoWay, "two-way"
	case bonded > temp:
		res.GoverningRatio, res.Governing = bonded, "bonded"
	default:
		res.GoverningRatio, res.Governing = temp, "temperature"
	}

	// ratio -> in2 per foot of width -> lb per square foot
	asPerFt := res.GoverningRatio * 12.0 * in.Section.ThicknessIn
	res.WeightPsf = asPerFt * steelLbPerFtPerIn2
	return res
}

// tensileExcess returns the service tension past the trigger
// threshold at the more tensile fiber, or 0.
func tensileExcess(in Input) float64 {
	ft := math.Max(in.ServiceTopPsi, in.ServiceBotPsi)
	limit := tensionTrigger * math.Sqrt(in.Fc)
	if ft <= limit {
		return 0
	}
	return ft
}

// tensionArea sizes bonded steel to carry the whole tensile block at
// half the yield stress.
func tensionArea(in Input, ft float64) float64 {
	fcomp := math.Min(in.ServiceTopPsi, in.ServiceBotPsi)
	depth := in.Section.ThicknessIn
	y := depth / 2
	if fcomp < 0 {
		y = ft / (ft - fcomp) * depth
	}
	force := 0.5 * ft * y * in.Section.WidthIn
	return force / (0.5 * in.Fy)
}
