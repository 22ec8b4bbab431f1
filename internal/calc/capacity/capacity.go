package capacity

import (
	"math"

	"Tendon/internal/calc/section"
)

// Code checks for one trial design. Everything here is a pure
// function; the search short-circuits on the first failing check.

const (
	strandYieldPsi    = 243000.0 // 0.9 fpu for 270 ksi strand
	strandBonusPsi    = 10000.0
	strandBonusCap    = 30000.0
	tensionStrain     = 0.005
	compressionStrain = 0.002
	phiTension        = 0.90
	phiCompression    = 0.65
	phiShear          = 0.75

	deflectionRatio     = 480.0
	camberRatio         = 300.0
	camberEffect        = 0.80 // long-term fraction of camber credited against live deflection
	crackedInertiaRatio = 0.25

	vibrationConstant = 0.18
	gravityInPerS2    = 386.4
	minFrequencyHz    = 3.0

	minPrestressPsi        = 125.0
	minPrestressParkingPsi = 150.0
)

type FlexureInput struct {
	Fc            float64 // psi
	WidthIn       float64 // compression face width
	DepthIn       float64 // dp, to the tendon centroid
	StrandAreaIn2 float64 // Aps
	EffectivePsi  float64 // fse
	FactoredLbIn  float64 // Mu
}

type FlexureResult struct {
	TendonStressPsi  float64 `json:"tendon_stress_psi"`
	BlockDepthIn     float64 `json:"block_depth_in"`
	TensileStrain    float64 `json:"tensile_strain"`
	Phi              float64 `json:"phi"`
	DesignMomentLbIn float64 `json:"design_moment_lbin"`
	OK               bool    `json:"ok"`
}

func beta1(fc float64) float64 {
	b := 0.85 - 0.05*(fc-4000)/1000
	if b > 0.85 {
		return 0.85
	}
	if b < 0.65 {
		return 0.65
	}
	return b
}

// TendonStress returns fps for unbonded tendons: effective stress plus
// a fixed bonus plus a strength/reinforcement-ratio term, never above
// yield and never more than the bonus cap over effective.
func TendonStress(fc, fse, rhoP float64) float64 {
	fps := fse + strandBonusPsi + fc/(100*rhoP)
	if ceiling := fse + strandBonusCap; fps > ceiling {
		fps = ceiling
	}
	if fps > strandYieldPsi {
		fps = strandYieldPsi
	}
	return fps
}

// Flexure runs the strength check. Candidates whose tension-face
// strain falls below the compression-controlled threshold are
// rejected outright (OK=false, Phi=0).
func Flexure(in FlexureInput) FlexureResult {
	rhoP := in.StrandAreaIn2 / (in.WidthIn * in.DepthIn)
	fps := TendonStress(in.Fc, in.EffectivePsi, rhoP)

	a := in.StrandAreaIn2 * fps / (0.85 * in.Fc * in.WidthIn)
	c := a / beta1(in.Fc)
	epsT := 0.003 * (in.DepthIn - c) / c

	res := FlexureResult{TendonStressPsi: fps, BlockDepthIn: a, TensileStrain: epsT}
	switch {
	case epsT >= tensionStrain:
		res.Phi = phiTension
	case epsT > compressionStrain:
		res.Phi = phiCompression + (epsT-compressionStrain)*(phiTension-phiCompression)/(tensionStrain-compressionStrain)
	default:
		return res // compression-controlled, rejected
	}

	mn := in.StrandAreaIn2 * fps * (in.DepthIn - a/2)
	res.DesignMomentLbIn = res.Phi * mn
	res.OK = res.DesignMomentLbIn >= in.FactoredLbIn
	return res
}

type DeflectionInput struct {
	Section           section.Properties
	SpanIn            float64
	ModulusPsi        float64 // Ec
	RupturePsi        float64 // fr
	ServiceMomentLbIn float64 // unfactored
	LiveLoadLbPerIn   float64 // on the strip
	EffectiveForceLb  float64
	EccentricityIn    float64
}

type DeflectionResult struct {
	CrackingMomentLbIn  float64 `json:"cracking_moment_lbin"`
	EffectiveInertiaIn4 float64 `json:"effective_inertia_in4"`
	LiveDeflectionIn    float64 `json:"live_deflection_in"`
	CamberIn            float64 `json:"camber_in"`
	NetDeflectionIn     float64 `json:"net_deflection_in"`
	OK                  bool    `json:"ok"`
}

// Deflection computes live-load deflection on the effective inertia
// and nets out the long-term share of camber against span/480.
func Deflection(in DeflectionInput) DeflectionResult {
	ig := in.Section.InertiaIn4
	mcr := in.RupturePsi * in.Section.BotModulus

	ie := ig
	if in.ServiceMomentLbIn >= 2.0/3.0*mcr {
		icr := crackedInertiaRatio * ig
		ratio := mcr / in.ServiceMomentLbIn
		if ratio > 1 {
			ratio = 1
		}
		w := ratio * ratio * ratio
		ie = w*ig + (1-w)*icr
	}

	live := 5.0 * in.LiveLoadLbPerIn * math.Pow(in.SpanIn, 4) / (384.0 * in.ModulusPsi * ie)
	camber := in.EffectiveForceLb * in.EccentricityIn * in.SpanIn * in.SpanIn / (8.0 * in.ModulusPsi * ig)
	net := live - camberEffect*camber

	return DeflectionResult{
		CrackingMomentLbIn:  mcr,
		EffectiveInertiaIn4: ie,
		LiveDeflectionIn:    live,
		CamberIn:            camber,
		NetDeflectionIn:     net,
		OK:                  net <= in.SpanIn/deflectionRatio,
	}
}

type VibrationResult struct {
	FrequencyHz float64 `json:"frequency_hz"`
	OK          bool    `json:"ok"`
}

// Vibration estimates the floor natural frequency from the live-load
// deflection alone (not the camber-netted value).
func Vibration(liveDeflectionIn float64) VibrationResult {
	if liveDeflectionIn <= 0 {
		// no measurable deflection, stiff enough by any criterion
		return VibrationResult{FrequencyHz: math.Inf(1), OK: true}
	}
	fn := vibrationConstant * math.Sqrt(gravityInPerS2/liveDeflectionIn)
	return VibrationResult{FrequencyHz: fn, OK: fn >= minFrequencyHz}
}

type PunchingInput struct {
	Fc              float64
	DepthIn         float64 // effective slab depth at the column
	ColumnC1In      float64
	ColumnC2In      float64
	AvgPrestressPsi float64 // fpc = Pe/A
	FactoredShearLb float64 // Vu
	AlphaS          float64 // 40 interior, 30 edge, 20 corner
}

type PunchingResult struct {
	PerimeterIn    float64 `json:"perimeter_in"`
	StressLimitPsi float64 `json:"stress_limit_psi"`
	DesignShearLb  float64 `json:"design_shear_lb"`
	OK             bool    `json:"ok"`
}

// Punching takes the least of the three two-way shear equations and
// adds the average-prestress contribution.
func Punching(in PunchingInput) PunchingResult {
	alphaS := in.AlphaS
	if alphaS <= 0 {
		alphaS = 40
	}
	bo := 2*(in.ColumnC1In+in.DepthIn) + 2*(in.ColumnC2In+in.DepthIn)
	betaC := math.Max(in.ColumnC1In, in.ColumnC2In) / math.Min(in.ColumnC1In, in.ColumnC2In)

	root := math.Sqrt(in.Fc)
	vc := math.Min(4.0, math.Min(2.0+4.0/betaC, 2.0+alphaS*in.DepthIn/bo)) * root
	vc += 0.3 * in.AvgPrestressPsi

	vn := vc * bo * in.DepthIn
	design := phiShear * vn
	return PunchingResult{
		PerimeterIn:    bo,
		StressLimitPsi: vc,
		DesignShearLb:  design,
		OK:             in.FactoredShearLb <= design,
	}
}

// PrestressFloor returns the minimum required average prestress for
// the occupancy, psi.
func PrestressFloor(parking bool) float64 {
	if parking {
		return minPrestressParkingPsi
	}
	return minPrestressPsi
}

// MinAveragePrestress enforces the occupancy-specific floor on Pe/A.
func MinAveragePrestress(effectiveForceLb, grossAreaIn2 float64, parking bool) (avgPsi float64, ok bool) {
	avg := effectiveForceLb / grossAreaIn2
	return avg, avg >= PrestressFloor(parking)
}

// CamberOK enforces the span/300 cap on upward camber.
func CamberOK(camberIn, spanIn float64) bool {
	return camberIn <= spanIn/camberRatio
}
