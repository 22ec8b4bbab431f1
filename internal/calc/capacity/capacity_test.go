package capacity

import (
	"math"
	"testing"

	"Tendon/internal/calc/material"
	"Tendon/internal/calc/section"
)

func TestTendonStressCeilings(t *testing.T) {
	// sparse reinforcement: the strength term would explode, the
	// additive cap over effective stress must govern
	fps := TendonStress(5000, 170000, 0.0005)
	if fps != 170000+strandBonusCap {
		t.Errorf("fps = %v, want additive cap %v", fps, 170000+strandBonusCap)
	}
	// near-yield effective stress: yield governs
	fps = TendonStress(5000, 230000, 0.0005)
	if fps != strandYieldPsi {
		t.Errorf("fps = %v, want yield %v", fps, strandYieldPsi)
	}
	// ordinary case: plain formula
	fps = TendonStress(5000, 173000, 0.5/96.0)
	want := 173000.0 + 10000.0 + 5000.0/(100.0*0.5/96.0)
	if math.Abs(fps-want) > 1e-9 {
		t.Errorf("fps = %v, want %v", fps, want)
	}
}

func TestFlexureTensionControlled(t *testing.T) {
	in := FlexureInput{
		Fc:            5000,
		WidthIn:       12,
		DepthIn:       8,
		StrandAreaIn2: 0.5,
		EffectivePsi:  173000,
		FactoredLbIn:  500000,
	}
	res := Flexure(in)
	if res.TensileStrain < tensionStrain {
		t.Fatalf("expected tension-controlled section, strain %v", res.TensileStrain)
	}
	if res.Phi != phiTension {
		t.Errorf("Phi = %v, want %v", res.Phi, phiTension)
	}
	if !res.OK {
		t.Errorf("capacity %v should cover Mu %v", res.DesignMomentLbIn, in.FactoredLbIn)
	}

	in.FactoredLbIn = 700000
	if res := Flexure(in); res.OK {
		t.Errorf("capacity %v should not cover Mu %v", res.DesignMomentLbIn, in.FactoredLbIn)
	}
}

func TestFlexureTransitionPhi(t *testing.T) {
	res := Flexure(FlexureInput{
		Fc:            5000,
		WidthIn:       12,
		DepthIn:       8,
		StrandAreaIn2: 1.0,
		EffectivePsi:  170000,
		FactoredLbIn:  100000,
	})
	if res.TensileStrain <= compressionStrain || res.TensileStrain >= tensionStrain {
		t.Fatalf("expected transition strain, got %v", res.TensileStrain)
	}
	want := phiCompression + (res.TensileStrain-compressionStrain)*(phiTension-phiCompression)/(tensionStrain-compressionStrain)
	if math.Abs(res.Phi-want) > 1e-12 {
		t.Errorf("Phi = %v, want interpolated %v", res.Phi, want)
	}
}

func TestFlexureCompressionControlledRejected(t *testing.T) {
	res := Flexure(FlexureInput{
		Fc:            4000,
		WidthIn:       12,
		DepthIn:       6,
		StrandAreaIn2: 4.0,
		EffectivePsi:  160000,
		FactoredLbIn:  1,
	})
	if res.OK || res.Phi != 0 {
		t.Errorf("compression-controlled section must be rejected, got phi=%v ok=%v", res.Phi, res.OK)
	}
}

func TestDeflectionUsesGrossInertiaWhenUncracked(t *testing.T) {
	sec := section.Rectangle(12, 10)
	lim := material.Limits(5000, 3500)
	mcr := lim.RuptureModulus * sec.BotModulus

	res := Deflection(DeflectionInput{
		Section:           sec,
		SpanIn:            300,
		ModulusPsi:        material.Modulus(5000),
		RupturePsi:        lim.RuptureModulus,
		ServiceMomentLbIn: 0.5 * mcr,
		LiveLoadLbPerIn:   3.0,
		EffectiveForceLb:  50000,
		EccentricityIn:    2.0,
	})
	if res.EffectiveInertiaIn4 != sec.InertiaIn4 {
		t.Errorf("Ie = %v, want gross %v below 2/3 Mcr", res.EffectiveInertiaIn4, sec.InertiaIn4)
	}
	if res.CrackingMomentLbIn != mcr {
		t.Errorf("Mcr = %v, want %v", res.CrackingMomentLbIn, mcr)
	}
}

func TestDeflectionInterpolatesEffectiveInertia(t *testing.T) {
	sec := section.Rectangle(12, 10)
	lim := material.Limits(5000, 3500)
	mcr := lim.RuptureModulus * sec.BotModulus
	ma := 1.25 * mcr

	res := Deflection(DeflectionInput{
		Section:           sec,
		SpanIn:            300,
		ModulusPsi:        material.Modulus(5000),
		RupturePsi:        lim.RuptureModulus,
		ServiceMomentLbIn: ma,
		LiveLoadLbPerIn:   3.0,
	})
	ig := sec.InertiaIn4
	icr := crackedInertiaRatio * ig
	w := math.Pow(mcr/ma, 3)
	want := w*ig + (1-w)*icr
	if math.Abs(res.EffectiveInertiaIn4-want) > 1e-9 {
		t.Errorf("Ie = %v, want %v", res.EffectiveInertiaIn4, want)
	}
	if res.EffectiveInertiaIn4 >= ig || res.EffectiveInertiaIn4 <= icr {
		t.Errorf("Ie = %v must fall strictly between Icr %v and Ig %v", res.EffectiveInertiaIn4, icr, ig)
	}
}

func TestDeflectionNetsCamber(t *testing.T) {
	sec := section.Rectangle(12, 10)
	in := DeflectionInput{
		Section:           sec,
		SpanIn:            300,
		ModulusPsi:        material.Modulus(5000),
		RupturePsi:        530.0,
		ServiceMomentLbIn: 1000,
		LiveLoadLbPerIn:   2.0,
		EffectiveForceLb:  60000,
		EccentricityIn:    2.5,
	}
	res := Deflection(in)
	if res.CamberIn <= 0 {
		t.Fatalf("camber = %v, want positive", res.CamberIn)
	}
	wantNet := res.LiveDeflectionIn - camberEffect*res.CamberIn
	if math.Abs(res.NetDeflectionIn-wantNet) > 1e-12 {
		t.Errorf("net = %v, want %v", res.NetDeflectionIn, wantNet)
	}

	// zeroing the prestress removes the camber credit
	in.EffectiveForceLb = 0
	flat := Deflection(in)
	if flat.NetDeflectionIn != flat.LiveDeflectionIn {
		t.Errorf("without prestress net %v should equal live %v", flat.NetDeflectionIn, flat.LiveDeflectionIn)
	}
}

func TestVibration(t *testing.T) {
	res := Vibration(0.25)
	want := vibrationConstant * math.Sqrt(gravityInPerS2/0.25)
	if math.Abs(res.FrequencyHz-want) > 1e-12 {
		t.Errorf("fn = %v, want %v", res.FrequencyHz, want)
	}
	if !res.OK {
		t.Errorf("fn = %v should pass the %v Hz minimum", res.FrequencyHz, minFrequencyHz)
	}
	if res := Vibration(2.0); res.OK {
		t.Errorf("fn = %v should fail the %v Hz minimum", res.FrequencyHz, minFrequencyHz)
	}
	if res := Vibration(0); !res.OK {
		t.Error("zero deflection must pass")
	}
}

func TestPunching(t *testing.T) {
	in := PunchingInput{
		Fc:              5000,
		DepthIn:         8,
		ColumnC1In:      20,
		ColumnC2In:      20,
		AvgPrestressPsi: 150,
		AlphaS:          40,
	}
	bo := 4 * (20.0 + 8.0)
	wantVc := 4.0*math.Sqrt(5000) + 0.3*150 // square interior column: 4 governs
	wantDesign := phiShear * wantVc * bo * 8

	in.FactoredShearLb = wantDesign * 0.95
	res := Punching(in)
	if math.Abs(res.PerimeterIn-bo) > 1e-12 {
		t.Errorf("bo = %v, want %v", res.PerimeterIn, bo)
	}
	if math.Abs(res.StressLimitPsi-wantVc) > 1e-9 {
		t.Errorf("vc = %v, want %v", res.StressLimitPsi, wantVc)
	}
	if !res.OK {
		t.Errorf("Vu %v below design %v should pass", in.FactoredShearLb, res.DesignShearLb)
	}

	in.FactoredShearLb = wantDesign * 1.05
	if res := Punching(in); res.OK {
		t.Error("Vu above design strength should fail")
	}

	// elongated column: the aspect-ratio equation governs
	in.ColumnC1In, in.ColumnC2In = 48, 12
	in.FactoredShearLb = 1
	res = Punching(in)
	betaC := 4.0
	vcAspect := (2.0+4.0/betaC)*math.Sqrt(5000) + 0.3*150
	if math.Abs(res.StressLimitPsi-vcAspect) > 1e-9 {
		t.Errorf("vc = %v, want aspect-governed %v", res.StressLimitPsi, vcAspect)
	}
}

func TestPrestressFloor(t *testing.T) {
	if got := PrestressFloor(false); got != 125 {
		t.Errorf("floor = %v, want 125", got)
	}
	if got := PrestressFloor(true); got != 150 {
		t.Errorf("parking floor = %v, want 150", got)
	}
}

func TestMinAveragePrestress(t *testing.T) {
	if avg, ok := MinAveragePrestress(15000, 120, false); !ok || avg != 125 {
		t.Errorf("avg %v ok %v, want exactly-at-floor pass", avg, ok)
	}
	if _, ok := MinAveragePrestress(14000, 120, false); ok {
		t.Error("below 125 psi must fail")
	}
	if _, ok := MinAveragePrestress(15000, 120, true); ok {
		t.Error("parking floor is 150 psi, 125 must fail")
	}
	if _, ok := MinAveragePrestress(18000, 120, true); !ok {
		t.Error("150 psi must pass the parking floor")
	}
}

func TestCamberOK(t *testing.T) {
	if !CamberOK(1.0, 300) {
		t.Error("1 in over a 300 in span passes span/300")
	}
	if CamberOK(1.1, 300) {
		t.Error("1.1 in over a 300 in span fails span/300")
	}
}
