package rebar

import (
	"math"
	"testing"

	"Tendon/internal/calc/section"
)

func baseInput() Input {
	return Input{
		Fc:                 5000,
		Fy:                 60000,
		Section:            section.Rectangle(12, 10),
		EffectiveDepthIn:   8,
		CrackingMomentLbIn: 50000,
		LongSpanIn:         360,
		PanelWidthIn:       360,
		ServiceTopPsi:      -400,
		ServiceBotPsi:      -100,
	}
}

func TestTemperatureGovernsSmallMoment(t *testing.T) {
	in := baseInput()
	res := Size(in)
	// Mcr/(1.2*fy*d)/A = 50000/(1.2*60000*8)/120 = 0.00072 < 0.0018
	if res.Governing != "temperature" {
		t.Fatalf("governing = %q, want temperature", res.Governing)
	}
	if res.GoverningRatio != tempRatioGrade60 {
		t.Errorf("ratio = %v, want temperature floor %v", res.GoverningRatio, tempRatioGrade60)
	}
}

func TestGrade40Ratio(t *testing.T) {
	in := baseInput()
	in.Fy = 40000
	if res := Size(in); res.TempShrinkRatio != tempRatioGrade40 {
		t.Errorf("grade 40 temp ratio = %v, want %v", res.TempShrinkRatio, tempRatioGrade40)
	}
}

func TestBondedGovernsLargeCrackingMoment(t *testing.T) {
	in := baseInput()
	in.CrackingMomentLbIn = 300000
	res := Size(in)
	want := 300000.0 / (1.2 * 60000 * 8) / 120.0
	if res.Governing != "bonded" {
		t.Fatalf("governing = %q, want bonded", res.Governing)
	}
	if math.Abs(res.GoverningRatio-want) > 1e-12 {
		t.Errorf("ratio = %v, want %v", res.GoverningRatio, want)
	}
	if res.GoverningRatio <= res.TempShrinkRatio {
		t.Error("bonded criterion should exceed the temperature floor here")
	}
}

func TestTwoWayNeverBelowTemperature(t *testing.T) {
	in := baseInput()
	in.TwoWay = true
	in.LongSpanIn = 240
	in.PanelWidthIn = 600 // 0.00075*240/600 = 0.0003 < 0.0018
	res := Size(in)
	if res.TwoWayRatio != tempRatioGrade60 {
		t.Errorf("two-way ratio = %v, want clamped to %v", res.TwoWayRatio, tempRatioGrade60)
	}
}

func TestTwoWayExtraTensionArea(t *testing.T) {
	in := baseInput()
	in.TwoWay = true
	in.LongSpanIn = 360
	in.PanelWidthIn = 300

	base := Size(in)

	// bottom fiber tension past 2*sqrt(fc) = 141.4 psi
	in.ServiceBotPsi = 300
	in.ServiceTopPsi = -600
	res := Size(in)
	if res.TwoWayRatio <= base.TwoWayRatio {
		t.Errorf("excess tension must add bonded area: %v <= %v", res.TwoWayRatio, base.TwoWayRatio)
	}
	if res.Governing != "two-way" {
		t.Errorf("governing = %q, want two-way", res.Governing)
	}

	// tension below the trigger adds nothing
	in.ServiceBotPsi = 100
	if res := Size(in); res.TwoWayRatio != base.TwoWayRatio {
		t.Errorf("sub-threshold tension changed the ratio: %v vs %v", res.TwoWayRatio, base.TwoWayRatio)
	}
}

func TestWeightConversion(t *testing.T) {
	res := Size(baseInput())
	want := res.GoverningRatio * 12.0 * 10.0 * steelLbPerFtPerIn2
	if math.Abs(res.WeightPsf-want) > 1e-12 {
		t.Errorf("WeightPsf = %v, want %v", res.WeightPsf, want)
	}
	if res.WeightPsf <= 0 {
		t.Error("weight must be positive")
	}
}
