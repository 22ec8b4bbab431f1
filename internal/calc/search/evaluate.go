package search

import (
	"Tendon/internal/calc/capacity"
	"Tendon/internal/calc/material"
	"Tendon/internal/calc/rebar"
	"Tendon/internal/calc/section"
	"Tendon/internal/calc/stress"
)

const (
	strandJackingPsi = 189000.0 // 0.7 fpu, 270 ksi strand
	minUsableEccIn   = 0.75
	strandDiaAllowIn = 0.25 // half strand diameter below the cover line

	steelLbPerFtPerIn2 = 3.4
)

// trial carries everything one grid point needs through the check
// pipeline. Moments are per design strip, forces per strip.
type trial struct {
	fc     float64
	sec    section.Properties
	spanIn float64

	deadMomentLbIn     float64
	serviceMomentLbIn  float64
	factoredMomentLbIn float64
	liveLoadLbPerIn    float64

	effectiveLb float64
	initialLb   float64
	eccIn       float64

	parking  bool
	punching *capacity.PunchingInput // nil when not applicable

	twoWayRebar  bool
	longSpanIn   float64
	panelWidthIn float64
}

// artifacts are the byproducts of a passing trial that feed the cost
// model and the retained result.
type artifacts struct {
	checks     map[string]bool
	fibers     stress.Fibers
	strandIn2  float64
	rebarSize  rebar.Result
	deflection capacity.DeflectionResult
}

// evaluate runs the feasibility pipeline, short-circuiting on the
// first failing check. On failure it returns the diagnostics bucket
// to bump; on success reason is empty and art is complete.
func evaluate(t trial) (art artifacts, reason string) {
	fci := material.InitialStrengthRatio * t.fc
	lim := material.Limits(t.fc, fci)
	ec := material.Modulus(t.fc)
	loss := material.LossRatio(t.fc)
	fse := strandJackingPsi * loss

	fib := stress.Evaluate(stress.Input{
		Section:            t.sec,
		InitialForceLb:     t.initialLb,
		EffectiveForceLb:   t.effectiveLb,
		EccentricityIn:     t.eccIn,
		TransferMomentLbIn: t.deadMomentLbIn,
		ServiceMomentLbIn:  t.serviceMomentLbIn,
	})
	transferOK, serviceOK := stress.Check(fib, lim)
	if !transferOK {
		return art, "transfer"
	}
	if !serviceOK {
		return art, "service"
	}

	avg, prestressOK := capacity.MinAveragePrestress(t.effectiveLb, t.sec.AreaIn2, t.parking)
	if !prestressOK {
		return art, "min_prestress"
	}

	aps := t.effectiveLb / fse
	dp := t.sec.ThicknessIn/2 + t.eccIn
	flex := capacity.Flexure(capacity.FlexureInput{
		Fc:            t.fc,
		WidthIn:       t.sec.WidthIn,
		DepthIn:       dp,
		StrandAreaIn2: aps,
		EffectivePsi:  fse,
		FactoredLbIn:  t.factoredMomentLbIn,
	})
	if !flex.OK {
		return art, "flexure"
	}

	defl := capacity.Deflection(capacity.DeflectionInput{
		Section:           t.sec,
		SpanIn:            t.spanIn,
		ModulusPsi:        ec,
		RupturePsi:        lim.RuptureModulus,
		ServiceMomentLbIn: t.serviceMomentLbIn,
		LiveLoadLbPerIn:   t.liveLoadLbPerIn,
		EffectiveForceLb:  t.effectiveLb,
		EccentricityIn:    t.eccIn,
	})
	if !defl.OK {
		return art, "deflection"
	}

	vib := capacity.Vibration(defl.LiveDeflectionIn)
	if !vib.OK {
		return art, "vibration"
	}

	punchOK := true
	if t.punching != nil {
		p := *t.punching
		p.Fc = t.fc
		p.AvgPrestressPsi = avg
		punchOK = capacity.Punching(p).OK
		if !punchOK {
			return art, "punching"
		}
	}

	if !capacity.CamberOK(defl.CamberIn, t.spanIn) {
		return art, "camber"
	}

	rb := rebar.Size(rebar.Input{
		Fc:                 t.fc,
		Fy:                 60000,
		Section:            t.sec,
		EffectiveDepthIn:   dp,
		CrackingMomentLbIn: defl.CrackingMomentLbIn,
		LongSpanIn:         t.longSpanIn,
		PanelWidthIn:       t.panelWidthIn,
		TwoWay:             t.twoWayRebar,
		ServiceTopPsi:      fib.ServiceTop,
		ServiceBotPsi:      fib.ServiceBot,
	})

	checks := map[string]bool{
		checkTransfer:     true,
		checkService:      true,
		checkMinPrestress: true,
		checkFlexure:      true,
		checkDeflection:   true,
		checkVibration:    true,
		checkCamber:       true,
	}
	if t.punching != nil {
		checks[checkPunching] = punchOK
	}

	return artifacts{
		checks:     checks,
		fibers:     fib,
		strandIn2:  aps,
		rebarSize:  rb,
		deflection: defl,
	}, ""
}

func (d *Diagnostics) bump(reason string) {
	switch reason {
	case "geometry":
		d.Geometry++
	case "transfer":
		d.TransferStress++
	case "service":
		d.ServiceStress++
	case "min_prestress":
		d.MinPrestress++
	case "flexure":
		d.Flexure++
	case "deflection":
		d.Deflection++
	case "vibration":
		d.Vibration++
	case "punching":
		d.Punching++
	case "camber":
		d.Camber++
	}
}

// stripLoads converts psf loads to lb/in line loads and lb-in moments
// for a simply supported strip of the given width.
func stripLoads(deadPsf, livePsf, stripWidthIn, spanIn float64) (wDead, wLive, mDead, mLive float64) {
	wDead = deadPsf * stripWidthIn / 144.0 // psf * ft width / 12 -> lb/in
	wLive = livePsf * stripWidthIn / 144.0
	mDead = wDead * spanIn * spanIn / 8.0
	mLive = wLive * spanIn * spanIn / 8.0
	return wDead, wLive, mDead, mLive
}

const liveServiceFraction = 0.75

func serviceMoment(mDead, mLive float64) float64 {
	return mDead + liveServiceFraction*mLive
}

func factoredMoment(mDead, mLive float64) float64 {
	return 1.2*mDead + 1.6*mLive
}
