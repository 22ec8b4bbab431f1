package stress

import (
	"Tendon/internal/calc/material"
	"Tendon/internal/calc/section"
)

// Fiber stresses for one trial design. One convention everywhere:
// compression is NEGATIVE, tension is POSITIVE. A tendon below the
// centroid (positive eccentricity) puts tension into the top fiber
// and compression into the bottom; a sagging applied moment does the
// opposite. Every limit comparison goes through WithinLimits so a
// fiber can never be checked against the wrong-sign bound.

type Fibers struct {
	TransferTop float64 `json:"transfer_top"`
	TransferBot float64 `json:"transfer_bot"`
	ServiceTop  float64 `json:"service_top"`
	ServiceBot  float64 `json:"service_bot"`
}

type Input struct {
	Section            section.Properties
	InitialForceLb     float64 // Pi, before losses
	EffectiveForceLb   float64 // Pe, after losses
	EccentricityIn     float64 // tendon centroid below section centroid
	TransferMomentLbIn float64 // dead load only
	ServiceMomentLbIn  float64 // dead + reduced live
}

// Evaluate computes the four extreme-fiber stresses, psi.
func Evaluate(in Input) Fibers {
	a := in.Section.AreaIn2
	st := in.Section.TopModulus
	sb := in.Section.BotModulus

	return Fibers{
		TransferTop: -in.InitialForceLb/a + in.InitialForceLb*in.EccentricityIn/st - in.TransferMomentLbIn/st,
		TransferBot: -in.InitialForceLb/a - in.InitialForceLb*in.EccentricityIn/sb + in.TransferMomentLbIn/sb,
		ServiceTop:  -in.EffectiveForceLb/a + in.EffectiveForceLb*in.EccentricityIn/st - in.ServiceMomentLbIn/st,
		ServiceBot:  -in.EffectiveForceLb/a - in.EffectiveForceLb*in.EccentricityIn/sb + in.ServiceMomentLbIn/sb,
	}
}

// WithinLimits reports whether a single fiber stress sits inside
// [-compressionLimit, +tensionLimit]. Both limits are positive
// magnitudes from material.Limits.
func WithinLimits(f, compressionLimit, tensionLimit float64) bool {
	return f >= -compressionLimit && f <= tensionLimit
}

// Check applies the stage-appropriate limits to all four fibers.
func Check(fib Fibers, lim material.StressLimits) (transferOK, serviceOK bool) {
	transferOK = WithinLimits(fib.TransferTop, lim.TransferCompression, lim.TransferTension) &&
		WithinLimits(fib.TransferBot, lim.TransferCompression, lim.TransferTension)
	serviceOK = WithinLimits(fib.ServiceTop, lim.ServiceCompression, lim.ServiceTension) &&
		WithinLimits(fib.ServiceBot, lim.ServiceCompression, lim.ServiceTension)
	return transferOK, serviceOK
}
