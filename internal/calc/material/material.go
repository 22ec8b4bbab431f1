package material

import "math"

// Concrete properties used across the design checks. All strengths in psi.
// Callers are expected to pass fc > 0; there is no error path here.

// InitialStrengthRatio is the assumed fci/fc at transfer.
const InitialStrengthRatio = 0.7

type StressLimits struct {
	TransferCompression float64 `json:"transfer_compression"`
	TransferTension     float64 `json:"transfer_tension"`
	ServiceCompression  float64 `json:"service_compression"`
	ServiceTension      float64 `json:"service_tension"`
	RuptureModulus      float64 `json:"rupture_modulus"`
}

// Modulus returns the elastic modulus Ec in psi. Used only for
// deflection and camber stiffness, not for stress limits.
func Modulus(fc float64) float64 {
	return 57000.0 * math.Sqrt(fc)
}

// Limits returns the allowable fiber stresses for transfer (at fci)
// and service (at fc). Compression limits are linear fractions of
// strength; tension limits follow the square-root Class T form.
// All limits are returned as positive magnitudes.
func Limits(fc, fci float64) StressLimits {
	return StressLimits{
		TransferCompression: 0.60 * fci,
		TransferTension:     3.0 * math.Sqrt(fci),
		ServiceCompression:  0.60 * fc,
		ServiceTension:      6.0 * math.Sqrt(fc),
		RuptureModulus:      7.5 * math.Sqrt(fc),
	}
}

// Cover returns the required concrete cover in inches. Higher strength
// permits less cover, which buys usable eccentricity.
func Cover(fc float64) float64 {
	switch {
	case fc < 5000:
		return 1.50
	case fc < 7000:
		return 1.25
	default:
		return 1.00
	}
}

// LossRatio returns the fraction of initial prestress retained after
// long-term losses.
func LossRatio(fc float64) float64 {
	switch {
	case fc < 4500:
		return 0.80
	case fc < 5500:
		return 0.82
	case fc < 7000:
		return 0.85
	default:
		return 0.88
	}
}
