package loads

import "fmt"

// Gravity load buildup for a floor bay plus a seismic base-shear
// estimate. The optimizer consumes the gravity numbers; the seismic
// result is recorded with the project for reference only.

const concreteDensityPcf = 150.0

type Occupancy string

const (
	OccupancyOffice      Occupancy = "office"
	OccupancyResidential Occupancy = "residential"
	OccupancyParking     Occupancy = "parking"
)

type Input struct {
	ThicknessIn         float64   `json:"thickness_in"`
	SuperimposedDeadPsf float64   `json:"superimposed_dead_psf"`
	Occupancy           Occupancy `json:"occupancy"`
	// seismic metadata
	SiteClass        string  `json:"site_class"`
	SpectralAccelSds float64 `json:"sds"`
	SeismicWeightKip float64 `json:"seismic_weight_kip"`
	ResponseFactorR  float64 `json:"response_factor_r"`
}

type Result struct {
	SelfWeightPsf float64 `json:"self_weight_psf"`
	DeadPsf       float64 `json:"dead_psf"`
	LivePsf       float64 `json:"live_psf"`
	BaseShearKip  float64 `json:"base_shear_kip"`
	Notes         string  `json:"notes"`
}

// LiveLoad returns the occupancy design live load in psf.
func LiveLoad(o Occupancy) float64 {
	switch o {
	case OccupancyResidential:
		return 40
	case OccupancyParking:
		return 40
	default:
		return 50
	}
}

// Gravity returns self weight, total dead and live load for a solid
// slab of the given thickness.
func Gravity(thicknessIn, superimposedPsf float64, o Occupancy) (self, dead, live float64) {
	self = concreteDensityPcf * thicknessIn / 12.0
	if superimposedPsf < 0 {
		superimposedPsf = 0
	}
	return self, self + superimposedPsf, LiveLoad(o)
}

// Calculate produces the full load record. Base shear uses the
// equivalent-lateral-force shortcut Cs*W with Cs = Sds/R; it is not
// consumed by the bay optimizer.
func Calculate(in Input) (Result, error) {
	if in.ThicknessIn <= 0 {
		return Result{}, fmt.Errorf("invalid thickness")
	}
	self, dead, live := Gravity(in.ThicknessIn, in.SuperimposedDeadPsf, in.Occupancy)

	shear := 0.0
	if in.SpectralAccelSds > 0 && in.SeismicWeightKip > 0 {
		r := in.ResponseFactorR
		if r <= 0 {
			r = 8.0
		}
		shear = in.SpectralAccelSds / r * in.SeismicWeightKip
	}

	return Result{
		SelfWeightPsf: self,
		DeadPsf:       dead,
		LivePsf:       live,
		BaseShearKip:  shear,
		Notes:         "Gravity buildup for a solid slab; base shear informational only.",
	}, nil
}
