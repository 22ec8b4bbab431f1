package search

import (
	"fmt"
	"math"

	"Tendon/internal/calc/cost"
	"Tendon/internal/calc/loads"
)

// Exhaustive grid search for the cheapest feasible post-tensioned
// floor system. One search per system type; each retains the
// minimum-cost candidate that passes every check. First-found wins on
// exact cost ties, so the enumeration order (strength asc, thickness
// asc, balance asc, eccentricity asc) is part of the contract.

type System string

const (
	SystemFlatPlate  System = "flat_plate"
	SystemOneWayBeam System = "one_way_beam"
	SystemTwoWayBeam System = "two_way_beam"
)

type Input struct {
	BayLengthFt         float64         `json:"bay_length_ft"`
	BayWidthFt          float64         `json:"bay_width_ft"`
	SuperimposedDeadPsf float64         `json:"superimposed_dead_psf"`
	Occupancy           loads.Occupancy `json:"occupancy"`
	Cost                cost.Parameters `json:"cost"`
}

func (in *Input) validate() error {
	// !(x > 0) also catches NaN, which compares false everywhere
	if !(in.BayLengthFt > 0) || !(in.BayWidthFt > 0) ||
		math.IsInf(in.BayLengthFt, 0) || math.IsInf(in.BayWidthFt, 0) {
		return fmt.Errorf("invalid bay geometry %vx%v", in.BayLengthFt, in.BayWidthFt)
	}
	if math.IsNaN(in.SuperimposedDeadPsf) || math.IsInf(in.SuperimposedDeadPsf, 0) {
		return fmt.Errorf("invalid superimposed dead load %v", in.SuperimposedDeadPsf)
	}
	if in.Occupancy == "" {
		in.Occupancy = loads.OccupancyOffice
	}
	return in.Cost.Validate()
}

// candidate is the ephemeral per-grid-point state. It never leaves
// the search loop; a winner is copied into a Result wholesale.
type candidate struct {
	fc           float64
	thicknessIn  float64
	beamWidthIn  float64
	beamDepthIn  float64
	balanceRatio float64
	eccRatio     float64
	eccIn        float64
	effectiveLb  float64
	initialLb    float64
}

type CostBreakdown struct {
	ConcretePerFt2 float64 `json:"concrete_per_ft2"`
	FormworkPerFt2 float64 `json:"formwork_per_ft2"`
	BeamFormPerFt2 float64 `json:"beam_form_per_ft2"`
	StrandPerFt2   float64 `json:"strand_per_ft2"`
	RebarPerFt2    float64 `json:"rebar_per_ft2"`
	UnitPerFt2     float64 `json:"unit_per_ft2"`
	Total          float64 `json:"total"`
}

// Result is the retained best design for one system. Present only
// when every entry of Checks is true.
type Result struct {
	System           System          `json:"system"`
	Fc               float64         `json:"fc_psi"`
	ThicknessIn      float64         `json:"thickness_in"`
	BeamWidthIn      float64         `json:"beam_width_in,omitempty"`
	BeamDepthIn      float64         `json:"beam_depth_in,omitempty"`
	BalanceRatio     float64         `json:"balance_ratio"`
	EccentricityIn   float64         `json:"eccentricity_in"`
	EffectiveForceLb float64         `json:"effective_force_lb"`
	InitialForceLb   float64         `json:"initial_force_lb"`
	RebarRatio       float64         `json:"rebar_ratio"`
	RebarGoverning   string          `json:"rebar_governing"`
	WeightPsf        float64         `json:"weight_psf"`
	Cost             CostBreakdown   `json:"cost"`
	Checks           map[string]bool `json:"checks"`
}

// Diagnostics counts why grid points were discarded. Returned next to
// the result instead of accumulated in globals.
type Diagnostics struct {
	Evaluated      int `json:"evaluated"`
	Geometry       int `json:"geometry"`
	TransferStress int `json:"transfer_stress"`
	ServiceStress  int `json:"service_stress"`
	MinPrestress   int `json:"min_prestress"`
	Flexure        int `json:"flexure"`
	Deflection     int `json:"deflection"`
	Vibration      int `json:"vibration"`
	Punching       int `json:"punching"`
	Camber         int `json:"camber"`
	Feasible       int `json:"feasible"`
}

// check map keys shared by all systems
const (
	checkTransfer     = "transfer_stress"
	checkService      = "service_stress"
	checkMinPrestress = "min_prestress"
	checkFlexure      = "flexure"
	checkDeflection   = "deflection"
	checkVibration    = "vibration"
	checkPunching     = "punching"
	checkCamber       = "camber"
)
