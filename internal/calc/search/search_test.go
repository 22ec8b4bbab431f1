package search

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"Tendon/internal/calc/cost"
	"Tendon/internal/calc/loads"
)

func testInput() Input {
	return Input{
		BayLengthFt:         30,
		BayWidthFt:          30,
		SuperimposedDeadPsf: 20,
		Occupancy:           loads.OccupancyOffice,
		Cost: cost.Parameters{
			SlabTable: []cost.TablePoint{
				{ThicknessIn: 5, CostPerFt2: 10},
				{ThicknessIn: 9, CostPerFt2: 14.5},
				{ThicknessIn: 14, CostPerFt2: 22},
			},
			FormworkPerFt2:  4.5,
			BeamFormPerFt3:  18,
			StrandCostPerLb: 1.10,
			MildSteelPerLb:  0.85,
		},
	}
}

type runner func(Input) (*Result, Diagnostics, error)

var systems = map[System]runner{
	SystemFlatPlate:  FlatPlate,
	SystemOneWayBeam: OneWayBeam,
	SystemTwoWayBeam: TwoWayBeam,
}

func TestSearchFindsFeasibleDesign(t *testing.T) {
	for sys, run := range systems {
		res, diag, err := run(testInput())
		if err != nil {
			t.Fatalf("%s: %v", sys, err)
		}
		if res == nil {
			t.Fatalf("%s: no feasible design for a routine 30x30 bay (diag %+v)", sys, diag)
		}
		if res.System != sys {
			t.Errorf("%s: result labeled %s", sys, res.System)
		}
		if diag.Feasible == 0 || diag.Evaluated == 0 {
			t.Errorf("%s: diagnostics not populated: %+v", sys, diag)
		}
		if res.Cost.Total <= 0 || math.IsNaN(res.Cost.Total) || math.IsInf(res.Cost.Total, 0) {
			t.Errorf("%s: bad total cost %v", sys, res.Cost.Total)
		}
		if res.Cost.UnitPerFt2 <= 0 {
			t.Errorf("%s: bad unit cost %v", sys, res.Cost.UnitPerFt2)
		}
	}
}

// A result may only be returned when every named check passed.
func TestFeasibilityInvariant(t *testing.T) {
	for sys, run := range systems {
		res, _, err := run(testInput())
		if err != nil {
			t.Fatalf("%s: %v", sys, err)
		}
		if res == nil {
			t.Fatalf("%s: expected a design", sys)
		}
		if len(res.Checks) == 0 {
			t.Fatalf("%s: empty checks map", sys)
		}
		for name, ok := range res.Checks {
			if !ok {
				t.Errorf("%s: retained design with failing check %q", sys, name)
			}
		}
		if sys == SystemFlatPlate {
			if _, present := res.Checks[checkPunching]; !present {
				t.Errorf("flat plate result missing punching check")
			}
		} else if _, present := res.Checks[checkPunching]; present {
			t.Errorf("%s: beam system should not carry a punching check", sys)
		}
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	for sys, run := range systems {
		a, da, err := run(testInput())
		if err != nil {
			t.Fatalf("%s: %v", sys, err)
		}
		b, db, err := run(testInput())
		if err != nil {
			t.Fatalf("%s: %v", sys, err)
		}
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s: results differ between identical runs (-first +second):\n%s", sys, diff)
		}
		if diff := cmp.Diff(da, db); diff != "" {
			t.Errorf("%s: diagnostics differ between identical runs:\n%s", sys, diff)
		}
	}
}

func TestStrandCostMonotonicity(t *testing.T) {
	for sys, run := range systems {
		cheap := testInput()
		res1, _, err := run(cheap)
		if err != nil {
			t.Fatalf("%s: %v", sys, err)
		}
		dear := testInput()
		dear.Cost.StrandCostPerLb = 2.5
		res2, _, err := run(dear)
		if err != nil {
			t.Fatalf("%s: %v", sys, err)
		}
		if res1 == nil || res2 == nil {
			t.Fatalf("%s: expected designs in both runs", sys)
		}
		if res2.Cost.Total < res1.Cost.Total {
			t.Errorf("%s: raising strand cost lowered the total: %v -> %v",
				sys, res1.Cost.Total, res2.Cost.Total)
		}
	}
}

// A bay so small that the span/depth range leaves no usable
// eccentricity must yield an absent result, not an error.
func TestTinyBayInfeasible(t *testing.T) {
	in := testInput()
	in.BayLengthFt = 6
	in.BayWidthFt = 6
	for sys, run := range systems {
		res, diag, err := run(in)
		if err != nil {
			t.Fatalf("%s: %v", sys, err)
		}
		if res != nil {
			t.Errorf("%s: expected no design for a 6x6 bay, got %+v", sys, res)
		}
		if diag.Geometry == 0 {
			t.Errorf("%s: geometry pruning not recorded: %+v", sys, diag)
		}
		if diag.Feasible != 0 {
			t.Errorf("%s: feasible count %d for an infeasible bay", sys, diag.Feasible)
		}
	}
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	in := testInput()
	in.BayLengthFt = 0
	if _, _, err := FlatPlate(in); err == nil {
		t.Fatal("expected error for zero bay length")
	}
}

// Non-finite inputs must fail validation up front, never reach the
// axis arithmetic.
func TestValidateRejectsNonFiniteInput(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		for sys, run := range systems {
			in := testInput()
			in.BayLengthFt = bad
			if _, _, err := run(in); err == nil {
				t.Errorf("%s: expected error for bay length %v", sys, bad)
			}

			in = testInput()
			in.BayWidthFt = bad
			if _, _, err := run(in); err == nil {
				t.Errorf("%s: expected error for bay width %v", sys, bad)
			}

			in = testInput()
			in.SuperimposedDeadPsf = bad
			if _, _, err := run(in); err == nil {
				t.Errorf("%s: expected error for superimposed load %v", sys, bad)
			}
		}
	}
}

// Feasible parking candidates are a subset of residential ones (same
// 40 psf live load, stricter prestress floor) and their slab tendons
// are priced at the higher floor, so the parking optimum can never
// come out cheaper.
func TestParkingBeamSystemsNotCheaperThanResidential(t *testing.T) {
	for _, sys := range []System{SystemOneWayBeam, SystemTwoWayBeam} {
		run := systems[sys]

		resIn := testInput()
		resIn.Occupancy = loads.OccupancyResidential
		resident, _, err := run(resIn)
		if err != nil {
			t.Fatalf("%s: %v", sys, err)
		}

		parkIn := testInput()
		parkIn.Occupancy = loads.OccupancyParking
		parking, _, err := run(parkIn)
		if err != nil {
			t.Fatalf("%s: %v", sys, err)
		}

		if resident == nil || parking == nil {
			t.Fatalf("%s: expected designs for both occupancies", sys)
		}
		if parking.Cost.Total < resident.Cost.Total {
			t.Errorf("%s: parking optimum %v cheaper than residential %v",
				sys, parking.Cost.Total, resident.Cost.Total)
		}
	}
}

func TestValidateRejectsBadCostTable(t *testing.T) {
	in := testInput()
	in.Cost.SlabTable = in.Cost.SlabTable[:1]
	if _, _, err := OneWayBeam(in); err == nil {
		t.Fatal("expected error for one-point cost table")
	}
}

func TestParkingRaisesPrestressFloor(t *testing.T) {
	office := testInput()
	resOffice, _, err := FlatPlate(office)
	if err != nil {
		t.Fatal(err)
	}
	parking := testInput()
	parking.Occupancy = loads.OccupancyParking
	resParking, diag, err := FlatPlate(parking)
	if err != nil {
		t.Fatal(err)
	}
	if resOffice == nil || resParking == nil {
		t.Fatal("expected designs for both occupancies")
	}
	if resParking.EffectiveForceLb/(stripWidthIn*resParking.ThicknessIn) < 150 {
		t.Errorf("parking design average prestress %v below 150 psi",
			resParking.EffectiveForceLb/(stripWidthIn*resParking.ThicknessIn))
	}
	if diag.Evaluated == 0 {
		t.Error("no candidates evaluated for parking run")
	}
}
