package loads

import "testing"

func TestGravity(t *testing.T) {
	self, dead, live := Gravity(8, 20, OccupancyOffice)
	if self != 100 {
		t.Errorf("self weight = %v, want 100 psf for 8 in slab", self)
	}
	if dead != 120 {
		t.Errorf("dead = %v, want 120", dead)
	}
	if live != 50 {
		t.Errorf("live = %v, want 50 for office", live)
	}
}

func TestCalculateBaseShear(t *testing.T) {
	res, err := Calculate(Input{
		ThicknessIn:      10,
		Occupancy:        OccupancyParking,
		SpectralAccelSds: 1.0,
		SeismicWeightKip: 800,
		ResponseFactorR:  8,
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.BaseShearKip != 100 {
		t.Errorf("base shear = %v, want 100 kip", res.BaseShearKip)
	}
	if res.LivePsf != 40 {
		t.Errorf("live = %v, want 40 for parking", res.LivePsf)
	}
}

func TestCalculateRejectsBadThickness(t *testing.T) {
	if _, err := Calculate(Input{ThicknessIn: 0}); err == nil {
		t.Fatal("expected error for zero thickness")
	}
}
