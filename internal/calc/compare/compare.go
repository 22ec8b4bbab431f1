package compare

import (
	"context"

	"golang.org/x/sync/errgroup"

	"Tendon/internal/calc/cost"
	"Tendon/internal/calc/loads"
	"Tendon/internal/calc/search"
)

// Runs the three system searches for the requested bay and for a
// fixed ladder of reference spans, then picks the cheapest feasible
// system. The comparison table stays numeric: infeasible spans carry
// a large sentinel unit cost instead of a null.

// InfeasibleUnitCost is the sentinel $/ft2 reported where a system
// has no feasible design.
const InfeasibleUnitCost = 999.0

// NoSystem is reported when no system is constructible at all.
const NoSystem = "none"

var referenceSpansFt = []float64{20, 25, 30, 35, 40, 45, 50, 55, 60, 65}

type SpanComparison struct {
	SpanFt     float64 `json:"span_ft"`
	FlatPlate  float64 `json:"flat_plate"`
	OneWayBeam float64 `json:"one_way_beam"`
	TwoWayBeam float64 `json:"two_way_beam"`
}

type Results struct {
	FlatPlate  *search.Result `json:"flat_plate,omitempty"`
	OneWayBeam *search.Result `json:"one_way_beam,omitempty"`
	TwoWayBeam *search.Result `json:"two_way_beam,omitempty"`

	Optimal     string                               `json:"optimal"`
	Comparisons []SpanComparison                     `json:"comparisons"`
	Diagnostics map[search.System]search.Diagnostics `json:"diagnostics"`
	Loads       loads.Result                         `json:"loads"`
}

// ComputeOptimization is the pure engine entry: geometry and costs
// in, the full comparison out. No I/O happens below this call.
func ComputeOptimization(ctx context.Context, bayLengthFt, bayWidthFt float64,
	costParams cost.Parameters, occupancy loads.Occupancy, superimposedPsf float64) (*Results, error) {

	in := search.Input{
		BayLengthFt:         bayLengthFt,
		BayWidthFt:          bayWidthFt,
		SuperimposedDeadPsf: superimposedPsf,
		Occupancy:           occupancy,
		Cost:                costParams,
	}
	if err := in.Cost.Validate(); err != nil {
		return nil, err
	}

	out := &Results{Diagnostics: make(map[search.System]search.Diagnostics)}

	// the three searches share nothing mutable; run them in parallel
	g, _ := errgroup.WithContext(ctx)
	var dFlat, dOne, dTwo search.Diagnostics
	g.Go(func() (err error) {
		out.FlatPlate, dFlat, err = search.FlatPlate(in)
		return err
	})
	g.Go(func() (err error) {
		out.OneWayBeam, dOne, err = search.OneWayBeam(in)
		return err
	})
	g.Go(func() (err error) {
		out.TwoWayBeam, dTwo, err = search.TwoWayBeam(in)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out.Diagnostics[search.SystemFlatPlate] = dFlat
	out.Diagnostics[search.SystemOneWayBeam] = dOne
	out.Diagnostics[search.SystemTwoWayBeam] = dTwo

	out.Optimal = pickOptimal(out.FlatPlate, out.OneWayBeam, out.TwoWayBeam)
	out.Comparisons = comparisonTable(in)

	thickness := 0.0
	if r := bySystem(out, out.Optimal); r != nil {
		thickness = r.ThicknessIn
	}
	if thickness > 0 {
		ld, err := loads.Calculate(loads.Input{
			ThicknessIn:         thickness,
			SuperimposedDeadPsf: superimposedPsf,
			Occupancy:           occupancy,
		})
		if err == nil {
			out.Loads = ld
		}
	}
	return out, nil
}

// pickOptimal returns the cheapest feasible system name, or the
// explicit NoSystem sentinel.
func pickOptimal(flat, one, two *search.Result) string {
	best := NoSystem
	bestCost := 0.0
	consider := func(r *search.Result) {
		if r == nil {
			return
		}
		if best == NoSystem || r.Cost.Total < bestCost {
			best = string(r.System)
			bestCost = r.Cost.Total
		}
	}
	consider(flat)
	consider(one)
	consider(two)
	return best
}

func bySystem(r *Results, name string) *search.Result {
	switch search.System(name) {
	case search.SystemFlatPlate:
		return r.FlatPlate
	case search.SystemOneWayBeam:
		return r.OneWayBeam
	case search.SystemTwoWayBeam:
		return r.TwoWayBeam
	}
	return nil
}

// comparisonTable reruns the three searches on square bays at each
// reference span and tabulates unit costs.
func comparisonTable(base search.Input) []SpanComparison {
	table := make([]SpanComparison, 0, len(referenceSpansFt))
	for _, span := range referenceSpansFt {
		in := base
		in.BayLengthFt = span
		in.BayWidthFt = span

		row := SpanComparison{
			SpanFt:     span,
			FlatPlate:  InfeasibleUnitCost,
			OneWayBeam: InfeasibleUnitCost,
			TwoWayBeam: InfeasibleUnitCost,
		}
		if r, _, err := search.FlatPlate(in); err == nil && r != nil {
			row.FlatPlate = r.Cost.UnitPerFt2
		}
		if r, _, err := search.OneWayBeam(in); err == nil && r != nil {
			row.OneWayBeam = r.Cost.UnitPerFt2
		}
		if r, _, err := search.TwoWayBeam(in); err == nil && r != nil {
			row.TwoWayBeam = r.Cost.UnitPerFt2
		}
		table = append(table, row)
	}
	return table
}
