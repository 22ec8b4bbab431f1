package cost

import (
	"fmt"
	"math"
	"sort"
)

// Reference strength at which the slab cost table is priced.
const ReferenceFc = 5000.0

// baseConcreteCost at the reference strength, $/yd3.
const baseAtReference = 150.0

// Fallbacks applied when a unit cost is missing from the request.
// Malformed input must never push NaN through the cost arithmetic.
const (
	DefaultFormworkPerFt2  = 4.50
	DefaultBeamFormPerFt3  = 18.0
	DefaultStrandCostPerLb = 1.10
	DefaultMildSteelPerLb  = 0.85
)

type TablePoint struct {
	ThicknessIn float64 `json:"thickness_in"`
	CostPerFt2  float64 `json:"cost_per_ft2"`
}

// Parameters is the per-run cost input. The slab table is a
// piecewise-linear curve of $/ft2 against thickness; the remaining
// fields are flat unit costs.
type Parameters struct {
	SlabTable       []TablePoint `json:"slab_table"`
	FormworkPerFt2  float64      `json:"formwork_per_ft2"`
	BeamFormPerFt3  float64      `json:"beam_form_per_ft3"`
	StrandCostPerLb float64      `json:"strand_cost_per_lb"`
	MildSteelPerLb  float64      `json:"mild_steel_per_lb"`
}

// Validate checks the caller contract: at least two slab table points,
// all finite, sorted ascending by thickness. It also fills missing
// unit costs with the documented fallbacks.
func (p *Parameters) Validate() error {
	if len(p.SlabTable) < 2 {
		return fmt.Errorf("slab cost table needs at least 2 points, got %d", len(p.SlabTable))
	}
	for i, pt := range p.SlabTable {
		if !finite(pt.ThicknessIn) || !finite(pt.CostPerFt2) {
			return fmt.Errorf("slab cost table point %d is not finite", i)
		}
	}
	// sort a private copy so a Parameters value can be shared across
	// concurrent searches
	p.SlabTable = append([]TablePoint(nil), p.SlabTable...)
	sort.Slice(p.SlabTable, func(i, j int) bool {
		return p.SlabTable[i].ThicknessIn < p.SlabTable[j].ThicknessIn
	})
	for i := 1; i < len(p.SlabTable); i++ {
		if p.SlabTable[i].ThicknessIn == p.SlabTable[i-1].ThicknessIn {
			return fmt.Errorf("slab cost table has duplicate thickness %v", p.SlabTable[i].ThicknessIn)
		}
	}
	if p.FormworkPerFt2 <= 0 || !finite(p.FormworkPerFt2) {
		p.FormworkPerFt2 = DefaultFormworkPerFt2
	}
	if p.BeamFormPerFt3 <= 0 || !finite(p.BeamFormPerFt3) {
		p.BeamFormPerFt3 = DefaultBeamFormPerFt3
	}
	if p.StrandCostPerLb <= 0 || !finite(p.StrandCostPerLb) {
		p.StrandCostPerLb = DefaultStrandCostPerLb
	}
	if p.MildSteelPerLb <= 0 || !finite(p.MildSteelPerLb) {
		p.MildSteelPerLb = DefaultMildSteelPerLb
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// BaseConcrete returns the $/yd3 price of concrete at strength fc.
// Flat at the base price up to the reference strength, a linear
// premium per 1000 psi up to 8000, and a steeper premium beyond.
func BaseConcrete(fc float64) float64 {
	switch {
	case fc <= ReferenceFc:
		return baseAtReference
	case fc <= 8000:
		return baseAtReference + 12.0*(fc-ReferenceFc)/1000.0
	default:
		return baseAtReference + 12.0*(8000-ReferenceFc)/1000.0 + 20.0*(fc-8000)/1000.0
	}
}

// InterpolatedSlab returns the $/ft2 slab price at the given thickness
// by linear interpolation on the table, clamped to the boundary prices
// outside the table's range. Table must already be validated.
func InterpolatedSlab(thicknessIn float64, table []TablePoint) float64 {
	if thicknessIn <= table[0].ThicknessIn {
		return table[0].CostPerFt2
	}
	last := table[len(table)-1]
	if thicknessIn >= last.ThicknessIn {
		return last.CostPerFt2
	}
	for i := 1; i < len(table); i++ {
		if thicknessIn <= table[i].ThicknessIn {
			lo, hi := table[i-1], table[i]
			frac := (thicknessIn - lo.ThicknessIn) / (hi.ThicknessIn - lo.ThicknessIn)
			return lo.CostPerFt2 + frac*(hi.CostPerFt2-lo.CostPerFt2)
		}
	}
	return last.CostPerFt2
}

// StrengthAdjustedSlab takes the table price (priced at ReferenceFc)
// and adds the volume-weighted concrete premium for fc. thickness is
// in inches, result in $/ft2.
func StrengthAdjustedSlab(basePerFt2, thicknessIn, fc float64) float64 {
	ydPerFt2 := thicknessIn / 12.0 / 27.0
	return basePerFt2 + ydPerFt2*(BaseConcrete(fc)-BaseConcrete(ReferenceFc))
}
