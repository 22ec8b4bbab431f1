package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"Tendon/internal/calc/compare"
	"Tendon/internal/calc/cost"
	"Tendon/internal/calc/loads"
)

type BayInput struct {
	Label               string          `json:"label"`
	BayLengthFt         float64         `json:"bay_length_ft"`
	BayWidthFt          float64         `json:"bay_width_ft"`
	SuperimposedDeadPsf float64         `json:"superimposed_dead_psf"`
	Occupancy           loads.Occupancy `json:"occupancy"`
}

type Input struct {
	Cost  cost.Parameters `json:"cost"`
	Items []BayInput      `json:"items"`
}

type Item struct {
	Label   string           `json:"label"`
	Results *compare.Results `json:"results"`
}

type Result struct {
	Items []Item `json:"items"`
}

// Calculate optimizes every bay in the request with a shared cost
// table. Bays run concurrently, a few at a time; one invalid bay
// fails the whole batch.
func Calculate(ctx context.Context, in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}

	out := Result{Items: make([]Item, len(in.Items))}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, item := range in.Items {
		i, item := i, item
		g.Go(func() error {
			res, err := compare.ComputeOptimization(ctx, item.BayLengthFt, item.BayWidthFt,
				in.Cost, item.Occupancy, item.SuperimposedDeadPsf)
			if err != nil {
				return fmt.Errorf("bay %q: %w", item.Label, err)
			}
			out.Items[i] = Item{Label: item.Label, Results: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return out, nil
}
