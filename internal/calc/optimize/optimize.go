package optimize

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"Tendon/internal/calc/compare"
	"Tendon/internal/calc/loads"
	"Tendon/internal/repo"
)

// Service glues the pure engine to the project store: fetch the
// project record, compute, patch the results back. Everything below
// compare.ComputeOptimization is side-effect free.

type Service struct {
	Repo repo.Repository
	Log  *zap.Logger
}

func (s *Service) Optimize(ctx context.Context, projectID, userID int) (*compare.Results, error) {
	p, err := s.Repo.GetProject(ctx, projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("load project %d: %w", projectID, err)
	}

	start := time.Now()
	res, err := compare.ComputeOptimization(ctx, p.BayLengthFt, p.BayWidthFt,
		p.CostParams, loads.Occupancy(p.Occupancy), p.SuperimposedDeadPsf)
	if err != nil {
		return nil, fmt.Errorf("optimize project %d: %w", projectID, err)
	}

	if err := s.Repo.UpdateResults(ctx, projectID, userID, res); err != nil {
		return nil, fmt.Errorf("store results for project %d: %w", projectID, err)
	}

	s.Log.Info("optimization complete",
		zap.Int("project_id", projectID),
		zap.String("optimal", res.Optimal),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}
