package app

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"gobayes/domain/bayes"
	"gobayes/domain/core"
	"gobayes/internal/errors"
)

// AnalysisStore persists computed analyses. Implementations live in
// adapters; the service treats storage as optional.
type AnalysisStore interface {
	Save(ctx context.Context, analysis *bayes.Analysis) error
	Get(ctx context.Context, id core.AnalysisID) (*bayes.Analysis, error)
	ListRecent(ctx context.Context, limit int) ([]*bayes.Analysis, error)
}

// AnalysisRequest defines the inputs for one Bayes factor evaluation. The
// data is supplied either as a precomputed summary or as raw samples.
type AnalysisRequest struct {
	Label   string             `json:"label,omitempty"`
	Data    *bayes.DataSummary `json:"data,omitempty"`
	Samples []float64          `json:"samples,omitempty"`
	Spec    bayes.H1Spec       `json:"spec"`
	H0      float64            `json:"h0"`
}

// AnalysisService computes Bayes factor analyses and records them when
// storage is configured.
type AnalysisService struct {
	store       AnalysisStore
	concurrency int
}

// NewAnalysisService creates an analysis service. store may be nil for
// compute-only operation.
func NewAnalysisService(store AnalysisStore, concurrency int) *AnalysisService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &AnalysisService{store: store, concurrency: concurrency}
}

// Evaluate computes one Bayes factor analysis and persists the record when
// a store is configured.
func (s *AnalysisService) Evaluate(ctx context.Context, req AnalysisRequest) (*bayes.Analysis, error) {
	data, err := s.resolveData(req)
	if err != nil {
		return nil, err
	}

	result, err := bayes.Evaluate(data, req.Spec, req.H0)
	if err != nil {
		return nil, err
	}

	analysis := bayes.NewAnalysis(req.Label, req.Spec, result)

	if s.store != nil {
		if err := s.store.Save(ctx, analysis); err != nil {
			// The computation itself succeeded; surface the storage failure
			// without discarding the result.
			log.Printf("[Analysis] Failed to persist analysis %s: %v", analysis.ID, err)
			return analysis, errors.Wrap(err, "analysis computed but not persisted")
		}
	}

	return analysis, nil
}

// EvaluateBatch evaluates many requests concurrently. Results keep the
// request order. The first error cancels the remaining work.
func (s *AnalysisService) EvaluateBatch(ctx context.Context, reqs []AnalysisRequest) ([]*bayes.Analysis, error) {
	analyses := make([]*bayes.Analysis, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			analysis, err := s.Evaluate(gctx, req)
			if err != nil {
				return errors.Wrapf(err, "request %d (%s)", i, req.Label)
			}
			analyses[i] = analysis
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return analyses, nil
}

// GetAnalysis returns one persisted analysis by its identifier
func (s *AnalysisService) GetAnalysis(ctx context.Context, id core.AnalysisID) (*bayes.Analysis, error) {
	if s.store == nil {
		return nil, errors.New(errors.CodeStorageDisabled, "no analysis store configured")
	}
	return s.store.Get(ctx, id)
}

// History returns the most recent persisted analyses
func (s *AnalysisService) History(ctx context.Context, limit int) ([]*bayes.Analysis, error) {
	if s.store == nil {
		return nil, errors.New(errors.CodeStorageDisabled, "no analysis store configured")
	}
	return s.store.ListRecent(ctx, limit)
}

// HasStore reports whether persistence is configured
func (s *AnalysisService) HasStore() bool {
	return s.store != nil
}

func (s *AnalysisService) resolveData(req AnalysisRequest) (bayes.DataSummary, error) {
	switch {
	case req.Data != nil && len(req.Samples) > 0:
		return bayes.DataSummary{}, errors.InvalidInput("supply either a data summary or raw samples, not both")
	case req.Data != nil:
		return *req.Data, nil
	case len(req.Samples) > 0:
		return bayes.SummaryFromSamples(req.Samples)
	default:
		return bayes.DataSummary{}, errors.InvalidInput("a data summary or raw samples are required")
	}
}
