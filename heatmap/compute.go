package heatmap

import "github.com/pkg/errors"

import "github.com/neurlang/saliency/occlusion"

// Compute occludes img patch by patch as described by cfg, scores every copy
// with scorer and aggregates the result. The score sequence is returned
// alongside the map so callers may persist it. Any failure aborts the whole
// computation, no partial map is returned. auditor may be nil.
func Compute(cfg Config, img *occlusion.Image, scorer occlusion.Scorer, auditor occlusion.Auditor) (*Map, []float64, error) {
	grid, err := cfg.Grid()
	if err != nil {
		return nil, nil, err
	}
	sampler := occlusion.NewSampler(grid, cfg.OcclusionValue)
	sampler.Auditor = auditor
	scores, err := sampler.Sample(img, scorer)
	if err != nil {
		return nil, nil, errors.Wrap(err, "occlusion")
	}
	m, err := Aggregate(scores, grid.Regions(), grid.Rows(), grid.Cols())
	if err != nil {
		return nil, nil, err
	}
	return m, scores, nil
}

// FromScores aggregates a score sequence produced earlier for the grid of cfg.
func FromScores(cfg Config, scores []float64) (*Map, error) {
	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	return Aggregate(scores, grid.Regions(), grid.Rows(), grid.Cols())
}
