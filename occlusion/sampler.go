package occlusion

import "math"

import "github.com/pkg/errors"

import "github.com/neurlang/saliency/patch"

// Sampler produces the score sequence of an image over a patch grid.
type Sampler struct {
	grid  *patch.Grid
	value float64

	// Auditor, when set, receives every image before it is scored.
	Auditor Auditor
}

// NewSampler creates a sampler which blacks out patches of grid using value.
func NewSampler(grid *patch.Grid, value float64) *Sampler {
	return &Sampler{grid: grid, value: value}
}

// Grid returns the patch grid of the sampler.
func (s *Sampler) Grid() *patch.Grid {
	return s.grid
}

// Sample scores base and then one occluded copy of base per region, in grid
// order. Element 0 of the result is the baseline score. The first failure
// aborts the whole sequence and no scores are returned.
func (s *Sampler) Sample(base *Image, scorer Scorer) ([]float64, error) {
	if s.grid == nil {
		return nil, patch.NewConfigurationError("sampler has no patch grid")
	}
	if base == nil {
		return nil, patch.NewConfigurationError("no base image")
	}
	if base.Rows != s.grid.Rows() || base.Cols != s.grid.Cols() {
		return nil, patch.NewConfigurationError("image is %dx%d, grid expects %dx%d",
			base.Rows, base.Cols, s.grid.Rows(), s.grid.Cols())
	}

	regions := s.grid.Regions()
	scores := make([]float64, 0, len(regions)+1)

	v, err := s.score(0, base, scorer)
	if err != nil {
		return nil, err
	}
	scores = append(scores, v)

	for k, region := range regions {
		v, err := s.score(k+1, base.Occlude(region, s.value), scorer)
		if err != nil {
			return nil, err
		}
		scores = append(scores, v)
	}
	return scores, nil
}

func (s *Sampler) score(n int, img *Image, scorer Scorer) (float64, error) {
	if s.Auditor != nil {
		if err := s.Auditor.Audit(n, img); err != nil {
			return 0, errors.Wrapf(err, "audit of image %d", n)
		}
	}
	v, err := scorer.Score(img)
	if err != nil {
		return 0, &ScoringError{Index: n, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ScoringError{Index: n, Err: errors.Errorf("non-finite score %v", v)}
	}
	return v, nil
}
