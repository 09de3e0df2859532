package occlusion

import "errors"
import "math"
import "testing"

import "github.com/neurlang/saliency/patch"

// mean intensity of an image, black patches lower it
func meanScorer(img *Image) (float64, error) {
	var sum float64
	for _, v := range img.Pix {
		sum += v
	}
	return sum / float64(len(img.Pix)), nil
}

func constantImage(rows, cols, channels int, v float64) *Image {
	img := NewImage(rows, cols, channels)
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestSampleSequence(t *testing.T) {
	grid := patch.MustNew(4, 4, 2, 2, 2, 2)
	base := constantImage(4, 4, 1, 1)
	scores, err := NewSampler(grid, 0).Sample(base, ScorerFunc(meanScorer))
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(scores) != grid.Len()+1 {
		t.Fatalf("got %d scores, want %d", len(scores), grid.Len()+1)
	}
	if scores[0] != 1 {
		t.Errorf("baseline %v, want 1", scores[0])
	}
	for k := 1; k < len(scores); k++ {
		if scores[k] != 0.75 {
			t.Errorf("score %d is %v, want 0.75", k, scores[k])
		}
	}
}

func TestSampleOcclusionOrder(t *testing.T) {
	grid := patch.MustNew(4, 4, 2, 2, 2, 2)
	base := constantImage(4, 4, 3, 200)
	regions := grid.Regions()
	var seen int
	scorer := ScorerFunc(func(img *Image) (float64, error) {
		defer func() { seen++ }()
		for r := 0; r < img.Rows; r++ {
			for c := 0; c < img.Cols; c++ {
				occluded := seen > 0 && regions[seen-1].Contains(r, c)
				for ch := 0; ch < img.Channels; ch++ {
					if occluded && img.At(r, c, ch) != 0 {
						t.Errorf("image %d: pixel (%d,%d,%d) should be black", seen, r, c, ch)
					}
					if !occluded && img.At(r, c, ch) != 200 {
						t.Errorf("image %d: pixel (%d,%d,%d) should be untouched", seen, r, c, ch)
					}
				}
			}
		}
		return float64(seen), nil
	})
	scores, err := NewSampler(grid, 0).Sample(base, scorer)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	for k, v := range scores {
		if v != float64(k) {
			t.Errorf("score %d is %v, scorer calls out of order", k, v)
		}
	}
	for i, v := range base.Pix {
		if v != 200 {
			t.Fatalf("base image mutated at %d: %v", i, v)
		}
	}
}

func TestSampleScoringError(t *testing.T) {
	grid := patch.MustNew(4, 4, 2, 2, 2, 2)
	base := constantImage(4, 4, 1, 1)
	boom := errors.New("backend down")
	var calls int
	scorer := ScorerFunc(func(img *Image) (float64, error) {
		calls++
		if calls == 3 {
			return 0, boom
		}
		return 0.5, nil
	})
	scores, err := NewSampler(grid, 0).Sample(base, scorer)
	if scores != nil {
		t.Errorf("expected no partial scores, got %v", scores)
	}
	var serr *ScoringError
	if !errors.As(err, &serr) {
		t.Fatalf("expected ScoringError, got %v", err)
	}
	if serr.Index != 2 {
		t.Errorf("failing index %d, want 2", serr.Index)
	}
	if !errors.Is(err, boom) {
		t.Errorf("cause lost: %v", err)
	}
	if calls != 3 {
		t.Errorf("scorer called %d times after failure, want 3", calls)
	}
}

func TestSampleNonFinite(t *testing.T) {
	grid := patch.MustNew(4, 4, 2, 2, 2, 2)
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		scorer := ScorerFunc(func(img *Image) (float64, error) {
			return bad, nil
		})
		_, err := NewSampler(grid, 0).Sample(constantImage(4, 4, 1, 1), scorer)
		var serr *ScoringError
		if !errors.As(err, &serr) || serr.Index != 0 {
			t.Errorf("score %v: expected ScoringError at baseline, got %v", bad, err)
		}
	}
}

func TestSampleSizeMismatch(t *testing.T) {
	grid := patch.MustNew(32, 32, 8, 8, 2, 2)
	_, err := NewSampler(grid, 0).Sample(NewImage(28, 28, 1), ScorerFunc(meanScorer))
	var cerr *patch.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Errorf("expected ConfigurationError, got %v", err)
	}
}

type recordingAuditor struct {
	indices []int
	fail    int
}

func (a *recordingAuditor) Audit(index int, img *Image) error {
	if a.fail > 0 && index == a.fail {
		return errors.New("disk full")
	}
	a.indices = append(a.indices, index)
	return nil
}

func TestSampleAuditor(t *testing.T) {
	grid := patch.MustNew(4, 4, 2, 2, 2, 2)
	rec := &recordingAuditor{}
	s := NewSampler(grid, 0)
	s.Auditor = MultiAuditor{rec}
	if _, err := s.Sample(constantImage(4, 4, 1, 1), ScorerFunc(meanScorer)); err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(rec.indices) != 5 {
		t.Fatalf("audited %d images, want 5", len(rec.indices))
	}
	for i, n := range rec.indices {
		if i != n {
			t.Errorf("audit %d got index %d", i, n)
		}
	}

	s.Auditor = &recordingAuditor{fail: 2}
	scores, err := s.Sample(constantImage(4, 4, 1, 1), ScorerFunc(meanScorer))
	if err == nil || scores != nil {
		t.Errorf("expected audit failure to abort, got %v %v", scores, err)
	}
}

func TestImageRoundTrip(t *testing.T) {
	img := NewImage(2, 3, 3)
	for i := range img.Pix {
		img.Pix[i] = float64(i * 10)
	}
	back := FromImage(img.ToImage(), 3)
	if back.Rows != 2 || back.Cols != 3 || back.Channels != 3 {
		t.Fatalf("shape %dx%dx%d", back.Rows, back.Cols, back.Channels)
	}
	for i := range img.Pix {
		if back.Pix[i] != img.Pix[i] {
			t.Errorf("pixel value %d: %v != %v", i, back.Pix[i], img.Pix[i])
		}
	}
}

func TestClamp8(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-3, 0}, {0, 0}, {36.43, 36}, {36.5, 37}, {254.6, 255}, {300, 255}, {math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := Clamp8(tt.in); got != tt.want {
			t.Errorf("Clamp8(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
