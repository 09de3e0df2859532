package heatmap

import "bytes"
import "errors"
import "os"
import "path/filepath"
import "testing"

import "github.com/neurlang/saliency/occlusion"
import "github.com/neurlang/saliency/patch"

// brightness of the top-left quarter, a toy model that only looks there
func cornerScorer(img *occlusion.Image) (float64, error) {
	var sum float64
	for r := 0; r < img.Rows/2; r++ {
		for c := 0; c < img.Cols/2; c++ {
			for ch := 0; ch < img.Channels; ch++ {
				sum += img.At(r, c, ch)
			}
		}
	}
	return sum / float64(img.Rows*img.Cols*img.Channels/4) / 255, nil
}

func testImage() *occlusion.Image {
	img := occlusion.NewImage(32, 32, 3)
	for i := range img.Pix {
		img.Pix[i] = float64(64 + i%128)
	}
	return img
}

func TestComputeHighlightsUsedArea(t *testing.T) {
	m, scores, err := Compute(DefaultConfig(), testImage(), occlusion.ScorerFunc(cornerScorer), nil)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if len(scores) != 13*13+1 {
		t.Fatalf("got %d scores", len(scores))
	}
	if m.At(31, 31) != 0 {
		t.Errorf("pixel the model ignores = %v, want 0", m.At(31, 31))
	}
	if m.At(8, 8) <= m.At(31, 31) {
		t.Errorf("pixel the model uses = %v, not brighter than %v", m.At(8, 8), m.At(31, 31))
	}
}

func TestComputeIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	a, _, err := Compute(cfg, testImage(), occlusion.ScorerFunc(cornerScorer), nil)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := Compute(cfg, testImage(), occlusion.ScorerFunc(cornerScorer), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Gray().Pix, b.Gray().Pix) {
		t.Errorf("two runs differ")
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			t.Fatalf("value %d differs: %v != %v", i, a.Values[i], b.Values[i])
		}
	}
}

func TestComputeMatchesFromScores(t *testing.T) {
	cfg := DefaultConfig()
	a, scores, err := Compute(cfg, testImage(), occlusion.ScorerFunc(cornerScorer), nil)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "probabilities.txt")
	if err := WriteScoresFile(path, scores); err != nil {
		t.Fatal(err)
	}
	read, err := ReadScoresFile(path)
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromScores(cfg, read)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Gray().Pix, b.Gray().Pix) {
		t.Errorf("score file flow differs from in-process flow")
	}
}

func TestComputeScoringError(t *testing.T) {
	failing := occlusion.ScorerFunc(func(img *occlusion.Image) (float64, error) {
		return 0, errors.New("model unavailable")
	})
	m, scores, err := Compute(DefaultConfig(), testImage(), failing, nil)
	if m != nil || scores != nil {
		t.Errorf("partial output returned")
	}
	var serr *occlusion.ScoringError
	if !errors.As(err, &serr) {
		t.Errorf("expected ScoringError, got %v", err)
	}
}

func TestComputeConfigurationError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Stride = [2]int{0, 2}
	_, _, err := Compute(cfg, testImage(), occlusion.ScorerFunc(cornerScorer), nil)
	var cerr *patch.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Errorf("expected ConfigurationError, got %v", err)
	}
}

func TestFromScoresLengthMismatch(t *testing.T) {
	_, err := FromScores(DefaultConfig(), []float64{1, 0.5, 0.5})
	var lerr *LengthMismatchError
	if !errors.As(err, &lerr) {
		t.Errorf("expected LengthMismatchError, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatmap.yaml")
	data := "patch_size: [4, 4]\nstride: [1, 2]\nocclusion_value: 127.5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ImageSize != [2]int{32, 32} {
		t.Errorf("image size %v, want default", cfg.ImageSize)
	}
	if cfg.PatchSize != [2]int{4, 4} || cfg.Stride != [2]int{1, 2} || cfg.OcclusionValue != 127.5 {
		t.Errorf("config %+v", cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatmap.yaml")
	if err := os.WriteFile(path, []byte("patch_size: [40, 8]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadConfig(path)
	var cerr *patch.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Errorf("expected ConfigurationError, got %v", err)
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatmap.yaml")
	want := Config{ImageSize: [2]int{28, 28}, PatchSize: [2]int{7, 7}, Stride: [2]int{3, 3}, OcclusionValue: 1}
	if err := WriteConfig(&want, path); err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != want {
		t.Errorf("got %+v, want %+v", *got, want)
	}
}

func TestScaled(t *testing.T) {
	m := &Map{Rows: 2, Cols: 2, Values: []float64{0, 100.4, 200.6, 300}}
	g := m.Scaled(3)
	if g.Bounds().Dx() != 6 || g.Bounds().Dy() != 6 {
		t.Fatalf("bounds %v", g.Bounds())
	}
	want := [2][2]uint8{{0, 100}, {201, 255}}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if got := g.GrayAt(x, y).Y; got != want[y/3][x/3] {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want[y/3][x/3])
			}
		}
	}
}
