package classifier

import "fmt"

import "github.com/neurlang/saliency/datasets/cifar10"
import "github.com/neurlang/saliency/occlusion"

// Scorer scores images by the confidence of the classifier in Class.
type Scorer struct {
	Classifier *Classifier
	Class      int
}

// Score implements occlusion.Scorer.
func (s Scorer) Score(img *occlusion.Image) (float64, error) {
	if s.Class < 0 || s.Class >= cifar10.Classes {
		return 0, fmt.Errorf("classifier: class %d out of range", s.Class)
	}
	sample, err := cifar10.FromImage(img, byte(s.Class))
	if err != nil {
		return 0, err
	}
	p := s.Classifier.Probabilities(sample)
	return p[s.Class], nil
}
