package trainer

import "math"

import "github.com/neurlang/saliency/net/feedforward"
import "github.com/neurlang/saliency/parallel"

// Sample is one labelled training input.
type Sample interface {
	feedforward.Input

	// Output returns the expected class
	Output() uint16
}

// Loss scores a network output against the expected class, 0 when correct.
type Loss func(out feedforward.Input, want uint16) int

// sampleSize calculates the statistically sufficient sample size
// for a given dataset size N and significance level (0–100).
func sampleSize(N int, significance byte) int {
	if significance >= 100 {
		return N
	}
	z := zScoreFromAlpha(100 - significance)

	// worst case proportion
	p := 0.5
	e := float64(100-significance) * 0.01

	ss := math.Pow(z, 2) * p * (1 - p) / math.Pow(e, 2)

	// finite population correction
	corrected := ss * float64(N) / (float64(N) - 1 + ss)

	if int(corrected) > N {
		return N
	}
	return int(corrected)
}

// zScoreFromAlpha returns the Z-score for a given alpha level
// Common: 90% => 1.645, 95% => 1.96, 99% => 2.576
func zScoreFromAlpha(alpha byte) float64 {
	switch {
	case alpha <= 1:
		return 2.576
	case alpha <= 5:
		return 1.96
	case alpha <= 10:
		return 1.645
	default:
		return 1.96
	}
}

// NewEvaluateFunc returns a function measuring the accuracy in percent of
// net on a statistically sufficient prefix of samples. Whenever the accuracy
// beats *best, *best is raised and the weights are written to dstmodel
// unless dstmodel is empty.
func NewEvaluateFunc(net feedforward.FeedforwardNetwork, samples []Sample, significance byte, loss Loss,
	threads int, best *int, dstmodel string) func() int {

	return func() int {
		portion := sampleSize(len(samples), significance)
		if portion == 0 {
			return 0
		}
		var correct = make([]bool, portion)
		parallel.ForEach(portion, threads, func(i int) {
			correct[i] = loss(net.Infer(samples[i]), samples[i].Output()) == 0
		})
		var n int
		for _, ok := range correct {
			if ok {
				n++
			}
		}
		success := n * 100 / portion

		if best != nil && success > *best {
			*best = success
			if dstmodel != "" {
				if err := net.WriteCompressedWeightsToFile(dstmodel); err != nil {
					println(err.Error())
				}
			}
		}
		return success
	}
}
