package trainer

import "github.com/neurlang/saliency/datasets"
import "github.com/neurlang/saliency/net/feedforward"
import "github.com/neurlang/saliency/parallel"

// NewTallyFunc returns a function that tallies the votes of every sample
// for hashtron worst.
func NewTallyFunc(net feedforward.FeedforwardNetwork, samples []Sample, loss Loss, threads int) func(worst int, tally *datasets.Tally) {
	return func(worst int, tally *datasets.Tally) {
		parallel.ForEach(len(samples), threads, func(i int) {
			want := samples[i].Output()
			net.Tally(samples[i], worst, tally, func(out feedforward.Input) int {
				return loss(out, want)
			})
		})
	}
}
