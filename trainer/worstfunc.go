package trainer

import "fmt"
import "runtime"

import "github.com/neurlang/saliency/datasets"
import "github.com/neurlang/saliency/learning"
import "github.com/neurlang/saliency/net/feedforward"

// NewTrainWorstFunc returns a function that retrains hashtron worst from the
// votes of tallyFunc. It returns nil when no vote would change the network
// or no hashtron could be solved, otherwise a function restoring the
// previous hashtron.
func NewTrainWorstFunc(net feedforward.FeedforwardNetwork, h learning.HyperParameters,
	tallyFunc func(worst int, tally *datasets.Tally)) func(worst int) (undo func()) {

	return func(worst int) (undo func()) {
		ptr := net.GetHashtron(worst)
		if ptr == nil {
			return nil
		}

		var tally = datasets.NewTally()
		tallyFunc(worst, tally)

		if !tally.GetImprovementPossible() {
			return nil
		}

		fmt.Println("hashtron position:", worst, "(job size:", tally.Len(), ")")

		htron, err := h.Training(tally.Dataset())
		tally.Free()
		if err != nil {
			println(err.Error())
			return nil
		}

		backup := *ptr
		*ptr = *htron

		runtime.GC()

		return func() {
			*ptr = backup
		}
	}
}
