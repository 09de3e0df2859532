package trainer

import "fmt"
import "math/rand"

import "github.com/neurlang/saliency/net/feedforward"

// Order lists every hashtron of net, the last layer first and shuffled within
// each layer.
func Order(net feedforward.FeedforwardNetwork, rng *rand.Rand) []int {
	var layers = make([][]int, net.LenLayers())
	for i := 0; i < net.Len(); i++ {
		l := net.GetLayer(i)
		layers[l] = append(layers[l], i)
	}
	var order []int
	for l := len(layers) - 1; l >= 0; l-- {
		shuf := layers[l]
		rng.Shuffle(len(shuf), func(i, j int) { shuf[i], shuf[j] = shuf[j], shuf[i] })
		order = append(order, shuf...)
	}
	return order
}

// NewLoopFunc returns a function training net for up to epochs passes over
// its hashtrons. A retrained hashtron is undone when the accuracy drops.
// Training ends early at full accuracy or after a pass without improvement.
// The function returns the final accuracy.
func NewLoopFunc(net feedforward.FeedforwardNetwork, rng *rand.Rand, evaluate func() int,
	trainWorst func(worst int) (undo func())) func(epochs int) int {

	return func(epochs int) int {
		var success = evaluate()
		fmt.Println("accuracy:", success, "%")
		for epoch := 0; epoch < epochs && success < 100; epoch++ {
			var improved bool
			var order = Order(net, rng)
			for i, worst := range order {
				println("training #", i, "hashtron of", len(order), "hashtrons total")
				undo := trainWorst(worst)
				if undo == nil {
					continue
				}
				this := evaluate()
				if this < success {
					undo()
					continue
				}
				if this > success {
					improved = true
					fmt.Println("accuracy:", this, "%")
				}
				success = this
				if success >= 100 {
					break
				}
			}
			fmt.Println("epoch", epoch, "accuracy:", success, "%")
			if !improved {
				println("No hashtron improved the accuracy. Exiting")
				break
			}
		}
		return success
	}
}
