package trainer

import "github.com/neurlang/saliency/net/feedforward"

// Resume loads the weights in dstmodel into net when resume is set.
func Resume(net *feedforward.FeedforwardNetwork, resume bool, dstmodel string) error {
	if !resume || dstmodel == "" {
		return nil
	}
	return net.ReadCompressedWeightsFromFile(dstmodel)
}
