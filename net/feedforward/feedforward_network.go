// Package feedforward implements a feedforward network type
package feedforward

import "fmt"
import "math/rand"
import "runtime"

import "github.com/neurlang/saliency/datasets"
import "github.com/neurlang/saliency/hash"
import "github.com/neurlang/saliency/hashtron"
import "github.com/neurlang/saliency/layer"
import "github.com/neurlang/saliency/parallel"

// Input is one individual input to the feedforward network, and also the
// value passed between its layers
type Input interface {

	// Feature extracts the n-th feature
	Feature(n int) uint32
}

// SingleValue is a single value returned by a final hashtron layer
type SingleValue uint32

// Feature extracts the feature from SingleValue
func (v SingleValue) Feature(n int) uint32 {
	return uint32(v)
}

// FeedforwardNetwork is the feedforward network. Layers alternate, a
// hashtron layer followed by a combiner layer.
type FeedforwardNetwork struct {
	layers    [][]hashtron.Hashtron
	mapping   []byte
	combiners []layer.Layer
	premodulo []uint32
}

// Len returns the number of hashtrons inside the network.
func (f FeedforwardNetwork) Len() (o int) {
	for _, v := range f.layers {
		o += len(v)
	}
	return
}

// LenLayers returns the number of layers. Each Layer and Combiner counts as a layer here.
func (f FeedforwardNetwork) LenLayers() int {
	return len(f.layers)
}

// GetLayer gets the layer number of hashtron based on hashtron number. Returns -1 on failure.
func (f FeedforwardNetwork) GetLayer(n int) int {
	for i, v := range f.layers {
		if n < len(v) {
			return i
		}
		n -= len(v)
	}
	return -1
}

// GetPosition gets the position of hashtron within layer based on the overall
// hashtron number. Returns -1 on failure.
func (f FeedforwardNetwork) GetPosition(n int) int {
	for _, v := range f.layers {
		if n < len(v) {
			return n
		}
		n -= len(v)
	}
	return -1
}

// GetHashtron gets n-th hashtron pointer in the network.
func (f FeedforwardNetwork) GetHashtron(n int) *hashtron.Hashtron {
	for _, v := range f.layers {
		if n < len(v) {
			return &v[n]
		}
		n -= len(v)
	}
	return nil
}

// NewLayer adds a hashtron layer to the end of network with n hashtrons, each recognizing bits bits.
func (f *FeedforwardNetwork) NewLayer(n int, bits byte) {
	f.NewLayerP(n, bits, 0)
}

// NewLayerP adds a hashtron layer to the end of network with n hashtrons, each recognizing bits bits,
// and input feature pre-modulo. A non zero premodulo hashes feature i with salt i into 0..premodulo-1
// before hashtron i sees it.
func (f *FeedforwardNetwork) NewLayerP(n int, bits byte, premodulo uint32) {
	if bits == 0 {
		bits = 1
	}
	var layer = make([]hashtron.Hashtron, n)
	for i := range layer {
		layer[i] = *hashtron.MustNew([][2]uint32{{uint32(i), 2}}, bits)
	}
	f.layers = append(f.layers, layer)
	f.mapping = append(f.mapping, bits)
	f.combiners = append(f.combiners, nil)
	f.premodulo = append(f.premodulo, premodulo)
}

// NewCombiner adds a combiner layer to the end of network
func (f *FeedforwardNetwork) NewCombiner(layer layer.Layer) {
	f.layers = append(f.layers, nil)
	f.mapping = append(f.mapping, 0)
	f.combiners = append(f.combiners, layer)
	f.premodulo = append(f.premodulo, 0)
}

// Randomize replaces every hashtron by an untrained random one.
func (f *FeedforwardNetwork) Randomize(rng *rand.Rand) {
	for l, v := range f.layers {
		for j := range v {
			v[j] = *hashtron.Random(rng, f.mapping[l])
		}
	}
}

// Validate checks that layers alternate and that every combiner takes one
// bit per hashtron of the layer before it and offers enough features to the
// layer after it.
func (f FeedforwardNetwork) Validate() error {
	if len(f.layers) == 0 {
		return fmt.Errorf("feedforward: empty network")
	}
	for l := range f.layers {
		isCombiner := f.combiners[l] != nil
		if isCombiner != (l%2 == 1) {
			return fmt.Errorf("feedforward: layer %d breaks hashtron/combiner alternation", l)
		}
		if !isCombiner {
			continue
		}
		if f.combiners[l].Inputs() != len(f.layers[l-1]) {
			return fmt.Errorf("feedforward: combiner %d takes %d bits, layer %d has %d hashtrons",
				l, f.combiners[l].Inputs(), l-1, len(f.layers[l-1]))
		}
		if l+1 < len(f.layers) {
			if features := f.combiners[l].Lay().Len(); features < len(f.layers[l+1]) {
				return fmt.Errorf("feedforward: combiner %d offers %d features, layer %d has %d hashtrons",
					l, features, l+1, len(f.layers[l+1]))
			}
		}
	}
	return nil
}

// Forward computes the output of hashtron layer l for input in. Layers
// followed by a combiner return the filled combiner, a final layer returns
// the SingleValue of its first hashtron.
func (f FeedforwardNetwork) Forward(in Input, l int) Input {
	out, _ := f.forward(in, l, -1, false)
	return out
}

// forward is Forward with the bit of hashtron worst of layer l negated when
// neg is set. computed is the bit worst passed on.
func (f FeedforwardNetwork) forward(in Input, l, worst int, neg bool) (out Input, computed bool) {
	if len(f.combiners) > l+1 && f.combiners[l+1] != nil {
		var combiner = f.combiners[l+1].Lay()
		var feats = f.features(in, l)
		var chunk = 64 * hash.Lanes()
		parallel.ForEach((len(feats)+chunk-1)/chunk, runtime.NumCPU(), func(c int) {
			end := (c + 1) * chunk
			if end > len(feats) {
				end = len(feats)
			}
			for i := c * chunk; i < end; i++ {
				var bit = f.layers[l][i].Forward(feats[i])&1 != 0
				if i == worst {
					bit = bit != neg
					computed = bit
				}
				combiner.Put(i, bit)
			}
		})
		return combiner, computed
	}
	var feat = in.Feature(0)
	if f.premodulo[l] != 0 {
		feat = hash.Hash(feat, 0, f.premodulo[l])
	}
	var val = f.layers[l][0].Forward(feat)
	if worst == 0 && neg {
		val ^= 1
	}
	return SingleValue(val), val&1 != 0
}

// Tally runs in through the network twice, once with the bit of hashtron
// worst negated, and votes in tally for the bit giving the lower loss of the
// network output. loss is 0 for a correct output. Nothing is voted when the
// bit does not matter.
func (f FeedforwardNetwork) Tally(in Input, worst int, tally *datasets.Tally, loss func(out Input) int) {
	l := f.GetLayer(worst)
	if l < 0 {
		return
	}
	pos := f.GetPosition(worst)
	for prev := 0; prev < l; prev += 2 {
		in = f.Forward(in, prev)
	}
	var feature = in.Feature(pos)
	if f.premodulo[l] != 0 {
		feature = hash.Hash(feature, uint32(pos), f.premodulo[l])
	}

	var losses [2]int
	var bits [2]bool
	for neg := 0; neg < 2; neg++ {
		out, computed := f.forward(in, l, pos, neg == 1)
		for post := l + 2; post < f.LenLayers(); post += 2 {
			out = f.Forward(out, post)
		}
		losses[neg], bits[neg] = loss(out), computed
	}
	if losses[0] == losses[1] {
		return
	}
	better := 0
	if losses[1] < losses[0] {
		better = 1
	}
	var vote int8 = -1
	if bits[better] {
		vote = 1
	}
	if losses[better] == 0 {
		tally.AddToCorrect(feature, vote, better == 1)
	} else {
		tally.AddToImprove(feature, vote, better == 1)
	}
}

// features reads the inputs of every hashtron of layer l, premodulo applied.
func (f FeedforwardNetwork) features(in Input, l int) []uint32 {
	var feats = make([]uint32, len(f.layers[l]))
	for i := range feats {
		feats[i] = in.Feature(i)
	}
	if f.premodulo[l] != 0 {
		var salts = make([]uint32, len(feats))
		for i := range salts {
			salts[i] = uint32(i)
		}
		hash.HashVectorized(feats, feats, salts, f.premodulo[l])
	}
	return feats
}

// Infer runs in through all layers. The result is the last combiner, or a
// SingleValue when the network ends with a hashtron layer.
func (f FeedforwardNetwork) Infer(in Input) (output Input) {
	output = in
	for l := 0; l < f.LenLayers(); l += 2 {
		output = f.Forward(output, l)
	}
	return
}
