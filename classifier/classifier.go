// Package classifier builds the fixed hashtron networks for CIFAR-10 images
// and handwritten digits and turns their per-class votes into confidences
package classifier

import "math"
import "math/rand"

import "github.com/neurlang/saliency/datasets/cifar10"
import "github.com/neurlang/saliency/datasets/handwritten"
import "github.com/neurlang/saliency/layer/conv2d"
import "github.com/neurlang/saliency/layer/sum"
import "github.com/neurlang/saliency/net/feedforward"

// Classes is the number of classes of both networks.
const Classes = cifar10.Classes

// Votes is the number of voting hashtrons per class of the CIFAR-10 network.
const Votes = 270

// DigitVotes is the number of voting hashtrons per class of the digit network.
const DigitVotes = 67

// Premodulo is the range input features are hashed into.
const Premodulo = 1 << 16

// DefaultTemperature divides vote counts before the softmax.
const DefaultTemperature = 16

// Classifier is a network of one hashtron per input pixel, 3x3 bit
// convolution per channel, then a fixed number of voting hashtrons per class.
type Classifier struct {
	Net         feedforward.FeedforwardNetwork
	Temperature float64
}

func build(size, channels, votes int) *Classifier {
	c := &Classifier{Temperature: DefaultTemperature}
	c.Net.NewLayerP(size*size*channels, 1, Premodulo)
	c.Net.NewCombiner(conv2d.MustNew(size, size, 3, 3, channels))
	c.Net.NewLayer(Classes*votes, 1)
	c.Net.NewCombiner(sum.MustNew([]uint{Classes, uint(votes)}, 1))
	return c
}

// New creates an untrained CIFAR-10 classifier, every hashtron a fixed
// parity check.
func New() *Classifier {
	return build(cifar10.ImgSize, cifar10.Channels, Votes)
}

// NewDigits creates an untrained classifier of 28x28 handwritten digits.
func NewDigits() *Classifier {
	return build(handwritten.ImgSize, 1, DigitVotes)
}

// Random creates a CIFAR-10 classifier with random untrained weights.
func Random(seed int64) *Classifier {
	return New().Randomize(seed)
}

// Load creates a CIFAR-10 classifier with weights read from a compressed
// weights file.
func Load(path string) (*Classifier, error) {
	c := New()
	if err := c.LoadWeights(path); err != nil {
		return nil, err
	}
	return c, nil
}

// Randomize replaces every hashtron by a random one and returns c.
func (c *Classifier) Randomize(seed int64) *Classifier {
	c.Net.Randomize(rand.New(rand.NewSource(seed)))
	return c
}

// LoadWeights reads the weights of c from a compressed weights file.
func (c *Classifier) LoadWeights(path string) error {
	return c.Net.ReadCompressedWeightsFromFile(path)
}

// Votes returns the number of votes each class received for in.
func (c *Classifier) Votes(in feedforward.Input) [Classes]uint32 {
	return votes(c.Net.Infer(in))
}

func votes(out feedforward.Input) (v [Classes]uint32) {
	for i := range v {
		v[i] = out.Feature(i)
	}
	return
}

// Probabilities returns the softmax of the vote counts.
func (c *Classifier) Probabilities(in feedforward.Input) (p [Classes]float64) {
	votes := c.Votes(in)
	t := c.Temperature
	if t <= 0 {
		t = DefaultTemperature
	}
	var best uint32
	for _, v := range votes {
		if v > best {
			best = v
		}
	}
	var total float64
	for i, v := range votes {
		// shifted by the best count so exp never overflows
		p[i] = math.Exp((float64(v) - float64(best)) / t)
		total += p[i]
	}
	for i := range p {
		p[i] /= total
	}
	return
}

// Predict returns the class with the most votes, the lowest class on ties.
func (c *Classifier) Predict(in feedforward.Input) int {
	return argmax(c.Votes(in))
}

func argmax(votes [Classes]uint32) (best int) {
	for i, v := range votes {
		if v > votes[best] {
			best = i
		}
	}
	return
}

// Margin is the training loss of a network output for class want: 0 when
// want has strictly the most votes, otherwise how many votes want lacks to
// get there.
func Margin(out feedforward.Input, want uint16) int {
	v := votes(out)
	var rival uint32
	for i, n := range v {
		if i != int(want) && n > rival {
			rival = n
		}
	}
	if m := int(rival) - int(v[want%Classes]) + 1; m > 0 {
		return m
	}
	return 0
}
