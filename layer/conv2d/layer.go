// Package conv2d implements a 2D bit-convolution layer and combiner
package conv2d

import "fmt"
import "github.com/neurlang/saliency/layer"

// Conv2DLayer slides a subwidth x subheight window over repeat stacked
// width x height bit planes.
type Conv2DLayer struct {
	width, height, subwidth, subheight, repeat int
	shift                                      int
}

// Conv2D is the combiner of a Conv2DLayer.
type Conv2D struct {
	vec                                        []bool
	width, height, subwidth, subheight, repeat int
	shift                                      int
}

// MustNew creates a new Conv2D layer with size, subsize and repeat
func MustNew(width, height, subwidth, subheight, repeat int) *Conv2DLayer {
	return MustNew2(width, height, subwidth, subheight, repeat, 0)
}

// New creates a new Conv2D layer with size, subsize and repeat
func New(width, height, subwidth, subheight, repeat int) (o *Conv2DLayer, err error) {
	return New2(width, height, subwidth, subheight, repeat, 0)
}

// MustNew2 creates a new Conv2D layer with size, subsize, repeat and shift
func MustNew2(width, height, subwidth, subheight, repeat int, shift int) *Conv2DLayer {
	o, err := New2(width, height, subwidth, subheight, repeat, shift)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// New2 creates a new Conv2D layer with size, subsize, repeat and shift.
// With shift 0 a feature counts the set bits of its window. Otherwise the
// window is cut into groups of shift bits, each group counted into its own
// bit field of the feature.
func New2(width, height, subwidth, subheight, repeat int, shift int) (o *Conv2DLayer, err error) {
	if subwidth <= 0 || subheight <= 0 || repeat <= 0 || shift < 0 {
		return nil, fmt.Errorf("New Conv2D: Subsize %dx%d, repeat %d and shift %d must be positive",
			subwidth, subheight, repeat, shift)
	}
	if width < subwidth {
		return nil, fmt.Errorf("New Conv2D: Width %d is lower than Subwidth %d", width, subwidth)
	}
	if height < subheight {
		return nil, fmt.Errorf("New Conv2D: Height %d is lower than Subheight %d", height, subheight)
	}
	o = new(Conv2DLayer)
	o.width = width
	o.height = height
	o.subwidth = subwidth
	o.subheight = subheight
	o.repeat = repeat
	o.shift = shift
	return
}

// Inputs reports the number of bits the combiner takes
func (i *Conv2DLayer) Inputs() int {
	return i.width * i.height * i.repeat
}

// Lay turns Conv2D layer into a combiner
func (i *Conv2DLayer) Lay() layer.Combiner {
	var o Conv2D
	o.vec = make([]bool, i.Inputs())
	o.width = i.width
	o.height = i.height
	o.subwidth = i.subwidth
	o.subheight = i.subheight
	o.repeat = i.repeat
	o.shift = i.shift
	return &o
}
