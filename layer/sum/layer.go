// Package sum implements a sum layer and combiner
package sum

import "fmt"
import "github.com/neurlang/saliency/layer"
import "sync/atomic"

// SumLayer collapses one dimension of a bit tensor by counting set bits.
type SumLayer struct {
	size  uint
	step  uint
	count uint
}

// Sum is the combiner of a SumLayer.
type Sum struct {
	vec   []atomic.Bool
	step  uint
	count uint
}

// MustNew creates a new sum layer over dims collapsing dims[dim]
func MustNew(dims []uint, dim uint) *SumLayer {
	o, err := New(dims, dim)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// New creates a new sum layer over a tensor of shape dims, innermost
// dimension first, which collapses dimension dim.
func New(dims []uint, dim uint) (o *SumLayer, err error) {
	if dim >= uint(len(dims)) {
		return nil, fmt.Errorf("New Sum: dimension %d out of %d", dim, len(dims))
	}
	var size = uint(1)
	var step = uint(1)
	for i, d := range dims {
		if d == 0 {
			return nil, fmt.Errorf("New Sum: dimension %d is empty", i)
		}
		if uint(i) < dim {
			step *= d
		}
		size *= d
	}
	o = new(SumLayer)
	o.size = size
	o.step = step
	o.count = dims[dim]
	return
}

// Inputs reports the number of bits the combiner takes
func (i *SumLayer) Inputs() int {
	return int(i.size)
}

// Lay turns sum layer into a combiner
func (i *SumLayer) Lay() layer.Combiner {
	o := new(Sum)
	o.vec = make([]atomic.Bool, i.size)
	o.step = i.step
	o.count = i.count
	return o
}
