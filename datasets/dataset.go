// Package datasets holds the training data a single hashtron is solved on
package datasets

import "math/rand"

// Dataset maps a hashtron input to the output bit it should produce.
type Dataset map[uint32]bool

// SplittedDataset holds the inputs wanting false at 0, those wanting true at 1.
type SplittedDataset [2]map[uint32]struct{}

// Split splits the dataset into a false set and a true set.
func (d Dataset) Split() (o SplittedDataset) {
	o[0] = make(map[uint32]struct{})
	o[1] = make(map[uint32]struct{})
	for k, v := range d {
		if v {
			o[1][k] = struct{}{}
		} else {
			o[0][k] = struct{}{}
		}
	}
	return
}

// Balance fills the smaller set with random inputs absent from the other set
// until both are the same size.
func (d SplittedDataset) Balance(rng *rand.Rand) SplittedDataset {
	for i := 0; i < 2; i++ {
		for len(d[i]) < len(d[1-i]) {
			w := rng.Uint32()
			if _, ok := d[1-i][w]; !ok {
				d[i][w] = struct{}{}
			}
		}
	}
	return d
}

// Alphabet lists both sets as slices, in no particular order.
func (d SplittedDataset) Alphabet() (o [2][]uint32) {
	for i := range d {
		o[i] = make([]uint32, 0, len(d[i]))
		for k := range d[i] {
			o[i] = append(o[i], k)
		}
	}
	return
}
