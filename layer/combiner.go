// Package layer defines the combiner and layer interfaces which glue
// hashtron layers of a network together
package layer

// Combiner collects the output bits of one hashtron layer and combines them
// into the input features of the next one.
type Combiner interface {

	// Put inserts the bit of hashtron n. Puts to distinct positions may
	// happen concurrently.
	Put(n int, v bool)

	// Feature returns the n-th feature, the input of hashtron n in the
	// next layer.
	Feature(n int) (o uint32)

	// Len reports the number of features.
	Len() int
}
