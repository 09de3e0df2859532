package layer

// Layer is the layer which can be used for instantiating a combiner
type Layer interface {

	// Inputs reports how many bits a combiner accepts.
	Inputs() int

	// Lay creates an empty combiner, one per network evaluation
	Lay() Combiner
}
