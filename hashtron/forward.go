package hashtron

import "github.com/neurlang/saliency/hash"

// Forward runs the program on command once per output bit. Bit j of the
// result is the parity of the final hash for input command|j<<16.
func (h Hashtron) Forward(command uint32) (out uint16) {
	if h.Len() == 0 {
		return
	}
	for j := byte(0); j < h.Bits(); j++ {
		var input = command | (uint32(j) << 16)
		var ss, maxx = h.Get(0)
		input = hash.Hash(input, ss, maxx)
		for i := 1; i < h.Len(); i++ {
			var s, max = h.Get(i)
			maxx -= max
			input = hash.Hash(input, s, maxx)
		}
		if input&1 != 0 {
			out |= 1 << j
		}
	}
	return
}
