package hash

// HashVectorized sets out[i] = Hash(n[i], s[i], max) for every i, using a
// SIMD kernel when the CPU has one. n and s must be at least as long as out.
var HashVectorized func(out []uint32, n []uint32, s []uint32, max uint32) = hashNotVectorized

var lanes = 1

// Lanes reports how many hashes HashVectorized computes side by side on this
// CPU. Callers batch work in multiples of it. Never 0.
func Lanes() int {
	return lanes
}

func hashNotVectorized(out []uint32, n []uint32, s []uint32, max uint32) {
	n = n[:len(out)]
	s = s[:len(out)]
	for i := range out {
		out[i] = Hash(n[i], s[i], max)
	}
}
