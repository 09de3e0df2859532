//go:build !noasm && amd64

package hash

import "github.com/klauspost/cpuid/v2"

func init() {
	if cpuid.CPU.Supports(cpuid.AVX2) {
		HashVectorized = hashAVX2Vectorized
		lanes = 8
	}
}

func hashAVX2Vectorized(out []uint32, n []uint32, s []uint32, max uint32) {
	n = n[:len(out)]
	s = s[:len(out)]
	blocks := len(out) / 8
	if blocks > 0 {
		hashVectorizedAVX2(&out[0], &n[0], &s[0], max, blocks)
	}
	for i := blocks * 8; i < len(out); i++ {
		out[i] = Hash(n[i], s[i], max)
	}
}

// hashVectorizedAVX2 hashes blocks groups of 8 values.
//
//go:noescape
func hashVectorizedAVX2(out *uint32, n *uint32, s *uint32, max uint32, blocks int)
