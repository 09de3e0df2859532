//go:build !noasm && amd64

package hash

import "testing"

import "github.com/klauspost/cpuid/v2"

func TestKernelSelection(t *testing.T) {
	if cpuid.CPU.Supports(cpuid.AVX2) {
		if Lanes() != 8 {
			t.Errorf("AVX2 cpu uses %d lanes", Lanes())
		}
		return
	}
	if Lanes() != 1 {
		t.Errorf("cpu without AVX2 uses %d lanes", Lanes())
	}
}

func TestHashAVX2Blocks(t *testing.T) {
	if !cpuid.CPU.Supports(cpuid.AVX2) {
		t.Skip("no AVX2")
	}
	n := make([]uint32, 8*33+5)
	s := make([]uint32, len(n))
	out := make([]uint32, len(n))
	for i := range n {
		n[i] = uint32(i) * 0x9e3779b9
		s[i] = ^uint32(i) * 31
	}
	for _, max := range []uint32{2, 10, 1 << 16, 0x80000001, 0xffffffff} {
		hashAVX2Vectorized(out, n, s, max)
		for i := range out {
			if want := Hash(n[i], s[i], max); out[i] != want {
				t.Fatalf("max %d: [%d] = %d, want %d", max, i, out[i], want)
			}
		}
	}
}
