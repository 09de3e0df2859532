// Package hashtron implements a hashtron, a tiny integer classifier made of
// a chain of hash commands
package hashtron

import "fmt"
import "math/rand"

// Hashtron represents individual hashtron (classifier) in memory
type Hashtron struct {
	program [][2]uint32
	bits    byte
}

// MustNew creates a new Hashtron, it panics on an invalid program
func MustNew(program [][2]uint32, bits byte) *Hashtron {
	h, err := New(program, bits)
	if err != nil {
		panic(err.Error())
	}
	return h
}

// New creates a Hashtron running program and returning bits output bits.
// Every command is a {salt, max} pair, the first max is the range and each
// following max is subtracted from the range of the command before it,
// wrapping around like uint32 does. No range may become 0.
func New(program [][2]uint32, bits byte) (h *Hashtron, err error) {
	if bits == 0 {
		bits = 1
	}
	if bits > 16 {
		return nil, fmt.Errorf("New Hashtron: %d output bits, at most 16 supported", bits)
	}
	if len(program) == 0 {
		return nil, fmt.Errorf("New Hashtron: empty program")
	}
	var total = program[0][1]
	for i := 1; i < len(program); i++ {
		total -= program[i][1]
		if total == 0 {
			return nil, fmt.Errorf("New Hashtron: command %d max %d exhausts range", i, program[i][1])
		}
	}
	h = new(Hashtron)
	h.program = append([][2]uint32(nil), program...)
	h.bits = bits
	return
}

// FromModuli creates a Hashtron from a chain of {salt, modulo} steps as the
// solver finds them: step i hashes into 0..modulo-1 of its own.
func FromModuli(chain [][2]uint32, bits byte) (*Hashtron, error) {
	var program = make([][2]uint32, len(chain))
	for i, step := range chain {
		program[i] = step
		if i > 0 {
			program[i][1] = chain[i-1][1] - step[1]
		}
	}
	return New(program, bits)
}

// Random creates an untrained Hashtron with a single random command.
func Random(rng *rand.Rand, bits byte) *Hashtron {
	return MustNew([][2]uint32{{rng.Uint32() >> 1, 2}}, bits)
}

// Get gets the hashing command at position n
func (h Hashtron) Get(n int) (s uint32, max uint32) {
	return h.program[n][0], h.program[n][1]
}

// Len gets the number of hashing commands (size of hashtron program)
func (h Hashtron) Len() int {
	return len(h.program)
}

// Bits determines the number of output bits returned by hashtron using Forward
func (h Hashtron) Bits() byte {
	return h.bits
}
