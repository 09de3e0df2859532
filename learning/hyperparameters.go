// Package learning finds hashtron programs separating a dataset, the
// learning stage of hashtron networks
package learning

import crypto_rand "crypto/rand"
import "encoding/binary"
import "math/rand"

// HyperParameters tune the program search.
type HyperParameters struct {
	Threads int // number of threads for learning

	Shuffle bool // whether to shuffle the set before each learning attempt
	Seed    bool // seed prng using true rng, otherwise runs repeat

	DeadlineMs    int // salts tried per modulo before the attempt is given up
	DeadlineRetry int // retry from scratch after this many failed deadlines

	// Factor is how hard to try to come up with a smaller solution (default: 1)
	Factor uint32

	// Subtractor is how fast the modulo shrinks after each step (default: 1)
	Subtractor uint32

	DisableProgressBar bool // disable progress bar
}

// Defaults returns the parameters the training commands start from.
func Defaults(threads int) HyperParameters {
	return HyperParameters{
		Threads:            threads,
		Shuffle:            true,
		DeadlineMs:         1000,
		DeadlineRetry:      3,
		Factor:             1,
		Subtractor:         1,
		DisableProgressBar: true,
	}
}

func (h *HyperParameters) random() *rand.Rand {
	var seed int64 = 1
	if h.Seed {
		var b [8]byte
		if _, err := crypto_rand.Read(b[:]); err == nil {
			seed = int64(binary.LittleEndian.Uint64(b[:]))
		}
	}
	return rand.New(rand.NewSource(seed))
}

func (h *HyperParameters) threads() int {
	if h.Threads < 1 {
		return 1
	}
	return h.Threads
}

func (h *HyperParameters) factor() uint32 {
	if h.Factor == 0 {
		return 1
	}
	return h.Factor
}

func (h *HyperParameters) retries() int {
	if h.DeadlineRetry < 1 {
		return 1
	}
	return h.DeadlineRetry
}

func (h *HyperParameters) deadline() uint32 {
	if h.DeadlineMs < 1 {
		return 1000
	}
	return uint32(h.DeadlineMs)
}
