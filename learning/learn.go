package learning

import "errors"
import "fmt"
import "strings"
import "sync"

import "github.com/neurlang/saliency/datasets"
import "github.com/neurlang/saliency/hash"
import "github.com/neurlang/saliency/hashtron"
import "github.com/neurlang/saliency/parallel"

// ErrNoSolution reports that every attempt ran out of salts.
var ErrNoSolution = errors.New("learning: no program found")

// maxModulo bounds the collision bitmap of one salt attempt.
const maxModulo = 1 << 24

// Training solves a one bit hashtron answering d[k] for every input k.
func (h *HyperParameters) Training(d datasets.Dataset) (*hashtron.Hashtron, error) {
	chain := h.Reducing(d.Split().Alphabet())
	if chain == nil {
		return nil, ErrNoSolution
	}
	return hashtron.FromModuli(chain, 1)
}

// Reducing searches for a chain of {salt, modulo} hash steps after which
// every value of alphabet[0] is even and every value of alphabet[1] is odd.
// Each step maps both sets into a smaller range without merging a value of
// one set with a value of the other. Returns nil when all retries fail.
func (h *HyperParameters) Reducing(alphabet [2][]uint32) [][2]uint32 {
	if len(alphabet[0])+len(alphabet[1]) == 0 {
		// garbage in, garbage out
		return nil
	}
	rng := h.random()
	for i := 0; i < 2; i++ {
		alphabet[i] = append([]uint32(nil), alphabet[i]...)
	}
	// an empty set gets a value the other set lacks
	for i := 0; i < 2; i++ {
		if len(alphabet[i]) > 0 {
			continue
		}
		var taken = make(map[uint32]struct{}, len(alphabet[1-i]))
		for _, v := range alphabet[1-i] {
			taken[v] = struct{}{}
		}
		v := rng.Uint32()
		for _, ok := taken[v]; ok; _, ok = taken[v] {
			v++
		}
		alphabet[i] = append(alphabet[i], v)
	}
	if h.Shuffle {
		for i := 0; i < 2; i++ {
			a := alphabet[i]
			rng.Shuffle(len(a), func(x, y int) { a[x], a[y] = a[y], a[x] })
		}
	}

	var orig = alphabet
	var center uint32
	var retries = h.retries()
	for u := uint64(retries); u > 0; u-- {
		alphabet = orig
		var total = longest(alphabet)
		var maxl = total
		var program [][2]uint32
		var minadd uint32
		var maxx = modulo(uint64(maxl) * uint64(maxl) / uint64(h.factor()))
		var initial = true
		for maxmax := maxx; maxx <= maxmax; {
			h.progress(maxl, total, maxx)
			salt, ok := h.search(alphabet, center^minadd, maxx)
			if !ok {
				if initial {
					// unstucker
					maxmax = maxx
					maxx = uint32(uint64(maxx) * u / uint64(retries+1))
					if maxx < 2 {
						break
					}
					continue
				}
				maxx++
				continue
			}
			initial = false
			program = append(program, [2]uint32{salt, maxx})
			for j := range alphabet {
				alphabet[j] = distinct(alphabet[j], salt, maxx)
			}
			if solved(alphabet) {
				h.done(len(program))
				return program
			}
			maxl = longest(alphabet)
			if maxl == 1 {
				// one value each side, only their parity is left
				maxx = 2
				center = salt
				continue
			}
			var sub = uint64(h.Subtractor)
			if sub >= uint64(maxl) {
				sub = uint64(maxl) - 1
			}
			rest := uint64(maxl) - sub
			newmaxx := uint64(maxx) * rest * rest / (uint64(maxl) * uint64(maxl))
			if newmaxx >= uint64(maxx) {
				minadd = salt ^ center
			} else {
				maxmax = maxx
				maxx = modulo(newmaxx)
				minadd = 0
			}
			// the last salt is the center of the next search
			center = salt
			if maxx <= maxl {
				maxx = maxl
			}
		}
	}
	return nil
}

var buffers sync.Pool

// search tries salts around start in parallel until one separates the
// alphabet into maxx values or the deadline runs out.
func (h *HyperParameters) search(alphabet [2][]uint32, start uint32, maxx uint32) (win uint32, found bool) {
	var mut sync.Mutex
	var deadline = h.deadline()
	parallel.Loop(h.threads()).LoopUntil(func(nonce uint32, ender parallel.LoopStopper) bool {
		if nonce >= deadline {
			return true
		}
		salt := start ^ nonce
		if !separates(alphabet, salt, maxx, ender) {
			return false
		}
		mut.Lock()
		if !found {
			win, found = salt, true
		}
		mut.Unlock()
		return true
	})
	return
}

// separates reports whether salt hashes the two sets into 0..maxx-1 with no
// value shared between the sets, and with fewer values than before unless
// only two remain.
func separates(alphabet [2][]uint32, salt, maxx uint32, ender parallel.LoopStopper) bool {
	const subwords = 16
	var words = int((maxx + subwords - 1) / subwords)
	buf, _ := buffers.Get().([]uint32)
	if cap(buf) < words {
		buf = make([]uint32, words)
	}
	buf = buf[:words]
	clear(buf)
	defer buffers.Put(buf)

	// linearly boosted loop
	var batch = 64 * hash.Lanes()
	var salts = make([]uint32, batch)
	for i := range salts {
		salts[i] = salt
	}
	var outs = make([]uint32, batch)
	var size int
	for j := range alphabet {
		var which = uint32(1) << j
		for i := 0; i < len(alphabet[j]); i += batch {
			if ender.Load() {
				return false
			}
			vals := alphabet[j][i:min(i+batch, len(alphabet[j]))]
			o := outs[:len(vals)]
			hash.HashVectorized(o, vals, salts, maxx)
			for _, v := range o {
				w, b := v/subwords, (v%subwords)<<1
				if (buf[w]>>b)&3 == 0 {
					size++
				}
				buf[w] |= which << b
				if (buf[w]>>b)&3 == 3 {
					return false
				}
			}
		}
	}
	return size == 2 || size < len(alphabet[0])+len(alphabet[1])
}

// distinct hashes values and drops duplicates.
func distinct(values []uint32, salt, maxx uint32) []uint32 {
	var seen = make(map[uint32]struct{}, len(values))
	var o = make([]uint32, 0, len(values))
	for _, v := range values {
		v = hash.Hash(v, salt, maxx)
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			o = append(o, v)
		}
	}
	return o
}

func solved(alphabet [2][]uint32) bool {
	for j := range alphabet {
		for _, v := range alphabet[j] {
			if v&1 != uint32(j) {
				return false
			}
		}
	}
	return true
}

func longest(alphabet [2][]uint32) uint32 {
	if len(alphabet[1]) > len(alphabet[0]) {
		return uint32(len(alphabet[1]))
	}
	return uint32(len(alphabet[0]))
}

func modulo(m uint64) uint32 {
	if m < 2 {
		return 2
	}
	if m > maxModulo {
		return maxModulo
	}
	return uint32(m)
}

func (h *HyperParameters) progress(maxl, total, maxx uint32) {
	if h.DisableProgressBar || total == 0 {
		return
	}
	const width = 40
	done := width - int(maxl*width/total)
	fmt.Printf("\r[%s%s] %d%% PROBLEM SIZE = %d ", strings.Repeat("=", done),
		strings.Repeat(" ", width-done), 100-int(maxl*100/total), maxx)
}

func (h *HyperParameters) done(size int) {
	if h.DisableProgressBar {
		return
	}
	fmt.Printf("\r[%s] 100%% SOLUTION SIZE = %d \n", strings.Repeat("=", 40), size)
}
