package parallel

import "math"
import "sync"
import "sync/atomic"

// LoopStopper reports whether a LoopUntil loop is stopping.
type LoopStopper interface {

	// Load reports true once the loop should stop.
	Load() bool
}

// Loop is the number of goroutines a LoopUntil runs.
type Loop int

// LoopUntil hands out i = 0, 1, 2, ... to l goroutines until yield returns
// true for some i or i reaches math.MaxUint32. Long running yields should
// poll ender and give up once it reports true. A Loop below 1 runs one
// goroutine.
func (l Loop) LoopUntil(yield func(i uint32, ender LoopStopper) bool) {
	var next atomic.Uint32
	var ender atomic.Bool
	var wg sync.WaitGroup

	if l < 1 {
		l = 1
	}
	for n := 0; n < int(l); n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !ender.Load() {
				i := next.Add(1) - 1
				if i == math.MaxUint32 {
					ender.Store(true)
					return
				}
				if yield(i, &ender) {
					ender.Store(true)
					return
				}
			}
		}()
	}
	wg.Wait()
}
