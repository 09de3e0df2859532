package datasets

import "sync"

// Tally collects votes on which output bit a hashtron should produce for each
// of its inputs. It is safe for concurrent use.
type Tally struct {
	// votes from samples the flip made correct, positive votes mean true
	correct map[uint32]int64

	// votes from samples the flip merely improved
	improve map[uint32]int64

	mut sync.Mutex

	improvementPossible bool
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	t := new(Tally)
	t.Init()
	return t
}

// Init empties the tally.
func (t *Tally) Init() {
	t.mut.Lock()
	t.correct = make(map[uint32]int64)
	t.improve = make(map[uint32]int64)
	t.improvementPossible = false
	t.mut.Unlock()
}

// Free releases the memory held by the tally.
func (t *Tally) Free() {
	t.mut.Lock()
	t.correct = nil
	t.improve = nil
	t.mut.Unlock()
}

// Len estimates the number of distinct inputs voted on.
func (t *Tally) Len() int {
	t.mut.Lock()
	defer t.mut.Unlock()
	return len(t.correct) + len(t.improve)
}

// GetImprovementPossible reports whether some vote would change an output.
func (t *Tally) GetImprovementPossible() bool {
	t.mut.Lock()
	defer t.mut.Unlock()
	return t.improvementPossible
}

// AddToCorrect votes for the output that made a sample correct. improvement
// tells that the voted output differs from the current one.
func (t *Tally) AddToCorrect(feature uint32, vote int8, improvement bool) {
	if vote == 0 {
		return
	}
	t.mut.Lock()
	t.correct[feature] += int64(vote)
	if t.correct[feature] == 0 {
		delete(t.correct, feature)
	}
	if improvement {
		t.improvementPossible = true
	}
	t.mut.Unlock()
}

// AddToImprove votes for the output that lowered the loss of a sample
// without making it correct.
func (t *Tally) AddToImprove(feature uint32, vote int8, improvement bool) {
	if vote == 0 {
		return
	}
	t.mut.Lock()
	t.improve[feature] += int64(vote)
	if t.improve[feature] == 0 {
		delete(t.improve, feature)
	}
	if improvement {
		t.improvementPossible = true
	}
	t.mut.Unlock()
}

// Dataset resolves the votes. Votes for correctness override votes for
// improvement, inputs with tied votes are left out.
func (t *Tally) Dataset() Dataset {
	t.mut.Lock()
	defer t.mut.Unlock()
	var d = make(Dataset, len(t.improve)+len(t.correct))
	for k, v := range t.improve {
		d[k] = v > 0
	}
	for k, v := range t.correct {
		d[k] = v > 0
	}
	return d
}
