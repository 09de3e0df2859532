package trainer

import "math/rand"
import "os"
import "path/filepath"
import "testing"

import "github.com/neurlang/saliency/datasets"
import "github.com/neurlang/saliency/layer/sum"
import "github.com/neurlang/saliency/learning"
import "github.com/neurlang/saliency/net/feedforward"

type toySample struct {
	x     uint32
	label uint16
}

func (s toySample) Feature(n int) uint32 {
	return s.x
}

func (s toySample) Output() uint16 {
	return s.label
}

func toySamples(n int) (o []Sample) {
	for i := 0; i < n; i++ {
		o = append(o, toySample{x: uint32(i) * 2654435761, label: uint16(i % 2)})
	}
	return
}

// two classes, one voting hashtron each
func toyNet() feedforward.FeedforwardNetwork {
	var net feedforward.FeedforwardNetwork
	net.NewLayer(2, 1)
	net.NewCombiner(sum.MustNew([]uint{2, 1}, 1))
	return net
}

func twoClassLoss(out feedforward.Input, want uint16) int {
	own, rival := out.Feature(int(want)), out.Feature(int(1-want))
	if own > rival {
		return 0
	}
	return int(rival-own) + 1
}

func TestSampleSize(t *testing.T) {
	if n := sampleSize(10, 100); n != 10 {
		t.Errorf("full significance sampled %d of 10", n)
	}
	if n := sampleSize(1000000, 95); n < 300 || n > 400 {
		t.Errorf("95%% of a large set sampled %d", n)
	}
	for _, N := range []int{0, 1, 5, 64, 5000} {
		if n := sampleSize(N, 99); n > N {
			t.Errorf("sampled %d of %d", n, N)
		}
	}
}

func TestOrder(t *testing.T) {
	var net feedforward.FeedforwardNetwork
	net.NewLayer(4, 1)
	net.NewCombiner(sum.MustNew([]uint{2, 2}, 1))
	net.NewLayer(2, 1)
	order := Order(net, rand.New(rand.NewSource(1)))
	if len(order) != 6 {
		t.Fatalf("order %v", order)
	}
	for i, worst := range order {
		if want := i >= 2; (net.GetLayer(worst) == 0) != want {
			t.Errorf("order %v does not start with the last layer", order)
		}
	}
	var seen = make(map[int]bool)
	for _, worst := range order {
		seen[worst] = true
	}
	if len(seen) != 6 {
		t.Errorf("order %v repeats a hashtron", order)
	}
}

func TestTallyFuncVotes(t *testing.T) {
	net := toyNet()
	samples := toySamples(32)
	tally := datasets.NewTally()
	NewTallyFunc(net, samples, twoClassLoss, 4)(0, tally)
	d := tally.Dataset()
	for _, s := range samples {
		vote, ok := d[s.Feature(0)]
		if !ok {
			t.Fatalf("no vote for sample %v", s)
		}
		if vote != (s.Output() == 0) {
			t.Errorf("sample %v voted %v", s, vote)
		}
	}
}

func TestTrainingLoop(t *testing.T) {
	net := toyNet()
	samples := toySamples(64)
	dst := filepath.Join(t.TempDir(), "toy.json.lzw")

	var best = -1
	evaluate := NewEvaluateFunc(net, samples, 100, twoClassLoss, 4, &best, dst)
	tallyFunc := NewTallyFunc(net, samples, twoClassLoss, 4)
	trainWorst := NewTrainWorstFunc(net, learning.Defaults(4), tallyFunc)
	loop := NewLoopFunc(net, rand.New(rand.NewSource(1)), evaluate, trainWorst)

	if success := loop(3); success != 100 {
		t.Fatalf("accuracy %d after training", success)
	}
	if best != 100 {
		t.Errorf("best %d", best)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Fatalf("best model not written: %v", err)
	}

	resumed := toyNet()
	if err := Resume(&resumed, true, dst); err != nil {
		t.Fatal(err)
	}
	for _, s := range samples {
		if twoClassLoss(resumed.Infer(s), s.Output()) != 0 {
			t.Errorf("resumed network misclassifies %v", s)
		}
	}
}

func TestTrainWorstUndo(t *testing.T) {
	net := toyNet()
	samples := toySamples(16)
	before := *net.GetHashtron(1)
	trainWorst := NewTrainWorstFunc(net, learning.Defaults(2), NewTallyFunc(net, samples, twoClassLoss, 2))
	undo := trainWorst(1)
	if undo == nil {
		t.Fatal("nothing trained")
	}
	undo()
	if after := *net.GetHashtron(1); after.Len() != before.Len() || after.Bits() != before.Bits() {
		t.Errorf("undo did not restore the hashtron")
	}
	for i := 0; i < before.Len(); i++ {
		s0, m0 := before.Get(i)
		s1, m1 := net.GetHashtron(1).Get(i)
		if s0 != s1 || m0 != m1 {
			t.Errorf("command %d changed", i)
		}
	}
}

func TestResumeDisabled(t *testing.T) {
	net := toyNet()
	if err := Resume(&net, false, "/nonexistent/model"); err != nil {
		t.Errorf("disabled resume read the model: %v", err)
	}
	if err := Resume(&net, true, "/nonexistent/model"); err == nil {
		t.Errorf("missing model accepted")
	}
}
