package feedforward

import "bytes"
import "compress/lzw"
import "encoding/json"
import "math/rand"
import "path/filepath"
import "testing"

import "github.com/neurlang/saliency/datasets"
import "github.com/neurlang/saliency/layer/conv2d"
import "github.com/neurlang/saliency/layer/sum"

type bytesInput []byte

func (b bytesInput) Feature(n int) uint32 {
	return uint32(b[n])
}

// 8x8 single plane, 2x2 windows, 3 classes of 7 votes
func testNetwork(seed int64) *FeedforwardNetwork {
	var net FeedforwardNetwork
	net.NewLayerP(64, 1, 1<<12)
	net.NewCombiner(conv2d.MustNew(8, 8, 2, 2, 1))
	net.NewLayer(21, 1)
	net.NewCombiner(sum.MustNew([]uint{3, 7}, 1))
	net.Randomize(rand.New(rand.NewSource(seed)))
	return &net
}

func testInput(seed int64) bytesInput {
	rng := rand.New(rand.NewSource(seed))
	in := make(bytesInput, 64)
	rng.Read(in)
	return in
}

func TestValidate(t *testing.T) {
	if err := testNetwork(1).Validate(); err != nil {
		t.Errorf("valid network rejected: %v", err)
	}

	var wrongInputs FeedforwardNetwork
	wrongInputs.NewLayer(60, 1)
	wrongInputs.NewCombiner(conv2d.MustNew(8, 8, 2, 2, 1))
	if wrongInputs.Validate() == nil {
		t.Errorf("combiner input count mismatch accepted")
	}

	var tooWide FeedforwardNetwork
	tooWide.NewLayer(64, 1)
	tooWide.NewCombiner(conv2d.MustNew(8, 8, 2, 2, 1))
	tooWide.NewLayer(50, 1)
	if tooWide.Validate() == nil {
		t.Errorf("layer wider than combiner features accepted")
	}

	var twoCombiners FeedforwardNetwork
	twoCombiners.NewCombiner(sum.MustNew([]uint{1}, 0))
	if twoCombiners.Validate() == nil {
		t.Errorf("network starting with a combiner accepted")
	}
}

func TestInferVotes(t *testing.T) {
	net := testNetwork(1)
	out := net.Infer(testInput(2))
	for class := 0; class < 3; class++ {
		if v := out.Feature(class); v > 7 {
			t.Errorf("class %d has %d of 7 votes", class, v)
		}
	}
	again := net.Infer(testInput(2))
	for class := 0; class < 3; class++ {
		if out.Feature(class) != again.Feature(class) {
			t.Errorf("class %d: inference not deterministic", class)
		}
	}
}

func TestLen(t *testing.T) {
	net := testNetwork(1)
	if net.Len() != 85 || net.LenLayers() != 4 {
		t.Errorf("Len() = %d, LenLayers() = %d", net.Len(), net.LenLayers())
	}
	if net.GetLayer(63) != 0 || net.GetLayer(64) != 2 || net.GetLayer(85) != -1 {
		t.Errorf("GetLayer boundaries wrong")
	}
	if net.GetPosition(70) != 6 {
		t.Errorf("GetPosition(70) = %d", net.GetPosition(70))
	}
}

func TestSingleValueLayer(t *testing.T) {
	var net FeedforwardNetwork
	net.NewLayerP(1, 4, 256)
	net.Randomize(rand.New(rand.NewSource(3)))
	out := net.Infer(bytesInput{200})
	if _, ok := out.(SingleValue); !ok {
		t.Fatalf("final hashtron layer returned %T", out)
	}
	if out.Feature(0) >= 16 {
		t.Errorf("4 bit hashtron returned %d", out.Feature(0))
	}
}

func TestCompressedWeights(t *testing.T) {
	trained := testNetwork(5)
	var buf bytes.Buffer
	if err := trained.WriteCompressedWeights(&buf); err != nil {
		t.Fatal(err)
	}
	loaded := testNetwork(6)
	if err := loaded.ReadCompressedWeights(&buf); err != nil {
		t.Fatal(err)
	}
	for seed := int64(0); seed < 10; seed++ {
		a := trained.Infer(testInput(seed))
		b := loaded.Infer(testInput(seed))
		for class := 0; class < 3; class++ {
			if a.Feature(class) != b.Feature(class) {
				t.Fatalf("input %d class %d: %d != %d", seed, class, a.Feature(class), b.Feature(class))
			}
		}
	}
}

func TestCompressedWeightsLayout(t *testing.T) {
	net := testNetwork(5)
	var buf bytes.Buffer
	if err := net.WriteCompressedWeights(&buf); err != nil {
		t.Fatal(err)
	}
	r := lzw.NewReader(&buf, lzw.LSB, 8)
	defer r.Close()
	var all []struct {
		Bits    *byte       `json:"bits"`
		Program [][2]uint32 `json:"program"`
	}
	if err := json.NewDecoder(r).Decode(&all); err != nil {
		t.Fatalf("weights are not a JSON array: %v", err)
	}
	if len(all) != net.Len() {
		t.Fatalf("%d entries for %d hashtrons", len(all), net.Len())
	}
	for i, h := range all {
		if h.Bits == nil || *h.Bits != 1 || len(h.Program) != net.GetHashtron(i).Len() {
			t.Errorf("entry %d: bits %v, %d commands", i, h.Bits, len(h.Program))
		}
	}
}

func TestCompressedWeightsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.json.lzw")
	if err := testNetwork(5).WriteCompressedWeightsToFile(path); err != nil {
		t.Fatal(err)
	}
	var small FeedforwardNetwork
	small.NewLayer(3, 1)
	if err := small.ReadCompressedWeightsFromFile(path); err == nil {
		t.Errorf("weights of a different network accepted")
	}
	if err := testNetwork(6).ReadCompressedWeightsFromFile(path); err != nil {
		t.Errorf("ReadCompressedWeightsFromFile failed: %v", err)
	}
}

// loss of class 0 against the strongest other class of testNetwork
func lossClass0(out Input) int {
	var best uint32
	for class := 1; class < 3; class++ {
		if out.Feature(class) > best {
			best = out.Feature(class)
		}
	}
	if margin := int(best) - int(out.Feature(0)) + 1; margin > 0 {
		return margin
	}
	return 0
}

func TestTallyVotesForClass(t *testing.T) {
	net := testNetwork(1)
	// layer 2 hashtron 0 votes for class 0, hashtron 1 for class 1
	for _, tt := range []struct {
		worst int
		want  bool
	}{{64, true}, {65, false}} {
		tally := datasets.NewTally()
		for seed := int64(0); seed < 50; seed++ {
			net.Tally(testInput(seed), tt.worst, tally, lossClass0)
		}
		if tt.want && tally.Len() == 0 {
			t.Errorf("hashtron %d: no votes", tt.worst)
		}
		for feature, bit := range tally.Dataset() {
			if bit != tt.want {
				t.Errorf("hashtron %d: feature %d voted %v", tt.worst, feature, bit)
			}
		}
	}
}

func TestTallyFirstLayer(t *testing.T) {
	net := testNetwork(2)
	tally := datasets.NewTally()
	for seed := int64(0); seed < 20; seed++ {
		net.Tally(testInput(seed), 10, tally, lossClass0)
	}
	for feature := range tally.Dataset() {
		if feature >= 1<<12 {
			t.Errorf("feature %d escaped premodulo", feature)
		}
	}
	// the network is left untouched
	a := net.Infer(testInput(1))
	b := testNetwork(2).Infer(testInput(1))
	for class := 0; class < 3; class++ {
		if a.Feature(class) != b.Feature(class) {
			t.Errorf("class %d changed by tallying", class)
		}
	}
}

func BenchmarkInfer(b *testing.B) {
	net := testNetwork(1)
	in := testInput(1)
	for i := 0; i < b.N; i++ {
		net.Infer(in)
	}
}
