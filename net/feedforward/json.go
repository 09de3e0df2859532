package feedforward

import "compress/lzw"
import "encoding/json"
import "fmt"
import "io"
import "os"

import "github.com/neurlang/saliency/hashtron"

// WriteCompressedWeightsToFile writes model weights to a lzw file
func (f FeedforwardNetwork) WriteCompressedWeightsToFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	err = f.WriteCompressedWeights(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteCompressedWeights writes model weights to a writer as a lzw
// compressed JSON array holding every hashtron in network order
func (f FeedforwardNetwork) WriteCompressedWeights(w io.Writer) error {
	lw := lzw.NewWriter(w, lzw.LSB, 8)
	var all = make([]hashtron.Hashtron, 0, f.Len())
	for _, v := range f.layers {
		all = append(all, v...)
	}
	if err := json.NewEncoder(lw).Encode(all); err != nil {
		lw.Close()
		return err
	}
	return lw.Close()
}

// ReadCompressedWeightsFromFile reads model weights from a lzw file
func (f *FeedforwardNetwork) ReadCompressedWeightsFromFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return f.ReadCompressedWeights(file)
}

// ReadCompressedWeights reads model weights from a reader. The weights must
// hold exactly one hashtron per hashtron of the network.
func (f *FeedforwardNetwork) ReadCompressedWeights(r io.Reader) error {
	lr := lzw.NewReader(r, lzw.LSB, 8)
	defer lr.Close()
	var all []hashtron.Hashtron
	if err := json.NewDecoder(lr).Decode(&all); err != nil {
		return err
	}
	if len(all) != f.Len() {
		return fmt.Errorf("feedforward: weights hold %d hashtrons, network has %d", len(all), f.Len())
	}
	for i := range all {
		*f.GetHashtron(i) = all[i]
	}
	return nil
}
