package cifar10

import "bufio"
import "fmt"
import "io"
import "os"

import "github.com/neurlang/saliency/occlusion"

// ReadBatch reads records until EOF. A truncated last record is an error.
func ReadBatch(r io.Reader) (samples []Sample, err error) {
	br := bufio.NewReader(r)
	var record [RecordSize]byte
	for {
		_, err = io.ReadFull(br, record[:])
		if err == io.EOF {
			return samples, nil
		}
		if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("cifar10: truncated record %d", len(samples))
		}
		if err != nil {
			return nil, err
		}
		if record[0] >= Classes {
			return nil, fmt.Errorf("cifar10: record %d has label %d", len(samples), record[0])
		}
		var s Sample
		s.Label = record[0]
		copy(s.Pixels[:], record[1:])
		samples = append(samples, s)
	}
}

// ReadBatchFile reads the batch file at path.
func ReadBatchFile(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	samples, err := ReadBatch(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// WriteBatch writes samples in the batch format.
func WriteBatch(w io.Writer, samples []Sample) error {
	bw := bufio.NewWriter(w)
	for i := range samples {
		if err := writeRecord(bw, &samples[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRecord(w io.Writer, s *Sample) error {
	if _, err := w.Write([]byte{s.Label}); err != nil {
		return err
	}
	_, err := w.Write(s.Pixels[:])
	return err
}

// BatchWriter appends every audited image as a record with a fixed label,
// so the occluded copies of one image form a batch file a classifier can
// be run on.
type BatchWriter struct {
	Label byte
	w     *bufio.Writer
	n     int
}

// NewBatchWriter creates a BatchWriter writing to w.
func NewBatchWriter(w io.Writer, label byte) *BatchWriter {
	return &BatchWriter{Label: label, w: bufio.NewWriter(w)}
}

// Audit writes img as the next record. Images must arrive in index order.
func (b *BatchWriter) Audit(index int, img *occlusion.Image) error {
	if index != b.n {
		return fmt.Errorf("cifar10: record %d audited as image %d", b.n, index)
	}
	s, err := FromImage(img, b.Label)
	if err != nil {
		return err
	}
	if err := writeRecord(b.w, s); err != nil {
		return err
	}
	b.n++
	return nil
}

// Len reports the number of records written.
func (b *BatchWriter) Len() int {
	return b.n
}

// Flush writes buffered records to the underlying writer.
func (b *BatchWriter) Flush() error {
	return b.w.Flush()
}
