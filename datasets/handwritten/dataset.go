package handwritten

import "fmt"
import "image"
import "image/jpeg"
import "image/png"
import "io"
import "os"
import "path/filepath"
import "runtime"
import "sort"
import "strings"

import "golang.org/x/sync/errgroup"

// Sample is one preprocessed digit.
type Sample struct {
	Name   string
	Label  int
	Pixels [ImgSize * ImgSize]float32
}

func (s *Sample) at(i int) uint32 {
	return uint32(s.Pixels[i]*255 + 0.5)
}

// Feature packs pixel n and its right, lower and lower right neighbours,
// each quantized back to a byte. Neighbours past the edge repeat the edge
// pixel.
func (s *Sample) Feature(n int) uint32 {
	n %= len(s.Pixels)
	dx, dy := 1, ImgSize
	if n%ImgSize == ImgSize-1 {
		dx = 0
	}
	if n/ImgSize == ImgSize-1 {
		dy = 0
	}
	return s.at(n) | s.at(n+dx)<<8 | s.at(n+dy)<<16 | s.at(n+dx+dy)<<24
}

// Output returns the label.
func (s *Sample) Output() uint16 {
	return uint16(s.Label)
}

// ProcessDir preprocesses every image in raw whose name starts with its
// label digit, in parallel. Processed images are written under the same name
// into proc when proc is not empty, JPEG encoded for .jpg and .jpeg names and
// PNG encoded otherwise. Samples are sorted by name.
func ProcessDir(raw, proc string) ([]Sample, error) {
	entries, err := os.ReadDir(raw)
	if err != nil {
		return nil, err
	}
	if proc != "" {
		if err := os.MkdirAll(proc, 0755); err != nil {
			return nil, err
		}
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || e.Name() == "" || e.Name()[0] < '0' || e.Name()[0] > '9' {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var samples = make([]Sample, len(names))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			img, err := processFile(filepath.Join(raw, name), proc, name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			samples[i] = Sample{Name: name, Label: int(name[0] - '0'), Pixels: Pixels(img)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return samples, nil
}

func processFile(path, proc, name string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	src, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return nil, err
	}
	img, err := Preprocess(src)
	if err != nil {
		return nil, err
	}
	if proc == "" {
		return img, nil
	}
	out, err := os.Create(filepath.Join(proc, name))
	if err != nil {
		return nil, err
	}
	err = encode(out, name, img)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return img, err
}

func encode(w io.Writer, name string, img image.Image) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	}
	return png.Encode(w, img)
}
