// Package cifar10 reads and writes the CIFAR-10 binary batch format
package cifar10

import "fmt"

import "github.com/neurlang/saliency/occlusion"

const ImgSize = 32
const Channels = 3
const PlaneSize = ImgSize * ImgSize
const PixelsSize = Channels * PlaneSize

// RecordSize is the size of one record in a batch file, label byte first.
const RecordSize = 1 + PixelsSize

const Classes = 10

// Labels are the class names in label order.
var Labels = [Classes]string{
	"airplane", "automobile", "bird", "cat", "deer",
	"dog", "frog", "horse", "ship", "truck",
}

// Sample is one labelled image. Pixels are stored channel after channel,
// each channel row-major, exactly as in the batch files.
type Sample struct {
	Label  byte
	Pixels [PixelsSize]byte
}

// Feature packs pixel n and its right, lower and lower right neighbours of
// the same channel into one feature. Neighbours past the edge repeat the
// edge pixel.
func (s *Sample) Feature(n int) uint32 {
	n %= PixelsSize
	plane := n / PlaneSize * PlaneSize
	y := n % PlaneSize / ImgSize
	x := n % ImgSize
	dx, dy := 1, ImgSize
	if x == ImgSize-1 {
		dx = 0
	}
	if y == ImgSize-1 {
		dy = 0
	}
	i := plane + y*ImgSize + x
	return uint32(s.Pixels[i]) | uint32(s.Pixels[i+dx])<<8 |
		uint32(s.Pixels[i+dy])<<16 | uint32(s.Pixels[i+dx+dy])<<24
}

// Output returns the label.
func (s *Sample) Output() uint16 {
	return uint16(s.Label)
}

// Image converts the sample into a 3 channel occlusion image.
func (s *Sample) Image() *occlusion.Image {
	img := occlusion.NewImage(ImgSize, ImgSize, Channels)
	for c := 0; c < Channels; c++ {
		for y := 0; y < ImgSize; y++ {
			for x := 0; x < ImgSize; x++ {
				img.Set(y, x, c, float64(s.Pixels[c*PlaneSize+y*ImgSize+x]))
			}
		}
	}
	return img
}

// FromImage converts a 32x32 image back into a sample, rounding and
// clamping intensities. Gray images are copied into every channel.
func FromImage(img *occlusion.Image, label byte) (*Sample, error) {
	if img.Rows != ImgSize || img.Cols != ImgSize {
		return nil, fmt.Errorf("cifar10: image is %dx%d, want %dx%d", img.Rows, img.Cols, ImgSize, ImgSize)
	}
	if img.Channels != Channels && img.Channels != 1 {
		return nil, fmt.Errorf("cifar10: image has %d channels", img.Channels)
	}
	s := &Sample{Label: label}
	for c := 0; c < Channels; c++ {
		src := c
		if img.Channels == 1 {
			src = 0
		}
		for y := 0; y < ImgSize; y++ {
			for x := 0; x < ImgSize; x++ {
				s.Pixels[c*PlaneSize+y*ImgSize+x] = occlusion.Clamp8(img.At(y, x, src))
			}
		}
	}
	return s, nil
}
