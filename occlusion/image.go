// Package occlusion scores copies of an image with one patch blacked out at a time
package occlusion

import "image"
import "image/color"
import "math"

import "github.com/neurlang/saliency/patch"

// Image is a rows x cols grid of intensities with Channels values per pixel,
// stored row-major with the channels of a pixel adjacent.
type Image struct {
	Rows, Cols, Channels int
	Pix                  []float64
}

// NewImage creates a zero (black) image.
func NewImage(rows, cols, channels int) *Image {
	if channels <= 0 {
		channels = 1
	}
	return &Image{
		Rows:     rows,
		Cols:     cols,
		Channels: channels,
		Pix:      make([]float64, rows*cols*channels),
	}
}

func (m *Image) offset(r, c int) int {
	return (r*m.Cols + c) * m.Channels
}

// At returns channel ch of pixel (r, c).
func (m *Image) At(r, c, ch int) float64 {
	return m.Pix[m.offset(r, c)+ch]
}

// Set sets channel ch of pixel (r, c).
func (m *Image) Set(r, c, ch int, v float64) {
	m.Pix[m.offset(r, c)+ch] = v
}

// Clone returns an independent copy.
func (m *Image) Clone() *Image {
	o := &Image{Rows: m.Rows, Cols: m.Cols, Channels: m.Channels}
	o.Pix = make([]float64, len(m.Pix))
	copy(o.Pix, m.Pix)
	return o
}

// Occlude returns a copy of m with every channel of every pixel inside
// region set to value. m itself is left untouched.
func (m *Image) Occlude(region patch.Region, value float64) *Image {
	o := m.Clone()
	for r := region.Row; r < region.Row+region.Height; r++ {
		base := o.offset(r, region.Col)
		end := o.offset(r, region.Col+region.Width)
		for i := base; i < end; i++ {
			o.Pix[i] = value
		}
	}
	return o
}

// FromImage samples img into a 1 (gray) or 3 (RGB) channel Image with
// intensities in 0..255.
func FromImage(img image.Image, channels int) *Image {
	b := img.Bounds()
	if channels != 3 {
		channels = 1
	}
	o := NewImage(b.Dy(), b.Dx(), channels)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, c := y-b.Min.Y, x-b.Min.X
			if channels == 1 {
				g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
				o.Set(r, c, 0, float64(g.Y))
				continue
			}
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			o.Set(r, c, 0, float64(n.R))
			o.Set(r, c, 1, float64(n.G))
			o.Set(r, c, 2, float64(n.B))
		}
	}
	return o
}

// ToImage converts m back to an 8-bit raster, rounding and clamping every
// value to 0..255. Images with 3 channels become RGBA, anything else is
// rendered from its first channel as gray.
func (m *Image) ToImage() image.Image {
	rect := image.Rect(0, 0, m.Cols, m.Rows)
	if m.Channels == 3 {
		o := image.NewRGBA(rect)
		for r := 0; r < m.Rows; r++ {
			for c := 0; c < m.Cols; c++ {
				o.SetRGBA(c, r, color.RGBA{
					R: Clamp8(m.At(r, c, 0)),
					G: Clamp8(m.At(r, c, 1)),
					B: Clamp8(m.At(r, c, 2)),
					A: 255,
				})
			}
		}
		return o
	}
	o := image.NewGray(rect)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			o.SetGray(c, r, color.Gray{Y: Clamp8(m.At(r, c, 0))})
		}
	}
	return o
}

// Clamp8 rounds v to the nearest 8-bit intensity.
func Clamp8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
