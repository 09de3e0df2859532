package heatmap

import "image"
import "image/color"
import "image/png"
import "os"

import "golang.org/x/image/draw"

import "github.com/neurlang/saliency/occlusion"

// Gray renders the map as an 8-bit raster, rounding and clamping each value.
func (m *Map) Gray() *image.Gray {
	o := image.NewGray(image.Rect(0, 0, m.Cols, m.Rows))
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			o.SetGray(c, r, color.Gray{Y: occlusion.Clamp8(m.At(r, c))})
		}
	}
	return o
}

// Scaled renders the map enlarged factor times with nearest neighbour
// sampling, so every pixel stays a sharp square.
func (m *Map) Scaled(factor int) *image.Gray {
	src := m.Gray()
	if factor <= 1 {
		return src
	}
	dst := image.NewGray(image.Rect(0, 0, m.Cols*factor, m.Rows*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes img to a PNG file at path.
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	err = png.Encode(file, img)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}
