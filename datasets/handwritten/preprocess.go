// Package handwritten turns photos of handwritten digits into centred
// 28x28 MNIST style samples
package handwritten

import "github.com/pkg/errors"
import "image"
import "image/color"
import "math"

import "golang.org/x/image/draw"

const ImgSize = 28

// BoxSize is the size of the box the digit is fitted into before padding.
const BoxSize = 20

// ErrBlank reports an image with no ink after thresholding.
var ErrBlank = errors.New("handwritten: blank image")

// Preprocess converts a photo of a dark digit on light paper into a 28x28
// image of a white digit on black, fitted into a 20x20 box and centred by
// its centre of mass.
func Preprocess(src image.Image) (*image.Gray, error) {
	gray := invert(src)
	gray = resize(gray, ImgSize, ImgSize)
	threshold(gray, otsu(gray))

	box, ok := inkBounds(gray)
	if !ok {
		return nil, ErrBlank
	}
	digit := gray.SubImage(box).(*image.Gray)

	rows, cols := box.Dy(), box.Dx()
	if rows > cols {
		cols = int(math.Round(float64(cols) * BoxSize / float64(rows)))
		rows = BoxSize
	} else {
		rows = int(math.Round(float64(rows) * BoxSize / float64(cols)))
		cols = BoxSize
	}
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	digit = resize(digit, cols, rows)

	out := image.NewGray(image.Rect(0, 0, ImgSize, ImgSize))
	top := (ImgSize - rows + 1) / 2
	left := (ImgSize - cols + 1) / 2
	draw.Draw(out, image.Rect(left, top, left+cols, top+rows), digit, image.Point{}, draw.Src)

	sx, sy := bestShift(out)
	return shift(out, sx, sy), nil
}

// Pixels flattens a 28x28 image row by row, scaling intensities to [0, 1].
func Pixels(img *image.Gray) (o [ImgSize * ImgSize]float32) {
	for y := 0; y < ImgSize; y++ {
		for x := 0; x < ImgSize; x++ {
			o[y*ImgSize+x] = float32(img.GrayAt(x, y).Y) / 255
		}
	}
	return
}

func invert(src image.Image) *image.Gray {
	b := src.Bounds()
	o := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(src.At(x, y)).(color.Gray)
			o.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{Y: 255 - g.Y})
		}
	}
	return o
}

func resize(src *image.Gray, width, height int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// otsu returns the threshold maximizing the between class variance, pixels
// above it are ink. A single level image has no ink, 255 is returned.
func otsu(img *image.Gray) uint8 {
	var hist [256]int
	for _, v := range img.Pix {
		hist[v]++
	}
	total := len(img.Pix)
	var sum float64
	for i, n := range hist {
		sum += float64(i * n)
	}
	var sumB float64
	var weightB int
	var best float64
	var t uint8 = 255
	for i := 0; i < 256; i++ {
		weightB += hist[i]
		if weightB == 0 {
			continue
		}
		weightF := total - weightB
		if weightF == 0 {
			break
		}
		sumB += float64(i * hist[i])
		meanB := sumB / float64(weightB)
		meanF := (sum - sumB) / float64(weightF)
		between := float64(weightB) * float64(weightF) * (meanB - meanF) * (meanB - meanF)
		if between > best {
			best = between
			t = uint8(i)
		}
	}
	return t
}

func threshold(img *image.Gray, t uint8) {
	for i, v := range img.Pix {
		if v > t {
			img.Pix[i] = 255
		} else {
			img.Pix[i] = 0
		}
	}
}

// inkBounds returns the smallest rectangle holding every non zero pixel.
func inkBounds(img *image.Gray) (r image.Rectangle, ok bool) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y == 0 {
				continue
			}
			p := image.Rect(x, y, x+1, y+1)
			if !ok {
				r, ok = p, true
			} else {
				r = r.Union(p)
			}
		}
	}
	return
}

// bestShift returns the offset moving the centre of mass to the centre.
func bestShift(img *image.Gray) (sx, sy int) {
	var mass, cx, cy float64
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := float64(img.GrayAt(x, y).Y)
			mass += v
			cx += v * float64(x)
			cy += v * float64(y)
		}
	}
	if mass == 0 {
		return 0, 0
	}
	cx /= mass
	cy /= mass
	sx = int(math.Round(float64(b.Dx())/2 - cx))
	sy = int(math.Round(float64(b.Dy())/2 - cy))
	return
}

// shift moves the image by (sx, sy), filling with black.
func shift(img *image.Gray, sx, sy int) *image.Gray {
	b := img.Bounds()
	o := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			ox, oy := x-sx, y-sy
			if image.Pt(ox, oy).In(b) {
				o.SetGray(x, y, img.GrayAt(ox, oy))
			}
		}
	}
	return o
}
