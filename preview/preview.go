// Package preview draws 8-bit heatmaps into a terminal
package preview

import "image"

import "github.com/gdamore/tcell/v2"

// upper half block, foreground is the top pixel, background the bottom one
const halfBlock = '▀'

// Palette maps an 8-bit intensity to a terminal color.
type Palette func(v uint8) tcell.Color

// Gray renders intensities as shades of gray.
func Gray(v uint8) tcell.Color {
	return tcell.NewRGBColor(int32(v), int32(v), int32(v))
}

// Heat runs from black through red and yellow to white.
func Heat(v uint8) tcell.Color {
	x := int32(v) * 3
	r, g, b := x, x-255, x-510
	return tcell.NewRGBColor(clamp(r), clamp(g), clamp(b))
}

func clamp(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Size reports the number of terminal cells img takes.
func Size(img *image.Gray) (width, height int) {
	b := img.Bounds()
	return b.Dx(), (b.Dy() + 1) / 2
}

// Render draws img with its top left corner at cell (x0, y0), two pixel rows
// per cell. An odd last row is drawn over black. Cells falling outside the
// screen are skipped.
func Render(screen tcell.Screen, img *image.Gray, x0, y0 int, palette Palette) {
	if palette == nil {
		palette = Gray
	}
	b := img.Bounds()
	sw, sh := screen.Size()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		cy := y0 + (y-b.Min.Y)/2
		if cy < 0 || cy >= sh {
			continue
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			cx := x0 + x - b.Min.X
			if cx < 0 || cx >= sw {
				continue
			}
			bottom := tcell.ColorBlack
			if y+1 < b.Max.Y {
				bottom = palette(img.GrayAt(x, y+1).Y)
			}
			style := tcell.StyleDefault.Foreground(palette(img.GrayAt(x, y).Y)).Background(bottom)
			screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

// Label writes text starting at cell (x, y).
func Label(screen tcell.Screen, x, y int, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}
