// Package patch enumerates the rectangular occlusion regions covering an image
package patch

import "fmt"

// Region is an axis-aligned rectangle given by its top-left corner and size.
type Region struct {
	Row, Col      int
	Height, Width int
}

// Contains reports whether pixel (r, c) lies inside the region.
func (p Region) Contains(r, c int) bool {
	return r >= p.Row && r < p.Row+p.Height && c >= p.Col && c < p.Col+p.Width
}

// Within reports whether the region lies fully inside a rows x cols image.
func (p Region) Within(rows, cols int) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Height > 0 && p.Width > 0 &&
		p.Row+p.Height <= rows && p.Col+p.Width <= cols
}

func (p Region) String() string {
	return fmt.Sprintf("(%d,%d)+%dx%d", p.Row, p.Col, p.Height, p.Width)
}

// Grid is a patch grid over a rows x cols image.
type Grid struct {
	rows, cols       int
	height, width    int
	rowStep, colStep int
}

// MustNew creates a new Grid with image size, patch size and stride
func MustNew(rows, cols, height, width, rowStep, colStep int) *Grid {
	o, err := New(rows, cols, height, width, rowStep, colStep)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// New creates a new Grid with image size, patch size and stride
func New(rows, cols, height, width, rowStep, colStep int) (o *Grid, err error) {
	if rows <= 0 || cols <= 0 {
		return nil, configurationErrorf("image size %dx%d is not positive", rows, cols)
	}
	if height <= 0 || width <= 0 {
		return nil, configurationErrorf("patch size %dx%d is not positive", height, width)
	}
	if rowStep <= 0 || colStep <= 0 {
		return nil, configurationErrorf("stride %dx%d is not positive", rowStep, colStep)
	}
	if height > rows {
		return nil, configurationErrorf("patch height %d is larger than image height %d", height, rows)
	}
	if width > cols {
		return nil, configurationErrorf("patch width %d is larger than image width %d", width, cols)
	}
	o = new(Grid)
	o.rows = rows
	o.cols = cols
	o.height = height
	o.width = width
	o.rowStep = rowStep
	o.colStep = colStep
	return
}

// Rows reports the image height the grid was built for.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols reports the image width the grid was built for.
func (g *Grid) Cols() int {
	return g.cols
}

// Divisions reports the number of patch positions along each axis.
func (g *Grid) Divisions() (down, across int) {
	return (g.rows-g.height)/g.rowStep + 1, (g.cols-g.width)/g.colStep + 1
}

// Len reports the number of regions.
func (g *Grid) Len() int {
	down, across := g.Divisions()
	return down * across
}

// At returns the n-th region in row-major order.
func (g *Grid) At(n int) Region {
	_, across := g.Divisions()
	i := n / across
	j := n % across
	return Region{
		Row:    i * g.rowStep,
		Col:    j * g.colStep,
		Height: g.height,
		Width:  g.width,
	}
}

// Regions returns all regions, outer loop over rows, inner loop over columns.
// The position in the slice is the only link between a region and its score.
func (g *Grid) Regions() []Region {
	down, across := g.Divisions()
	o := make([]Region, 0, down*across)
	for i := 0; i < down; i++ {
		for j := 0; j < across; j++ {
			o = append(o, Region{
				Row:    i * g.rowStep,
				Col:    j * g.colStep,
				Height: g.height,
				Width:  g.width,
			})
		}
	}
	return o
}
