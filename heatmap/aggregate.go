// Package heatmap reduces occlusion scores to a per-pixel sensitivity map
package heatmap

import "github.com/neurlang/saliency/patch"

// Map is a rows x cols sensitivity map. Values are in [0, 255]; brighter
// means the model lost more confidence when the pixel was occluded.
type Map struct {
	Rows, Cols int
	Values     []float64
}

// At returns the intensity of pixel (r, c).
func (m *Map) At(r, c int) float64 {
	return m.Values[r*m.Cols+c]
}

type cell struct {
	hits int
	sum  float64
}

// Aggregate builds the sensitivity map of a rows x cols image from scores,
// which must hold the baseline at index 0 followed by one score per region.
// Pixels no region covers get raw intensity 0. The baseline does not take
// part in normalization.
func Aggregate(scores []float64, regions []patch.Region, rows, cols int) (*Map, error) {
	if len(scores) != len(regions)+1 {
		return nil, &LengthMismatchError{Scores: len(scores), Regions: len(regions)}
	}
	if rows <= 0 || cols <= 0 {
		return nil, patch.NewConfigurationError("image size %dx%d is not positive", rows, cols)
	}
	for k, region := range regions {
		if !region.Within(rows, cols) {
			return nil, patch.NewConfigurationError("region %d %v is outside the %dx%d image",
				k, region, rows, cols)
		}
	}

	cells := make([]cell, rows*cols)
	for k, region := range regions {
		score := scores[k+1]
		for r := region.Row; r < region.Row+region.Height; r++ {
			row := cells[r*cols : (r+1)*cols]
			for c := region.Col; c < region.Col+region.Width; c++ {
				row[c].hits++
				row[c].sum += score
			}
		}
	}

	raw := make([]float64, len(cells))
	for i := range cells {
		if cells[i].hits > 0 {
			raw[i] = cells[i].sum / float64(cells[i].hits)
		}
	}

	min, max := raw[0], raw[0]
	for _, v := range raw[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	o := &Map{Rows: rows, Cols: cols, Values: raw}
	if max == min {
		for i := range raw {
			raw[i] = 0
		}
		return o, nil
	}
	span := max - min
	for i, v := range raw {
		raw[i] = (1 - (v-min)/span) * 255
	}
	return o, nil
}
