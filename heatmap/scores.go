package heatmap

import "bufio"
import "io"
import "math"
import "os"
import "strconv"
import "strings"

import "github.com/pkg/errors"

// ParseScores reads a score sequence, one float per line. Line 1 is the
// baseline, the following lines are the patch scores in grid order.
// Blank, non-numeric or non-finite lines and empty input are a FormatError.
func ParseScores(r io.Reader) ([]float64, error) {
	var scores []float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &FormatError{Line: line, Text: text, Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &FormatError{Line: line, Text: text, Err: errors.New("non-finite score")}
		}
		scores = append(scores, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading scores")
	}
	if len(scores) == 0 {
		return nil, &FormatError{Line: 1, Err: errors.New("no baseline score")}
	}
	return scores, nil
}

// ReadScoresFile parses the score file at path.
func ReadScoresFile(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	scores, err := ParseScores(file)
	if err != nil {
		return nil, errors.Wrapf(err, "scores %s", path)
	}
	return scores, nil
}

// WriteScores writes one score per line in a form ParseScores reads back
// exactly.
func WriteScores(w io.Writer, scores []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range scores {
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteScoresFile writes the score file at path.
func WriteScoresFile(path string, scores []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	err = WriteScores(file, scores)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}
