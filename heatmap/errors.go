package heatmap

import "fmt"

// LengthMismatchError reports a score sequence that does not hold exactly
// one baseline plus one score per region.
type LengthMismatchError struct {
	Scores  int
	Regions int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d scores for %d regions, want %d",
		e.Scores, e.Regions, e.Regions+1)
}

// FormatError reports a malformed line of a score file. Line is 1-based.
type FormatError struct {
	Line int
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("format: line %d: %q", e.Line, e.Text)
	}
	return fmt.Sprintf("format: line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
