package occlusion

import "fmt"

// ScoringError reports that the scorer failed, or returned a non-finite
// value, for the image at Index (0 is the baseline).
type ScoringError struct {
	Index int
	Err   error
}

func (e *ScoringError) Error() string {
	if e.Index == 0 {
		return fmt.Sprintf("scoring baseline: %v", e.Err)
	}
	return fmt.Sprintf("scoring region %d: %v", e.Index-1, e.Err)
}

// Cause returns the underlying scorer error.
func (e *ScoringError) Cause() error {
	return e.Err
}

func (e *ScoringError) Unwrap() error {
	return e.Err
}
