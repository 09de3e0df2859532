package occlusion

// Scorer returns the model confidence for one fixed target class on img.
// Implementations need not be safe for concurrent use.
type Scorer interface {
	Score(img *Image) (float64, error)
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(img *Image) (float64, error)

// Score calls f(img).
func (f ScorerFunc) Score(img *Image) (float64, error) {
	return f(img)
}

// Auditor persists the images handed to the scorer. Index 0 is the
// unoccluded image, index k is the copy with region k-1 blacked out.
type Auditor interface {
	Audit(index int, img *Image) error
}
