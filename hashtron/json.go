package hashtron

import "encoding/json"
import "fmt"

type jsonHashtron struct {
	Bits    byte        `json:"bits"`
	Program [][2]uint32 `json:"program"`
}

// MarshalJSON encodes the hashtron as {"bits":..,"program":[[salt,max],..]}.
func (h Hashtron) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonHashtron{Bits: h.bits, Program: h.program})
}

// UnmarshalJSON decodes and validates a hashtron.
func (h *Hashtron) UnmarshalJSON(data []byte) error {
	var j jsonHashtron
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	n, err := New(j.Program, j.Bits)
	if err != nil {
		return fmt.Errorf("decode hashtron: %w", err)
	}
	*h = *n
	return nil
}
