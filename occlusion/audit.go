package occlusion

import "fmt"
import "image/png"
import "os"
import "path/filepath"

// PNGAuditor writes every scored image into Dir as <Prefix>_<index>.png.
type PNGAuditor struct {
	Dir    string
	Prefix string
}

// Audit writes img as a PNG file.
func (a PNGAuditor) Audit(index int, img *Image) error {
	prefix := a.Prefix
	if prefix == "" {
		prefix = "img"
	}
	name := filepath.Join(a.Dir, fmt.Sprintf("%s_%04d.png", prefix, index))
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	err = png.Encode(file, img.ToImage())
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// MultiAuditor hands every image to each of its auditors in order.
type MultiAuditor []Auditor

// Audit stops at the first failing auditor.
func (m MultiAuditor) Audit(index int, img *Image) error {
	for _, a := range m {
		if err := a.Audit(index, img); err != nil {
			return err
		}
	}
	return nil
}
