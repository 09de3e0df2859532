package cifar10

import "fmt"
import "os"
import "path/filepath"

import "golang.org/x/sync/errgroup"

const tmpDirectory = "/tmp/cifar-10-batches-bin/"

func userHomeDir() string {
	dirname, err := os.UserHomeDir()
	if err != nil {
		return "~"
	}
	return dirname
}

var searchDirectories = []string{tmpDirectory, filepath.Join(userHomeDir(), "cifar-10-batches-bin")}

// Split names a part of the dataset.
type Split string

const Train Split = "train"
const Validation Split = "validation"
const Eval Split = "eval"

// Files returns the batch file names making up a split.
func (s Split) Files() ([]string, error) {
	switch s {
	case Train:
		return []string{"data_batch_1.bin", "data_batch_2.bin", "data_batch_3.bin", "data_batch_4.bin"}, nil
	case Validation:
		return []string{"data_batch_5.bin"}, nil
	case Eval:
		return []string{"test_batch.bin"}, nil
	}
	return nil, fmt.Errorf("cifar10: unknown split %q", string(s))
}

// Find returns the first directory holding the batches of split, dir first
// when not empty, then /tmp/cifar-10-batches-bin and ~/cifar-10-batches-bin.
func Find(dir string, split Split) (string, error) {
	files, err := split.Files()
	if err != nil {
		return "", err
	}
	var dirs = searchDirectories
	if dir != "" {
		dirs = append([]string{dir}, dirs...)
	}
outer:
	for _, d := range dirs {
		for _, name := range files {
			if _, err := os.Stat(filepath.Join(d, name)); err != nil {
				continue outer
			}
		}
		return d, nil
	}
	return "", fmt.Errorf("cifar10: no directory holds the %s batches %v", string(split), files)
}

// Load reads all batch files of split from dir in parallel and returns the
// samples in file order.
func Load(dir string, split Split) ([]Sample, error) {
	files, err := split.Files()
	if err != nil {
		return nil, err
	}
	var batches = make([][]Sample, len(files))
	var g errgroup.Group
	for i, name := range files {
		i, path := i, filepath.Join(dir, name)
		g.Go(func() (err error) {
			batches[i], err = ReadBatchFile(path)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var samples []Sample
	for _, b := range batches {
		samples = append(samples, b...)
	}
	return samples, nil
}
