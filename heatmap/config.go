package heatmap

import "os"

import "gopkg.in/yaml.v3"
import "github.com/pkg/errors"

import "github.com/neurlang/saliency/patch"

// Config holds the heatmap geometry. Sizes are [rows, cols].
type Config struct {
	ImageSize      [2]int  `yaml:"image_size"`
	PatchSize      [2]int  `yaml:"patch_size"`
	Stride         [2]int  `yaml:"stride"`
	OcclusionValue float64 `yaml:"occlusion_value"`
}

// DefaultConfig is the CIFAR-10 geometry: 32x32 image, 8x8 patches, stride 2.
func DefaultConfig() Config {
	return Config{
		ImageSize: [2]int{32, 32},
		PatchSize: [2]int{8, 8},
		Stride:    [2]int{2, 2},
	}
}

// Grid builds the patch grid described by the config.
func (c Config) Grid() (*patch.Grid, error) {
	return patch.New(c.ImageSize[0], c.ImageSize[1],
		c.PatchSize[0], c.PatchSize[1],
		c.Stride[0], c.Stride[1])
}

// Validate reports a ConfigurationError for an unusable geometry.
func (c Config) Validate() error {
	_, err := c.Grid()
	return err
}

// LoadConfig reads a YAML config file. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return &cfg, nil
}

// WriteConfig writes cfg to a YAML file.
func WriteConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
