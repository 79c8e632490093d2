package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/watchman/internal/model"
)

// DefaultReportsDir is where reports go when neither flag nor config names a directory.
const DefaultReportsDir = ".watchman-reports"

// Config holds the settings read from a .watchman.yaml file.
type Config struct {
	Reports  string     `yaml:"reports" validate:"required"`
	Parallel int        `yaml:"parallel" validate:"min=1,max=256"`
	Plot     PlotConfig `yaml:"plot"`
}

// PlotConfig is the visible window and canvas size of the ASCII plot.
type PlotConfig struct {
	XMin   float64 `yaml:"xmin"`
	XMax   float64 `yaml:"xmax" validate:"gtfield=XMin"`
	YMin   float64 `yaml:"ymin"`
	YMax   float64 `yaml:"ymax" validate:"gtfield=YMin"`
	Width  int     `yaml:"width" validate:"min=10,max=400"`
	Height int     `yaml:"height" validate:"min=5,max=200"`
}

// DefaultConfig returns the built-in settings: a [-10,10]² window on a 61x31 canvas.
func DefaultConfig() Config {
	return Config{
		Reports:  DefaultReportsDir,
		Parallel: 1,
		Plot: PlotConfig{
			XMin: -10, XMax: 10,
			YMin: -10, YMax: 10,
			Width: 61, Height: 31,
		},
	}
}

// LoadConfig overlays the YAML file at path onto DefaultConfig. An empty path
// or a missing file yields the defaults.
func LoadConfig(path m.Path) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(string(path))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %s", path, formatValidationError(err))
	}

	return cfg, nil
}
