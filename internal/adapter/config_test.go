package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/watchman/internal/model"
)

func TestLoadConfig(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("missing file gives defaults", func(t *testing.T) {
		cfg, err := LoadConfig(m.Path(filepath.Join(t.TempDir(), ".watchman.yaml")))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("empty file gives defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".watchman.yaml")
		writeTestFile(t, path, "")

		cfg, err := LoadConfig(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("partial overlay", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".watchman.yaml")
		writeTestFile(t, path, "parallel: 4\nplot:\n  xmax: 20\n")

		cfg, err := LoadConfig(m.Path(path))
		require.NoError(t, err)

		assert.Equal(t, 4, cfg.Parallel)
		assert.Equal(t, DefaultReportsDir, cfg.Reports)
		assert.Equal(t, 20.0, cfg.Plot.XMax)
		assert.Equal(t, -10.0, cfg.Plot.XMin)
		assert.Equal(t, 61, cfg.Plot.Width)
	})

	tests := []struct {
		name     string
		contents string
		msg      string
	}{
		{"inverted window", "plot:\n  xmin: 5\n  xmax: 1\n", "XMax"},
		{"zero parallel", "parallel: 0\n", "Parallel"},
		{"tiny canvas", "plot:\n  width: 3\n", "Width"},
		{"unknown key", "threads: 3\n", "threads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".watchman.yaml")
			writeTestFile(t, path, tt.contents)

			_, err := LoadConfig(m.Path(path))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadConfig_Example(t *testing.T) {
	cfg, err := LoadConfig(m.Path(filepath.Join("..", "..", "examples", "watchman.yaml")))
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Parallel)
	assert.Equal(t, 29, cfg.Plot.Height)
}
