package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 600.0, cfg.Width)
	assert.Equal(t, 600.0, cfg.Height)
	assert.Equal(t, 16.0, cfg.Thickness)
	assert.Equal(t, "#000000", cfg.Color)
	assert.Equal(t, "2", cfg.DataFormat)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 800\nthickness: 4\ndata_format: raw\ndebug: true\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800.0, cfg.Width)
	assert.Equal(t, 600.0, cfg.Height)
	assert.Equal(t, 4.0, cfg.Thickness)
	assert.Equal(t, "raw", cfg.DataFormat)
	assert.True(t, cfg.Debug)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"format":    "data_format: \"3\"\n",
		"thickness": "thickness: 5000\n",
		"width":     "width: 0\n",
		"color":     "color: \"\"\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sketch.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
			_, err := Load(path)
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [1,"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestClampThickness(t *testing.T) {
	assert.Equal(t, 1.0, ClampThickness(-5))
	assert.Equal(t, 1.0, ClampThickness(0))
	assert.Equal(t, 1.0, ClampThickness(0.5))
	assert.Equal(t, 16.0, ClampThickness(16))
	assert.Equal(t, 1000.0, ClampThickness(4000))
}
