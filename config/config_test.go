package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merger.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"lab: CDC-Lab\npipeline_version: 1.2.0\ndestination: /data/runs\n"), 0o644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "CDC-Lab", c.Lab)
	assert.Equal(t, "1.2.0", c.PipelineVersion)
	assert.Equal(t, "/data/runs", c.Destination)
	assert.Equal(t, "", c.LogFile)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, c)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merger.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lab: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
