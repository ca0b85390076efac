package template

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biosurv/merger/model"
	"github.com/biosurv/merger/schema"
)

func TestWriteHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	path, err := Write(dir, model.ModeMinION)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sample_template.csv"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, schema.Columns(model.ModeMinION), records[0])
}

func TestWriteBadDir(t *testing.T) {
	_, err := Write(filepath.Join(t.TempDir(), "no", "such", "dir"), model.ModeDDNS)
	assert.Error(t, err)
}
