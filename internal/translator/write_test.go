package translator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempPattern(t *testing.T) {
	tests := []struct {
		outFile string
		want    string
	}{
		{outFile: "/data/aws-costs.json", want: ".aws-costs.json-*.tmp"},
		{outFile: "costs-2013.json", want: ".costs-2013.json-*.tmp"},
		{outFile: filepath.Join("nested", "dir", "out.json"), want: ".out.json-*.tmp"},
	}

	for _, tt := range tests {
		t.Run(tt.outFile, func(t *testing.T) {
			assert.Equal(t, tt.want, tempPattern(tt.outFile))
		})
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "costs.json")

	require.NoError(t, writeFileAtomic([]byte(`{"a":1}`), out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "costs.json", entries[0].Name())
}

func TestWriteFileAtomic_RenameFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory in the output's place makes the rename fail.
	out := filepath.Join(dir, "costs.json")
	require.NoError(t, os.MkdirAll(filepath.Join(out, "keep"), 0o755))

	err := writeFileAtomic([]byte("{}"), out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replacing")

	matches, err := filepath.Glob(filepath.Join(dir, tempPattern(out)))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "costs.json")

	err := writeFileAtomic([]byte("{}"), out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staging")
}
