package surfstats

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeExport(t, root, "b.csv", validExport)
	writeExport(t, root, "a.CSV", validExport)
	writeExport(t, root, "notes.txt", "x")
	writeExport(t, root, filepath.Join("sub", "c.csv"), validExport)

	files, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.CSV"),
		filepath.Join(root, "b.csv"),
		filepath.Join(root, "sub", "c.csv"),
	}, files)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestDiscoverThenBatchWritesBesideSources(t *testing.T) {
	root := t.TempDir()
	writeExport(t, root, filepath.Join("x", "run.csv"), validExport)
	writeExport(t, root, filepath.Join("y", "run.csv"), validExport)

	files, err := Discover(root)
	require.NoError(t, err)

	var logs bytes.Buffer
	results, err := ProcessBatch(files, testOptions(&logs))
	require.NoError(t, err)
	for _, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, filepath.Dir(r.Source), filepath.Dir(r.Result.ReportPath))
	}
}
