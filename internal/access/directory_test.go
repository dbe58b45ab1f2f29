package access_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/standardbeagle/elmparse/internal/access"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "imsmanifest.xml"), []byte("<manifest/>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "index.html"), []byte("<html/>"), 0o644))
	return dir
}

func TestDirectoryAccessExistsAndRead(t *testing.T) {
	dir := writeTree(t)
	acc := access.NewDirectoryAccess(dir)

	ok, err := acc.Exists("imsmanifest.xml")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = acc.Exists("missing.xml")
	require.NoError(t, err)
	assert.False(t, ok)

	rc, err := acc.Read("assets/index.html")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "<html/>", string(data))
}

// ExistsBatch must preserve input order and cover every input path.
func TestDirectoryAccessExistsBatchPreservesOrder(t *testing.T) {
	dir := writeTree(t)
	acc := access.NewDirectoryAccess(dir)

	paths := []string{"missing.xml", "imsmanifest.xml", "assets/index.html"}
	results, err := acc.ExistsBatch(paths)
	require.NoError(t, err)
	require.Len(t, results, len(paths))
	assert.False(t, results[0])
	assert.True(t, results[1])
	assert.True(t, results[2])
}

func TestDirectoryAccessListGlob(t *testing.T) {
	dir := writeTree(t)
	acc := access.NewDirectoryAccess(dir)

	matches, err := acc.ListGlob("**/*.html")
	require.NoError(t, err)
	assert.Contains(t, matches, "assets/index.html")
}

func TestDirectoryAccessTotalSize(t *testing.T) {
	dir := writeTree(t)
	acc := access.NewDirectoryAccess(dir)

	size, err := acc.TotalSize()
	require.NoError(t, err)
	assert.Greater(t, size, int64(0))
}

func TestDirectoryAccessHasXAPISupport(t *testing.T) {
	dir := writeTree(t)
	acc := access.NewDirectoryAccess(dir)

	has, err := acc.HasXAPISupport()
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "xAPI.js"), []byte(""), 0o644))
	has, err = acc.HasXAPISupport()
	require.NoError(t, err)
	assert.True(t, has)
}
