package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "may.csv"), []byte(sparkasseHeader), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "may.csv", files[0].Name)
}

func TestScan_MissingDir(t *testing.T) {
	files, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tx.csv")
	csv := sparkasseHeader + "03.05.25;EDEKA MARKT;-45,30\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	txns, err := ParseFile(path, &SparkasseParser{})
	require.NoError(t, err)
	require.Len(t, txns, 1)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.csv"), &SparkasseParser{})
	require.Error(t, err)
}
