package dsv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

func TestWriteFileParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	table := dsv.NewTable().
		AddRow([]string{"Alice", "30"}).
		AddRow([]string{"Bob", "25"})

	text, err := dsv.WriteFile(path, table, dsv.DefaultStringifyOptions())
	require.NoError(t, err)
	assert.Equal(t, "Alice,30\nBob,25", text)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, text, string(onDisk))

	back, err := dsv.ParseFile(path, dsv.DefaultParseOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, back.RowCount())

	row, ok := back.Row(1)
	require.True(t, ok)
	name, _ := row.Get(0)
	assert.Equal(t, "Bob", name)
}

func TestParseFileMissing(t *testing.T) {
	_, err := dsv.ParseFile(filepath.Join(t.TempDir(), "missing.csv"), dsv.DefaultParseOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFileUsesPathAsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,\"unterminated"), 0o644))

	_, err := dsv.ParseFile(path, dsv.DefaultParseOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, dsv.ErrUnterminatedQuote)
	assert.Contains(t, err.Error(), path)
}

func TestWriteFileError(t *testing.T) {
	dir := t.TempDir()
	// Writing to a path that is a directory fails.
	_, err := dsv.WriteFile(dir, dsv.NewTable().AddRow([]string{"a"}), dsv.DefaultStringifyOptions())
	assert.Error(t, err)
}
