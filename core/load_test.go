package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draessld/EDSParser/core"
)

func writeTempEDS(t *testing.T, text string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.eds")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoadFile_full(t *testing.T) {
	path := writeTempEDS(t, "{ACGT}{A,ACA}{CGT}{T,TG}")
	e, err := core.LoadFile(path, core.Full)
	require.NoError(t, err)
	defer e.Close()
	assert.Equal(t, 4, e.Len())
	alts, err := e.ReadSymbol(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "ACA"}, alts)
}

func TestLoadFile_metadataOnlyMatchesFull(t *testing.T) {
	path := writeTempEDS(t, "{ACGT}{A,ACA}{CGT}{T,TG}")
	full, err := core.LoadFile(path, core.Full)
	require.NoError(t, err)
	defer full.Close()
	streamed, err := core.LoadFile(path, core.MetadataOnly)
	require.NoError(t, err)
	defer streamed.Close()

	assert.Equal(t, full.Len(), streamed.Len())
	assert.Equal(t, full.Cardinality(), streamed.Cardinality())
	assert.Equal(t, full.Size(), streamed.Size())
	assert.Equal(t, core.MetadataOnly, streamed.Mode())

	for i := 0; i < full.Len(); i++ {
		want, err := full.ReadSymbol(i)
		require.NoError(t, err)
		got, err := streamed.ReadSymbol(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestLoadFile_metadataOnlyNormalizesCompactForm(t *testing.T) {
	path := writeTempEDS(t, "ACGT{A,ACA}CGT{T,TG}")
	e, err := core.LoadFile(path, core.MetadataOnly)
	require.NoError(t, err)
	defer e.Close()
	assert.Equal(t, 4, e.Len())
	alts, err := e.ReadSymbol(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT"}, alts)
}

func TestLoadFile_metadataOnlyForbidsSave(t *testing.T) {
	path := writeTempEDS(t, "{ACGT}{A,ACA}")
	e, err := core.LoadFile(path, core.MetadataOnly)
	require.NoError(t, err)
	defer e.Close()
	err = e.Save(os.Stdout, core.CompactFormat)
	require.Error(t, err)
	var cerr *core.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, core.ModeForbidden, cerr.Kind)
}

func TestLoadFile_missingFile(t *testing.T) {
	_, err := core.LoadFile(filepath.Join(t.TempDir(), "missing.eds"), core.Full)
	require.Error(t, err)
}
