package testutil

import (
	"archive/zip"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fvm/pkg/factorio"
	"github.com/arthur-debert/fvm/pkg/types"
	"github.com/stretchr/testify/require"
)

// ArchiveEntry is one file in a test archive. Names ending in "/" are directories.
type ArchiveEntry struct {
	Name string
	Body []byte
}

// InstallationEntries returns the entries of an installation archive whose
// files live under root (e.g. "Factorio_0.17.79/").
func InstallationEntries(root, version string, is64Bit bool) []ArchiveEntry {
	bin := root + factorio.BinDirName + "/" + factorio.BinName(is64Bit) + "/"
	var entries []ArchiveEntry
	if root != "" {
		entries = append(entries, ArchiveEntry{Name: root})
	}
	return append(entries, []ArchiveEntry{
		{Name: root + "data/"},
		{Name: root + "data/base/"},
		{Name: root + factorio.InfoFileSuffix, Body: InfoJSON(version)},
		{Name: root + "data/core/lualib/util.lua", Body: []byte("return {}")},
		{Name: root + "bin/"},
		{Name: bin},
		{Name: bin + factorio.ExecutableName, Body: []byte("binary")},
	}...)
}

// WriteZip writes entries, in order, to a ZIP file at path.
func WriteZip(t testing.TB, fs types.FS, path string, entries []ArchiveEntry) {
	t.Helper()

	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	f, err := fs.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	for _, entry := range entries {
		w, err := zw.Create(entry.Name)
		require.NoError(t, err)
		if len(entry.Body) > 0 {
			_, err = w.Write(entry.Body)
			require.NoError(t, err)
		}
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}
