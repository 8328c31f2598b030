package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fvm/pkg/factorio"
	"github.com/arthur-debert/fvm/pkg/types"
	"github.com/stretchr/testify/require"
)

// InfoJSON returns a base mod info file declaring version.
func InfoJSON(version string) []byte {
	return []byte(fmt.Sprintf(`{
  "name": "base",
  "version": "%s",
  "title": "Base Mod",
  "author": "Factorio team"
}`, version))
}

// CreateInstallation writes the files a probe looks at: the base info file
// and bin/<arch>/<executable>.
func CreateInstallation(t testing.TB, fs types.FS, dir, version string, is64Bit bool) {
	t.Helper()

	infoPath := filepath.Join(dir, factorio.InfoFileRelPath)
	require.NoError(t, fs.MkdirAll(filepath.Dir(infoPath), 0755))
	require.NoError(t, fs.WriteFile(infoPath, InfoJSON(version), 0644))

	exe := factorio.ExecutablePath(dir, is64Bit)
	require.NoError(t, fs.MkdirAll(filepath.Dir(exe), 0755))
	require.NoError(t, fs.WriteFile(exe, []byte("binary"), 0755))
}
