package installation_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fvm/pkg/factorio"
	"github.com/arthur-debert/fvm/pkg/installation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkers_AreSingletons(t *testing.T) {
	assert.Same(t, installation.Latest(), installation.Latest())
	assert.Same(t, installation.Vendor(), installation.Vendor())
	assert.NotSame(t, installation.Latest(), installation.Vendor())

	for _, m := range installation.Markers() {
		assert.True(t, m.IsSpecial())
		assert.False(t, m.IsFileSystemEditable())
		assert.Equal(t, installation.KindMarker, m.Kind())
		assert.Nil(t, m.Version())
		assert.Empty(t, m.Directory())
	}

	assert.Equal(t, "latest", installation.Latest().VersionString())
	assert.Equal(t, "steam", installation.Vendor().VersionString())
	assert.Equal(t, "Latest", installation.Latest().DisplayName())
	assert.Equal(t, "Steam", installation.Vendor().DisplayName())
}

func TestMarkers_ExpandPathVariablesIsIdentity(t *testing.T) {
	in := "read-data=__PATH__read-data__"
	assert.Equal(t, in, installation.Latest().ExpandPathVariables(in))
}

func TestLocalInstallation_Accessors(t *testing.T) {
	env, reg := newRegistry(t)
	dir := filepath.Join(env.InstallationsDir, "0.17.79")
	createLocal(t, env, "0.17.79")

	found, err := reg.Discover(env.InstallationsDir)
	require.NoError(t, err)
	require.Len(t, found, 1)
	inst := found[0]

	assert.Equal(t, installation.KindLocal, inst.Kind())
	assert.False(t, inst.IsSpecial())
	assert.True(t, inst.IsFileSystemEditable())
	assert.Equal(t, "0.17.79", inst.VersionString())
	assert.Equal(t, "Factorio 0.17.79", inst.DisplayName())
	assert.Equal(t, "Factorio 0.17.79", inst.String())
	assert.Equal(t, dir, inst.Directory())
	assert.Equal(t, dir, inst.LinkDirectory())
	assert.True(t, inst.Is64Bit())
	assert.Equal(t, filepath.Join(dir, "bin", "x64", factorio.ExecutableName), inst.ExecutablePath())
}

func TestLocalInstallation_ExpandPathVariables(t *testing.T) {
	env, reg := newRegistry(t)
	createLocal(t, env, "1.1.110")
	found, err := reg.Discover(env.InstallationsDir)
	require.NoError(t, err)
	dir := found[0].Directory()

	got := found[0].ExpandPathVariables("read-data=__PATH__read-data__\nwrite-data=__PATH__write-data__\nexe=__PATH__executable__")

	assert.Equal(t,
		"read-data="+filepath.Join(dir, "data")+
			"\nwrite-data="+dir+
			"\nexe="+filepath.Join(dir, "bin", "x64"),
		got)
}
