package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fvm/pkg/config"
	"github.com/arthur-debert/fvm/pkg/filesystem"
	"github.com/arthur-debert/fvm/pkg/types"
	"github.com/stretchr/testify/require"
)

// Environment is an isolated workspace on the real filesystem with settings
// pointing into it.
type Environment struct {
	Root             string
	InstallationsDir string
	SavesDir         string
	ScenariosDir     string
	ModsDir          string
	VendorAppDataDir string

	FS       types.FS
	Settings *config.Store
}

// NewEnvironment creates the workspace under t.TempDir(). Only the
// installations directory is created; shared directories are left for the
// code under test to create.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root := t.TempDir()
	env := &Environment{
		Root:             root,
		InstallationsDir: filepath.Join(root, "factorio"),
		SavesDir:         filepath.Join(root, "shared", "saves"),
		ScenariosDir:     filepath.Join(root, "shared", "scenarios"),
		ModsDir:          filepath.Join(root, "shared", "mods"),
		VendorAppDataDir: filepath.Join(root, "appdata", "Factorio"),
		FS:               filesystem.NewOS(),
	}
	require.NoError(t, env.FS.MkdirAll(env.InstallationsDir, 0755))

	store, err := config.NewStore(env.FS, filepath.Join(root, "config", "config.toml"), map[string]interface{}{
		config.KeyInstallationsDir: env.InstallationsDir,
		config.KeySavesDir:         env.SavesDir,
		config.KeyScenariosDir:     env.ScenariosDir,
		config.KeyModsDir:          env.ModsDir,
	})
	require.NoError(t, err)
	env.Settings = store

	return env
}

// Path joins elements onto the workspace root.
func (e *Environment) Path(elem ...string) string {
	return filepath.Join(append([]string{e.Root}, elem...)...)
}
