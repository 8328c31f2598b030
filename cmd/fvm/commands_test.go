// TEST TYPE: Integration Test
package fvm

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/factorio"
	"github.com/arthur-debert/fvm/pkg/filesystem"
	"github.com/arthur-debert/fvm/pkg/testutil"
	"github.com/arthur-debert/fvm/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliEnv struct {
	root     string
	dataDir  string
	stateDir string
	config   string
	appData  string
}

func (e *cliEnv) installations() string { return filepath.Join(e.dataDir, "factorio") }

// setupCLI points every fvm directory into a temporary tree.
func setupCLI(t *testing.T) *cliEnv {
	t.Helper()
	root := t.TempDir()
	env := &cliEnv{
		root:     root,
		dataDir:  filepath.Join(root, "data"),
		stateDir: filepath.Join(root, "state"),
		config:   filepath.Join(root, "config"),
		appData:  filepath.Join(root, "appdata"),
	}
	t.Setenv("FVM_DATA_DIR", env.dataDir)
	t.Setenv("FVM_CONFIG_DIR", env.config)
	t.Setenv("FVM_STATE_DIR", env.stateDir)
	t.Setenv("FVM_VENDOR_APPDATA_DIR", env.appData)
	t.Setenv("NO_COLOR", "1")
	require.NoError(t, os.MkdirAll(env.installations(), 0755))
	return env
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func createInstallation(t *testing.T, dir, version string) {
	t.Helper()
	testutil.CreateInstallation(t, filesystem.NewOS(), dir, version, factorio.HostIs64Bit())
}

func listJSON(t *testing.T) display.InstallationList {
	t.Helper()
	out, err := run(t, "list", "--format", "json")
	require.NoError(t, err)
	var list display.InstallationList
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	return list
}

func TestList_Empty(t *testing.T) {
	setupCLI(t)

	list := listJSON(t)
	assert.Empty(t, list.Installations)

	out, err := run(t, "list", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "No installations found.")
}

func TestList_ShowsInstallationsAndLinks(t *testing.T) {
	env := setupCLI(t)
	createInstallation(t, filepath.Join(env.installations(), "1.1.110"), "1.1.110")
	createInstallation(t, filepath.Join(env.installations(), "0.17.79"), "0.17.79")

	list := listJSON(t)
	require.Len(t, list.Installations, 2)
	assert.Equal(t, "0.17.79", list.Installations[0].Version)
	assert.Equal(t, "1.1.110", list.Installations[1].Version)
	assert.Equal(t, "local", list.Installations[1].Kind)
	require.Len(t, list.Installations[1].Links, 3)
	for _, status := range list.Installations[1].Links {
		assert.Equal(t, "linked", string(status.State), string(status.Kind))
	}

	out, err := run(t, "list", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "VERSION")
	assert.Contains(t, out, "Factorio 1.1.110")
	assert.Contains(t, out, "ok")
}

func TestAdd_Directory(t *testing.T) {
	env := setupCLI(t)
	source := filepath.Join(env.root, "download", "factorio")
	createInstallation(t, source, "1.1.110")

	out, err := run(t, "add", source, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Factorio 1.1.110")

	assert.DirExists(t, filepath.Join(env.installations(), "1.1.110"))
	assert.NoDirExists(t, source)
}

func TestAdd_Archive(t *testing.T) {
	env := setupCLI(t)
	archive := filepath.Join(env.root, "factorio_alpha_1.1.110.zip")
	testutil.WriteZip(t, filesystem.NewOS(), archive,
		testutil.InstallationEntries("Factorio_1.1.110/", "1.1.110", factorio.HostIs64Bit()))

	_, err := run(t, "add", archive, "--format", "text")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(env.installations(), "1.1.110", factorio.InfoFileRelPath))
	assert.FileExists(t, archive)
}

func TestAdd_MissingPath(t *testing.T) {
	env := setupCLI(t)

	_, err := run(t, "add", filepath.Join(env.root, "nope"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestRename(t *testing.T) {
	env := setupCLI(t)
	createInstallation(t, filepath.Join(env.installations(), "1.1.11"), "1.1.110")

	out, err := run(t, "rename", "1.1.11", "1.1.110", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Renamed 1.1.11 to 1.1.110")

	assert.NoDirExists(t, filepath.Join(env.installations(), "1.1.11"))
	assert.DirExists(t, filepath.Join(env.installations(), "1.1.110"))
}

func TestRename_InvalidVersion(t *testing.T) {
	env := setupCLI(t)
	createInstallation(t, filepath.Join(env.installations(), "1.1.110"), "1.1.110")

	_, err := run(t, "rename", "1.1.110", "one")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRemove(t *testing.T) {
	env := setupCLI(t)
	dir := filepath.Join(env.installations(), "1.1.110")
	createInstallation(t, dir, "1.1.110")

	_, err := run(t, "remove", "1.1.110")
	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.NoFileExists(t, filepath.Join(dir, "saves"))

	out, err := run(t, "remove", "1.1.110", "--purge", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted")
	assert.NoDirExists(t, dir)
}

func TestRemove_Unknown(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "remove", "9.9.9")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestRelink(t *testing.T) {
	env := setupCLI(t)
	dir := filepath.Join(env.installations(), "1.1.110")
	createInstallation(t, dir, "1.1.110")
	listJSON(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "saves")))

	out, err := run(t, "relink", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Relinked 1 installation(s)")

	_, err = os.Readlink(filepath.Join(dir, "saves"))
	assert.NoError(t, err)
}

func TestRelocate(t *testing.T) {
	env := setupCLI(t)
	createInstallation(t, filepath.Join(env.installations(), "1.1.110"), "1.1.110")
	newRoot := filepath.Join(env.root, "games")

	_, err := run(t, "relocate", newRoot)
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(newRoot, "1.1.110"))

	out, err := run(t, "config", "get", "factorio.installations_dir", "--format", "json")
	require.NoError(t, err)
	var setting display.Setting
	require.NoError(t, json.Unmarshal([]byte(out), &setting))
	assert.Equal(t, newRoot, setting.Value)
}

func TestResolve(t *testing.T) {
	env := setupCLI(t)
	dir := filepath.Join(env.installations(), "1.1.110")
	createInstallation(t, dir, "1.1.110")
	createInstallation(t, filepath.Join(env.installations(), "1.0.0"), "1.0.0")

	out, err := run(t, "resolve", "latest", "--format", "json")
	require.NoError(t, err)
	var res display.Resolution
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "latest", res.Selector)
	assert.Equal(t, "1.1.110", res.Installation.Version)

	out, err = run(t, "resolve", "latest", "--expand", "__PATH__read-data__", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data")+"\n", out)
}

func TestResolve_NothingInstalled(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "resolve", "latest")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestProbe(t *testing.T) {
	env := setupCLI(t)
	dir := filepath.Join(env.root, "somewhere")
	createInstallation(t, dir, "0.17.79")

	out, err := run(t, "probe", dir, "--format", "json")
	require.NoError(t, err)
	var p display.Probe
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "0.17.79", p.Version)
	assert.Equal(t, display.Arch(factorio.HostIs64Bit()), p.Arch)
}

func TestSteam(t *testing.T) {
	env := setupCLI(t)
	steam := filepath.Join(env.root, "steam", "Factorio")
	createInstallation(t, steam, "1.1.110")

	out, err := run(t, "steam", "show", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "No Steam installation registered")

	out, err = run(t, "steam", "set", steam, "--format", "json")
	require.NoError(t, err)
	var view display.Installation
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "vendor", view.Kind)
	assert.Equal(t, env.appData, view.LinkDir)

	out, err = run(t, "resolve", "steam", "--format", "json")
	require.NoError(t, err)
	var res display.Resolution
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, steam, res.Installation.Directory)

	_, err = run(t, "steam", "clear")
	require.NoError(t, err)
	assert.DirExists(t, steam)

	out, err = run(t, "steam", "show", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "No Steam installation registered")
}

func TestSteam_SetInvalidPath(t *testing.T) {
	env := setupCLI(t)

	_, err := run(t, "steam", "set", env.root)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInstallation))
}

func TestConfig_SetAndGet(t *testing.T) {
	env := setupCLI(t)
	saves := filepath.Join(env.root, "saves")

	_, err := run(t, "config", "set", "storage.saves_dir", saves)
	require.NoError(t, err)

	out, err := run(t, "config", "get", "storage.saves_dir", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, saves)
	assert.FileExists(t, filepath.Join(env.config, "config.toml"))
}

func TestConfig_UnknownKey(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "config", "get", "storage.nope")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = run(t, "config", "set", "storage.nope", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestConfig_SetRelativePath(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "config", "set", "storage.saves_dir", "saves")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestConfig_Show(t *testing.T) {
	env := setupCLI(t)

	out, err := run(t, "config", "show", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "[factorio]")
	assert.Contains(t, out, "[storage]")

	out, err = run(t, "config", "show", "--format", "json")
	require.NoError(t, err)
	var snap struct {
		Factorio struct {
			InstallationsDir string `json:"installations_dir"`
		} `json:"factorio"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, env.installations(), snap.Factorio.InstallationsDir)
}

func TestConfig_Init(t *testing.T) {
	env := setupCLI(t)
	path := filepath.Join(env.config, "config.toml")

	_, err := run(t, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = run(t, "config", "init")
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	_, err = run(t, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	setupCLI(t)

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fvm version dev")
}

func TestUnknownFormat(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "list", "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestHelpTopics(t *testing.T) {
	setupCLI(t)

	out, err := run(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "links")
	assert.Contains(t, out, "--format")
}

func TestCompletion(t *testing.T) {
	setupCLI(t)

	out, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "fvm")
}
