package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/fvm/pkg/errors"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for fvm
	EnvDataDir = "FVM_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for fvm
	EnvConfigDir = "FVM_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for fvm
	EnvStateDir = "FVM_STATE_DIR"

	// EnvVendorAppDataDir overrides the per-OS Steam user data directory
	EnvVendorAppDataDir = "FVM_VENDOR_APPDATA_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Directory and file names inside the fvm directories
const (
	// AppDirName is the directory name for fvm-specific files
	AppDirName = "fvm"

	// ConfigFileName is the user settings file inside ConfigDir
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "fvm.log"

	// InstallationsDirName holds one subdirectory per installed version
	InstallationsDirName = "factorio"

	SavesDirName     = "saves"
	ScenariosDirName = "scenarios"
	ModsDirName      = "mods"
)

// Paths provides centralized path management for fvm
type Paths interface {
	DataDir() string
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	LogFilePath() string

	// Defaults for the user-configurable roots.
	DefaultInstallationsDir() string
	DefaultSavesDir() string
	DefaultScenariosDir() string
	DefaultModsDir() string

	// VendorAppDataDir is where the Steam build reads saves, scenarios and
	// mods from. It is fixed by the platform, not by fvm settings.
	VendorAppDataDir() string
}

type paths struct {
	xdgData   string
	xdgConfig string
	xdgState  string
	vendor    string
}

// New creates a Paths instance from the environment.
func New() (Paths, error) {
	p := &paths{}
	if err := p.setupXDGDirs(); err != nil {
		return nil, err
	}

	if dir := os.Getenv(EnvVendorAppDataDir); dir != "" {
		p.vendor = ExpandHome(dir)
	} else {
		dir, err := vendorAppDataDir()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to locate Steam user data directory")
		}
		p.vendor = dir
	}

	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() error {
	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = ExpandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, AppDirName)
	}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.xdgState = ExpandHome(stateDir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}

	return nil
}

func (p *paths) DataDir() string   { return p.xdgData }
func (p *paths) ConfigDir() string { return p.xdgConfig }
func (p *paths) StateDir() string  { return p.xdgState }

// ConfigFilePath returns the user settings file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// LogFilePath returns the path to the fvm log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

func (p *paths) DefaultInstallationsDir() string {
	return filepath.Join(p.xdgData, InstallationsDirName)
}

func (p *paths) DefaultSavesDir() string {
	return filepath.Join(p.xdgData, SavesDirName)
}

func (p *paths) DefaultScenariosDir() string {
	return filepath.Join(p.xdgData, ScenariosDirName)
}

func (p *paths) DefaultModsDir() string {
	return filepath.Join(p.xdgData, ModsDirName)
}

func (p *paths) VendorAppDataDir() string {
	return p.vendor
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	// ~user is left alone
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// NormalizePath expands ~ and makes the path absolute and clean.
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve path %q", path)
	}
	return abs, nil
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}
