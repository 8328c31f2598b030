package config

import (
	"github.com/arthur-debert/fvm/pkg/paths"
)

// Setting keys
const (
	KeyInstallationsDir = "factorio.installations_dir"
	KeySteamPath        = "factorio.steam_path"
	KeySavesDir         = "storage.saves_dir"
	KeyScenariosDir     = "storage.scenarios_dir"
	KeyModsDir          = "storage.mods_dir"
)

// Keys lists every recognised setting.
var Keys = []string{
	KeyInstallationsDir,
	KeySteamPath,
	KeySavesDir,
	KeyScenariosDir,
	KeyModsDir,
}

// IsKnownKey reports whether key is a recognised setting.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Defaults computes the directory defaults from the fvm data directory.
func Defaults(p paths.Paths) map[string]interface{} {
	return map[string]interface{}{
		KeyInstallationsDir: p.DefaultInstallationsDir(),
		KeySavesDir:         p.DefaultSavesDir(),
		KeyScenariosDir:     p.DefaultScenariosDir(),
		KeyModsDir:          p.DefaultModsDir(),
	}
}
