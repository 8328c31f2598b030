//go:build windows

package paths

import (
	"os"
	"path/filepath"
)

// %APPDATA%\Factorio
func vendorAppDataDir() (string, error) {
	roaming, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(roaming, "Factorio"), nil
}
