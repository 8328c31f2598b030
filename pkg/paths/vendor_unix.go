//go:build !windows && !darwin

package paths

import "path/filepath"

func vendorAppDataDir() (string, error) {
	home, err := GetHomeDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".factorio"), nil
}
