package factorio

import (
	"path/filepath"
	"runtime"
)

// Installation layout, relative to the installation directory.
const (
	DataDirName  = "data"
	BinDirName   = "bin"
	BinName32Bit = "Win32"
	BinName64Bit = "x64"
)

// InfoFileRelPath is the base mod's info file, which carries the game version.
var InfoFileRelPath = filepath.Join(DataDirName, "base", "info.json")

// InfoFileSuffix is InfoFileRelPath as it appears in ZIP entry names.
const InfoFileSuffix = "data/base/info.json"

// BinName returns the binary directory name for the given bitness.
func BinName(is64Bit bool) string {
	if is64Bit {
		return BinName64Bit
	}
	return BinName32Bit
}

// ExecutablePath returns <dir>/bin/<Win32|x64>/<executable>.
func ExecutablePath(dir string, is64Bit bool) string {
	return filepath.Join(dir, BinDirName, BinName(is64Bit), ExecutableName)
}

// HostIs64Bit reports whether the running system executes 64-bit binaries.
func HostIs64Bit() bool {
	switch runtime.GOARCH {
	case "amd64", "arm64", "ppc64", "ppc64le", "mips64", "mips64le", "riscv64", "s390x", "loong64":
		return true
	}
	return false
}
