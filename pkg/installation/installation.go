package installation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/arthur-debert/fvm/pkg/factorio"
)

// Kind tags the Installation variants.
type Kind string

const (
	KindLocal  Kind = "local"
	KindVendor Kind = "vendor"
	KindMarker Kind = "marker"
)

// Marker keys. VendorKey is also the version string of the vendor installation.
const (
	LatestKey = "latest"
	VendorKey = "steam"
)

// Path variables understood by ExpandPathVariables, as used in Factorio's
// config-path.cfg and config.ini.
const (
	VarExecutable = "__PATH__executable__"
	VarReadData   = "__PATH__read-data__"
	VarWriteData  = "__PATH__write-data__"
)

// Installation is one installed copy of the game, or a marker.
type Installation struct {
	kind      Kind
	markerKey string

	version    *semver.Version
	dir        string
	linkDir    string
	is64Bit    bool
	executable string
}

func newLocal(dir string, v *semver.Version, is64Bit bool) *Installation {
	inst := &Installation{kind: KindLocal, version: v, is64Bit: is64Bit}
	inst.setDirectory(dir)
	inst.linkDir = dir
	return inst
}

func newVendor(dir, appDataDir string, v *semver.Version, is64Bit bool) *Installation {
	inst := &Installation{kind: KindVendor, version: v, is64Bit: is64Bit}
	inst.setDirectory(dir)
	inst.linkDir = appDataDir
	return inst
}

// setDirectory is the only place dir changes, so the executable path
// always follows it.
func (i *Installation) setDirectory(dir string) {
	i.dir = dir
	i.executable = factorio.ExecutablePath(dir, i.is64Bit)
}

func (i *Installation) Kind() Kind { return i.kind }

// IsSpecial reports whether i is a marker rather than a real installation.
func (i *Installation) IsSpecial() bool { return i.kind == KindMarker }

// IsFileSystemEditable reports whether fvm may move, rename or delete the
// installation's directory.
func (i *Installation) IsFileSystemEditable() bool { return i.kind == KindLocal }

// Version is nil for markers.
func (i *Installation) Version() *semver.Version { return i.version }

func (i *Installation) Directory() string { return i.dir }

// LinkDirectory is where the saves, scenarios and mods links live: the
// installation directory itself, or the Steam app-data directory.
func (i *Installation) LinkDirectory() string { return i.linkDir }

func (i *Installation) ExecutablePath() string { return i.executable }

func (i *Installation) Is64Bit() bool { return i.is64Bit }

// VersionString is the key used to select the installation.
func (i *Installation) VersionString() string {
	switch i.kind {
	case KindMarker:
		return i.markerKey
	case KindVendor:
		return VendorKey
	}
	return factorio.FormatVersion(i.version)
}

// DisplayName is the human-readable name.
func (i *Installation) DisplayName() string {
	switch i.kind {
	case KindMarker:
		if i.markerKey == LatestKey {
			return "Latest"
		}
		return "Steam"
	case KindVendor:
		return fmt.Sprintf("Steam (%s)", factorio.FormatVersion(i.version))
	}
	return "Factorio " + factorio.FormatVersion(i.version)
}

func (i *Installation) String() string {
	return i.DisplayName()
}

// ExpandPathVariables substitutes the __PATH__ variables with this
// installation's directories. Markers return s unchanged.
func (i *Installation) ExpandPathVariables(s string) string {
	if i.IsSpecial() {
		return s
	}
	trim := func(p string) string {
		return strings.TrimRight(p, string(filepath.Separator))
	}
	r := strings.NewReplacer(
		VarExecutable, trim(filepath.Dir(i.executable)),
		VarReadData, trim(filepath.Join(i.dir, factorio.DataDirName)),
		VarWriteData, trim(i.dir),
	)
	return r.Replace(s)
}
