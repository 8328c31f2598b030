package factorio

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/arthur-debert/fvm/pkg/errors"
)

var (
	// versionPattern finds a version anywhere in a blob of text.
	versionPattern = regexp.MustCompile(`[0-9]+\.[0-9]+\.[0-9]+`)

	// dirNamePattern accepts only directory names that are exactly a version.
	dirNamePattern = regexp.MustCompile(`^([0-9]+)\.([0-9]+)\.([0-9]+)$`)
)

// ParseVersion parses a strict major.minor.patch string. Leading zeros are
// accepted and dropped, so "0.017.79" is 0.17.79.
func ParseVersion(s string) (*semver.Version, error) {
	m := dirNamePattern.FindStringSubmatch(s)
	if m == nil {
		return nil, errors.Newf(errors.ErrInvalidInput, "%q is not a major.minor.patch version", s)
	}

	var parts [3]uint64
	for i := range parts {
		n, err := strconv.ParseUint(m[i+1], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "version component %q out of range", m[i+1])
		}
		parts[i] = n
	}
	return semver.New(parts[0], parts[1], parts[2], "", ""), nil
}

// IsVersionName reports whether name is usable as an installation directory name.
func IsVersionName(name string) bool {
	_, err := ParseVersion(name)
	return err == nil
}

// ExtractVersion returns the first version found in content. Later
// occurrences are ignored even if they look more plausible: an info file
// whose dependency list precedes the "version" field yields the dependency's
// version.
func ExtractVersion(content []byte) (*semver.Version, bool) {
	match := versionPattern.Find(content)
	if match == nil {
		return nil, false
	}
	v, err := ParseVersion(string(match))
	if err != nil {
		return nil, false
	}
	return v, true
}

// FormatVersion renders v as major.minor.patch, dropping any prerelease or metadata.
func FormatVersion(v *semver.Version) string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// MinorKey renders v as major.minor, the granularity at which mods are shared.
func MinorKey(v *semver.Version) string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}
