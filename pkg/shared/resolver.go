// Package shared computes where the directories shared between
// installations live. Saves and scenarios are global; mods are split by
// major.minor because mods built for one minor release rarely load in another.
package shared

import (
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/arthur-debert/fvm/pkg/config"
	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/factorio"
	"github.com/arthur-debert/fvm/pkg/types"
)

// Resolver reads the settings on every call, so changed roots take effect
// without rebuilding anything.
type Resolver struct {
	settings config.Settings
}

// NewResolver creates a Resolver.
func NewResolver(settings config.Settings) *Resolver {
	return &Resolver{settings: settings}
}

// SavesDir returns the global saves directory.
func (r *Resolver) SavesDir() (string, error) {
	return r.root(config.KeySavesDir)
}

// ScenariosDir returns the global scenarios directory.
func (r *Resolver) ScenariosDir() (string, error) {
	return r.root(config.KeyScenariosDir)
}

// ModsDir returns <modsRoot>/<major>.<minor>. The patch number is ignored.
func (r *Resolver) ModsDir(v *semver.Version) (string, error) {
	root, err := r.root(config.KeyModsDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, factorio.MinorKey(v)), nil
}

// Target returns the shared directory a link of the given kind points at.
func (r *Resolver) Target(kind types.LinkKind, v *semver.Version) (string, error) {
	switch kind {
	case types.LinkSaves:
		return r.SavesDir()
	case types.LinkScenarios:
		return r.ScenariosDir()
	case types.LinkMods:
		if v == nil {
			return "", errors.New(errors.ErrInvalidInput, "mods directory requires a version")
		}
		return r.ModsDir(v)
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown link kind %q", kind)
}

func (r *Resolver) root(key string) (string, error) {
	dir := r.settings.GetString(key)
	if dir == "" {
		return "", errors.Newf(errors.ErrNotConfigured, "%s is not set", key).WithDetail("key", key)
	}
	if !filepath.IsAbs(dir) {
		return "", errors.Newf(errors.ErrInvalidInput, "%s must be an absolute path, got %q", key, dir).
			WithDetail("key", key)
	}
	return dir, nil
}
