package installation

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/Masterminds/semver/v3"
	"github.com/arthur-debert/fvm/pkg/config"
	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/factorio"
	"github.com/arthur-debert/fvm/pkg/links"
	"github.com/arthur-debert/fvm/pkg/logging"
	"github.com/arthur-debert/fvm/pkg/probe"
	"github.com/arthur-debert/fvm/pkg/shared"
	"github.com/arthur-debert/fvm/pkg/types"
	"github.com/rs/zerolog"
)

// LinkManager is the part of links.Manager the registry uses.
type LinkManager interface {
	CreateAllLinks(inst links.Linkable) error
	DeleteAllLinks(inst links.Linkable) error
	Status(inst links.Linkable) ([]links.Status, error)
}

// Registry owns the collection of known installations.
type Registry struct {
	fs            types.FS
	settings      config.Settings
	prober        probe.Prober
	links         LinkManager
	vendorAppData string
	is64Bit       bool
	logger        zerolog.Logger

	installations []*Installation
	vendor        *Installation

	listeners    map[int]Listener
	nextListener int
}

// Option customises a Registry.
type Option func(*Registry)

// WithProber replaces the default filesystem prober.
func WithProber(p probe.Prober) Option {
	return func(r *Registry) { r.prober = p }
}

// WithLinkManager replaces the default symlink-based link manager.
func WithLinkManager(m LinkManager) Option {
	return func(r *Registry) { r.links = m }
}

// WithHost64Bit overrides the detected host architecture.
func WithHost64Bit(is64Bit bool) Option {
	return func(r *Registry) { r.is64Bit = is64Bit }
}

// NewRegistry creates an empty registry. vendorAppDataDir is where the Steam
// installation's links are kept.
func NewRegistry(fs types.FS, settings config.Settings, vendorAppDataDir string, opts ...Option) *Registry {
	r := &Registry{
		fs:            fs,
		settings:      settings,
		vendorAppData: vendorAppDataDir,
		is64Bit:       factorio.HostIs64Bit(),
		logger:        logging.GetLogger("installation"),
		listeners:     make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.prober == nil {
		r.prober = probe.New(fs)
	}
	if r.links == nil {
		r.links = links.NewManager(fs, links.NewSymlinkRedirector(fs), shared.NewResolver(settings))
	}
	return r
}

// InstallationsRoot returns the configured installations directory.
func (r *Registry) InstallationsRoot() (string, error) {
	root := r.settings.GetString(config.KeyInstallationsDir)
	if root == "" {
		return "", errors.Newf(errors.ErrNotConfigured, "%s is not set", config.KeyInstallationsDir).
			WithDetail("key", config.KeyInstallationsDir)
	}
	return root, nil
}

// Discover lists the installations directly under root. Only directories
// named major.minor.patch are taken, and the name is trusted as the version
// without probing. Links are created for each one; link failures are joined
// into the returned error but the installation is still returned.
func (r *Registry) Discover(root string) ([]*Installation, error) {
	entries, err := r.fs.ReadDir(root)
	if os.IsNotExist(err) {
		r.logger.Debug().Str("root", root).Msg("Installations root does not exist")
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", root)
	}

	var (
		found   []*Installation
		linkErr []error
	)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		v, err := factorio.ParseVersion(entry.Name())
		if err != nil {
			r.logger.Trace().Str("name", entry.Name()).Msg("Skipping directory not named after a version")
			continue
		}

		inst := newLocal(filepath.Join(root, entry.Name()), v, r.is64Bit)
		if err := r.links.CreateAllLinks(inst); err != nil {
			r.logger.Warn().Err(err).Str("dir", inst.Directory()).Msg("Failed to link installation")
			linkErr = append(linkErr, fmt.Errorf("%s: %w", inst.Directory(), err))
		}
		found = append(found, inst)
	}

	sortByVersion(found)
	r.logger.Debug().Str("root", root).Int("count", len(found)).Msg("Discovered installations")
	return found, stderrors.Join(linkErr...)
}

// Load replaces the collection with what is on disk. err is set when the
// installations root cannot be used at all. warnings carries link failures
// and vendor problems other than "not configured"; the collection is still
// populated when they occur.
func (r *Registry) Load() (warnings []error, err error) {
	defer logging.LogOperationStart(r.logger, "load")()

	root, err := r.InstallationsRoot()
	if err != nil {
		return nil, err
	}

	found, discoverErr := r.Discover(root)
	if discoverErr != nil && found == nil {
		return nil, discoverErr
	}
	if discoverErr != nil {
		warnings = append(warnings, discoverErr)
	}
	r.installations = found
	r.vendor = nil

	if _, err := r.LoadVendorManaged(); err != nil && !errors.IsErrorCode(err, errors.ErrNotConfigured) {
		r.logger.Warn().Err(err).Msg("Steam installation not loaded")
		warnings = append(warnings, err)
	}
	return warnings, nil
}

// RenameInstallation moves a local installation to <root>/<newVersion> and
// relabels it. Links are removed before the move and recreated after it.
func (r *Registry) RenameInstallation(inst *Installation, newVersion *semver.Version) error {
	if !inst.IsFileSystemEditable() {
		return errors.Newf(errors.ErrNotEditable, "%s cannot be renamed", inst.DisplayName())
	}
	root, err := r.InstallationsRoot()
	if err != nil {
		return err
	}

	newDir := filepath.Join(root, factorio.FormatVersion(newVersion))
	if newDir == inst.Directory() {
		return nil
	}
	if _, err := r.fs.Lstat(newDir); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists", newDir)
	}

	previous := inst.VersionString()
	logger := r.logger.With().Str("from", previous).Str("to", factorio.FormatVersion(newVersion)).Logger()
	logger.Debug().Msg("Renaming installation")

	if err := r.links.DeleteAllLinks(inst); err != nil {
		return err
	}
	if err := r.move(inst, newDir); err != nil {
		return err
	}
	inst.setDirectory(newDir)
	inst.linkDir = newDir
	inst.version = newVersion

	if err := r.links.CreateAllLinks(inst); err != nil {
		return err
	}

	sortByVersion(r.installations)
	logger.Info().Str("dir", newDir).Msg("Renamed installation")
	r.emit(EventRenamed, inst, previous)
	return nil
}

// move renames the installation directory. On failure the links are put
// back at the old location.
func (r *Registry) move(inst *Installation, newDir string) error {
	if err := r.fs.Rename(inst.Directory(), newDir); err != nil {
		if relinkErr := r.links.CreateAllLinks(inst); relinkErr != nil {
			r.logger.Error().Err(relinkErr).Str("dir", inst.Directory()).Msg("Failed to restore links after failed move")
		}
		return errors.Wrapf(err, errors.ErrFileMove, "cannot move %s to %s", inst.Directory(), newDir)
	}
	return nil
}

// UpdateDirectory records that an installation now lives elsewhere and
// relinks it. Local installations take newDir as both their directory and
// link directory. The vendor installation keeps its directory; its link
// directory is recomputed from the Steam app-data location. Markers are
// ignored. Nothing is moved on disk.
func (r *Registry) UpdateDirectory(inst *Installation, newDir string) error {
	if inst.IsSpecial() {
		return nil
	}

	previous := inst.Directory()
	if err := r.links.DeleteAllLinks(inst); err != nil {
		return err
	}

	switch inst.Kind() {
	case KindLocal:
		inst.setDirectory(newDir)
		inst.linkDir = newDir
	case KindVendor:
		inst.linkDir = r.vendorAppData
	}

	if err := r.links.CreateAllLinks(inst); err != nil {
		return err
	}
	r.emit(EventDirectoryChanged, inst, previous)
	return nil
}

// MoveRoot moves every local installation into newRoot and makes it the
// configured installations directory. All destinations are checked before
// anything is moved.
func (r *Registry) MoveRoot(newRoot string) error {
	defer logging.LogOperationStart(r.logger, "move-root")()

	if err := r.fs.MkdirAll(newRoot, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", newRoot)
	}

	local := r.Local()
	for _, inst := range local {
		target := filepath.Join(newRoot, filepath.Base(inst.Directory()))
		if target == inst.Directory() {
			continue
		}
		if _, err := r.fs.Lstat(target); err == nil {
			return errors.Newf(errors.ErrAlreadyExists, "%s already exists", target)
		}
	}

	for _, inst := range local {
		target := filepath.Join(newRoot, filepath.Base(inst.Directory()))
		if target == inst.Directory() {
			continue
		}
		if err := r.links.DeleteAllLinks(inst); err != nil {
			return err
		}
		if err := r.move(inst, target); err != nil {
			return err
		}
		if err := r.UpdateDirectory(inst, target); err != nil {
			return err
		}
	}

	if err := r.settings.Set(config.KeyInstallationsDir, newRoot); err != nil {
		return err
	}
	r.logger.Info().Str("root", newRoot).Int("moved", len(local)).Msg("Moved installations root")
	return nil
}

// Relink recreates the links of every installation, continuing past
// failures. Run it after shared directory settings change or to repair a
// partially applied operation.
func (r *Registry) Relink() error {
	var errs []error
	for _, inst := range r.All() {
		if err := r.links.CreateAllLinks(inst); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", inst.DisplayName(), err))
			continue
		}
		r.emit(EventRelinked, inst, "")
	}
	return stderrors.Join(errs...)
}

// LinkStatus reports the links of inst as found on disk.
func (r *Registry) LinkStatus(inst *Installation) ([]links.Status, error) {
	return r.links.Status(inst)
}

// Remove drops an installation from the registry after removing its links.
// With purge, a local installation's directory is deleted too. Removing the
// vendor installation clears the Steam path setting.
func (r *Registry) Remove(inst *Installation, purge bool) error {
	if inst.IsSpecial() {
		return errors.Newf(errors.ErrNotEditable, "%s is not an installation", inst.DisplayName())
	}

	if err := r.links.DeleteAllLinks(inst); err != nil {
		return err
	}

	switch inst.Kind() {
	case KindVendor:
		if err := r.settings.Set(config.KeySteamPath, ""); err != nil {
			return err
		}
		if r.vendor == inst {
			r.vendor = nil
		}
	case KindLocal:
		if purge {
			if err := r.fs.RemoveAll(inst.Directory()); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot delete %s", inst.Directory())
			}
		}
		r.installations = slices.DeleteFunc(r.installations, func(i *Installation) bool { return i == inst })
	}

	r.logger.Info().Str("installation", inst.DisplayName()).Bool("purge", purge).Msg("Removed installation")
	r.emit(EventRemoved, inst, "")
	return nil
}

func (r *Registry) add(inst *Installation) {
	r.installations = append(r.installations, inst)
	sortByVersion(r.installations)
	r.emit(EventAdded, inst, "")
}

func (r *Registry) checkPlatform(path string, is64Bit bool) error {
	if is64Bit == r.is64Bit {
		return nil
	}
	return errors.Newf(errors.ErrPlatformMismatch, "%s is a %s build but this system runs %s binaries",
		path, bitnessName(is64Bit), bitnessName(r.is64Bit)).
		WithDetail("path", path).
		WithDetail("is64bit", is64Bit)
}

func bitnessName(is64Bit bool) string {
	if is64Bit {
		return "64-bit"
	}
	return "32-bit"
}

func sortByVersion(list []*Installation) {
	slices.SortStableFunc(list, func(a, b *Installation) int {
		return a.Version().Compare(b.Version())
	})
}
