package links

import (
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/logging"
	"github.com/arthur-debert/fvm/pkg/types"
	"github.com/rs/zerolog"
)

// TargetResolver maps a link kind to the shared directory it points at.
type TargetResolver interface {
	Target(kind types.LinkKind, v *semver.Version) (string, error)
}

// Linkable is what the manager needs to know about an installation.
type Linkable interface {
	IsSpecial() bool
	LinkDirectory() string
	Version() *semver.Version
}

// Manager creates and removes the links of installations.
type Manager struct {
	fs         types.FS
	redirector Redirector
	resolver   TargetResolver
	logger     zerolog.Logger
}

// NewManager creates a Manager.
func NewManager(fs types.FS, redirector Redirector, resolver TargetResolver) *Manager {
	return &Manager{
		fs:         fs,
		redirector: redirector,
		resolver:   resolver,
		logger:     logging.GetLogger("links"),
	}
}

// LinkPath returns where a link of kind lives inside linkRoot.
func LinkPath(kind types.LinkKind, linkRoot string) string {
	return filepath.Join(linkRoot, kind.String())
}

// CreateLink makes <linkRoot>/<kind> point at its shared directory.
//
// The shared directory is created first; if that fails the existing link is
// left alone. An existing link is repointed. Anything else at the link path
// is deleted, recursively, before the link is created.
func (m *Manager) CreateLink(kind types.LinkKind, linkRoot string, v *semver.Version) error {
	target, err := m.resolver.Target(kind, v)
	if err != nil {
		return err
	}

	if err := m.fs.MkdirAll(target, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrLinkTargetUnavailable, "cannot create %s directory %s", kind, target)
	}

	linkPath := LinkPath(kind, linkRoot)
	logger := m.logger.With().Str("kind", kind.String()).Str("link", linkPath).Str("target", target).Logger()

	isLink, err := m.redirector.Exists(linkPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", linkPath)
	}

	if !isLink {
		if _, err := m.fs.Lstat(linkPath); err == nil {
			logger.Warn().Msg("Replacing plain directory with link, its contents are deleted")
			if err := m.fs.RemoveAll(linkPath); err != nil {
				return errors.Wrapf(err, errors.ErrLinkCreate, "cannot remove %s", linkPath)
			}
		} else if !os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", linkPath)
		}
	}

	if err := m.redirector.SetTarget(linkPath, target); err != nil {
		return errors.Wrapf(err, errors.ErrLinkCreate, "cannot link %s to %s", linkPath, target)
	}

	logger.Debug().Bool("repointed", isLink).Msg("Link in place")
	return nil
}

// DeleteLink removes <linkRoot>/<kind> if it is a link. Absent links and
// plain directories are left as they are.
func (m *Manager) DeleteLink(kind types.LinkKind, linkRoot string) error {
	linkPath := LinkPath(kind, linkRoot)

	isLink, err := m.redirector.Exists(linkPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", linkPath)
	}
	if !isLink {
		return nil
	}

	if err := m.redirector.Delete(linkPath); err != nil {
		return errors.Wrapf(err, errors.ErrLinkDelete, "cannot remove link %s", linkPath)
	}
	m.logger.Debug().Str("link", linkPath).Msg("Link removed")
	return nil
}

// CreateAllLinks ensures the link directory exists and creates every link,
// stopping at the first failure. Special installations are skipped.
func (m *Manager) CreateAllLinks(inst Linkable) error {
	if inst.IsSpecial() {
		return nil
	}

	linkRoot := inst.LinkDirectory()
	if err := m.fs.MkdirAll(linkRoot, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create link directory %s", linkRoot)
	}

	for _, kind := range types.AllLinkKinds {
		if err := m.CreateLink(kind, linkRoot, inst.Version()); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAllLinks removes every link, stopping at the first failure.
// Special installations are skipped.
func (m *Manager) DeleteAllLinks(inst Linkable) error {
	if inst.IsSpecial() {
		return nil
	}

	for _, kind := range types.AllLinkKinds {
		if err := m.DeleteLink(kind, inst.LinkDirectory()); err != nil {
			return err
		}
	}
	return nil
}
