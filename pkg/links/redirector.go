package links

import (
	"os"

	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/types"
)

// Redirector is a directory redirection capability.
type Redirector interface {
	// Exists reports whether path is a redirection. A plain directory is not.
	Exists(path string) (bool, error)
	// Target returns where the redirection at path points.
	Target(path string) (string, error)
	// SetTarget points path at target, creating the redirection if needed.
	// An existing redirection is repointed rather than removed and recreated.
	SetTarget(path, target string) error
	// Delete removes the redirection itself, never the target's contents.
	Delete(path string) error
}

// tmpSuffix names the sibling link used while repointing.
const tmpSuffix = ".fvm-tmp"

// SymlinkRedirector implements Redirector with symbolic links.
type SymlinkRedirector struct {
	fs types.FS
}

// NewSymlinkRedirector creates a SymlinkRedirector on fs.
func NewSymlinkRedirector(fs types.FS) *SymlinkRedirector {
	return &SymlinkRedirector{fs: fs}
}

func (r *SymlinkRedirector) Exists(path string) (bool, error) {
	info, err := r.fs.Lstat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

func (r *SymlinkRedirector) Target(path string) (string, error) {
	return r.fs.Readlink(path)
}

// SetTarget swaps an existing link by renaming a freshly made sibling link
// over it, so the path never disappears. Where rename cannot replace a link
// it falls back to remove and create.
func (r *SymlinkRedirector) SetTarget(path, target string) error {
	current, err := r.fs.Readlink(path)
	if err != nil {
		return r.fs.Symlink(target, path)
	}
	if current == target {
		return nil
	}

	tmp := path + tmpSuffix
	_ = r.fs.Remove(tmp)
	if err := r.fs.Symlink(target, tmp); err == nil {
		if err := r.fs.Rename(tmp, path); err == nil {
			return nil
		}
		_ = r.fs.Remove(tmp)
	}

	if err := r.fs.Remove(path); err != nil {
		return err
	}
	return r.fs.Symlink(target, path)
}

func (r *SymlinkRedirector) Delete(path string) error {
	isLink, err := r.Exists(path)
	if err != nil {
		return err
	}
	if !isLink {
		return errors.Newf(errors.ErrInvalidInput, "%s is not a link", path)
	}
	return r.fs.Remove(path)
}
