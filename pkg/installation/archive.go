package installation

import (
	"archive/zip"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/factorio"
	"github.com/arthur-debert/fvm/pkg/logging"
)

// AddLocal adopts an unpacked installation from outside the installations
// root by moving it to <root>/<version>.
func (r *Registry) AddLocal(dir string) (*Installation, error) {
	result, err := r.prober.ProbeDirectory(dir)
	if err != nil {
		return nil, err
	}
	if err := r.checkPlatform(dir, result.Is64Bit); err != nil {
		return nil, err
	}

	target, err := r.prepareTarget(factorio.FormatVersion(result.Version))
	if err != nil {
		return nil, err
	}

	if err := r.fs.Rename(dir, target); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileMove, "cannot move %s to %s", dir, target)
	}
	return r.adopt(target, result.Version, result.Is64Bit)
}

// AddFromArchive extracts an installation archive to <root>/<version>.
// Only entries under the directory holding data/base/info.json are
// extracted. A failed extraction leaves nothing behind.
func (r *Registry) AddFromArchive(archive string) (*Installation, error) {
	defer logging.LogOperationStart(r.logger, "add-archive")()

	result, err := r.prober.ProbeArchive(archive)
	if err != nil {
		return nil, err
	}
	if err := r.checkPlatform(archive, result.Is64Bit); err != nil {
		return nil, err
	}

	target, err := r.prepareTarget(factorio.FormatVersion(result.Version))
	if err != nil {
		return nil, err
	}

	if err := r.extract(archive, result.Root, target); err != nil {
		if cleanupErr := r.fs.RemoveAll(target); cleanupErr != nil {
			r.logger.Error().Err(cleanupErr).Str("dir", target).Msg("Failed to clean up partial extraction")
		}
		return nil, err
	}
	return r.adopt(target, result.Version, result.Is64Bit)
}

func (r *Registry) prepareTarget(version string) (string, error) {
	root, err := r.InstallationsRoot()
	if err != nil {
		return "", err
	}
	target := filepath.Join(root, version)
	if _, err := r.fs.Lstat(target); err == nil {
		return "", errors.Newf(errors.ErrAlreadyExists, "version %s is already installed at %s", version, target)
	}
	if err := r.fs.MkdirAll(root, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", root)
	}
	return target, nil
}

// adopt registers a directory that is already in place. A link failure is
// returned, but the installation is kept since it exists on disk.
func (r *Registry) adopt(dir string, v *semver.Version, is64Bit bool) (*Installation, error) {
	inst := newLocal(dir, v, is64Bit)
	linkErr := r.links.CreateAllLinks(inst)
	r.add(inst)
	r.logger.Info().Str("dir", dir).Str("version", inst.VersionString()).Msg("Added installation")
	return inst, linkErr
}

func (r *Registry) extract(archive, prefix, dest string) error {
	f, err := r.fs.Open(archive)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", archive)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", archive)
	}
	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return errors.Wrapf(err, errors.ErrCorruptArchive, "%s is not a readable ZIP archive", archive)
	}

	if err := r.fs.MkdirAll(dest, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dest)
	}

	count := 0
	for _, entry := range zr.File {
		name := strings.ReplaceAll(entry.Name, `\`, "/")
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		rel := strings.TrimSuffix(strings.TrimPrefix(name, prefix), "/")
		if rel == "" {
			continue
		}
		local := filepath.FromSlash(rel)
		if !filepath.IsLocal(local) {
			return errors.Newf(errors.ErrArchiveExtract, "%s: entry %q escapes the installation directory", archive, entry.Name)
		}

		outPath := filepath.Join(dest, local)
		if entry.FileInfo().IsDir() || strings.HasSuffix(name, "/") {
			if err := r.fs.MkdirAll(outPath, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrArchiveExtract, "cannot create %s", outPath)
			}
			continue
		}
		if err := r.extractFile(entry, outPath); err != nil {
			return err
		}
		count++
	}

	r.logger.Debug().Str("archive", archive).Str("dest", dest).Int("files", count).Msg("Extracted archive")
	return nil
}

func (r *Registry) extractFile(entry *zip.File, outPath string) error {
	if err := r.fs.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrArchiveExtract, "cannot create %s", filepath.Dir(outPath))
	}

	src, err := entry.Open()
	if err != nil {
		return errors.Wrapf(err, errors.ErrCorruptArchive, "cannot read %s", entry.Name)
	}
	defer func() { _ = src.Close() }()

	dst, err := r.fs.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveExtract, "cannot create %s", outPath)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return errors.Wrapf(err, errors.ErrCorruptArchive, "cannot extract %s", entry.Name)
	}
	if err := dst.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrArchiveExtract, "cannot write %s", outPath)
	}

	if entry.Mode().Perm()&0o111 != 0 || isExecutable(entry.Name) {
		if err := r.fs.Chmod(outPath, 0o755); err != nil {
			return errors.Wrapf(err, errors.ErrArchiveExtract, "cannot mark %s executable", outPath)
		}
	}
	return nil
}

// isExecutable catches the game binary in archives built without Unix modes.
func isExecutable(name string) bool {
	return strings.EqualFold(path.Base(strings.ReplaceAll(name, `\`, "/")), factorio.ExecutableName)
}
