// Package probe inspects a directory or ZIP archive and reports which
// Factorio version and architecture it holds. Probing never modifies
// anything on disk.
package probe

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/factorio"
	"github.com/arthur-debert/fvm/pkg/logging"
	"github.com/arthur-debert/fvm/pkg/types"
)

// Result is what a successful probe learned.
type Result struct {
	Version *semver.Version
	Is64Bit bool
	// Root is the entry prefix of the installation inside an archive, such
	// as "Factorio_0.17.79/". It is empty for directories and for archives
	// whose installation sits at the top level.
	Root string
}

// Prober is the probing capability the registry depends on.
type Prober interface {
	ProbeDirectory(path string) (Result, error)
	ProbeArchive(path string) (Result, error)
}

// Probe reads installations through an injected filesystem.
type Probe struct {
	fs types.FS
}

// New creates a Probe.
func New(fs types.FS) *Probe {
	return &Probe{fs: fs}
}

// ProbeDirectory validates an unpacked installation. The version comes from
// data/base/info.json; bin/Win32 is checked before bin/x64.
func (p *Probe) ProbeDirectory(path string) (Result, error) {
	logger := logging.GetLogger("probe").With().Str("path", path).Logger()

	content, err := p.fs.ReadFile(filepath.Join(path, factorio.InfoFileRelPath))
	if err != nil {
		logger.Debug().Err(err).Msg("Info file unreadable")
		return Result{}, errors.Wrapf(err, errors.ErrInvalidInstallation, "%s has no readable %s", path, factorio.InfoFileRelPath)
	}

	version, ok := factorio.ExtractVersion(content)
	if !ok {
		return Result{}, errors.Newf(errors.ErrInvalidInstallation, "%s: no version found in %s", path, factorio.InfoFileRelPath)
	}

	binDir := filepath.Join(path, factorio.BinDirName)
	var is64Bit bool
	switch {
	case p.isDir(filepath.Join(binDir, factorio.BinName32Bit)):
		is64Bit = false
	case p.isDir(filepath.Join(binDir, factorio.BinName64Bit)):
		is64Bit = true
	default:
		return Result{}, errors.Newf(errors.ErrInvalidInstallation, "%s: neither bin/%s nor bin/%s exists",
			path, factorio.BinName32Bit, factorio.BinName64Bit)
	}

	logger.Debug().Str("version", factorio.FormatVersion(version)).Bool("is64bit", is64Bit).Msg("Probed directory")
	return Result{Version: version, Is64Bit: is64Bit}, nil
}

func (p *Probe) isDir(path string) bool {
	info, err := p.fs.Stat(path)
	return err == nil && info.IsDir()
}

// ProbeArchive inspects a ZIP without extracting it. Entries are visited in
// stored order and the scan stops once both version and architecture are known.
func (p *Probe) ProbeArchive(path string) (Result, error) {
	logger := logging.GetLogger("probe").With().Str("archive", path).Logger()

	f, err := p.fs.Open(path)
	if err != nil {
		return Result{}, errors.Wrapf(err, errors.ErrInvalidInstallation, "cannot open %s", path)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return Result{}, errors.Wrapf(err, errors.ErrInvalidInstallation, "cannot stat %s", path)
	}

	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return Result{}, errors.Wrapf(err, errors.ErrCorruptArchive, "%s is not a readable ZIP archive", path)
	}

	var (
		result       Result
		foundVersion bool
		foundArch    bool
	)
	exe32 := strings.ToLower(factorio.BinName32Bit + "/" + factorio.ExecutableName)
	exe64 := strings.ToLower(factorio.BinName64Bit + "/" + factorio.ExecutableName)

	for _, entry := range zr.File {
		normalized := strings.ReplaceAll(entry.Name, `\`, "/")
		name := strings.ToLower(normalized)

		switch {
		case !foundVersion && strings.HasSuffix(name, factorio.InfoFileSuffix):
			content, err := readEntry(entry)
			if err != nil {
				return Result{}, errors.Wrapf(err, errors.ErrCorruptArchive, "cannot read %s in %s", entry.Name, path)
			}
			if v, ok := factorio.ExtractVersion(content); ok {
				result.Version = v
				result.Root = normalized[:len(normalized)-len(factorio.InfoFileSuffix)]
				foundVersion = true
			}
		case !foundArch && strings.HasSuffix(name, exe32):
			result.Is64Bit = false
			foundArch = true
		case !foundArch && strings.HasSuffix(name, exe64):
			result.Is64Bit = true
			foundArch = true
		}

		if foundVersion && foundArch {
			logger.Debug().
				Str("version", factorio.FormatVersion(result.Version)).
				Bool("is64bit", result.Is64Bit).
				Str("root", result.Root).
				Msg("Probed archive")
			return result, nil
		}
	}

	return Result{}, errors.Newf(errors.ErrInvalidInstallation, "%s does not contain a Factorio installation", path)
}

func readEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return io.ReadAll(rc)
}
