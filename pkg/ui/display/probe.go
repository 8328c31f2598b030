package display

import (
	"github.com/arthur-debert/fvm/pkg/factorio"
	"github.com/arthur-debert/fvm/pkg/probe"
)

// Probe presents what a probe found in a directory or archive.
type Probe struct {
	Path    string `json:"path" yaml:"path"`
	Version string `json:"version" yaml:"version"`
	Arch    string `json:"arch" yaml:"arch"`
	Root    string `json:"root,omitempty" yaml:"root,omitempty"`
}

// FromProbe builds the view of a probe result for path.
func FromProbe(path string, r probe.Result) *Probe {
	return &Probe{
		Path:    path,
		Version: factorio.FormatVersion(r.Version),
		Arch:    Arch(r.Is64Bit),
		Root:    r.Root,
	}
}

func (p *Probe) Fields() []Field {
	fields := []Field{
		{Label: "Path", Value: p.Path, Style: StylePath},
		{Label: "Version", Value: p.Version, Style: StyleVersion},
		{Label: "Arch", Value: p.Arch},
	}
	if p.Root != "" {
		fields = append(fields, Field{Label: "Archive root", Value: p.Root})
	}
	return fields
}
