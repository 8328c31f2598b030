package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/fvm/pkg/installation"
	"github.com/arthur-debert/fvm/pkg/links"
)

// Installation presents one installation.
type Installation struct {
	Version    string         `json:"version" yaml:"version"`
	Name       string         `json:"name" yaml:"name"`
	Kind       string         `json:"kind" yaml:"kind"`
	Arch       string         `json:"arch,omitempty" yaml:"arch,omitempty"`
	Directory  string         `json:"directory,omitempty" yaml:"directory,omitempty"`
	LinkDir    string         `json:"linkDirectory,omitempty" yaml:"linkDirectory,omitempty"`
	Executable string         `json:"executable,omitempty" yaml:"executable,omitempty"`
	Links      []links.Status `json:"links,omitempty" yaml:"links,omitempty"`
}

// FromInstallation builds the view of inst. statuses may be nil.
func FromInstallation(inst *installation.Installation, statuses []links.Status) Installation {
	view := Installation{
		Version:    inst.VersionString(),
		Name:       inst.DisplayName(),
		Kind:       string(inst.Kind()),
		Directory:  inst.Directory(),
		LinkDir:    inst.LinkDirectory(),
		Executable: inst.ExecutablePath(),
		Links:      statuses,
	}
	if !inst.IsSpecial() {
		view.Arch = Arch(inst.Is64Bit())
	}
	return view
}

// Arch names an architecture the way the game's download page does.
func Arch(is64Bit bool) string {
	if is64Bit {
		return "x64"
	}
	return "x86"
}

// LinkSummary condenses the link states into one cell.
func (i Installation) LinkSummary() Cell {
	if len(i.Links) == 0 {
		return Cell{Text: "-", Style: StyleMuted}
	}

	var problems []string
	for _, s := range i.Links {
		if s.State != links.StateLinked {
			problems = append(problems, fmt.Sprintf("%s: %s", s.Kind, s.State))
		}
	}
	if len(problems) == 0 {
		return Cell{Text: "ok", Style: StyleSuccess}
	}
	return Cell{Text: strings.Join(problems, ", "), Style: StyleWarning}
}

func (i Installation) Fields() []Field {
	fields := []Field{
		{Label: "Name", Value: i.Name},
		{Label: "Version", Value: i.Version, Style: StyleVersion},
		{Label: "Kind", Value: i.Kind},
	}
	if i.Arch != "" {
		fields = append(fields, Field{Label: "Arch", Value: i.Arch})
	}
	if i.Directory != "" {
		fields = append(fields,
			Field{Label: "Directory", Value: i.Directory, Style: StylePath},
			Field{Label: "Executable", Value: i.Executable, Style: StylePath},
		)
	}
	if i.LinkDir != "" && i.LinkDir != i.Directory {
		fields = append(fields, Field{Label: "Links in", Value: i.LinkDir, Style: StylePath})
	}
	for _, s := range i.Links {
		f := Field{Label: s.Kind.String(), Value: string(s.State), Style: StyleSuccess}
		if s.State != links.StateLinked {
			f.Style = StyleWarning
		}
		if s.Expected != "" {
			f.Value += " -> " + s.Expected
		}
		fields = append(fields, f)
	}
	return fields
}

// InstallationList is the result of listing the registry.
type InstallationList struct {
	Installations []Installation `json:"installations" yaml:"installations"`
	Warnings      []string       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func (l *InstallationList) Header() []string {
	return []string{"VERSION", "NAME", "ARCH", "DIRECTORY", "LINKS"}
}

func (l *InstallationList) Rows() [][]Cell {
	rows := make([][]Cell, 0, len(l.Installations))
	for _, inst := range l.Installations {
		rows = append(rows, []Cell{
			{Text: inst.Version, Style: StyleVersion},
			{Text: inst.Name},
			{Text: inst.Arch},
			{Text: inst.Directory, Style: StylePath},
			inst.LinkSummary(),
		})
	}
	return rows
}

func (l *InstallationList) EmptyText() string { return "No installations found." }

func (l *InstallationList) Notes() []string { return l.Warnings }

// Resolution is the result of resolving a selector such as "latest".
type Resolution struct {
	Selector     string       `json:"selector" yaml:"selector"`
	Installation Installation `json:"installation" yaml:"installation"`
}

func (r *Resolution) Fields() []Field {
	return append([]Field{{Label: "Selector", Value: r.Selector}}, r.Installation.Fields()...)
}
