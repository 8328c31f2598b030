package types

// LinkKind names one of the directory redirections every installation carries.
type LinkKind string

const (
	LinkSaves     LinkKind = "saves"
	LinkScenarios LinkKind = "scenarios"
	LinkMods      LinkKind = "mods"
)

// AllLinkKinds lists the kinds in the order they are created.
var AllLinkKinds = []LinkKind{LinkSaves, LinkScenarios, LinkMods}

// String returns the directory name used for the link.
func (k LinkKind) String() string {
	return string(k)
}
