package links

import (
	"os"

	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/types"
)

// State describes a link as found on disk.
type State string

const (
	StateLinked       State = "linked"
	StateMissing      State = "missing"
	StateWrongTarget  State = "wrong-target"
	StatePlainEntry   State = "plain-entry"
	StateUnconfigured State = "unconfigured"
)

// Status reports one link of one installation.
type Status struct {
	Kind     types.LinkKind `json:"kind" yaml:"kind"`
	Path     string         `json:"path" yaml:"path"`
	Target   string         `json:"target,omitempty" yaml:"target,omitempty"`
	Expected string         `json:"expected,omitempty" yaml:"expected,omitempty"`
	State    State          `json:"state" yaml:"state"`
}

// Status inspects the links of inst without changing anything.
// Special installations have no links and report nothing.
func (m *Manager) Status(inst Linkable) ([]Status, error) {
	if inst.IsSpecial() {
		return nil, nil
	}

	statuses := make([]Status, 0, len(types.AllLinkKinds))
	for _, kind := range types.AllLinkKinds {
		s := Status{Kind: kind, Path: LinkPath(kind, inst.LinkDirectory())}

		expected, err := m.resolver.Target(kind, inst.Version())
		switch {
		case errors.IsErrorCode(err, errors.ErrNotConfigured):
			s.State = StateUnconfigured
			statuses = append(statuses, s)
			continue
		case err != nil:
			return nil, err
		}
		s.Expected = expected

		isLink, err := m.redirector.Exists(s.Path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", s.Path)
		}

		switch {
		case isLink:
			target, err := m.redirector.Target(s.Path)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read link %s", s.Path)
			}
			s.Target = target
			if target == expected {
				s.State = StateLinked
			} else {
				s.State = StateWrongTarget
			}
		default:
			if _, err := m.fs.Lstat(s.Path); err == nil {
				s.State = StatePlainEntry
			} else if os.IsNotExist(err) {
				s.State = StateMissing
			} else {
				return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", s.Path)
			}
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}
