package installation

import (
	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/factorio"
)

// All returns the local installations in ascending version order, followed
// by the vendor installation if one is loaded.
func (r *Registry) All() []*Installation {
	all := r.Local()
	if r.vendor != nil {
		all = append(all, r.vendor)
	}
	return all
}

// Local returns the local installations in ascending version order.
func (r *Registry) Local() []*Installation {
	return append([]*Installation(nil), r.installations...)
}

// VendorInstallation returns the loaded Steam installation, or nil.
func (r *Registry) VendorInstallation() *Installation {
	return r.vendor
}

// Find looks an installation up by its version string. The marker keys
// return the marker itself, except that "steam" prefers the loaded vendor
// installation.
func (r *Registry) Find(key string) (*Installation, error) {
	switch key {
	case LatestKey:
		return Latest(), nil
	case VendorKey:
		if r.vendor != nil {
			return r.vendor, nil
		}
		return Vendor(), nil
	}

	v, err := factorio.ParseVersion(key)
	if err != nil {
		return nil, err
	}
	for _, inst := range r.installations {
		if inst.Version().Equal(v) {
			return inst, nil
		}
	}
	return nil, errors.Newf(errors.ErrNotFound, "no installation of version %s", factorio.FormatVersion(v))
}

// Resolve turns a selection into a concrete installation. Latest becomes
// the highest version known, a local installation winning a tie with Steam.
// Vendor becomes the loaded Steam installation.
func (r *Registry) Resolve(sel *Installation) (*Installation, error) {
	switch sel {
	case Latest():
		var best *Installation
		for _, inst := range r.All() {
			if best == nil || inst.Version().GreaterThan(best.Version()) {
				best = inst
			}
		}
		if best == nil {
			return nil, errors.New(errors.ErrNotFound, "no installations available")
		}
		return best, nil
	case Vendor():
		if r.vendor == nil {
			return nil, errors.New(errors.ErrNotConfigured, "no Steam installation loaded")
		}
		return r.vendor, nil
	}
	return sel, nil
}
