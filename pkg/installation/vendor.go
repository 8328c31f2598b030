package installation

import (
	stderrors "errors"

	"github.com/arthur-debert/fvm/pkg/config"
	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/factorio"
)

// LoadVendorManaged validates the configured Steam installation and makes
// it the registry's vendor installation.
//
// An empty setting yields NOT_CONFIGURED. A path that no longer probes as
// an installation is cleared from the settings, persisted, and reported as
// INVALID_INSTALLATION, so the next call yields NOT_CONFIGURED. A build for
// the other architecture yields PLATFORM_MISMATCH and leaves the setting.
// A path set through the environment cannot be cleared and stays INVALID_INSTALLATION.
func (r *Registry) LoadVendorManaged() (*Installation, error) {
	path := r.settings.GetString(config.KeySteamPath)
	if path == "" {
		return nil, errors.Newf(errors.ErrNotConfigured, "%s is not set", config.KeySteamPath).
			WithDetail("key", config.KeySteamPath)
	}

	result, err := r.prober.ProbeDirectory(path)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrInvalidInstallation) {
			r.logger.Warn().Err(err).Str("path", path).Msg("Steam installation no longer valid, clearing setting")
			if clearErr := r.settings.Set(config.KeySteamPath, ""); clearErr != nil {
				return nil, stderrors.Join(err, clearErr)
			}
			if r.settings.GetString(config.KeySteamPath) != "" {
				r.logger.Warn().Str("path", path).
					Msg("Steam path is set in the environment and cannot be cleared; unset the variable")
				envErr := errors.Newf(errors.ErrInvalidInstallation, "%s comes from the environment", config.KeySteamPath).
					WithDetail("source", "environment")
				envErr.Wrapped = err
				return nil, envErr
			}
		}
		return nil, err
	}

	if err := r.checkPlatform(path, result.Is64Bit); err != nil {
		return nil, err
	}

	inst := newVendor(path, r.vendorAppData, result.Version, result.Is64Bit)
	if err := r.links.CreateAllLinks(inst); err != nil {
		return nil, err
	}

	r.vendor = inst
	r.logger.Info().
		Str("path", path).
		Str("version", factorio.FormatVersion(result.Version)).
		Msg("Loaded Steam installation")
	r.emit(EventAdded, inst, "")
	return inst, nil
}

// SetVendorPath validates path as a Steam installation, stores it and loads
// it. An invalid path is rejected without touching the stored setting.
func (r *Registry) SetVendorPath(path string) (*Installation, error) {
	result, err := r.prober.ProbeDirectory(path)
	if err != nil {
		return nil, err
	}
	if err := r.checkPlatform(path, result.Is64Bit); err != nil {
		return nil, err
	}

	if r.vendor != nil {
		if err := r.links.DeleteAllLinks(r.vendor); err != nil {
			return nil, err
		}
		r.vendor = nil
	}

	if err := r.settings.Set(config.KeySteamPath, path); err != nil {
		return nil, err
	}
	return r.LoadVendorManaged()
}
