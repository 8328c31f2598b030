// Package config provides the fvm settings store.
//
// Settings are layered with koanf, lowest precedence first:
//
//	embedded/defaults.toml   key set and documentation
//	computed defaults        directories under the XDG data dir
//	user file                config.toml in the XDG config dir
//	environment              FVM_SECTION__KEY, e.g. FVM_FACTORIO__STEAM_PATH
//
// Only the user layer is written back. Components receive a Settings value
// and read it on every use, so a Set is visible immediately.
package config
