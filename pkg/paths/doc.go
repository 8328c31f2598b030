// Package paths provides centralized path handling for fvm.
//
// Application directories follow the XDG Base Directory specification via
// github.com/adrg/xdg, each overridable through an FVM_* environment variable.
// The package also knows where the Steam build of Factorio keeps its user data,
// which differs per operating system.
package paths
