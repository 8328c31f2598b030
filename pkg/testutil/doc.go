// Package testutil provides fixtures for testing fvm components.
//
// Key components:
//   - Environment: a temp-dir workspace with settings pointing into it
//   - CreateInstallation: writes a minimal unpacked installation
//   - WriteZip / InstallationEntries: build installation archives
//
// Link tests need real symlinks and therefore use Environment on the host
// filesystem; probe and config tests use NewTestFS.
package testutil
