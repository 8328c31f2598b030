// Package filesystem provides the types.FS implementations used by fvm:
// the host filesystem for real runs and an afero-backed one for tests.
package filesystem
