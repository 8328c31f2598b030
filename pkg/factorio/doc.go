// Package factorio knows the shape of a Factorio installation: how versions
// are written, where the base mod's info file lives, and how the binary
// directory is named for each architecture.
package factorio
