// Package types holds the small interfaces and enumerations shared across
// fvm packages, chiefly the injectable filesystem.
package types
