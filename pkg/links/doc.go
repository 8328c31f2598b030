// Package links maintains the saves, scenarios and mods redirections inside
// each installation's link directory.
//
// The redirection mechanism is behind Redirector. SymlinkRedirector uses
// directory symlinks; on Windows they need developer mode or elevation.
package links
