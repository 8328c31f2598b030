// Package installation keeps the registry of Factorio installations.
//
// Three kinds of Installation exist:
//
//	local    a directory under the installations root, named after its version
//	vendor   the Steam copy; fvm links its app-data directory but never moves it
//	marker   "latest" or "steam", selections resolved to a real installation later
//
// The registry is not safe for concurrent use. Callers run one mutation at a
// time; observers learn about changes through Subscribe.
package installation
