//go:build !windows

package factorio

// ExecutableName is the game binary inside bin/<arch>.
const ExecutableName = "factorio"
