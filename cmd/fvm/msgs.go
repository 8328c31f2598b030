package fvm

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Manage side-by-side Factorio installations"
	MsgListShort       = "List installations and the state of their links"
	MsgAddShort        = "Add an installation from a directory or ZIP archive"
	MsgRenameShort     = "Change the version an installation is filed under"
	MsgRenameLong      = "Rename moves <root>/<version> to <root>/<new-version> and relinks it. Use it when a directory was filed under the wrong version. Steam installations cannot be renamed."
	MsgRemoveShort     = "Forget an installation and remove its links"
	MsgRemoveLong      = "Remove deletes the links of an installation and drops it from fvm. Its files stay on disk unless --purge is given. Removing the Steam installation only clears the setting; Steam's files are never deleted."
	MsgRelinkShort     = "Recreate the links of every installation"
	MsgRelinkLong      = "Relink points every installation's saves, scenarios and mods at the configured shared directories. Run it after changing a storage setting or to repair links."
	MsgRelocateShort   = "Move all installations to a new root"
	MsgProbeShort      = "Show the version and architecture of a directory or archive"
	MsgResolveShort    = "Resolve a selector such as latest or steam to an installation"
	MsgResolveLong     = "Resolve turns a selector into a concrete installation. Selectors are a version (1.1.110), latest (highest version known, local copies winning a tie with Steam) or steam."
	MsgSteamShort      = "Register, show or clear the Steam installation"
	MsgSteamSetShort   = "Register the Steam installation at PATH"
	MsgSteamShowShort  = "Show the Steam installation"
	MsgSteamClearShort = "Forget the Steam installation"
	MsgConfigShort     = "Show and change settings"
	MsgConfigShowShort = "Show the effective settings"
	MsgConfigGetShort  = "Print one setting"
	MsgConfigSetShort  = "Change one setting"
	MsgConfigInitShort = "Write a commented settings file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Results
	MsgAdded         = "Added %s at %s"
	MsgRenamed       = "Renamed %s to %s"
	MsgRemoved       = "Removed %s"
	MsgPurged        = "Removed %s and deleted %s"
	MsgRelinked      = "Relinked %d installation(s)"
	MsgRelocated     = "Moved %d installation(s) to %s"
	MsgSteamCleared  = "Cleared the Steam installation"
	MsgSteamNotSet   = "No Steam installation registered. Use 'fvm steam set <path>'."
	MsgSettingSaved  = "Set %s = %s"
	MsgConfigWritten = "Wrote %s"
	MsgManWritten    = "Wrote man pages to %s"
	MsgVersionFormat = "fvm version %s\n"
	MsgCommitFormat  = "  commit: %s\n"
	MsgBuiltFormat   = "  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, term, text, json or yaml"
	MsgFlagPurge   = "Also delete the installation's files"
	MsgFlagExpand  = "Expand __PATH__ variables in TEMPLATE against the resolved installation"
	MsgFlagForce   = "Overwrite an existing settings file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/relocate-long.txt
	msgRelocateLongRaw string
	MsgRelocateLong    = strings.TrimSpace(msgRelocateLongRaw)

	//go:embed msgs/steam-long.txt
	msgSteamLongRaw string
	MsgSteamLong    = strings.TrimSpace(msgSteamLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
