package chimera

// Command descriptions
const (
	MsgRootShort       = "Manage linked content and shortcuts for launcher platforms"
	MsgRootLong        = `chimera stores imported content under hidden per-item directories and
exposes it to launchers through one symlink per item, named after the item
and carrying the stored file's extension.

Arcade and Neo Geo content is used in place: those platforms get the stored
path instead of a link.`
	MsgUpsertShort     = "Import a file for a content item and link it"
	MsgUpsertLong      = "Upsert moves <src> into the item's storage directory as [dst-name] (default: the base name of <src>) and replaces the item's link."
	MsgDeleteShort     = "Delete a content item and its link"
	MsgUnlinkShort     = "Remove the links of a content item"
	MsgLinksShort      = "List the links of a content item"
	MsgBannerShort     = "Render a text banner image"
	MsgBannerLong      = "Banner renders <text> centered on a 460x215 black image. The format follows the extension of <output>: png, jpg, jpeg, bmp, tif or tiff."
	MsgSanitizeShort   = "Print text made safe for use as a file name"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
)

// Flag descriptions
const (
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDataDir      = "Data directory holding content types (default $XDG_DATA_HOME/chimera)"
	MsgFlagShortcutsDir = "Directory holding chimera.<platform>.yaml shortcut files"
	MsgFlagConfig       = "Config file (default $XDG_CONFIG_HOME/chimera/config.toml)"
	MsgFlagType         = "Content type, the directory name under the data directory"
	MsgFlagFont         = "TTF/OTF font file (default: embedded Go Mono Bold)"
	MsgFlagFontSize     = "Font size in pixels"
)

// Output messages
const (
	MsgLinked        = "Linked %s\n"
	MsgStored        = "Stored %s\n"
	MsgNothingToDo   = "Nothing to import"
	MsgDeleted       = "Deleted %s/%s"
	MsgUnlinked      = "Unlinked %s/%s"
	MsgNoLinks       = "No links for %s/%s\n"
	MsgLinkTarget    = "%s -> %s\n"
	MsgDanglingLink  = "%s -> %s (missing)\n"
	MsgBannerWritten = "Wrote banner %s\n"
	MsgVersionFormat = "chimera version %s\n  commit: %s\n  built:  %s\n"
)

// Error messages
const (
	MsgErrInitPaths  = "failed to initialize paths: %w"
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrNoCommand  = "no command specified"
)
