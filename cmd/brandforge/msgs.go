package brandforge

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Materialize platform branding asset trees"
	MsgRootLong = `brandforge builds a complete, platform-ready branding asset tree for a
browser build from a small per-brand source directory (a master logo plus
optional overrides) merged over the upstream default asset tree.`

	MsgApplyShort = "Apply one or more brands into the branding store"
	MsgApplyLong  = `Apply validates each brand's sources, resolves its layered configuration,
derives the platform image matrix, expands the optional templates, and
merges the upstream default tree into the brand's output directory.`
	MsgListShort    = "List available brands"
	MsgListLong     = "List displays the brands found in the workspace's brands/ directory."
	MsgVersionShort = "Print version information"

	// Status messages
	MsgNoBrandsFound  = "No brands found."
	MsgAvailableLabel = "Available brands:"
	MsgBrandApplied   = "✓ applied %s\n"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot     = "Branding workspace root (defaults to $BRANDFORGE_ROOT or the current directory)"
	MsgFlagPlatform = "Target platform for platform-specific assets (linux, darwin, windows)"
)
