package merge

import "path/filepath"

// FileClass partitions upstream files into the three patch classes.
type FileClass int

const (
	// ClassGeneric files are byte-copied verbatim
	ClassGeneric FileClass = iota

	// ClassStylesheet files get the background-color patch
	ClassStylesheet

	// ClassInstallerScript is the single installer definitions file,
	// which is wholly regenerated rather than copied
	ClassInstallerScript
)

// InstallerScriptFile is the installer-script definitions file name.
// Exactly one is expected in the upstream tree.
const InstallerScriptFile = "branding.nsi"

// Classify returns the patch class for a file name. Pure function of the
// base name; paths are accepted for convenience.
func Classify(name string) FileClass {
	base := filepath.Base(name)
	switch {
	case base == InstallerScriptFile:
		return ClassInstallerScript
	case filepath.Ext(base) == ".css":
		return ClassStylesheet
	default:
		return ClassGeneric
	}
}
