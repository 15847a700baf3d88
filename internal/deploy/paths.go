package deploy

// Path constants for the deployed EDM screen tree and its sources.
// Repo-relative constants use forward slashes and go through
// filepath.FromSlash before touching the filesystem.
const (
	// deployDirName is the directory holding the deployed screen sets,
	// both under the beamline software area and under the repository root
	deployDirName = "edm_serial"

	// beamlineSoftwareRoot is the base of the per-beamline software areas
	beamlineSoftwareRoot = "/dls_sw"

	// beamlineSoftwareSubdir is where bluesky artifacts live inside a
	// beamline software area
	beamlineSoftwareSubdir = "software/bluesky"

	// scriptsDirRel is the serial crystallography source tree, relative to
	// the repository root. Deployed screens shell out to scripts below it.
	scriptsDirRel = "src/mx_bluesky/I24/serial"

	// ScreenSuffix is the EDM screen definition file extension.
	ScreenSuffix = ".edl"
)

// Placeholder tokens rewritten in every deployed screen file. The screen
// sources ship with these literals wherever a deployment-specific path is
// needed.
const (
	// TokenEDMLocation becomes the absolute path of the screen's own
	// target subdirectory.
	TokenEDMLocation = "EDM_LOCATION"

	// TokenScriptsLocation becomes the absolute path of the serial
	// scripts root, shared by all screen sets.
	TokenScriptsLocation = "SCRIPTS_LOCATION"
)
