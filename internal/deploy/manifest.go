package deploy

// ManifestFileName is written at the deployment root after every
// successful deploy.
const ManifestFileName = "deployment.json"

// Manifest records what a deploy run produced, for operators and for the
// verify command. It is derived entirely from the inputs, so repeated runs
// against the same sources deploy byte-identical trees.
type Manifest struct {
	Beamline   string              `json:"beamline,omitempty"`
	Root       string              `json:"root"`
	ScriptsDir string              `json:"scripts-dir"`
	Sets       map[string][]string `json:"sets"`
}
