package deploy

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveRepoRoot returns the absolute repository root holding the screen
// sources. An explicit root is made absolute and returned as-is; otherwise
// the resolver walks up from the working directory until it finds a
// directory containing the serial scripts tree.
func ResolveRepoRoot(explicit string) (string, error) {
	if explicit != "" {
		root, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("failed to resolve repository root %s: %w", explicit, err)
		}
		return root, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, filepath.FromSlash(scriptsDirRel))
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no directory containing %s found above the working directory; pass --repo-root", scriptsDirRel)
		}
		dir = parent
	}
}

// DeploymentRoot resolves where the screens are deployed to. A non-empty
// beamline selects the production software area; otherwise the screens are
// deployed inside the repository for development use.
func DeploymentRoot(beamline, repoRoot string) string {
	if beamline != "" {
		return filepath.Join(beamlineSoftwareRoot, beamline, filepath.FromSlash(beamlineSoftwareSubdir), deployDirName)
	}
	return filepath.Join(repoRoot, deployDirName)
}

// ScriptsDir returns the absolute serial scripts root for a repository.
func ScriptsDir(repoRoot string) string {
	return filepath.Join(repoRoot, filepath.FromSlash(scriptsDirRel))
}
