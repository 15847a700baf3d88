package verify

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/DiamondLightSource/edm-serial-deploy/internal/deploy"
	"github.com/DiamondLightSource/edm-serial-deploy/internal/deploy/infra/filesystem"
	"github.com/DiamondLightSource/edm-serial-deploy/internal/logger"
)

// Service checks a deployed screen tree against the screen sources in the
// repository. It never modifies the deployment.
type Service struct {
	beamline string
	repoRoot string
	reader   filesystem.Reader
	logger   *slog.Logger
}

// NewService creates a new verify service
func NewService(beamline, repoRoot string, reader filesystem.Reader) *Service {
	return &Service{
		beamline: beamline,
		repoRoot: repoRoot,
		reader:   reader,
		logger:   logger.Named("verify_service"),
	}
}

// Execute verifies the deployment and returns one message per violation:
// a target directory whose *.edl file-name set differs from its source
// directory, or a deployed file that still contains a placeholder token.
// An unreadable deployment (no manifest, missing directories) is an error
// rather than a violation.
func (s *Service) Execute(_ context.Context) ([]string, error) {
	root := deploy.DeploymentRoot(s.beamline, s.repoRoot)

	var manifest deploy.Manifest
	if err := s.reader.ReadJSON(filepath.Join(root, deploy.ManifestFileName), &manifest); err != nil {
		return nil, fmt.Errorf("failed to read deployment manifest: %w", err)
	}

	sets, err := deploy.ScreenSets()
	if err != nil {
		return nil, err
	}

	s.logger.Info("verifying deployment", "root", root, "sets", len(manifest.Sets))

	var violations []string
	for _, set := range sets {
		targetDir := filepath.Join(root, set.TargetDir)
		sourceDir := filepath.Join(s.repoRoot, filepath.FromSlash(set.SourceRel))

		sourceNames, err := deploy.ListScreens(sourceDir)
		if err != nil {
			return nil, err
		}
		deployedNames, err := deploy.ListScreens(targetDir)
		if err != nil {
			return nil, err
		}

		violations = append(violations, compareNames(set.Name, sourceNames, deployedNames)...)

		for _, name := range deployedNames {
			path := filepath.Join(targetDir, name)
			content, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read deployed screen %s: %w", path, err)
			}

			for _, token := range []string{deploy.TokenEDMLocation, deploy.TokenScriptsLocation} {
				if strings.Contains(string(content), token) {
					violations = append(violations, fmt.Sprintf("%s still contains the %s placeholder", path, token))
				}
			}
		}
	}

	return violations, nil
}

// compareNames reports files present on one side only. Both slices are in
// lexical order as returned by ListScreens.
func compareNames(setName string, sourceNames, deployedNames []string) []string {
	source := make(map[string]bool, len(sourceNames))
	for _, name := range sourceNames {
		source[name] = true
	}
	deployed := make(map[string]bool, len(deployedNames))
	for _, name := range deployedNames {
		deployed[name] = true
	}

	var violations []string
	for _, name := range sourceNames {
		if !deployed[name] {
			violations = append(violations, fmt.Sprintf("%s screen %s is missing from the deployment", setName, name))
		}
	}
	for _, name := range deployedNames {
		if !source[name] {
			violations = append(violations, fmt.Sprintf("%s screen %s is deployed but has no source", setName, name))
		}
	}

	return violations
}
