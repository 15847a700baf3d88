package deploy

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DiamondLightSource/edm-serial-deploy/internal/deploy/infra/filesystem"
	"github.com/DiamondLightSource/edm-serial-deploy/internal/logger"
)

// Service orchestrates the whole deployment: wipe and recreate the
// deployment root, copy each screen set into its own subdirectory, rewrite
// the placeholder tokens and record the result in the deployment manifest.
type (
	screenCopier interface {
		CopyScreens(sourceDir, targetDir string) ([]string, error)
	}
	tokenRewriter interface {
		RewriteTokens(dir string, names []string, edmPath, scriptsPath string) error
	}
	Service struct {
		beamline string
		repoRoot string
		copier   screenCopier
		rewriter tokenRewriter
		writer   filesystem.Writer
		logger   *slog.Logger
	}
)

// NewService creates a new deploy service
func NewService(
	beamline string,
	repoRoot string,
	copier screenCopier,
	rewriter tokenRewriter,
	writer filesystem.Writer,
) *Service {
	return &Service{
		beamline: beamline,
		repoRoot: repoRoot,
		copier:   copier,
		rewriter: rewriter,
		writer:   writer,
		logger:   logger.Named("deploy_service"),
	}
}

// Execute runs the full deployment and returns the deployment root.
// A failed run may leave a partial tree behind; the next successful run
// rebuilds the root from scratch, so recovery is re-running to completion.
func (s *Service) Execute(_ context.Context) (string, error) {
	sets, err := ScreenSets()
	if err != nil {
		return "", err
	}

	root := DeploymentRoot(s.beamline, s.repoRoot)
	scriptsDir := ScriptsDir(s.repoRoot)

	s.logger.Info("recreating deployment root", "root", root, "beamline", s.beamline)

	if err := os.RemoveAll(root); err != nil {
		return "", fmt.Errorf("failed to remove deployment root %s: %w", root, err)
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", fmt.Errorf("failed to create deployment root %s: %w", root, err)
	}

	manifest := Manifest{
		Beamline:   s.beamline,
		Root:       root,
		ScriptsDir: scriptsDir,
		Sets:       make(map[string][]string, len(sets)),
	}

	for _, set := range sets {
		targetDir := filepath.Join(root, set.TargetDir)
		if err := os.MkdirAll(targetDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create target directory %s: %w", targetDir, err)
		}

		sourceDir := filepath.Join(s.repoRoot, filepath.FromSlash(set.SourceRel))
		names, err := s.copier.CopyScreens(sourceDir, targetDir)
		if err != nil {
			return "", fmt.Errorf("failed to copy %s screens: %w", set.Name, err)
		}

		// Each set resolves EDM_LOCATION to its own subdirectory; the
		// scripts path is shared.
		if err := s.rewriter.RewriteTokens(targetDir, names, targetDir, scriptsDir); err != nil {
			return "", fmt.Errorf("failed to rewrite %s screens: %w", set.Name, err)
		}

		s.logger.Info("screen set deployed", "set", set.Name, "target", targetDir, "screens", len(names))

		manifest.Sets[set.Name] = names
	}

	if err := s.writer.WriteJSON(filepath.Join(root, ManifestFileName), manifest); err != nil {
		return "", fmt.Errorf("failed to write deployment manifest: %w", err)
	}

	return root, nil
}
