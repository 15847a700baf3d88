package verify

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DiamondLightSource/edm-serial-deploy/internal/deploy"
	fsjson "github.com/DiamondLightSource/edm-serial-deploy/internal/deploy/infra/filesystem/json"
	"github.com/stretchr/testify/require"
)

// deployedRepo builds a repository checkout with screen sources and runs a
// full deploy into it, returning the repo root and deployment root.
func deployedRepo(t *testing.T) (string, string) {
	t.Helper()
	repo := t.TempDir()

	exDir := filepath.Join(repo, "src", "mx_bluesky", "I24", "serial", "extruder", "EX-gui-edm")
	ftDir := filepath.Join(repo, "src", "mx_bluesky", "I24", "serial", "fixed_target", "FT-gui-edm")
	require.NoError(t, os.MkdirAll(exDir, 0755))
	require.NoError(t, os.MkdirAll(ftDir, 0755))
	writeFile(t, filepath.Join(exDir, "one.edl"), "EDM_LOCATION/x SCRIPTS_LOCATION/y")
	writeFile(t, filepath.Join(ftDir, "chip.edl"), "run SCRIPTS_LOCATION/start.sh")

	service := deploy.NewService("", repo, deploy.NewCopier(), deploy.NewRewriter(), fsjson.NewWriter())
	root, err := service.Execute(context.Background())
	require.NoError(t, err)

	return repo, root
}

func TestExecutePassesOnFreshDeploy(t *testing.T) {
	repo, _ := deployedRepo(t)

	violations, err := NewService("", repo, fsjson.NewReader()).Execute(context.Background())
	require.NoError(t, err)
	require.Empty(t, violations)
}

func TestExecuteReportsSurvivingToken(t *testing.T) {
	repo, root := deployedRepo(t)
	writeFile(t, filepath.Join(root, "EX-gui", "one.edl"), "still EDM_LOCATION/x")

	violations, err := NewService("", repo, fsjson.NewReader()).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, violations, 1)
	require.Contains(t, violations[0], deploy.TokenEDMLocation)
}

func TestExecuteReportsMissingAndExtraScreens(t *testing.T) {
	repo, root := deployedRepo(t)
	require.NoError(t, os.Remove(filepath.Join(root, "EX-gui", "one.edl")))
	writeFile(t, filepath.Join(root, "FT-gui", "stray.edl"), "not in the sources")

	violations, err := NewService("", repo, fsjson.NewReader()).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, violations, 2)
	require.Contains(t, violations[0], "one.edl is missing from the deployment")
	require.Contains(t, violations[1], "stray.edl is deployed but has no source")
}

func TestExecuteFailsWithoutManifest(t *testing.T) {
	repo, root := deployedRepo(t)
	require.NoError(t, os.Remove(filepath.Join(root, deploy.ManifestFileName)))

	_, err := NewService("", repo, fsjson.NewReader()).Execute(context.Background())
	require.ErrorContains(t, err, "deployment manifest")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
