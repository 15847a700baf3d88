package deploy

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRewriteTokens(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "beam.edl"),
		"command EDM_LOCATION/sub.edl\nexec SCRIPTS_LOCATION/run.sh EDM_LOCATION/x SCRIPTS_LOCATION/y\n")

	err := NewRewriter().RewriteTokens(dir, []string{"beam.edl"}, "/deployed/EX-gui", "/repo/scripts")
	require.NoError(t, err)

	require.Equal(t,
		"command /deployed/EX-gui/sub.edl\nexec /repo/scripts/run.sh /deployed/EX-gui/x /repo/scripts/y\n",
		readFile(t, filepath.Join(dir, "beam.edl")))
}

func TestRewriteTokensNoOccurrences(t *testing.T) {
	dir := t.TempDir()
	const content = "static screen, nothing to substitute\n"
	writeFile(t, filepath.Join(dir, "plain.edl"), content)

	err := NewRewriter().RewriteTokens(dir, []string{"plain.edl"}, "/deployed/EX-gui", "/repo/scripts")
	require.NoError(t, err)
	require.Equal(t, content, readFile(t, filepath.Join(dir, "plain.edl")))
}

func TestRewriteTokensMissingFile(t *testing.T) {
	dir := t.TempDir()

	err := NewRewriter().RewriteTokens(dir, []string{"gone.edl"}, "/deployed/EX-gui", "/repo/scripts")
	require.ErrorContains(t, err, filepath.Join(dir, "gone.edl"))
}
