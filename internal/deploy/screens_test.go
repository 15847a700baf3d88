package deploy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScreenSets(t *testing.T) {
	sets, err := ScreenSets()
	require.NoError(t, err)

	require.Equal(t, []ScreenSet{
		{
			Name:      "extruder",
			SourceRel: "src/mx_bluesky/I24/serial/extruder/EX-gui-edm",
			TargetDir: "EX-gui",
		},
		{
			Name:      "fixed-target",
			SourceRel: "src/mx_bluesky/I24/serial/fixed_target/FT-gui-edm",
			TargetDir: "FT-gui",
		},
	}, sets)
}
