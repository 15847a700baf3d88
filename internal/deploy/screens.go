package deploy

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed screens.yaml
var screensYAML []byte

type (
	// ScreenSet is one deployable group of EDM screens: a source directory
	// in the repository and the subdirectory it is deployed into.
	ScreenSet struct {
		Name      string `yaml:"name"`
		SourceRel string `yaml:"source"`
		TargetDir string `yaml:"target"`
	}

	screenCatalogue struct {
		Screens []ScreenSet `yaml:"screens"`
	}
)

var (
	screensOnce sync.Once
	screenSets  []ScreenSet
	screensErr  error
)

// ScreenSets returns the screen sets declared in the embedded screens.yaml.
func ScreenSets() ([]ScreenSet, error) {
	screensOnce.Do(func() {
		var catalogue screenCatalogue
		if err := yaml.Unmarshal(screensYAML, &catalogue); err != nil {
			screensErr = fmt.Errorf("failed to decode embedded screens.yaml: %w", err)
			return
		}

		if len(catalogue.Screens) == 0 {
			screensErr = fmt.Errorf("embedded screens.yaml declares no screen sets")
			return
		}
		for _, set := range catalogue.Screens {
			if set.Name == "" || set.SourceRel == "" || set.TargetDir == "" {
				screensErr = fmt.Errorf("embedded screens.yaml entry %+v is missing a field", set)
				return
			}
		}

		screenSets = catalogue.Screens
	})

	if screensErr != nil {
		return nil, screensErr
	}

	return screenSets, nil
}
