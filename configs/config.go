package configs

import (
	"errors"
	"fmt"
	"strings"
)

var Values Config

type (
	Config struct {
		Deploy Deploy `mapstructure:"deploy"`
	}

	Deploy struct {
		// Beamline selects the production deployment target, e.g. "i24".
		// Empty means a development deployment inside the repository.
		Beamline string `mapstructure:"beamline"`

		// RepoRoot is the checkout containing the screen sources. Empty
		// means the root is detected from the working directory.
		RepoRoot string `mapstructure:"repo-root"`

		// LogFile, when set, names a file in the beamline log area that
		// the JSON log stream is also written to.
		LogFile string `mapstructure:"log-file"`
	}
)

func (c *Deploy) Validate() error {
	var errs []error

	// The beamline name is interpolated into the deployment path.
	if strings.ContainsAny(c.Beamline, `/\`) {
		errs = append(errs, fmt.Errorf("deploy.beamline %q must not contain a path separator", c.Beamline))
	}
	if strings.ContainsAny(c.LogFile, `/\`) {
		errs = append(errs, fmt.Errorf("deploy.log-file %q must be a bare file name", c.LogFile))
	}

	if len(errs) > 0 {
		return fmt.Errorf("deploy configuration validation failed: %w", errors.Join(errs...))
	}

	return nil
}
