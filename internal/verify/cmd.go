package verify

import (
	"fmt"
	"log/slog"

	"github.com/DiamondLightSource/edm-serial-deploy/configs"
	"github.com/DiamondLightSource/edm-serial-deploy/internal/deploy"
	"github.com/DiamondLightSource/edm-serial-deploy/internal/deploy/infra/filesystem/json"
	"github.com/spf13/cobra"
)

var CMD = &cobra.Command{
	Use:   "verify",
	Short: "Verify a deployed EDM screen tree against its sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Info("starting verify command. Validating config", slog.Any("config", configs.Values.Deploy))

		if err := configs.Values.Deploy.Validate(); err != nil {
			return err
		}

		repoRoot, err := deploy.ResolveRepoRoot(configs.Values.Deploy.RepoRoot)
		if err != nil {
			return err
		}

		service := NewService(configs.Values.Deploy.Beamline, repoRoot, json.NewReader())

		violations, err := service.Execute(cmd.Context())
		if err != nil {
			return fmt.Errorf("error occurred verifying deployment: %w", err)
		}

		for _, violation := range violations {
			slog.Error("deployment violation", "problem", violation)
		}
		if len(violations) > 0 {
			return fmt.Errorf("deployment failed verification with %d problem(s)", len(violations))
		}

		slog.Info("deployment verified successfully")

		return nil
	},
}
