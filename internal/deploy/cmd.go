package deploy

import (
	"fmt"
	"log/slog"

	"github.com/DiamondLightSource/edm-serial-deploy/configs"
	"github.com/DiamondLightSource/edm-serial-deploy/internal/deploy/infra/filesystem/json"
	"github.com/spf13/cobra"
)

var CMD = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the serial crystallography EDM screens",
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Info("starting deploy command. Validating config", slog.Any("config", configs.Values.Deploy))

		if err := configs.Values.Deploy.Validate(); err != nil {
			return err
		}

		repoRoot, err := ResolveRepoRoot(configs.Values.Deploy.RepoRoot)
		if err != nil {
			return err
		}

		service := NewService(
			configs.Values.Deploy.Beamline,
			repoRoot,
			NewCopier(),
			NewRewriter(),
			json.NewWriter(),
		)

		root, err := service.Execute(cmd.Context())
		if err != nil {
			return fmt.Errorf("error occurred deploying screens: %w", err)
		}

		slog.Info("screens deployed successfully", "root", root)

		// Operators and CI read the resolved root off stdout.
		fmt.Fprintln(cmd.OutOrStdout(), root)

		return nil
	},
}
