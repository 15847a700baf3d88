package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DiamondLightSource/edm-serial-deploy/configs"
	"github.com/DiamondLightSource/edm-serial-deploy/internal/deploy"
	"github.com/DiamondLightSource/edm-serial-deploy/internal/logger"
	"github.com/DiamondLightSource/edm-serial-deploy/internal/verify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "edm-deploy"

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "CLI for deploying the I24 serial crystallography EDM screens",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Initialize(slog.LevelDebug)

		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if execPath, err := os.Executable(); err == nil {
			execDir := filepath.Dir(execPath)
			viper.AddConfigPath(execDir)
		}
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")

		// Try to read config file, but don't fail if it doesn't exist
		// Flags and the BEAMLINE environment variable can provide all
		// necessary configuration
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				slog.Debug("no config file found, will rely on flags and defaults")
			} else {
				const errMsg = "error reading config file"
				slog.With("err", err.Error()).Error(errMsg)
				return errors.Join(err, errors.New(errMsg))
			}
		} else {
			slog.With("config_file", viper.ConfigFileUsed()).Debug("config file loaded")
		}

		if err := viper.Unmarshal(&configs.Values); err != nil {
			const errMsg = "unable to decode application config"
			slog.With("err", err.Error()).Error(errMsg)
			return errors.Join(err, errors.New(errMsg))
		}

		if cfg := configs.Values.Deploy; cfg.LogFile != "" {
			logDir, err := logger.LogPath(cfg.Beamline)
			if err != nil {
				return err
			}
			if err := logger.InitializeWithFile(slog.LevelDebug, filepath.Join(logDir, cfg.LogFile)); err != nil {
				return err
			}
		}

		slog.With("config", configs.Values).Debug("configuration loaded")

		return nil
	},
}

func main() {
	rootCmd.AddCommand(deploy.CMD)
	rootCmd.AddCommand(verify.CMD)

	if err := rootCmd.Execute(); err != nil {
		slog.With("err", err.Error()).Error("failed to execute root command")
		os.Exit(1)
	}
}
