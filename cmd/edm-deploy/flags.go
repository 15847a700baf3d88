package main

import (
	"github.com/spf13/viper"
)

// flagDef defines a command-line flag with its configuration.
type (
	flagType interface {
		string | int | bool
	}

	flagDef[T flagType] struct {
		name         string
		viperKey     string
		defaultValue T
		description  string
	}
)

// The deploy and verify commands share one configuration surface, so the
// flags are persistent on the root command.
var stringFlags = []flagDef[string]{
	{"beamline", "deploy.beamline", "", "Beamline to deploy to, e.g. i24 (also read from $BEAMLINE); empty deploys into the repository"},
	{"repo-root", "deploy.repo-root", "", "Repository root containing the screen sources (detected from the working directory when empty)"},
	{"log-file", "deploy.log-file", "", "Log file name written under the beamline log area"},
}

func init() {
	if err := declareFlags(stringFlags); err != nil {
		panic(err)
	}

	// The production deployment target is conventionally selected by the
	// beamline's environment rather than a flag.
	if err := viper.BindEnv("deploy.beamline", "BEAMLINE"); err != nil {
		panic(err)
	}
}

// declareFlags declares multiple flags and binds them to viper configuration keys.
func declareFlags[T flagType](flags []flagDef[T]) error {
	for _, flag := range flags {
		if err := declareFlag(flag.name, flag.viperKey, flag.defaultValue, flag.description); err != nil {
			return err
		}
	}
	return nil
}

// declareFlag declares a single flag and binds it to a viper configuration key.
// The type parameter T determines the flag type (string, int, or bool).
func declareFlag[T flagType](flagName, viperKey string, defaultValue T, description string) error {
	var zero T
	switch any(zero).(type) {
	case string:
		rootCmd.PersistentFlags().String(flagName, any(defaultValue).(string), description)
	case int:
		rootCmd.PersistentFlags().Int(flagName, any(defaultValue).(int), description)
	case bool:
		rootCmd.PersistentFlags().Bool(flagName, any(defaultValue).(bool), description)
	}
	return viper.BindPFlag(viperKey, rootCmd.PersistentFlags().Lookup(flagName))
}
