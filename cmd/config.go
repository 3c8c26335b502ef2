package cmd

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-portfolio/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

//nolint:gochecknoglobals // Cobra boilerplate
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write the default configuration to the --config path, or to
$HOME/.oxy-portfolio/config.toml. An existing file is left alone.`,
	RunE: runConfigInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) (err error) {
	path, err := config.InitConfig(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to write config")
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return err
}

// loadConfig reads the --config file.
func loadConfig() (cfg config.Config, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, err
	}
	return cfg, err
}
