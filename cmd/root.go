package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "oxy-portfolio",
	Short: "Animated 3D developer portfolio",
	Long: `oxy-portfolio shows a developer portfolio as an animated 3D scene with five sections:
welcome, skills, experience, projects and achievements.

Without a subcommand it opens the window, the same as "oxy-portfolio run".
Use "oxy-portfolio tui" for a terminal rendition over SSH or without a GPU.`,
	RunE: runWindow,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.oxy-portfolio/config.toml)")
	addSessionFlags(rootCmd)
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}
