package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

var Version = "dev"

func init() {
	// Persistent flags
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/artspace/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	listCmd.Flags().Bool("json", false, "Print the catalog as JSON")
	listCmd.Flags().StringP("search", "s", "", "Only list artworks fuzzily matching this text")
	configInitCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd, configPathCmd)
	rootCmd.AddCommand(versionCmd, listCmd, showCmd, configCmd)
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		// fang has already printed the error
		os.Exit(1)
	}
}
