package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wuxin0011/lckit/internal/config"
	"github.com/wuxin0011/lckit/internal/logging"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "lcctl",
	Short: "toolkit for organizing and annotating coding-problem solutions",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.ConfigureRuntime()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to lckit.toml")
	rootCmd.AddCommand(newTreeCmd(), newProblemsCmd(), newConfigCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lcctl: %v\n", err)
		os.Exit(1)
	}
}
