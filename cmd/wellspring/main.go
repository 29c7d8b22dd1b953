package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verdantly/wellspring/internal/app"
	"github.com/verdantly/wellspring/internal/infrastructure/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "wellspring",
	Short: "Wellness session tracking service",
	Long: `wellspring records completed wellness sessions, derives streaks and
history statistics, schedules reminders, and generates personalized
wellness plans.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadServer()
		if err != nil {
			return err
		}
		return app.Run(cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
